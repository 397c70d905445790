// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// ErrOpen indicates that the dataset file could not be opened.
var ErrOpen = errors.New("opening dataset")

// Exts are the recognized dataset file extensions in search order.
var Exts = []string{
	".json",
	".json.dz",
	".json.gz",
	".JSON",
	".JSON.DZ",
	".JSON.GZ",
}

// Open reads the dataset at the given path. Files ending in .gz are read
// with gzip and files ending in .dz are read with dictzip.
func Open(path string, options *Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrOpen, path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrOpen, path, err)
		}
		defer z.Close()
		r = z
	}

	doc, err := Decode(r, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return doc, nil
}

// Find returns the first dataset named base in one of the directories.
// The base name is tried with each of [Exts] appended.
func Find(dirs []string, base string) (string, error) {
	for _, dir := range dirs {
		for _, ext := range Exts {
			path := filepath.Join(dir, base+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s not found in %s", ErrOpen, base, strings.Join(dirs, ", "))
}

// Write writes the dataset document to path. If compress is true the
// document is compressed with dictzip.
func Write(path string, doc *Document, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cerr)
		}
	}()

	if !compress {
		return Encode(f, doc)
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating dictzip writer: %w", err)
	}
	if err := Encode(z, doc); err != nil {
		_ = z.Close()
		return err
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("closing dictzip writer: %w", err)
	}
	return nil
}
