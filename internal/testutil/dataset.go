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

// Package testutil contains fixtures shared by package tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordroots/dataset"
)

// MakeDatasetOptions are options for writing a temporary dataset.
type MakeDatasetOptions struct {
	// Ext is the file extension of the dataset. Defaults to '.json.dz' if
	// DictZip is true, '.json.gz' if GZip is true. Otherwise '.json'.
	Ext string

	// DictZip indicates that the dataset should be compressed with DictZip.
	DictZip bool

	// GZip indicates that the dataset should be compressed with gzip.
	GZip bool
}

// GetExt returns the dataset file extension.
func (o *MakeDatasetOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".json.dz"
		}
		if o.GZip {
			return ".json.gz"
		}
	}
	return ".json"
}

// MakeTempDataset writes the document to a temporary file and returns the
// file path. The file is removed when the test completes.
func MakeTempDataset(t *testing.T, doc *dataset.Document, opts *MakeDatasetOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDatasetOptions{}
	}

	var buf bytes.Buffer
	if err := dataset.Encode(&buf, doc); err != nil {
		t.Fatal(err)
	}

	return WriteTemp(t, buf.Bytes(), opts)
}

// WriteTemp writes raw dataset bytes to a temporary file, compressing them
// according to opts, and returns the file path.
func WriteTemp(t *testing.T, b []byte, opts *MakeDatasetOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roots"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts.GZip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// Words returns the words of the entries.
func Words(entries []*dataset.Entry) []string {
	var words []string
	for _, e := range entries {
		words = append(words, e.Word)
	}
	return words
}

// Entry returns a dataset entry decomposed into the given morphemes.
func Entry(word, meaning string, morphemes ...string) *dataset.Entry {
	e := &dataset.Entry{
		Word:          word,
		Meaning:       meaning,
		Decomposition: strings.Join(morphemes, "+"),
	}
	for _, m := range morphemes {
		e.Components = append(e.Components, dataset.Component{Morpheme: m})
	}
	return e
}

// ExampleDocument returns a small dataset with four glossed roots and a
// single entry.
func ExampleDocument() *dataset.Document {
	return &dataset.Document{
		Meta: dataset.Meta{
			EntryCount: 1,
			RootCount:  4,
		},
		Roots: []*dataset.Root{
			{Root: "bio", Gloss: "life", WordCount: 3, SampleWords: []string{"biology"}},
			{Root: "tele", Gloss: "distance", WordCount: 2},
			{Root: "phon", Gloss: "sound", WordCount: 2},
			{Root: "graph", Gloss: "write", WordCount: 2},
		},
		Entries: []*dataset.Entry{
			{
				Word:          "biography",
				Meaning:       "life story",
				Decomposition: "bio+graph+y",
				Components: []dataset.Component{
					{Morpheme: "bio"},
					{Morpheme: "graph"},
				},
			},
		},
	}
}
