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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/k3a/html2text"
)

// ErrDecode indicates that the dataset document could not be decoded.
var ErrDecode = errors.New("decoding dataset")

// Meta is the dataset metadata.
type Meta struct {
	// EntryCount is the number of word entries in the dataset.
	EntryCount int `json:"entryCount"`

	// RootCount is the number of roots in the dataset.
	RootCount int `json:"rootCount"`

	// SourcePDF is the name of the document the dataset was extracted from.
	SourcePDF string `json:"sourcePdf,omitempty"`

	// GeneratedAt is the time the dataset was generated.
	GeneratedAt time.Time `json:"generatedAt,omitzero"`
}

// Root is a root or affix summary.
type Root struct {
	// Root is the root string. It is unique within a dataset.
	Root string `json:"root"`

	// Gloss is a short meaning of the root. It may be empty.
	Gloss string `json:"gloss"`

	// WordCount is the number of distinct words that contain the root.
	WordCount int `json:"wordCount"`

	// SampleWords are example words containing the root.
	SampleWords []string `json:"sampleWords"`
}

// Component is one morpheme of a word's decomposition.
type Component struct {
	Morpheme string `json:"morpheme"`
	Hint     string `json:"hint,omitempty"`
}

// Entry is a dictionary word.
type Entry struct {
	ID            string      `json:"id,omitempty"`
	Word          string      `json:"word"`
	Meaning       string      `json:"meaning"`
	Decomposition string      `json:"decomposition"`
	Page          int         `json:"page,omitempty"`
	Components    []Component `json:"components"`
}

// String returns the entry's word.
func (e *Entry) String() string {
	return e.Word
}

// Document is a full dataset.
type Document struct {
	Meta    Meta     `json:"meta"`
	Roots   []*Root  `json:"roots"`
	Entries []*Entry `json:"entries"`
}

// Options are options for decoding a dataset.
type Options struct {
	// HTML indicates that the text fields of the dataset contain HTML
	// markup. The markup is converted to plain text when decoding.
	HTML bool
}

// DefaultOptions is the default options for decoding a dataset.
var DefaultOptions = &Options{}

// Decode reads a dataset document from r.
func Decode(r io.Reader, options *Options) (*Document, error) {
	if options == nil {
		options = DefaultOptions
	}

	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	// JSON null array elements decode to nil pointers.
	doc.Roots = compact(doc.Roots)
	doc.Entries = compact(doc.Entries)

	if options.HTML {
		for _, r := range doc.Roots {
			r.Gloss = plainText(r.Gloss)
		}
		for _, e := range doc.Entries {
			e.Meaning = plainText(e.Meaning)
			e.Decomposition = plainText(e.Decomposition)
			for i := range e.Components {
				e.Components[i].Hint = plainText(e.Components[i].Hint)
			}
		}
	}

	return &doc, nil
}

// Encode writes the dataset document to w as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return nil
}

func plainText(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html2text.HTML2Text(s))
}

func compact[T any](items []*T) []*T {
	out := items[:0]
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}
