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

package wordroots

import (
	"strings"

	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/internal/folding"
	"github.com/ianlewis/go-wordroots/internal/index"
)

// MinStudyWords is the minimum word count for a root to be studied with
// flashcards.
const MinStudyWords = 2

// Deck is a loaded and indexed dataset.
type Deck struct {
	doc *dataset.Document

	// roots maps root strings to root summaries.
	roots map[string]*dataset.Root

	// related maps morphemes to the entries that contain them.
	related map[string][]*dataset.Entry

	// names is sorted by folded root string.
	names *index.Index[*foldedRoot]

	// haystacks holds the folded searchable text of each root, in
	// dataset order.
	haystacks [][]string
}

type foldedRoot struct {
	folded string
	root   *dataset.Root
}

func (r *foldedRoot) String() string {
	return r.folded
}

// Open opens the dataset at path and indexes it.
func Open(path string, options *dataset.Options) (*Deck, error) {
	doc, err := dataset.Open(path, options)
	if err != nil {
		return nil, err
	}
	return New(doc)
}

// New indexes the dataset document. The document must not be modified
// afterwards.
func New(doc *dataset.Document) (*Deck, error) {
	roots, err := IndexRoots(doc.Roots)
	if err != nil {
		return nil, err
	}

	d := &Deck{
		doc:     doc,
		roots:   roots,
		related: IndexEntries(doc.Entries),
	}

	names := make([]*foldedRoot, 0, len(doc.Roots))
	d.haystacks = make([][]string, 0, len(doc.Roots))
	for _, r := range doc.Roots {
		names = append(names, &foldedRoot{
			folded: folding.String(r.Root),
			root:   r,
		})
		d.haystacks = append(d.haystacks, d.haystack(r))
	}
	d.names = index.New(names)

	return d, nil
}

func (d *Deck) haystack(r *dataset.Root) []string {
	h := []string{folding.String(r.Root)}
	if r.Gloss != "" {
		h = append(h, folding.String(r.Gloss))
	}
	for _, w := range r.SampleWords {
		h = append(h, folding.String(w))
	}
	for _, e := range d.related[r.Root] {
		if e.Meaning != "" {
			h = append(h, folding.String(e.Meaning))
		}
	}
	return h
}

// Meta returns the dataset metadata. Counts missing from the dataset are
// filled in from the loaded data.
func (d *Deck) Meta() dataset.Meta {
	m := d.doc.Meta
	if m.EntryCount == 0 {
		m.EntryCount = len(d.doc.Entries)
	}
	if m.RootCount == 0 {
		m.RootCount = len(d.doc.Roots)
	}
	return m
}

// Roots returns all roots in dataset order.
func (d *Deck) Roots() []*dataset.Root {
	return d.doc.Roots
}

// Entries returns all entries in dataset order.
func (d *Deck) Entries() []*dataset.Entry {
	return d.doc.Entries
}

// Root returns the root summary for the root string.
func (d *Deck) Root(name string) (*dataset.Root, bool) {
	r, ok := d.roots[name]
	return r, ok
}

// Related returns the entries containing the morpheme, in dataset order.
func (d *Deck) Related(name string) []*dataset.Entry {
	return d.related[name]
}

// Search returns the roots matching the query in dataset order. A root
// matches if its root string, gloss, one of its sample words or the meaning
// of one of its related entries contains the query, ignoring case. An
// empty query matches every root.
func (d *Deck) Search(query string) []*dataset.Root {
	q := folding.String(query)
	if q == "" {
		return d.doc.Roots
	}

	var matches []*dataset.Root
	for i, r := range d.doc.Roots {
		for _, s := range d.haystacks[i] {
			if strings.Contains(s, q) {
				matches = append(matches, r)
				break
			}
		}
	}
	return matches
}

// Complete returns the roots whose root string starts with prefix,
// ignoring case, sorted by root string.
func (d *Deck) Complete(prefix string) []*dataset.Root {
	var roots []*dataset.Root
	for _, r := range d.names.Prefix(folding.String(prefix)) {
		roots = append(roots, r.root)
	}
	return roots
}

// Glossed returns the roots with a non-empty gloss in dataset order.
func (d *Deck) Glossed() []*dataset.Root {
	var roots []*dataset.Root
	for _, r := range d.doc.Roots {
		if r.Gloss != "" {
			roots = append(roots, r)
		}
	}
	return roots
}

// StudyPool returns the root strings of roots used in at least
// [MinStudyWords] words, in dataset order.
func (d *Deck) StudyPool() []string {
	var roots []string
	for _, r := range d.doc.Roots {
		if r.WordCount >= MinStudyWords {
			roots = append(roots, r.Root)
		}
	}
	return roots
}
