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

// Package builder builds a dataset from the text of a root and affix
// dictionary.
//
// The input is plain text as produced by PDF text extraction tools such as
// pdftotext, one dictionary entry per line, with pages separated by form
// feed characters.
package builder

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ianlewis/go-wordroots/dataset"
)

const (
	// MinEntries is the number of entries a morpheme must appear in to be
	// indexed as a root.
	MinEntries = 2

	// MaxSampleWords is the number of sample words kept for a root.
	MaxSampleWords = 12

	// maxGloss is the longest preferred gloss in runes.
	maxGloss = 18

	// maxLine is the longest accepted input line in bytes.
	maxLine = 1 << 20
)

var (
	cjk   = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
	latin = regexp.MustCompile(`[A-Za-z]`)
)

// Options are options for building a dataset.
type Options struct {
	// Source is the name of the source document recorded in the metadata.
	Source string

	// Now returns the generation time. A nil Now uses time.Now.
	Now func() time.Time

	// Logger receives diagnostic messages. A nil Logger discards them.
	Logger *zap.Logger
}

// DefaultOptions is the default options for building a dataset.
var DefaultOptions = &Options{}

type entryKey struct {
	word, meaning, decomposition string
}

// Builder accumulates entries and builds a dataset document.
type Builder struct {
	entries []*dataset.Entry
	seen    map[entryKey]bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		seen: map[entryKey]bool{},
	}
}

// Add parses a line found on the given page. It returns true if the line
// held a new entry.
func (b *Builder) Add(page int, line string) bool {
	e, ok := ParseLine(line)
	if !ok {
		return false
	}

	key := entryKey{e.Word, e.Meaning, e.Decomposition}
	if b.seen[key] {
		return false
	}
	b.seen[key] = true

	e.ID = fmt.Sprintf("e%d", len(b.entries)+1)
	e.Page = page
	b.entries = append(b.entries, e)
	return true
}

// Entries returns the entries added so far in input order.
func (b *Builder) Entries() []*dataset.Entry {
	return b.entries
}

// Document returns the dataset built from the entries added so far.
func (b *Builder) Document(options *Options) *dataset.Document {
	if options == nil {
		options = DefaultOptions
	}
	now := time.Now
	if options.Now != nil {
		now = options.Now
	}

	roots := Roots(b.entries)
	return &dataset.Document{
		Meta: dataset.Meta{
			EntryCount:  len(b.entries),
			RootCount:   len(roots),
			SourcePDF:   options.Source,
			GeneratedAt: now().UTC(),
		},
		Roots:   roots,
		Entries: b.entries,
	}
}

// Read builds a dataset from the text read from r. Pages are numbered from
// 1 and separated by form feeds.
func Read(r io.Reader, options *Options) (*dataset.Document, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	b := New()
	page := 1
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for s.Scan() {
		segments := strings.Split(s.Text(), "\f")
		for i, line := range segments {
			if i > 0 {
				logger.Debug("page done", zap.Int("page", page), zap.Int("entries", len(b.entries)))
				page++
			}
			b.Add(page, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	doc := b.Document(options)
	logger.Debug("built dataset",
		zap.Int("pages", page),
		zap.Int("entries", doc.Meta.EntryCount),
		zap.Int("roots", doc.Meta.RootCount),
	)
	return doc, nil
}

type hintCount struct {
	hint  string
	count int
}

// Roots indexes the morphemes that appear in at least MinEntries entries.
// Roots are ordered by descending word count and then by root string.
func Roots(entries []*dataset.Entry) []*dataset.Root {
	counts := map[string]int{}
	hints := map[string]map[string]int{}
	words := map[string][]string{}

	for _, e := range entries {
		for _, c := range e.Components {
			m := c.Morpheme
			counts[m]++
			if c.Hint != "" {
				if hints[m] == nil {
					hints[m] = map[string]int{}
				}
				hints[m][c.Hint]++
			}
			if !slices.Contains(words[m], e.Word) {
				words[m] = append(words[m], e.Word)
			}
		}
	}

	var roots []*dataset.Root
	for m, n := range counts {
		if n < MinEntries {
			continue
		}
		roots = append(roots, &dataset.Root{
			Root:        m,
			Gloss:       gloss(hints[m]),
			WordCount:   len(words[m]),
			SampleWords: words[m][:min(len(words[m]), MaxSampleWords)],
		})
	}

	slices.SortFunc(roots, func(a, b *dataset.Root) int {
		if c := cmp.Compare(b.WordCount, a.WordCount); c != 0 {
			return c
		}
		return strings.Compare(a.Root, b.Root)
	})
	return roots
}

// gloss chooses the best hint for a root. Short hints written in Chinese
// characters without Latin letters are preferred; among the candidates
// the most frequent, then the shortest, then the smallest hint wins.
func gloss(hints map[string]int) string {
	var all, preferred []hintCount
	for h, n := range hints {
		hc := hintCount{hint: h, count: n}
		all = append(all, hc)
		if cjk.MatchString(h) && utf8.RuneCountInString(h) <= maxGloss && !latin.MatchString(h) {
			preferred = append(preferred, hc)
		}
	}

	pool := preferred
	if len(pool) == 0 {
		pool = all
	}
	if len(pool) == 0 {
		return ""
	}

	best := slices.MinFunc(pool, func(a, b hintCount) int {
		return cmp.Or(
			cmp.Compare(rank(a.hint), rank(b.hint)),
			cmp.Compare(b.count, a.count),
			cmp.Compare(utf8.RuneCountInString(a.hint), utf8.RuneCountInString(b.hint)),
			strings.Compare(a.hint, b.hint),
		)
	})
	return best.hint
}

// rank sorts hints containing Chinese characters first.
func rank(hint string) int {
	if cjk.MatchString(hint) {
		return 0
	}
	return 1
}
