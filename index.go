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
	"errors"
	"fmt"

	"github.com/ianlewis/go-wordroots/dataset"
)

// ErrDuplicateRoot indicates that a root string appears more than once in a
// dataset.
var ErrDuplicateRoot = errors.New("duplicate root")

// IndexEntries groups entries by the morphemes they contain. Every entry is
// appended once to the list of each non-empty morpheme in its components,
// so an entry that lists the same morpheme twice appears twice. Lists keep
// the order of entries. The entries are not modified.
func IndexEntries(entries []*dataset.Entry) map[string][]*dataset.Entry {
	m := map[string][]*dataset.Entry{}
	for _, e := range entries {
		for _, c := range e.Components {
			if c.Morpheme == "" {
				continue
			}
			m[c.Morpheme] = append(m[c.Morpheme], e)
		}
	}
	return m
}

// IndexRoots returns a map of root string to root summary.
func IndexRoots(roots []*dataset.Root) (map[string]*dataset.Root, error) {
	m := make(map[string]*dataset.Root, len(roots))
	for _, r := range roots {
		if _, ok := m[r.Root]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoot, r.Root)
		}
		m[r.Root] = r
	}
	return m, nil
}
