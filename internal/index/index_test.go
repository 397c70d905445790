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

package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type String string

func (s String) String() string {
	return string(s)
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		query    string
		expected []String
	}{
		{
			name:     "single results",
			index:    []String{"tele", "bio", "graph", "bio"},
			query:    "tele",
			expected: []String{"tele"},
		},
		{
			name:     "multiple results",
			index:    []String{"tele", "bio", "graph", "bio"},
			query:    "bio",
			expected: []String{"bio", "bio"},
		},
		{
			name:     "no results",
			index:    []String{"tele", "bio", "graph", "bio"},
			query:    "phon",
			expected: nil,
		},
		{
			name:     "empty index",
			query:    "bio",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := New(test.index)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		prefix   string
		expected []String
	}{
		{
			name:     "several matches",
			index:    []String{"tele", "bio", "biblio", "bi", "graph"},
			prefix:   "bi",
			expected: []String{"bi", "biblio", "bio"},
		},
		{
			name:     "exact",
			index:    []String{"tele", "bio", "graph"},
			prefix:   "graph",
			expected: []String{"graph"},
		},
		{
			name:     "empty prefix",
			index:    []String{"tele", "bio"},
			prefix:   "",
			expected: []String{"bio", "tele"},
		},
		{
			name:     "past the end",
			index:    []String{"tele", "bio"},
			prefix:   "zo",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := New(test.index)

			if diff := cmp.Diff(test.expected, index.Prefix(test.prefix)); diff != "" {
				t.Fatalf("Prefix (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew_doesNotModify(t *testing.T) {
	t.Parallel()

	values := []String{"tele", "bio"}
	_ = New(values)

	if diff := cmp.Diff([]String{"tele", "bio"}, values); diff != "" {
		t.Fatalf("New modified input (-want, +got):\n%s", diff)
	}
}
