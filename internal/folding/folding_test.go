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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "leading and trailing",
			input:    " \t bio \n",
			expected: "bio",
		},
		{
			name:     "internal spans",
			input:    "life  \t story",
			expected: "life story",
		},
		{
			name:     "ideographic space",
			input:    "生命　故事",
			expected: "生命 故事",
		},
		{
			name:     "only whitespace",
			input:    " 　 ",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&Whitespace{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Whitespace (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "case",
			input:    "BioGraphy",
			expected: "biography",
		},
		{
			name:     "full width",
			input:    "ＢＩＯ",
			expected: "bio",
		},
		{
			name:     "cjk unchanged",
			input:    " 生命  ",
			expected: "生命",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, String(test.input)); diff != "" {
				t.Fatalf("String (-want, +got):\n%s", diff)
			}
		})
	}
}
