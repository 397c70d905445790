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

package i18n

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

// TestMessages checks that every locale defines the same keys.
func TestMessages(t *testing.T) {
	t.Parallel()

	base := messages[Default.String()]
	if len(base) == 0 {
		t.Fatalf("no messages for default locale %v", Default)
	}
	for _, tag := range Supported {
		msgs, ok := messages[tag.String()]
		if !ok {
			t.Fatalf("no messages for %v", tag)
		}
		for k := range base {
			if _, ok := msgs[k]; !ok {
				t.Errorf("%v: missing key %q", tag, k)
			}
		}
		for k := range msgs {
			if _, ok := base[k]; !ok {
				t.Errorf("%v: extra key %q", tag, k)
			}
		}
	}
}

// TestParse tests Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected language.Tag
		err      error
	}{
		{input: "zh-CN", expected: Chinese},
		{input: "zh", expected: Chinese},
		{input: "en", expected: English},
		{input: "en-US", expected: English},
		{input: "not a tag", expected: Default, err: ErrUnsupported},
		{input: "ko", expected: Default, err: ErrUnsupported},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("Parse: want error: %v, got: %v", test.err, err)
			}
			if got != test.expected {
				t.Fatalf("Parse: want: %v, got: %v", test.expected, got)
			}
		})
	}
}

// TestPrinter tests that messages are formatted per locale.
func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      language.Tag
		expected string
	}{
		{tag: Chinese, expected: "测验 2/5"},
		{tag: English, expected: "Quiz 2/5"},
		{tag: language.BritishEnglish, expected: "Quiz 2/5"},
		{tag: language.Japanese, expected: "测验 2/5"},
	}

	for _, test := range tests {
		t.Run(test.tag.String(), func(t *testing.T) {
			t.Parallel()

			got := Printer(test.tag).Sprintf(MetaQuiz, 2, 5)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Sprintf (-want, +got):\n%s", diff)
			}
		})
	}
}
