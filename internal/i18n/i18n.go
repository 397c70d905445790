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

// Package i18n provides the localized messages shown by rootutil.
package i18n

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupported indicates that a language is not supported.
var ErrUnsupported = errors.New("unsupported language")

var (
	// Chinese is Simplified Chinese as used in mainland China.
	Chinese = language.MustParse("zh-CN")

	// English is American English.
	English = language.MustParse("en-US")
)

// Default is the language used when no other language matches.
var Default = Chinese

// Supported are the supported languages. The first is the default.
var Supported = []language.Tag{Chinese, English}

var (
	matcher = language.NewMatcher(Supported)
	cat     = mustBuild()
)

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Default))
	for _, tag := range Supported {
		msgs := messages[tag.String()]
		keys := make([]string, 0, len(msgs))
		for k := range msgs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := b.SetString(tag, k, msgs[k]); err != nil {
				panic(fmt.Sprintf("registering message %q for %v: %v", k, tag, err))
			}
		}
	}
	return b
}

// Match returns the supported language closest to tag, or Default.
func Match(tag language.Tag) language.Tag {
	_, i, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default
	}
	return Supported[i]
}

// Parse parses a language tag such as "en" or "zh-CN" and returns the
// matching supported language.
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Default, fmt.Errorf("%w: %q: %w", ErrUnsupported, s, err)
	}
	_, i, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return Supported[i], nil
}

// Printer returns a message printer for the language.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(cat))
}
