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

package builder

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ianlewis/go-wordroots/dataset"
)

// maxMorpheme is the length of the longest accepted morpheme.
const maxMorpheme = 20

var (
	// word [decomposition] meaning
	bracketLine = regexp.MustCompile(`^([A-Za-z][A-Za-z\-' ]*)\s*\[([^\]]{2,})\]\s*(.+)$`)

	// word meaning (decomposition)
	parenLine = regexp.MustCompile(`^([A-Za-z][A-Za-z\-' ]*)\s+([^\[\(]{1,})\s*\(([^)]{2,})\)\s*$`)

	englishToken = regexp.MustCompile(`(?s)^([A-Za-z][A-Za-z\-']*)(.*)$`)
	englishWord  = regexp.MustCompile(`\b[A-Za-z][A-Za-z\-']*\b`)
	validWord    = regexp.MustCompile(`^[a-z'\-]+$`)
	separators   = regexp.MustCompile(`[，,;；/]`)
	brackets     = regexp.MustCompile(`[\\\[\](){}<>]`)
	spaces       = regexp.MustCompile(`\s+`)
	digits       = regexp.MustCompile(`^[0-9]+$`)
	numerals     = regexp.MustCompile(`^[一二三四五六七八九十百千]+$`)
)

var punctuation = strings.NewReplacer(
	"\u3000", " ",
	"\t", " ",
	"（", "(",
	"）", ")",
	"【", "[",
	"】", "]",
	"：", ":",
)

// hintTrim are the characters trimmed from both ends of a hint.
const hintTrim = " +-:：,，;；。"

// Normalize replaces full-width brackets and colons with their ASCII
// forms and collapses runs of whitespace into a single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(punctuation.Replace(text)), " ")
}

// normalizeWord removes whitespace from a headword and lowercases it.
func normalizeWord(word string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, word))
}

// isNoise reports whether a normalized line is a page number or other
// line that never holds an entry.
func isNoise(line string) bool {
	return line == "" || digits.MatchString(line) || numerals.MatchString(line)
}

// ParseLine parses a line of the form "word [decomposition] meaning" or
// "word meaning (decomposition)". It returns false if the line is not an
// entry, the headword is not a lowercase word of at least two letters, or
// the decomposition has no morphemes.
func ParseLine(line string) (*dataset.Entry, bool) {
	line = Normalize(line)
	if isNoise(line) {
		return nil, false
	}

	var word, meaning, decomposition string
	if m := bracketLine.FindStringSubmatch(line); m != nil {
		word = normalizeWord(m[1])
		decomposition = Normalize(m[2])
		meaning = Normalize(m[3])
	} else if m := parenLine.FindStringSubmatch(line); m != nil {
		word = normalizeWord(m[1])
		meaning = Normalize(m[2])
		decomposition = Normalize(m[3])
	}
	if word == "" || meaning == "" || decomposition == "" {
		return nil, false
	}
	if len(word) < 2 || !validWord.MatchString(word) {
		return nil, false
	}

	components := ParseComponents(decomposition)
	if len(components) == 0 {
		return nil, false
	}

	return &dataset.Entry{
		Word:          word,
		Meaning:       meaning,
		Decomposition: decomposition,
		Components:    components,
	}, true
}

// ParseComponents splits a decomposition such as "bio生命+graph写" into
// components. Parts are separated by '+' or, if there is none, by commas,
// semicolons or slashes. The morpheme is the leading English token of each
// part; the rest of the part becomes the hint. Single letters other than
// "a", overlong tokens and repeated morphemes are skipped.
func ParseComponents(decomposition string) []dataset.Component {
	parts := strings.Split(decomposition, "+")
	if len(parts) == 1 {
		parts = separators.Split(decomposition, -1)
	}

	var components []dataset.Component
	seen := map[string]bool{}
	for _, part := range parts {
		piece := Normalize(part)
		m := englishToken.FindStringSubmatch(piece)
		if m == nil {
			continue
		}

		morpheme := strings.Trim(strings.ToLower(m[1]), "-'")
		switch {
		case morpheme == "":
			continue
		case len(morpheme) == 1 && morpheme != "a":
			continue
		case len(morpheme) > maxMorpheme:
			continue
		case seen[morpheme]:
			continue
		}
		seen[morpheme] = true

		components = append(components, dataset.Component{
			Morpheme: morpheme,
			Hint:     cleanHint(m[2]),
		})
	}
	return components
}

// cleanHint removes English words, brackets and separator punctuation
// from the text following a morpheme.
func cleanHint(raw string) string {
	hint := strings.Trim(raw, hintTrim)
	hint = strings.NewReplacer("→", " ", "+", " ", "＋", " ").Replace(hint)
	hint = englishWord.ReplaceAllString(hint, " ")
	hint = brackets.ReplaceAllString(hint, " ")
	hint = spaces.ReplaceAllString(hint, " ")
	return strings.Trim(hint, hintTrim)
}
