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

// Package quiz implements multiple-choice questions that ask for the root
// matching a gloss.
package quiz

import (
	"errors"

	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/sampler"
)

// NumOptions is the number of options offered by a question.
const NumOptions = 4

// ErrInsufficientData indicates that there are fewer than NumOptions
// distinct glossed roots to build a question from.
var ErrInsufficientData = errors.New("quiz: insufficient data")

// Question is a multiple-choice question.
type Question struct {
	// Prompt is the gloss of the correct root.
	Prompt string

	// CorrectRoot is the root string of the correct answer.
	CorrectRoot string

	// Options are the root strings offered, including CorrectRoot exactly
	// once, in display order.
	Options []string
}

// Check reports whether the chosen root string is the correct answer.
func (q *Question) Check(choice string) bool {
	return choice == q.CorrectRoot
}

// Generate builds a question from the candidate roots. Roots without a
// gloss are ignored. It returns ErrInsufficientData when fewer than
// NumOptions distinct roots remain.
func Generate(src sampler.Source, candidates []*dataset.Root) (*Question, error) {
	var glossed []*dataset.Root
	seen := map[string]bool{}
	for _, r := range candidates {
		if r.Gloss == "" || seen[r.Root] {
			continue
		}
		seen[r.Root] = true
		glossed = append(glossed, r)
	}
	if len(glossed) < NumOptions {
		return nil, ErrInsufficientData
	}

	correct, err := sampler.Sample(src, glossed)
	if err != nil {
		return nil, err
	}

	others := make([]string, 0, len(glossed)-1)
	for _, r := range glossed {
		if r.Root != correct.Root {
			others = append(others, r.Root)
		}
	}
	distractors := sampler.Shuffle(src, others)[:NumOptions-1]

	options := append([]string{correct.Root}, distractors...)
	return &Question{
		Prompt:      correct.Gloss,
		CorrectRoot: correct.Root,
		Options:     sampler.Shuffle(src, options),
	}, nil
}
