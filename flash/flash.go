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

// Package flash implements a flashcard study pool.
package flash

import (
	"context"

	"github.com/ianlewis/go-wordroots/progress"
	"github.com/ianlewis/go-wordroots/sampler"
)

// Pool is a shuffled sequence of roots with a cursor. The answer for the
// current card is hidden until revealed and hidden again on every move.
type Pool struct {
	roots    []string
	index    int
	revealed bool
}

// NewPool returns a pool of the roots in a random order. roots is not
// modified.
func NewPool(src sampler.Source, roots []string) *Pool {
	return &Pool{
		roots: sampler.Shuffle(src, roots),
	}
}

// Len returns the number of cards in the pool.
func (p *Pool) Len() int {
	return len(p.roots)
}

// Position returns the cursor index.
func (p *Pool) Position() int {
	return p.index
}

// Roots returns the pool's roots in study order.
func (p *Pool) Roots() []string {
	return p.roots
}

// Current returns the root under the cursor. It returns false if the pool
// is empty.
func (p *Pool) Current() (string, bool) {
	if len(p.roots) == 0 {
		return "", false
	}
	return p.roots[p.index], true
}

// Revealed reports whether the current card's answer is shown.
func (p *Pool) Revealed() bool {
	return p.revealed
}

// Reveal shows the current card's answer.
func (p *Pool) Reveal() {
	if len(p.roots) == 0 {
		return
	}
	p.revealed = true
}

// Next moves the cursor to the next card, wrapping to the first card after
// the last.
func (p *Pool) Next() {
	if len(p.roots) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.roots)
	p.revealed = false
}

// Jump moves the cursor to a uniformly chosen card.
func (p *Pool) Jump(src sampler.Source) {
	i, err := sampler.Index(src, len(p.roots))
	if err != nil {
		return
	}
	p.index = i
	p.revealed = false
}

// Know marks the current root as mastered, saves the progress and moves to
// the next card. The cursor moves even if saving fails.
func (p *Pool) Know(ctx context.Context, store *progress.Store, prog *progress.Progress) error {
	root, ok := p.Current()
	if !ok {
		return nil
	}
	err := store.MarkMastered(ctx, prog, root)
	p.Next()
	return err
}
