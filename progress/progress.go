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

// Package progress implements the persisted study progress record.
//
// Progress is stored as a single JSON value under a fixed key of a
// [storage.KV]. The record is read once at startup and written in full
// after every change.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ianlewis/go-wordroots/storage"
)

// Key is the storage key of the progress record.
const Key = "cigen-root-progress-v1"

// Progress is a user's study progress.
type Progress struct {
	// Mastered holds the roots the user has marked as known.
	Mastered map[string]bool `json:"mastered"`

	// QuizCorrect is the number of correctly answered quiz questions. It is
	// never greater than QuizTotal.
	QuizCorrect int `json:"quizCorrect"`

	// QuizTotal is the number of answered quiz questions.
	QuizTotal int `json:"quizTotal"`
}

// New returns an empty progress record.
func New() *Progress {
	return &Progress{
		Mastered: map[string]bool{},
	}
}

// MasteredCount returns the number of roots marked as mastered.
func (p *Progress) MasteredCount() int {
	n := 0
	for _, ok := range p.Mastered {
		if ok {
			n++
		}
	}
	return n
}

// IsMastered reports whether the root is marked as mastered.
func (p *Progress) IsMastered(root string) bool {
	return p.Mastered[root]
}

// Accuracy returns the ratio of correct quiz answers, or 0 if no question
// has been answered.
func (p *Progress) Accuracy() float64 {
	if p.QuizTotal == 0 {
		return 0
	}
	return float64(p.QuizCorrect) / float64(p.QuizTotal)
}

// normalize repairs records that violate the counter invariants.
func (p *Progress) normalize() {
	if p.Mastered == nil {
		p.Mastered = map[string]bool{}
	}
	p.QuizTotal = max(p.QuizTotal, 0)
	p.QuizCorrect = min(max(p.QuizCorrect, 0), p.QuizTotal)
}

// Options are options for a Store.
type Options struct {
	// Logger receives diagnostic messages. A nil Logger discards them.
	Logger *zap.Logger
}

// Store reads and writes progress to a key-value store.
type Store struct {
	kv     storage.KV
	logger *zap.Logger
}

// NewStore returns a Store that persists progress to kv.
func NewStore(kv storage.KV, options *Options) *Store {
	s := &Store{
		kv:     kv,
		logger: zap.NewNop(),
	}
	if options != nil && options.Logger != nil {
		s.logger = options.Logger
	}
	return s
}

// Load reads the stored progress. A missing, unreadable or malformed record
// yields an empty record; Load never fails.
func (s *Store) Load(ctx context.Context) *Progress {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("reading progress", zap.Error(err))
		}
		return New()
	}

	var p Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Debug("decoding progress", zap.Error(err))
		return New()
	}
	p.normalize()
	return &p
}

// Save writes the full progress record.
func (s *Store) Save(ctx context.Context, p *Progress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(b)); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	s.logger.Debug("saved progress",
		zap.Int("mastered", p.MasteredCount()),
		zap.Int("quizCorrect", p.QuizCorrect),
		zap.Int("quizTotal", p.QuizTotal),
	)
	return nil
}

// MarkMastered marks the root as mastered and saves the record.
func (s *Store) MarkMastered(ctx context.Context, p *Progress, root string) error {
	if p.Mastered == nil {
		p.Mastered = map[string]bool{}
	}
	p.Mastered[root] = true
	return s.Save(ctx, p)
}

// RecordAnswer counts a quiz answer and saves the record.
func (s *Store) RecordAnswer(ctx context.Context, p *Progress, correct bool) error {
	p.QuizTotal++
	if correct {
		p.QuizCorrect++
	}
	return s.Save(ctx, p)
}

// Reset clears the progress record in place and saves it.
func (s *Store) Reset(ctx context.Context, p *Progress) error {
	*p = *New()
	return s.Save(ctx, p)
}
