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

// Package study implements the state of an interactive study session.
//
// All session state is held in a single [State] owned by a [Controller].
// User actions are expressed as [Intent] values and applied one at a time
// by [Controller.Dispatch]; views are rendered from the resulting State.
package study

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-wordroots"
	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/flash"
	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/progress"
	"github.com/ianlewis/go-wordroots/quiz"
	"github.com/ianlewis/go-wordroots/sampler"
)

var (
	// ErrInvalidChoice indicates a quiz answer that is not one of the
	// question's options.
	ErrInvalidChoice = errors.New("study: invalid choice")

	// ErrUnknownIntent indicates an intent the controller cannot apply.
	ErrUnknownIntent = errors.New("study: unknown intent")
)

// QuizState is the state of the quiz view.
type QuizState struct {
	// Question is the current question. It is nil when there is not enough
	// data to build a question.
	Question *quiz.Question

	// Insufficient is true when the last question could not be generated.
	Insufficient bool

	// Answered is true once the current question has been answered.
	Answered bool

	// Choice is the root string chosen for the current question.
	Choice string

	// Correct reports whether Choice was correct.
	Correct bool
}

// State is the full state of a study session.
type State struct {
	Deck     *wordroots.Deck
	Progress *progress.Progress
	Language language.Tag
	View     View

	// Query is the current search query and Filtered the roots matching it.
	Query    string
	Filtered []*dataset.Root

	// Selected is the root shown in the detail view.
	Selected string

	Flash *flash.Pool
	Quiz  QuizState
}

// Options are options for a Controller.
type Options struct {
	// Source is the random source for sampling and shuffling. A nil Source
	// is seeded from crypto/rand.
	Source sampler.Source

	// Logger receives diagnostic messages. A nil Logger discards them.
	Logger *zap.Logger
}

// Controller owns a study session's State and applies intents to it.
type Controller struct {
	state  *State
	store  *progress.Store
	src    sampler.Source
	logger *zap.Logger
}

// New starts a study session over the deck. Progress and the language
// preference are loaded from the store.
func New(ctx context.Context, deck *wordroots.Deck, store *progress.Store, options *Options) (*Controller, error) {
	if options == nil {
		options = &Options{}
	}

	c := &Controller{
		store:  store,
		src:    options.Source,
		logger: options.Logger,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.src == nil {
		src, err := sampler.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("seeding random source: %w", err)
		}
		c.src = src
	}

	c.state = &State{
		Deck:     deck,
		Progress: store.Load(ctx),
		Language: i18n.Match(store.Language(ctx)),
		Filtered: deck.Search(""),
	}
	if roots := deck.Roots(); len(roots) > 0 {
		c.state.Selected = roots[0].Root
	}
	c.state.Flash = flash.NewPool(c.src, deck.StudyPool())
	c.nextQuestion()

	return c, nil
}

// State returns the session state. It must not be modified directly.
func (c *Controller) State() *State {
	return c.state
}

// Dispatch applies the intent to the state. Errors saving progress are
// returned after the state has been updated.
func (c *Controller) Dispatch(ctx context.Context, in Intent) error {
	s := c.state
	c.logger.Debug("dispatch", zap.String("intent", fmt.Sprintf("%T", in)))

	switch in := in.(type) {
	case Search:
		s.Query = in.Query
		s.Filtered = s.Deck.Search(in.Query)
	case Select:
		s.Selected = in.Root
	case RandomRoot:
		r, err := sampler.Sample(c.src, s.Filtered)
		if err != nil {
			// Nothing to choose from.
			return nil
		}
		s.Selected = r.Root
	case SwitchView:
		s.View = in.View
	case FlashReveal:
		s.Flash.Reveal()
	case FlashAgain:
		s.Flash.Next()
	case FlashKnow:
		return s.Flash.Know(ctx, c.store, s.Progress)
	case FlashNext:
		s.Flash.Jump(c.src)
	case QuizAnswer:
		return c.answer(ctx, in.Root)
	case QuizNext:
		c.nextQuestion()
	case SetLanguage:
		s.Language = i18n.Match(in.Tag)
		return c.store.SetLanguage(ctx, s.Language)
	case ResetProgress:
		return c.store.Reset(ctx, s.Progress)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownIntent, in)
	}
	return nil
}

func (c *Controller) nextQuestion() {
	q, err := quiz.Generate(c.src, c.state.Deck.Glossed())
	c.state.Quiz = QuizState{
		Question:     q,
		Insufficient: errors.Is(err, quiz.ErrInsufficientData),
	}
	if err != nil {
		c.logger.Debug("generating question", zap.Error(err))
	}
}

func (c *Controller) answer(ctx context.Context, choice string) error {
	qs := &c.state.Quiz
	if qs.Question == nil || qs.Answered {
		return nil
	}
	if !slices.Contains(qs.Question.Options, choice) {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}

	qs.Answered = true
	qs.Choice = choice
	qs.Correct = qs.Question.Check(choice)
	return c.store.RecordAnswer(ctx, c.state.Progress, qs.Correct)
}
