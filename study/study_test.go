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

package study

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-wordroots"
	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/internal/testutil"
	"github.com/ianlewis/go-wordroots/progress"
	"github.com/ianlewis/go-wordroots/storage"
)

var errFailing = errors.New("failing")

// failingKV is a storage.KV whose writes fail.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", storage.ErrNotFound }
func (failingKV) Set(context.Context, string, string) error    { return errFailing }
func (failingKV) Close() error                                 { return nil }

type bogus struct{}

func (bogus) intent() {}

func newController(t *testing.T, doc *dataset.Document, kv storage.KV, src *testutil.Sequence) *Controller {
	t.Helper()

	deck, err := wordroots.New(doc)
	if err != nil {
		t.Fatalf("wordroots.New: %v", err)
	}
	if src == nil {
		src = &testutil.Sequence{}
	}
	c, err := New(context.Background(), deck, progress.NewStore(kv, nil), &Options{Source: src})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func roots(rs []*dataset.Root) []string {
	var names []string
	for _, r := range rs {
		names = append(names, r.Root)
	}
	return names
}

// TestNew tests the initial state of a session.
func TestNew(t *testing.T) {
	t.Parallel()

	c := newController(t, testutil.ExampleDocument(), storage.NewMemory(), nil)
	s := c.State()

	if got, want := s.View, MapView; got != want {
		t.Errorf("View: got %v, want %v", got, want)
	}
	if got, want := s.Selected, "bio"; got != want {
		t.Errorf("Selected: got %q, want %q", got, want)
	}
	if got, want := s.Language, i18n.Chinese; got != want {
		t.Errorf("Language: got %v, want %v", got, want)
	}
	if diff := cmp.Diff([]string{"bio", "tele", "phon", "graph"}, roots(s.Filtered)); diff != "" {
		t.Errorf("Filtered (-want, +got):\n%s", diff)
	}
	if got, want := s.Flash.Len(), 4; got != want {
		t.Errorf("Flash.Len: got %d, want %d", got, want)
	}
	if s.Quiz.Question == nil {
		t.Fatalf("Quiz.Question: got nil")
	}
	if got, want := s.Quiz.Question.CorrectRoot, "bio"; got != want {
		t.Errorf("CorrectRoot: got %q, want %q", got, want)
	}
	if got, want := s.Quiz.Question.Prompt, "life"; got != want {
		t.Errorf("Prompt: got %q, want %q", got, want)
	}
}

// TestNew_storedState tests that a session starts from the stored progress
// and language.
func TestNew_storedState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemory()
	store := progress.NewStore(kv, nil)
	if err := store.MarkMastered(ctx, progress.New(), "tele"); err != nil {
		t.Fatalf("MarkMastered: %v", err)
	}
	if err := store.SetLanguage(ctx, language.English); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	s := newController(t, testutil.ExampleDocument(), kv, nil).State()
	if !s.Progress.IsMastered("tele") {
		t.Errorf("IsMastered(%q): got false", "tele")
	}
	if got, want := s.Language, i18n.English; got != want {
		t.Errorf("Language: got %v, want %v", got, want)
	}
}

// TestNew_insufficient tests a session without enough glossed roots for a
// quiz.
func TestNew_insufficient(t *testing.T) {
	t.Parallel()

	doc := testutil.ExampleDocument()
	doc.Roots[0].Gloss = ""

	ctrl := newController(t, doc, storage.NewMemory(), nil)
	s := ctrl.State()
	if s.Quiz.Question != nil {
		t.Errorf("Quiz.Question: got %v, want nil", s.Quiz.Question)
	}
	if !s.Quiz.Insufficient {
		t.Errorf("Quiz.Insufficient: got false")
	}

	// Answers are ignored without a question.
	if err := ctrl.Dispatch(context.Background(), QuizAnswer{Root: "bio"}); err != nil {
		t.Errorf("Dispatch: %v", err)
	}
	if got := s.Progress.QuizTotal; got != 0 {
		t.Errorf("QuizTotal: got %d, want 0", got)
	}
}

func newSession(t *testing.T, doc *dataset.Document) *Controller {
	t.Helper()
	return newController(t, doc, storage.NewMemory(), nil)
}

// TestNew_empty tests a session over an empty dataset.
func TestNew_empty(t *testing.T) {
	t.Parallel()

	ctrl := newSession(t, &dataset.Document{})
	s := ctrl.State()
	if s.Selected != "" {
		t.Errorf("Selected: got %q, want empty", s.Selected)
	}
	if got := s.Flash.Len(); got != 0 {
		t.Errorf("Flash.Len: got %d, want 0", got)
	}

	ctx := context.Background()
	for _, in := range []Intent{RandomRoot{}, FlashReveal{}, FlashAgain{}, FlashKnow{}, FlashNext{}, QuizNext{}} {
		if err := ctrl.Dispatch(ctx, in); err != nil {
			t.Errorf("Dispatch(%T): %v", in, err)
		}
	}
	if got := s.Progress.MasteredCount(); got != 0 {
		t.Errorf("MasteredCount: got %d, want 0", got)
	}
}

// TestDispatch_Search tests filtering the root list.
func TestDispatch_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "empty",
			query:    "",
			expected: []string{"bio", "tele", "phon", "graph"},
		},
		{
			name:     "root",
			query:    "TELE",
			expected: []string{"tele"},
		},
		{
			name:     "gloss",
			query:    "sound",
			expected: []string{"phon"},
		},
		{
			name:     "related meaning",
			query:    "story",
			expected: []string{"bio", "graph"},
		},
		{
			name:  "no match",
			query: "zzz",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := newSession(t, testutil.ExampleDocument())
			if err := ctrl.Dispatch(context.Background(), Search{Query: tc.query}); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			s := ctrl.State()
			if got, want := s.Query, tc.query; got != want {
				t.Errorf("Query: got %q, want %q", got, want)
			}
			if diff := cmp.Diff(tc.expected, roots(s.Filtered)); diff != "" {
				t.Errorf("Filtered (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestDispatch_select tests selecting roots.
func TestDispatch_select(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	// The flash pool and the first question consume nine values.
	src := &testutil.Sequence{Values: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 2}}
	ctrl := newController(t, testutil.ExampleDocument(), storage.NewMemory(), src)
	s := ctrl.State()

	if err := ctrl.Dispatch(ctx, Select{Root: "graph"}); err != nil {
		t.Fatalf("Dispatch(Select): %v", err)
	}
	if got, want := s.Selected, "graph"; got != want {
		t.Errorf("Selected: got %q, want %q", got, want)
	}

	if err := ctrl.Dispatch(ctx, RandomRoot{}); err != nil {
		t.Fatalf("Dispatch(RandomRoot): %v", err)
	}
	if got, want := s.Selected, "phon"; got != want {
		t.Errorf("Selected: got %q, want %q", got, want)
	}

	// RandomRoot keeps the selection when nothing matches.
	if err := ctrl.Dispatch(ctx, Search{Query: "zzz"}); err != nil {
		t.Fatalf("Dispatch(Search): %v", err)
	}
	if err := ctrl.Dispatch(ctx, RandomRoot{}); err != nil {
		t.Fatalf("Dispatch(RandomRoot): %v", err)
	}
	if got, want := s.Selected, "phon"; got != want {
		t.Errorf("Selected: got %q, want %q", got, want)
	}
}

// TestDispatch_SwitchView tests switching views.
func TestDispatch_SwitchView(t *testing.T) {
	t.Parallel()

	ctrl := newSession(t, testutil.ExampleDocument())
	for _, v := range []View{FlashView, QuizView, MapView} {
		if err := ctrl.Dispatch(context.Background(), SwitchView{View: v}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if got := ctrl.State().View; got != v {
			t.Errorf("View: got %v, want %v", got, v)
		}
	}
}

// TestDispatch_flash tests the flashcard intents.
func TestDispatch_flash(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemory()
	ctrl := newController(t, testutil.ExampleDocument(), kv, nil)
	s := ctrl.State()

	if err := ctrl.Dispatch(ctx, FlashReveal{}); err != nil {
		t.Fatalf("Dispatch(FlashReveal): %v", err)
	}
	if !s.Flash.Revealed() {
		t.Errorf("Revealed: got false")
	}

	if err := ctrl.Dispatch(ctx, FlashAgain{}); err != nil {
		t.Fatalf("Dispatch(FlashAgain): %v", err)
	}
	if s.Flash.Revealed() {
		t.Errorf("Revealed: got true after FlashAgain")
	}
	if got, want := s.Flash.Position(), 1; got != want {
		t.Errorf("Position: got %d, want %d", got, want)
	}
	if got := s.Progress.MasteredCount(); got != 0 {
		t.Errorf("MasteredCount: got %d, want 0", got)
	}

	current, _ := s.Flash.Current()
	if err := ctrl.Dispatch(ctx, FlashKnow{}); err != nil {
		t.Fatalf("Dispatch(FlashKnow): %v", err)
	}
	if got, want := s.Flash.Position(), 2; got != want {
		t.Errorf("Position: got %d, want %d", got, want)
	}
	if !progress.NewStore(kv, nil).Load(ctx).IsMastered(current) {
		t.Errorf("stored IsMastered(%q): got false", current)
	}

	// The zero source jumps to the first card.
	if err := ctrl.Dispatch(ctx, FlashNext{}); err != nil {
		t.Fatalf("Dispatch(FlashNext): %v", err)
	}
	if got, want := s.Flash.Position(), 0; got != want {
		t.Errorf("Position: got %d, want %d", got, want)
	}
}

// TestDispatch_FlashKnow_saveError tests that the session continues when
// progress cannot be saved.
func TestDispatch_FlashKnow_saveError(t *testing.T) {
	t.Parallel()

	ctrl := newController(t, testutil.ExampleDocument(), failingKV{}, nil)
	s := ctrl.State()
	current, _ := s.Flash.Current()

	err := ctrl.Dispatch(context.Background(), FlashKnow{})
	if !errors.Is(err, errFailing) {
		t.Errorf("Dispatch: got %v, want %v", err, errFailing)
	}
	if !s.Progress.IsMastered(current) {
		t.Errorf("IsMastered(%q): got false", current)
	}
	if got, want := s.Flash.Position(), 1; got != want {
		t.Errorf("Position: got %d, want %d", got, want)
	}
}

// TestDispatch_quiz tests answering questions.
func TestDispatch_quiz(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemory()
	ctrl := newController(t, testutil.ExampleDocument(), kv, nil)
	s := ctrl.State()

	err := ctrl.Dispatch(ctx, QuizAnswer{Root: "nope"})
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("Dispatch(invalid): got %v, want %v", err, ErrInvalidChoice)
	}
	if s.Quiz.Answered {
		t.Errorf("Answered: got true after invalid choice")
	}

	if err := ctrl.Dispatch(ctx, QuizAnswer{Root: "tele"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if diff := cmp.Diff(QuizState{
		Question: s.Quiz.Question,
		Answered: true,
		Choice:   "tele",
		Correct:  false,
	}, s.Quiz); diff != "" {
		t.Errorf("Quiz (-want, +got):\n%s", diff)
	}

	// A question is only answered once.
	if err := ctrl.Dispatch(ctx, QuizAnswer{Root: "bio"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got, want := s.Quiz.Choice, "tele"; got != want {
		t.Errorf("Choice: got %q, want %q", got, want)
	}

	if err := ctrl.Dispatch(ctx, QuizNext{}); err != nil {
		t.Fatalf("Dispatch(QuizNext): %v", err)
	}
	if s.Quiz.Answered {
		t.Errorf("Answered: got true after QuizNext")
	}
	if err := ctrl.Dispatch(ctx, QuizAnswer{Root: "bio"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !s.Quiz.Correct {
		t.Errorf("Correct: got false")
	}

	got := progress.NewStore(kv, nil).Load(ctx)
	if got.QuizCorrect != 1 || got.QuizTotal != 2 {
		t.Errorf("stored score: got %d/%d, want 1/2", got.QuizCorrect, got.QuizTotal)
	}
}

// TestDispatch_SetLanguage tests changing the display language.
func TestDispatch_SetLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tag      language.Tag
		expected language.Tag
	}{
		{
			name:     "english",
			tag:      language.English,
			expected: i18n.English,
		},
		{
			name:     "chinese",
			tag:      language.SimplifiedChinese,
			expected: i18n.Chinese,
		},
		{
			name:     "unsupported",
			tag:      language.Japanese,
			expected: i18n.Default,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			kv := storage.NewMemory()
			ctrl := newController(t, testutil.ExampleDocument(), kv, nil)
			if err := ctrl.Dispatch(ctx, SetLanguage{Tag: tc.tag}); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if got := ctrl.State().Language; got != tc.expected {
				t.Errorf("Language: got %v, want %v", got, tc.expected)
			}
			if got := progress.NewStore(kv, nil).Language(ctx); got != tc.expected {
				t.Errorf("stored Language: got %v, want %v", got, tc.expected)
			}
		})
	}
}

// TestDispatch_ResetProgress tests clearing progress.
func TestDispatch_ResetProgress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemory()
	ctrl := newController(t, testutil.ExampleDocument(), kv, nil)
	s := ctrl.State()

	for _, in := range []Intent{FlashKnow{}, QuizAnswer{Root: "bio"}, ResetProgress{}} {
		if err := ctrl.Dispatch(ctx, in); err != nil {
			t.Fatalf("Dispatch(%T): %v", in, err)
		}
	}

	if diff := cmp.Diff(progress.New(), s.Progress); diff != "" {
		t.Errorf("Progress (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(progress.New(), progress.NewStore(kv, nil).Load(ctx)); diff != "" {
		t.Errorf("stored Progress (-want, +got):\n%s", diff)
	}
}

// TestDispatch_unknown tests an intent the controller does not handle.
func TestDispatch_unknown(t *testing.T) {
	t.Parallel()

	err := newSession(t, testutil.ExampleDocument()).Dispatch(context.Background(), bogus{})
	if !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("Dispatch: got %v, want %v", err, ErrUnknownIntent)
	}
}
