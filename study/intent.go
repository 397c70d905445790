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

import "golang.org/x/text/language"

// Intent is a user action applied to the State by [Controller.Dispatch].
type Intent interface {
	intent()
}

// View is one of the study views.
type View int

const (
	// MapView browses and searches the roots.
	MapView View = iota

	// FlashView studies roots with flashcards.
	FlashView

	// QuizView tests roots with multiple-choice questions.
	QuizView
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case MapView:
		return "map"
	case FlashView:
		return "flash"
	case QuizView:
		return "quiz"
	default:
		return "unknown"
	}
}

type (
	// Search filters the root list.
	Search struct{ Query string }

	// Select selects a root for the detail view.
	Select struct{ Root string }

	// RandomRoot selects a random root from the filtered list.
	RandomRoot struct{}

	// SwitchView activates a view.
	SwitchView struct{ View View }

	// FlashReveal shows the current card's answer.
	FlashReveal struct{}

	// FlashAgain moves to the next card without marking the current one.
	FlashAgain struct{}

	// FlashKnow marks the current card's root as mastered and moves to
	// the next card.
	FlashKnow struct{}

	// FlashNext jumps to a random card.
	FlashNext struct{}

	// QuizAnswer answers the current question with a root string.
	QuizAnswer struct{ Root string }

	// QuizNext generates a new question.
	QuizNext struct{}

	// SetLanguage changes and saves the display language.
	SetLanguage struct{ Tag language.Tag }

	// ResetProgress clears the saved progress.
	ResetProgress struct{}
)

func (Search) intent()        {}
func (Select) intent()        {}
func (RandomRoot) intent()    {}
func (SwitchView) intent()    {}
func (FlashReveal) intent()   {}
func (FlashAgain) intent()    {}
func (FlashKnow) intent()     {}
func (FlashNext) intent()     {}
func (QuizAnswer) intent()    {}
func (QuizNext) intent()      {}
func (SetLanguage) intent()   {}
func (ResetProgress) intent() {}
