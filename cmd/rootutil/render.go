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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
	"golang.org/x/text/message"
	"golang.org/x/text/width"

	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/study"
)

const (
	// maxRelated is the number of related entries shown for a root.
	maxRelated = 24

	// maxFlashWords is the number of sample words shown on a flashcard.
	maxFlashWords = 8

	// maxQuizWords is the number of sample words shown after an answer.
	maxQuizWords = 4

	// maxSuggestions is the number of roots suggested for an unknown root.
	maxSuggestions = 5
)

// displayWidth returns the number of terminal columns used by s. East
// Asian wide characters use two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func newTable(w io.Writer, headers ...interface{}) table.Table {
	return table.New(headers...).WithWriter(w).WithWidthFunc(displayWidth)
}

// sampleWords returns at most n sample words of the root joined for
// display.
func sampleWords(r *dataset.Root, n int) string {
	words := r.SampleWords
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, ", ")
}

func renderMeta(w io.Writer, p *message.Printer, s *study.State) {
	meta := s.Deck.Meta()
	fmt.Fprintln(w, strings.Join([]string{
		p.Sprintf(i18n.MetaEntries, meta.EntryCount),
		p.Sprintf(i18n.MetaRoots, meta.RootCount),
		p.Sprintf(i18n.MetaMastered, s.Progress.MasteredCount()),
		p.Sprintf(i18n.MetaQuiz, s.Progress.QuizCorrect, s.Progress.QuizTotal),
	}, " | "))
}

func status(p *message.Printer, s *study.State, root string) string {
	if s.Progress.IsMastered(root) {
		return p.Sprintf(i18n.DetailMastered)
	}
	return p.Sprintf(i18n.DetailReview)
}

func renderRoots(w io.Writer, p *message.Printer, s *study.State) {
	if len(s.Filtered) == 0 {
		fmt.Fprintln(w, p.Sprintf(i18n.ListEmpty))
		return
	}

	tbl := newTable(w,
		p.Sprintf(i18n.ListRoot),
		p.Sprintf(i18n.ListGloss),
		p.Sprintf(i18n.ListWords),
		p.Sprintf(i18n.ListStatus),
	)
	for _, r := range s.Filtered {
		gloss := r.Gloss
		if gloss == "" {
			gloss = p.Sprintf(i18n.ListNoGloss)
		}
		tbl.AddRow(r.Root, gloss, r.WordCount, status(p, s, r.Root))
	}
	tbl.Print()
}

func renderDetail(w io.Writer, p *message.Printer, s *study.State) {
	r, ok := s.Deck.Root(s.Selected)
	if !ok {
		fmt.Fprintln(w, p.Sprintf(i18n.DetailNotFound))
		var names []string
		for _, c := range s.Deck.Complete(firstRunes(s.Selected, 2)) {
			names = append(names, c.Root)
			if len(names) == maxSuggestions {
				break
			}
		}
		if len(names) > 0 {
			fmt.Fprintln(w, p.Sprintf(i18n.DetailSuggest, strings.Join(names, ", ")))
		}
		return
	}

	gloss := r.Gloss
	if gloss == "" {
		gloss = p.Sprintf(i18n.DetailGloss)
	}
	fmt.Fprintf(w, "%s  %s\n", r.Root, gloss)
	fmt.Fprintf(w, "%s | %s\n", p.Sprintf(i18n.DetailCount, r.WordCount), status(p, s, r.Root))
	fmt.Fprintln(w)

	related := s.Deck.Related(r.Root)
	if len(related) == 0 {
		fmt.Fprintln(w, p.Sprintf(i18n.DetailNoExamples))
		return
	}
	fmt.Fprintln(w, p.Sprintf(i18n.DetailIntro))
	tbl := newTable(w,
		p.Sprintf(i18n.DetailWord),
		p.Sprintf(i18n.DetailBreakdown),
		p.Sprintf(i18n.DetailMeaning),
	)
	for i, e := range related {
		if i == maxRelated {
			break
		}
		tbl.AddRow(e.Word, e.Decomposition, e.Meaning)
	}
	tbl.Print()
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func renderFlash(w io.Writer, p *message.Printer, s *study.State) {
	pool := s.Flash
	root, ok := pool.Current()
	if !ok {
		fmt.Fprintln(w, p.Sprintf(i18n.FlashEmpty))
		fmt.Fprintln(w, p.Sprintf(i18n.FlashEmptyHint))
		return
	}

	fmt.Fprintln(w, p.Sprintf(i18n.FlashMeta, pool.Position()+1, pool.Len(), s.Progress.MasteredCount()))
	fmt.Fprintf(w, "\n    %s\n\n", root)
	fmt.Fprintln(w, p.Sprintf(i18n.FlashPrompt))

	if pool.Revealed() {
		r, _ := s.Deck.Root(root)
		hint := p.Sprintf(i18n.FlashHintFallback)
		if r != nil && r.Gloss != "" {
			hint = r.Gloss
		}
		fmt.Fprintln(w, p.Sprintf(i18n.FlashHint, hint))
		if r != nil {
			fmt.Fprintln(w, p.Sprintf(i18n.FlashWords, sampleWords(r, maxFlashWords)))
		}
		if related := s.Deck.Related(root); len(related) > 0 {
			fmt.Fprintln(w, p.Sprintf(i18n.FlashBreakdown, related[0].Word, related[0].Decomposition))
		}
	}
	fmt.Fprintln(w, p.Sprintf(i18n.FlashHelp))
}

func renderQuestion(w io.Writer, p *message.Printer, s *study.State) {
	q := s.Quiz.Question
	if q == nil {
		fmt.Fprintln(w, p.Sprintf(i18n.QuizInsufficient))
		return
	}

	fmt.Fprintln(w, p.Sprintf(i18n.QuizQuestion, q.Prompt))
	for i, o := range q.Options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, o)
	}
	fmt.Fprintln(w, p.Sprintf(i18n.QuizHelp))
}

func renderAnswer(w io.Writer, p *message.Printer, s *study.State) {
	q := s.Quiz.Question
	var examples string
	if r, ok := s.Deck.Root(q.CorrectRoot); ok {
		examples = sampleWords(r, maxQuizWords)
	}
	if s.Quiz.Correct {
		fmt.Fprintln(w, p.Sprintf(i18n.QuizCorrect, examples))
	} else {
		fmt.Fprintln(w, p.Sprintf(i18n.QuizWrong, q.CorrectRoot, examples))
	}
	fmt.Fprintln(w, p.Sprintf(i18n.QuizScore, s.Progress.QuizCorrect, s.Progress.QuizTotal))
}
