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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/quiz"
	"github.com/ianlewis/go-wordroots/study"
)

var quizCommand = &cli.Command{
	Name:  "quiz",
	Usage: "answer multiple-choice questions about roots",
	Description: strings.Join([]string{
		"Asks for the root matching a meaning. Answer with the option number",
		"or the root itself. Commands:",
		"  n  next question (also Enter after answering)",
		"  q  quit",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Usage:   "stop after `N` answers (0 for no limit)",
			Aliases: []string{"n"},
		},
	},
	Action: withSession(runQuiz),
}

// resolveChoice returns the root string for an option number or a root.
func resolveChoice(q *quiz.Question, text string) string {
	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return strings.ToLower(text)
}

func runQuiz(c *cli.Context, s *session) error {
	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("%w: --count must not be negative", ErrFlagParse)
	}

	if err := s.dispatch(c, study.SwitchView{View: study.QuizView}); err != nil {
		return err
	}
	st := s.state()
	renderQuestion(s.out, s.printer, st)
	if st.Quiz.Question == nil {
		return nil
	}

	answered := 0
	in := newPrompt(c)
	for in.Scan() {
		text := in.Text()
		switch {
		case text == "q":
			return nil
		case text == "n" || (text == "" && st.Quiz.Answered):
			if err := s.dispatch(c, study.QuizNext{}); err != nil {
				return err
			}
			fmt.Fprintln(s.out)
			renderQuestion(s.out, s.printer, st)
			continue
		case text == "":
			continue
		case st.Quiz.Answered:
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.QuizAnswered))
			continue
		}

		err := s.dispatch(c, study.QuizAnswer{Root: resolveChoice(st.Quiz.Question, text)})
		if errors.Is(err, study.ErrInvalidChoice) {
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.UnknownCommand, text))
			continue
		}
		if err != nil {
			return err
		}
		renderAnswer(s.out, s.printer, st)

		answered++
		if count > 0 && answered >= count {
			return nil
		}
	}
	return in.Err()
}
