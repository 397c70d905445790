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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/study"
)

var flashCommand = &cli.Command{
	Name:  "flash",
	Usage: "study roots with flashcards",
	Description: strings.Join([]string{
		"Shows one root at a time. Commands:",
		"  r  reveal the answer (also Enter)",
		"  a  move on without marking the root",
		"  k  mark the root as mastered",
		"  n  jump to a random card",
		"  q  quit",
	}, "\n"),
	Action: withSession(runFlash),
}

func runFlash(c *cli.Context, s *session) error {
	if err := s.dispatch(c, study.SwitchView{View: study.FlashView}); err != nil {
		return err
	}
	st := s.state()
	renderFlash(s.out, s.printer, st)
	if st.Flash.Len() == 0 {
		return nil
	}

	in := newPrompt(c)
	for in.Scan() {
		var intent study.Intent
		switch cmd := strings.ToLower(in.Text()); cmd {
		case "r", "":
			intent = study.FlashReveal{}
		case "a":
			intent = study.FlashAgain{}
		case "k":
			intent = study.FlashKnow{}
		case "n":
			intent = study.FlashNext{}
		case "q":
			return nil
		default:
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.UnknownCommand, cmd))
			continue
		}

		if err := s.dispatch(c, intent); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
		renderFlash(s.out, s.printer, st)
	}
	return in.Err()
}
