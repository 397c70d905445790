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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/study"
)

var langCommand = &cli.Command{
	Name:      "lang",
	Usage:     "print or save the display language",
	ArgsUsage: "[LANG]",
	Action: withSession(func(c *cli.Context, s *session) error {
		if c.NArg() == 0 {
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.LangCurrent, s.state().Language))
			return nil
		}
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		tag, err := i18n.Parse(c.Args().First())
		if err != nil {
			fmt.Fprintln(s.errOut, s.printer.Sprintf(i18n.LangUnsupported, c.Args().First()))
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
		if err := s.dispatch(c, study.SetLanguage{Tag: tag}); err != nil {
			return err
		}

		// The new language applies to this message unless --lang was given.
		s.setPrinter(s.state().Language)
		fmt.Fprintln(s.out, s.printer.Sprintf(i18n.LangSet, s.state().Language))
		return nil
	}),
}
