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

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "show a root and its example words",
	ArgsUsage: "ROOT | --random [QUERY]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "random",
			Usage:              "show a random root matching QUERY",
			Aliases:            []string{"r"},
			DisableDefaultText: true,
		},
	},
	Action: withSession(func(c *cli.Context, s *session) error {
		arg := strings.Join(c.Args().Slice(), " ")

		var intents []study.Intent
		switch {
		case c.Bool("random"):
			intents = append(intents, study.Search{Query: arg}, study.RandomRoot{})
		case arg != "":
			intents = append(intents, study.Select{Root: strings.ToLower(arg)})
		default:
			return fmt.Errorf("%w: ROOT or --random is required", ErrFlagParse)
		}

		for _, in := range intents {
			if err := s.dispatch(c, in); err != nil {
				return err
			}
		}

		st := s.state()
		if c.Bool("random") && len(st.Filtered) == 0 {
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.ListEmpty))
			return nil
		}
		renderDetail(s.out, s.printer, st)
		return nil
	}),
}
