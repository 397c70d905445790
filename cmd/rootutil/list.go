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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordroots/study"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "list roots matching a query",
	ArgsUsage: "[QUERY]",
	Action: withSession(func(c *cli.Context, s *session) error {
		query := strings.Join(c.Args().Slice(), " ")
		if err := s.dispatch(c, study.Search{Query: query}); err != nil {
			return err
		}
		renderRoots(s.out, s.printer, s.state())
		return nil
	}),
}
