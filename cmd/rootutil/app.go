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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeDataError is the exit code when the dataset cannot be loaded.
	ExitCodeDataError
)

const (
	// datasetName is the base name of the dataset file.
	datasetName = "roots_affixes"

	// stateFile is the name of the default progress store.
	stateFile = "progress.json"
)

// ErrRootutil is a parent error for all command errors.
var ErrRootutil = errors.New("rootutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrRootutil)

// ErrData indicates that the dataset could not be loaded.
var ErrData = fmt.Errorf("%w: loading dataset", ErrRootutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which shows help for the command instead of the app.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrData):
		return ExitCodeDataError
	default:
		return ExitCodeUnknownError
	}
}

func newRootutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Study English word roots and affixes.",
		Description: strings.Join([]string{
			"Word root and affix study tool written in Go.",
			"http://github.com/ianlewis/go-wordroots",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "read the dataset from `PATH`",
				Aliases: []string{"d"},
				EnvVars: []string{"ROOTUTIL_DATA"},
			},
			&cli.StringFlag{
				Name:    "state",
				Usage:   "store study progress in `PATH` (a .db file is a SQLite database)",
				EnvVars: []string{"ROOTUTIL_STATE"},
				Value:   stateLocation(),
			},
			&cli.BoolFlag{
				Name:               "ephemeral",
				Usage:              "keep study progress in memory only",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "display messages in `LANG` (zh-CN or en-US)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "make random choices from `SEED`",
			},
			&cli.BoolFlag{
				Name:               "html",
				Usage:              "dataset text contains HTML markup",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "write debug logs to stderr",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			statsCommand,
			listCommand,
			showCommand,
			flashCommand,
			quizCommand,
			langCommand,
			resetCommand,
			buildCommand,
			versionCommand,
		},
	}
}
