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
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordroots/builder"
	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/internal/i18n"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "build a dataset from extracted dictionary text",
	ArgsUsage: "TEXT",
	Description: "Reads text extracted from a root and affix dictionary, for example\n" +
		"with pdftotext, and writes a dataset. Pages are separated by form feeds.\n" +
		"A TEXT of - reads standard input.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Usage:    "write the dataset to `PATH`",
			Aliases:  []string{"o"},
			Required: true,
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "record `NAME` as the source document (default: TEXT base name)",
		},
		&cli.BoolFlag{
			Name:               "dictzip",
			Usage:              "compress the dataset with dictzip",
			DisableDefaultText: true,
		},
	},
	Action: runBuild,
}

func runBuild(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
	}
	lang, err := flagLanguage(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	input := c.Args().First()
	source := c.String("source")

	var r io.Reader = c.App.Reader
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRootutil, err)
		}
		defer f.Close()
		r = f
		if source == "" {
			source = filepath.Base(input)
		}
	}

	doc, err := builder.Read(r, &builder.Options{
		Source: source,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootutil, err)
	}

	output := c.String("output")
	if err := dataset.Write(output, doc, c.Bool("dictzip")); err != nil {
		return fmt.Errorf("%w: %w", ErrRootutil, err)
	}

	tag := i18n.Default
	if lang != nil {
		tag = *lang
	}
	fmt.Fprintln(c.App.Writer, i18n.Printer(tag).Sprintf(i18n.BuildDone, output, doc.Meta.EntryCount, doc.Meta.RootCount))
	return nil
}
