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
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ianlewis/go-wordroots"
	"github.com/ianlewis/go-wordroots/dataset"
	"github.com/ianlewis/go-wordroots/internal/i18n"
	"github.com/ianlewis/go-wordroots/progress"
	"github.com/ianlewis/go-wordroots/sampler"
	"github.com/ianlewis/go-wordroots/storage"
	"github.com/ianlewis/go-wordroots/storage/sqlite"
	"github.com/ianlewis/go-wordroots/study"
)

// session is the study session of a command.
type session struct {
	ctrl    *study.Controller
	kv      storage.KV
	printer *message.Printer
	logger  *zap.Logger

	// lang is set if the display language was given with --lang.
	lang *language.Tag

	out    io.Writer
	errOut io.Writer
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if !c.Bool("debug") {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("%w: creating logger: %w", ErrRootutil, err)
	}
	return logger, nil
}

// flagLanguage returns the language given with --lang, or nil.
func flagLanguage(c *cli.Context) (*language.Tag, error) {
	if !c.IsSet("lang") {
		return nil, nil
	}
	tag, err := i18n.Parse(c.String("lang"))
	if err != nil {
		return nil, fmt.Errorf("%w: --lang: %w", ErrFlagParse, err)
	}
	return &tag, nil
}

// openKV opens the progress store at path. Database paths are opened with
// SQLite and other paths as JSON files.
func openKV(path string) (storage.KV, error) {
	if storage.IsDatabase(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	f, err := storage.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// dataPath returns the dataset path given with --data or the first dataset
// found in the default locations.
func dataPath(c *cli.Context) (string, error) {
	if path := c.String("data"); path != "" {
		return path, nil
	}
	return dataset.Find(dataLocations(), datasetName)
}

func openSession(c *cli.Context) (*session, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, err
	}
	lang, err := flagLanguage(c)
	if err != nil {
		return nil, err
	}

	var kv storage.KV = storage.NewMemory()
	if !c.Bool("ephemeral") {
		kv, err = openKV(c.String("state"))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening progress store: %w", ErrRootutil, err)
	}
	store := progress.NewStore(kv, &progress.Options{Logger: logger})

	s := &session{
		kv:     kv,
		logger: logger,
		lang:   lang,
		out:    c.App.Writer,
		errOut: c.App.ErrWriter,
	}
	s.setPrinter(store.Language(c.Context))

	deck, err := openDeck(c)
	if err != nil {
		fmt.Fprintln(s.errOut, s.printer.Sprintf(i18n.LoadFailed, err))
		fmt.Fprintln(s.errOut, s.printer.Sprintf(i18n.LoadHint, datasetName+".json"))
		_ = kv.Close()
		return nil, fmt.Errorf("%w: %w", ErrData, err)
	}
	logger.Debug("loaded dataset",
		zap.Int("entries", deck.Meta().EntryCount),
		zap.Int("roots", deck.Meta().RootCount),
	)

	var src sampler.Source
	if c.IsSet("seed") {
		src = sampler.New(c.Int64("seed"))
	}
	ctrl, err := study.New(c.Context, deck, store, &study.Options{
		Source: src,
		Logger: logger,
	})
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("%w: %w", ErrRootutil, err)
	}
	s.ctrl = ctrl

	return s, nil
}

func openDeck(c *cli.Context) (*wordroots.Deck, error) {
	path, err := dataPath(c)
	if err != nil {
		return nil, err
	}
	return wordroots.Open(path, &dataset.Options{HTML: c.Bool("html")})
}

// setPrinter sets the message printer for the display language. A
// language given with --lang takes precedence over the saved preference.
func (s *session) setPrinter(saved language.Tag) {
	tag := saved
	if s.lang != nil {
		tag = *s.lang
	}
	s.printer = i18n.Printer(tag)
}

// state returns the current study state.
func (s *session) state() *study.State {
	return s.ctrl.State()
}

// dispatch applies the intent. Failures to save progress are reported and
// the session continues.
func (s *session) dispatch(c *cli.Context, in study.Intent) error {
	err := s.ctrl.Dispatch(c.Context, in)
	if err == nil || errors.Is(err, study.ErrInvalidChoice) || errors.Is(err, study.ErrUnknownIntent) {
		return err
	}
	s.logger.Debug("dispatch failed", zap.Error(err))
	fmt.Fprintln(s.errOut, s.printer.Sprintf(i18n.SaveFailed, err))
	return nil
}

// Close closes the progress store.
func (s *session) Close() error {
	_ = s.logger.Sync()
	if err := s.kv.Close(); err != nil {
		return fmt.Errorf("%w: closing progress store: %w", ErrRootutil, err)
	}
	return nil
}

// withSession returns a command action that runs f with an open session.
func withSession(f func(*cli.Context, *session) error) cli.ActionFunc {
	return func(c *cli.Context) (err error) {
		s, err := openSession(c)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return f(c, s)
	}
}
