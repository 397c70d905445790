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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
)

// prompt reads commands from the app's input one line at a time.
type prompt struct {
	s    *bufio.Scanner
	w    io.Writer
	text string
}

func newPrompt(c *cli.Context) *prompt {
	return &prompt{
		s: bufio.NewScanner(c.App.Reader),
		w: c.App.Writer,
	}
}

// Scan prints the prompt and reads the next line. It returns false at the
// end of the input.
func (p *prompt) Scan() bool {
	fmt.Fprint(p.w, "> ")
	if !p.s.Scan() {
		fmt.Fprintln(p.w)
		return false
	}
	p.text = strings.TrimSpace(p.s.Text())
	return true
}

// Text returns the last line read without surrounding whitespace.
func (p *prompt) Text() string {
	return p.text
}

// Err returns the first error reading the input.
func (p *prompt) Err() error {
	if err := p.s.Err(); err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrRootutil, err)
	}
	return nil
}
