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
)

func main() {
	app := newRootutilApp()
	if err := app.Run(os.Args); err != nil {
		// Dataset errors have already been reported in the display language.
		if !errors.Is(err, ErrData) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		}
		os.Exit(exitCode(err))
	}
}
