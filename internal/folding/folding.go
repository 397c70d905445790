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

// Package folding implements text folding used for case-insensitive search.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// New returns a transformer that folds case, folds full-width characters to
// their narrow forms and collapses whitespace.
func New() transform.Transformer {
	return transform.Chain(width.Fold, cases.Fold(), &Whitespace{})
}

// String folds s. Input that cannot be folded is returned unchanged.
func String(s string) string {
	folded, _, err := transform.String(New(), s)
	if err != nil {
		return s
	}
	return folded
}
