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

// Package storage implements small keyed stores for locally persisted
// values such as study progress and preferences.
package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates that no value is stored under a key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a string key-value store. Each Set replaces the value as a single
// unit.
type KV interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Close releases the store's resources.
	Close() error
}

// IsDatabase reports whether the path names a sqlite database rather than a
// JSON file store.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
