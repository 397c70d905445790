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

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestKV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		open func(*testing.T) KV
	}{
		{
			name: "memory",
			open: func(*testing.T) KV { return NewMemory() },
		},
		{
			name: "file",
			open: func(t *testing.T) KV {
				t.Helper()
				f, err := OpenFile(filepath.Join(t.TempDir(), "state", "progress.json"))
				if err != nil {
					t.Fatalf("OpenFile: %v", err)
				}
				return f
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			kv := test.open(t)
			defer kv.Close()

			if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get: want: %v, got: %v", ErrNotFound, err)
			}
			if err := kv.Set(ctx, "a", "1"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := kv.Set(ctx, "a", "2"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := kv.Get(ctx, "a")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got != "2" {
				t.Fatalf("Get: want: %q, got: %q", "2", got)
			}
		})
	}
}

func TestFile_reopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.json")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := f.Set(ctx, "k", `{"quizTotal":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	f, err = OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	got, err := f.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if want := `{"quizTotal":1}`; got != want {
		t.Fatalf("Get: want: %q, got: %q", want, got)
	}

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ReadDir: want 1 file, got %d", len(entries))
	}
}

func TestOpenFile_corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.Get(context.Background(), "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get: want: %v, got: %v", ErrNotFound, err)
	}
	if err := f.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestIsDatabase(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"progress.db":      true,
		"progress.SQLITE":  true,
		"progress.sqlite3": true,
		"progress.json":    false,
		"progress":         false,
	} {
		if got := IsDatabase(path); got != want {
			t.Errorf("IsDatabase(%q): want: %v, got: %v", path, want, got)
		}
	}
}
