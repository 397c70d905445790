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

// Package sampler implements uniform random selection and shuffling.
package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmpty indicates that a selection was requested from an empty sequence.
var ErrEmpty = errors.New("sampler: empty sequence")

// Source is a source of uniformly distributed integers.
// [*rand.Rand] implements Source.
type Source interface {
	// Intn returns a uniformly distributed integer in [0,n). It panics if
	// n <= 0.
	Intn(n int) int
}

// New returns a Source seeded with seed. Sources with equal seeds produce
// equal sequences.
func New(seed int64) *rand.Rand {
	//nolint:gosec // selection for study drills does not need a CSPRNG.
	return rand.New(rand.NewSource(seed))
}

// NewRandom returns a Source seeded from crypto/rand.
func NewRandom() (*rand.Rand, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("reading random seed: %w", err)
	}
	//nolint:gosec // sign of the seed is irrelevant.
	return New(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

// Index returns a uniformly chosen index in [0,n).
func Index(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmpty
	}
	return src.Intn(n), nil
}

// Sample returns one element of items chosen uniformly at random.
func Sample[T any](src Source, items []T) (T, error) {
	i, err := Index(src, len(items))
	if err != nil {
		var zero T
		return zero, err
	}
	return items[i], nil
}

// Shuffle returns a new slice with the elements of items in a uniformly
// random order. items is not modified.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	// Fisher-Yates: walk from the last index down to the second and swap
	// with a uniformly chosen index at or before it.
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
