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

package testutil

// Sequence is a sampler source that returns predetermined values. Each call
// to Intn returns the next value modulo n. When the values are exhausted
// Intn returns 0.
type Sequence struct {
	Values []int
	i      int
}

// Intn implements [sampler.Source].
func (s *Sequence) Intn(n int) int {
	if s.i >= len(s.Values) {
		return 0
	}
	v := s.Values[s.i] % n
	s.i++
	return v
}

// Calls returns the number of values consumed.
func (s *Sequence) Calls() int {
	return s.i
}
