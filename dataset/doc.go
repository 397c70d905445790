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

// Package dataset implements reading and writing root/affix vocabulary
// datasets.
//
// A dataset is a single JSON document with three parts:
//  1. meta: counts and provenance of the dataset.
//  2. roots: one summary per known root or affix, with an optional gloss,
//     the number of distinct words that use it and a few sample words.
//  3. entries: dictionary words with their meaning, the raw decomposition
//     text and the parsed list of morpheme components.
//
// Datasets may be stored as plain .json files, gzip compressed .json.gz
// files or dictzip compressed .json.dz files.
package dataset
