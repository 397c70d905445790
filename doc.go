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

// Package wordroots implements an in-memory study index over root/affix
// vocabulary datasets.
//
// A [Deck] is built once from a dataset document. It maps each root string
// to its summary and each morpheme to the dictionary entries that contain
// it, and provides the search used to browse the dataset. The flash, quiz
// and progress packages build study drills on top of a Deck.
package wordroots
