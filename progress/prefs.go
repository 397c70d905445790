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

package progress

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-wordroots/storage"
)

// LanguageKey is the storage key of the display language preference.
const LanguageKey = "cigen-root-lang"

// DefaultLanguage is the display language used when no preference is
// stored.
var DefaultLanguage = language.MustParse("zh-CN")

// Language returns the stored display language, or DefaultLanguage.
func (s *Store) Language(ctx context.Context) language.Tag {
	raw, err := s.kv.Get(ctx, LanguageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("reading language", zap.Error(err))
		}
		return DefaultLanguage
	}

	tag, err := language.Parse(raw)
	if err != nil {
		s.logger.Debug("parsing language", zap.String("value", raw), zap.Error(err))
		return DefaultLanguage
	}
	return tag
}

// SetLanguage stores the display language.
func (s *Store) SetLanguage(ctx context.Context, tag language.Tag) error {
	if err := s.kv.Set(ctx, LanguageKey, tag.String()); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}
	return nil
}
