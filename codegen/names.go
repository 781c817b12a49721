// =================================================================================
//
//			wwise-ids - https://www.foxhollow.cc/projects/wwise-ids/
//
//		 wwise-ids is a simple CLI utility for turning the sound bank header
//	  generated by Wwise into Go constants and keeping them honest
//
//		 Copyright (c) 2024 Steve Cross <flip@foxhollow.cc>
//
//			Licensed under the Apache License, Version 2.0 (the "License");
//			you may not use this file except in compliance with the License.
//			You may obtain a copy of the License at
//
//			     http://www.apache.org/licenses/LICENSE-2.0
//
//			Unless required by applicable law or agreed to in writing, software
//			distributed under the License is distributed on an "AS IS" BASIS,
//			WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//			See the License for the specific language governing permissions and
//			limitations under the License.
//
// =================================================================================
package codegen

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"wwise-ids/model"
)

// Identifier turns the UPPER_SNAKE names of a header declaration into an
// exported Go name prefixed by the category, e.g. EVENTS PLAY_MUSIC becomes
// EventPlayMusic. A leading word that repeats the category is dropped, so
// SWITCHES SWITCH_MUSIC_REGION CAVE becomes SwitchMusicRegionCave.
func Identifier(category model.Category, parts ...string) (string, error) {
	prefix := category.Singular()
	if prefix == "" {
		return "", fmt.Errorf("%w: no prefix for category %s", ErrInvalidIdentifier, category)
	}

	var b strings.Builder
	b.WriteString(prefix)

	for i, part := range parts {
		if i == 0 {
			part = trimCategoryWord(part, snake(prefix))
		}
		b.WriteString(camel(part))
	}

	ident := b.String()
	if !token.IsIdentifier(ident) || ident == prefix {
		return "", fmt.Errorf("%w: %s %s", ErrInvalidIdentifier, category, strings.Join(parts, "::"))
	}

	return ident, nil
}

func camel(name string) string {
	var b strings.Builder

	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}

		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	return b.String()
}

// snake converts a CamelCase prefix back to the header's UPPER_SNAKE form.
func snake(name string) string {
	var b strings.Builder

	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

func trimCategoryWord(name string, word string) string {
	if strings.HasPrefix(strings.ToUpper(name), word+"_") {
		return name[len(word)+1:]
	}
	return name
}
