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
package integrity

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"wwise-ids/model"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

var changeKindNames = map[ChangeKind]string{
	Added:   "added",
	Removed: "removed",
	Changed: "changed",
}

func (k ChangeKind) String() string {
	return changeKindNames[k]
}

func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is one difference between two generations of a table. A Removed
// or Changed entry is an ID that compiled consumer code may still hold.
type Change struct {
	Kind     ChangeKind     `json:"kind" yaml:"kind"`
	Category model.Category `json:"category" yaml:"category"`
	Path     string         `json:"path" yaml:"path"`
	OldID    model.UniqueID `json:"old_id,omitempty" yaml:"old_id,omitempty"`
	NewID    model.UniqueID `json:"new_id,omitempty" yaml:"new_id,omitempty"`
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s (%d)", c.Path, c.NewID)
	case Removed:
		return fmt.Sprintf("- %s (%d)", c.Path, c.OldID)
	}
	return fmt.Sprintf("~ %s (%d -> %d)", c.Path, c.OldID, c.NewID)
}

// Diff lists what was added, removed or renumbered between two tables,
// ordered by category and path.
func Diff(previous, current *model.Table) []Change {
	before := flatten(previous)
	after := flatten(current)

	changes := make([]Change, 0)

	for path, old := range before {
		next, ok := after[path]
		if !ok {
			changes = append(changes, Change{Kind: Removed, Category: old.category, Path: path, OldID: old.id})
			continue
		}

		if next.id != old.id {
			changes = append(changes, Change{Kind: Changed, Category: old.category, Path: path, OldID: old.id, NewID: next.id})
		}
	}

	for path, next := range after {
		if _, ok := before[path]; !ok {
			changes = append(changes, Change{Kind: Added, Category: next.category, Path: path, NewID: next.id})
		}
	}

	slices.SortFunc(changes, func(a, b Change) int {
		return cmp.Or(
			cmp.Compare(a.Category, b.Category),
			strings.Compare(a.Path, b.Path),
		)
	})

	return changes
}

type flatEntry struct {
	category model.Category
	id       model.UniqueID
}

func flatten(table *model.Table) map[string]flatEntry {
	flat := make(map[string]flatEntry)
	if table == nil {
		return flat
	}

	for _, section := range table.Sections {
		category := section.Category.String()

		for _, entry := range section.Entries {
			flat[join(category, entry.Name)] = flatEntry{section.Category, entry.ID}
		}

		for _, group := range section.Groups {
			flat[join(category, group.Name)] = flatEntry{section.Category, group.ID}

			for _, value := range group.Values {
				flat[join(category, group.Name, value.Name)] = flatEntry{section.Category, value.ID}
			}
		}
	}

	return flat
}
