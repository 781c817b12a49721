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
// Package integrity validates identifier tables and compares generations.
package integrity

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"wwise-ids/model"
)

var (
	ErrDuplicateName = errors.New("duplicate name")
	ErrIDCollision   = errors.New("id collision")
	ErrCrossCategory = errors.New("id shared across categories")
)

// Problem is one finding of Check. Path names the offending identifier the
// way the header does, e.g. SWITCHES::SWITCH_MUSIC_REGION::CAVE.
type Problem struct {
	Err  error          `json:"-" yaml:"-"`
	Kind string         `json:"kind" yaml:"kind"`
	Path string         `json:"path" yaml:"path"`
	With string         `json:"with,omitempty" yaml:"with,omitempty"`
	ID   model.UniqueID `json:"id" yaml:"id"`
}

func (p Problem) Error() string {
	if p.With != "" {
		return fmt.Sprintf("%s: %s and %s (%d)", p.Err, p.Path, p.With, p.ID)
	}
	return fmt.Sprintf("%s: %s (%d)", p.Err, p.Path, p.ID)
}

func (p Problem) Unwrap() error {
	return p.Err
}

type Report struct {
	Problems []Problem `json:"problems" yaml:"problems"`
	Warnings []Problem `json:"warnings" yaml:"warnings"`
}

// Err joins every problem into one error, or returns nil for a clean table.
func (r *Report) Err() error {
	errs := make([]error, len(r.Problems))
	for i, problem := range r.Problems {
		errs[i] = problem
	}
	return errors.Join(errs...)
}

// Check verifies that names are unique and IDs do not collide inside each
// category. Switch and state group IDs form their own ID space, separate
// from the values of the groups. The same ID in two categories is only a
// warning since categories are independent namespaces.
func Check(table *model.Table) Report {
	report := Report{}
	owners := make(map[model.UniqueID][]owner)

	for _, section := range table.Sections {
		category := section.Category.String()

		names := newSpace()
		ids := newSpace()
		for _, entry := range section.Entries {
			path := join(category, entry.Name)
			report.add(names.claimName(entry.Name, path, entry.ID))
			report.add(ids.claimID(entry.ID, path))
			owners[entry.ID] = append(owners[entry.ID], owner{section.Category, path})
		}

		groupNames := newSpace()
		groupIDs := newSpace()
		valueIDs := newSpace()
		for _, group := range section.Groups {
			groupPath := join(category, group.Name)
			report.add(groupNames.claimName(group.Name, groupPath, group.ID))
			report.add(groupIDs.claimID(group.ID, groupPath))
			owners[group.ID] = append(owners[group.ID], owner{section.Category, groupPath})

			valueNames := newSpace()
			for _, value := range group.Values {
				path := join(category, group.Name, value.Name)
				report.add(valueNames.claimName(value.Name, path, value.ID))
				report.add(valueIDs.claimID(value.ID, path))
				owners[value.ID] = append(owners[value.ID], owner{section.Category, path})
			}
		}
	}

	for id, claims := range owners {
		for _, other := range claims[1:] {
			if other.category != claims[0].category {
				report.Warnings = append(report.Warnings, Problem{
					Err:  ErrCrossCategory,
					Kind: kindName(ErrCrossCategory),
					Path: claims[0].path,
					With: other.path,
					ID:   id,
				})
			}
		}
	}

	// map iteration order is random
	sortProblems(report.Warnings)
	return report
}

//
// private
//

type owner struct {
	category model.Category
	path     string
}

// space tracks claims in one namespace of names or of IDs.
type space struct {
	names map[string]string
	ids   map[model.UniqueID]string
}

func newSpace() *space {
	return &space{
		names: make(map[string]string),
		ids:   make(map[model.UniqueID]string),
	}
}

func (s *space) claimName(name string, path string, id model.UniqueID) *Problem {
	if previous, ok := s.names[name]; ok {
		return &Problem{Err: ErrDuplicateName, Kind: kindName(ErrDuplicateName), Path: previous, With: path, ID: id}
	}
	s.names[name] = path
	return nil
}

func (s *space) claimID(id model.UniqueID, path string) *Problem {
	if previous, ok := s.ids[id]; ok {
		return &Problem{Err: ErrIDCollision, Kind: kindName(ErrIDCollision), Path: previous, With: path, ID: id}
	}
	s.ids[id] = path
	return nil
}

func (r *Report) add(problem *Problem) {
	if problem != nil {
		r.Problems = append(r.Problems, *problem)
	}
}

func join(parts ...string) string {
	return strings.Join(parts, "::")
}

func kindName(err error) string {
	return strings.ReplaceAll(err.Error(), " ", "_")
}

func sortProblems(problems []Problem) {
	slices.SortFunc(problems, func(a, b Problem) int {
		return cmp.Or(
			strings.Compare(a.Path, b.Path),
			strings.Compare(a.With, b.With),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
