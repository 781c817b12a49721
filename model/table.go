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
package model

import (
	"fmt"
	"slices"
	"strings"
)

// UniqueID is the 32-bit identifier the sound engine uses for every named
// object in a sound bank project.
type UniqueID uint32

type Category int

const (
	CategoryEvents Category = iota
	CategoryStates
	CategorySwitches
	CategoryGameParameters
	CategoryTriggers
	CategoryArguments
	CategoryBanks
	CategoryBusses
	CategoryAuxBusses
	CategoryAudioDevices
	CategoryExternalSources
)

// Categories lists every category in the order the authoring tool writes them.
var Categories = []Category{
	CategoryEvents,
	CategoryStates,
	CategorySwitches,
	CategoryGameParameters,
	CategoryTriggers,
	CategoryArguments,
	CategoryBanks,
	CategoryBusses,
	CategoryAuxBusses,
	CategoryAudioDevices,
	CategoryExternalSources,
}

var categoryNamespaces = map[Category]string{
	CategoryEvents:          "EVENTS",
	CategoryStates:          "STATES",
	CategorySwitches:        "SWITCHES",
	CategoryGameParameters:  "GAME_PARAMETERS",
	CategoryTriggers:        "TRIGGERS",
	CategoryArguments:       "ARGUMENTS",
	CategoryBanks:           "BANKS",
	CategoryBusses:          "BUSSES",
	CategoryAuxBusses:       "AUX_BUSSES",
	CategoryAudioDevices:    "AUDIO_DEVICES",
	CategoryExternalSources: "EXTERNAL_SOURCES",
}

var categorySingular = map[Category]string{
	CategoryEvents:          "Event",
	CategoryStates:          "State",
	CategorySwitches:        "Switch",
	CategoryGameParameters:  "GameParameter",
	CategoryTriggers:        "Trigger",
	CategoryArguments:       "Argument",
	CategoryBanks:           "Bank",
	CategoryBusses:          "Bus",
	CategoryAuxBusses:       "AuxBus",
	CategoryAudioDevices:    "AudioDevice",
	CategoryExternalSources: "ExternalSource",
}

// String returns the namespace name used for the category in the header.
func (c Category) String() string {
	if name, ok := categoryNamespaces[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY(%d)", int(c))
}

// Singular returns the prefix used for Go identifiers in this category.
func (c Category) Singular() string {
	return categorySingular[c]
}

// Grouped reports whether the category holds groups of values instead of a
// flat list of names.
func (c Category) Grouped() bool {
	return c == CategoryStates || c == CategorySwitches
}

// ValueNamespace is the nested namespace holding group values, STATE or SWITCH.
func (c Category) ValueNamespace() string {
	switch c {
	case CategoryStates:
		return "STATE"
	case CategorySwitches:
		return "SWITCH"
	}
	return ""
}

func (c Category) MarshalText() ([]byte, error) {
	name, ok := categoryNamespaces[c]
	if !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(name), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	category, ok := CategoryByNamespace(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", string(text))
	}
	*c = category
	return nil
}

// CategoryByNamespace maps a header namespace name back to its category.
// Names are matched exactly; the authoring tool only writes upper case.
func CategoryByNamespace(namespace string) (Category, bool) {
	for category, name := range categoryNamespaces {
		if name == namespace {
			return category, true
		}
	}
	return 0, false
}

//
// table
//

type Entry struct {
	Name string   `yaml:"name" json:"name"`
	ID   UniqueID `yaml:"id" json:"id"`
}

type Group struct {
	Name   string   `yaml:"name" json:"name"`
	ID     UniqueID `yaml:"id" json:"id"`
	Values []Entry  `yaml:"values" json:"values"`
}

type Section struct {
	Category Category `yaml:"category" json:"category"`
	Entries  []Entry  `yaml:"entries,omitempty" json:"entries,omitempty"`
	Groups   []Group  `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// Table is the full set of identifiers read from one generated header. The
// zero value is an empty, valid table.
type Table struct {
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section returns the section for a category. A category the table does not
// declare comes back as an empty section.
func (t *Table) Section(category Category) Section {
	for _, section := range t.Sections {
		if section.Category == category {
			return section
		}
	}

	return Section{Category: category}
}

func (t *Table) sectionRef(category Category) *Section {
	for i := range t.Sections {
		if t.Sections[i].Category == category {
			return &t.Sections[i]
		}
	}

	t.Sections = append(t.Sections, Section{Category: category})
	return &t.Sections[len(t.Sections)-1]
}

// AddEntry appends a flat entry to a category.
func (t *Table) AddEntry(category Category, name string, id UniqueID) {
	section := t.sectionRef(category)
	section.Entries = append(section.Entries, Entry{Name: name, ID: id})
}

// AddGroup appends a group and its values to a category.
func (t *Table) AddGroup(category Category, group Group) {
	section := t.sectionRef(category)
	section.Groups = append(section.Groups, group)
}

// Count returns the number of identifiers in the table, counting each group
// ID and each group value.
func (t *Table) Count() int {
	count := 0

	for _, section := range t.Sections {
		count += len(section.Entries)

		for _, group := range section.Groups {
			count += 1 + len(group.Values)
		}
	}

	return count
}

// Sort puts the table in canonical order: sections by category, everything
// else by name. Empty sections are dropped.
func (t *Table) Sort() {
	t.Sections = slices.DeleteFunc(t.Sections, func(section Section) bool {
		return len(section.Entries) == 0 && len(section.Groups) == 0
	})

	slices.SortStableFunc(t.Sections, func(a, b Section) int {
		return int(a.Category) - int(b.Category)
	})

	for i := range t.Sections {
		section := &t.Sections[i]
		slices.SortStableFunc(section.Entries, compareEntries)
		slices.SortStableFunc(section.Groups, func(a, b Group) int {
			return strings.Compare(a.Name, b.Name)
		})

		for j := range section.Groups {
			slices.SortStableFunc(section.Groups[j].Values, compareEntries)
		}
	}
}

func compareEntries(a, b Entry) int {
	return strings.Compare(a.Name, b.Name)
}
