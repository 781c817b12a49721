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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionMissingCategoryIsEmpty(t *testing.T) {
	table := &Table{}
	table.AddEntry(CategoryEvents, "PLAY_MUSIC", 2932040671)

	section := table.Section(CategoryBusses)
	assert.Equal(t, CategoryBusses, section.Category)
	assert.Empty(t, section.Entries)
	assert.Empty(t, section.Groups)
	assert.Len(t, table.Sections, 1, "reading a section must not add it")
}

func TestCountIncludesGroupIDs(t *testing.T) {
	table := &Table{}
	table.AddEntry(CategoryEvents, "PLAY_MUSIC", 1)
	table.AddEntry(CategoryEvents, "STOP_ALL", 2)
	table.AddGroup(CategorySwitches, Group{Name: "SURFACE", ID: 3, Values: []Entry{
		{Name: "GRASS", ID: 4},
		{Name: "STONE", ID: 5},
	}})

	assert.Equal(t, 5, table.Count())
	assert.Equal(t, 0, (&Table{}).Count())
}

func TestSortIsCanonical(t *testing.T) {
	table := &Table{}
	table.AddEntry(CategoryBusses, "MUSIC_BUS", 3)
	table.AddEntry(CategoryBusses, "ENVIRONMENT_BUS", 1)
	table.AddGroup(CategorySwitches, Group{Name: "B", ID: 20, Values: []Entry{{Name: "Z", ID: 1}, {Name: "A", ID: 2}}})
	table.AddGroup(CategorySwitches, Group{Name: "A", ID: 10})
	table.AddEntry(CategoryEvents, "STOP_ALL", 9)
	table.AddEntry(CategoryEvents, "PLAY_MUSIC", 8)
	table.Sections = append(table.Sections, Section{Category: CategoryBanks})

	table.Sort()

	require.Len(t, table.Sections, 3)
	assert.Equal(t, CategoryEvents, table.Sections[0].Category)
	assert.Equal(t, CategorySwitches, table.Sections[1].Category)
	assert.Equal(t, CategoryBusses, table.Sections[2].Category)

	assert.Equal(t, "PLAY_MUSIC", table.Sections[0].Entries[0].Name)
	assert.Equal(t, "A", table.Sections[1].Groups[0].Name)
	assert.Equal(t, []Entry{{Name: "A", ID: 2}, {Name: "Z", ID: 1}}, table.Sections[1].Groups[1].Values)
	assert.Equal(t, "ENVIRONMENT_BUS", table.Sections[2].Entries[0].Name)
}

func TestCategoryText(t *testing.T) {
	for _, category := range Categories {
		text, err := category.MarshalText()
		require.NoError(t, err)

		var decoded Category
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, category, decoded)
		assert.NotEmpty(t, category.Singular())
	}

	var decoded Category
	assert.Error(t, decoded.UnmarshalText([]byte("SOUNDS")))

	_, err := Category(99).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "CATEGORY(99)", Category(99).String())
}

func TestCategoryByNamespace(t *testing.T) {
	category, ok := CategoryByNamespace("AUDIO_DEVICES")
	assert.True(t, ok)
	assert.Equal(t, CategoryAudioDevices, category)

	_, ok = CategoryByNamespace("audio_devices")
	assert.False(t, ok)

	_, ok = CategoryByNamespace("SOUNDS")
	assert.False(t, ok)
}

func TestGroupedCategories(t *testing.T) {
	assert.True(t, CategorySwitches.Grouped())
	assert.True(t, CategoryStates.Grouped())
	assert.False(t, CategoryEvents.Grouped())

	assert.Equal(t, "SWITCH", CategorySwitches.ValueNamespace())
	assert.Equal(t, "STATE", CategoryStates.ValueNamespace())
	assert.Equal(t, "", CategoryBusses.ValueNamespace())
}
