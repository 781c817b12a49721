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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wwise-ids/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *model.Table {
	table := &model.Table{}
	table.AddEntry(model.CategoryEvents, "STOP_ALL", 452547817)
	table.AddEntry(model.CategoryEvents, "PLAY_MUSIC", 2932040671)
	table.AddGroup(model.CategoryStates, model.Group{Name: "PLAYER_LIFE", ID: 444815956, Values: []model.Entry{
		{Name: "DEAD", ID: 2044049779},
		{Name: "ALIVE", ID: 655265632},
	}})
	table.AddGroup(model.CategoryStates, model.Group{Name: "EMPTY_GROUP", ID: 12})
	table.AddEntry(model.CategoryAuxBusses, "CAVE_REVERB", 3106238416)
	return table
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		category model.Category
		parts    []string
		want     string
	}{
		{model.CategoryEvents, []string{"PLAY_MUSIC"}, "EventPlayMusic"},
		{model.CategoryEvents, []string{"PLAY_RIVER1"}, "EventPlayRiver1"},
		{model.CategorySwitches, []string{"SWITCH_MUSIC_REGION", "GROUP"}, "SwitchMusicRegionGroup"},
		{model.CategorySwitches, []string{"SWITCH_MUSIC_REGION", "CAVE"}, "SwitchMusicRegionCave"},
		{model.CategorySwitches, []string{"SURFACE", "GRASS"}, "SwitchSurfaceGrass"},
		{model.CategoryStates, []string{"STATE_LIFE", "DEAD"}, "StateLifeDead"},
		{model.CategoryBusses, []string{"MAIN_AUDIO_BUS"}, "BusMainAudioBus"},
		{model.CategoryAudioDevices, []string{"NO_OUTPUT"}, "AudioDeviceNoOutput"},
		{model.CategoryAudioDevices, []string{"AUDIO_DEVICE_SPEAKERS"}, "AudioDeviceSpeakers"},
		{model.CategoryGameParameters, []string{"PLAYER__HEALTH"}, "GameParameterPlayerHealth"},
	}

	for _, tt := range tests {
		got, err := Identifier(tt.category, tt.parts...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestIdentifierInvalid(t *testing.T) {
	_, err := Identifier(model.CategoryEvents, "")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = Identifier(model.CategoryEvents, "PLAY-MUSIC")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = Identifier(model.Category(99), "X")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestGenerate(t *testing.T) {
	src, err := Generate(sampleTable(), Options{Package: "sounds", Source: "/some/where/Wwise_IDs.h"})
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by wwise-ids from Wwise_IDs.h. DO NOT EDIT.\n"))
	assert.Contains(t, out, "package sounds\n")
	assert.Contains(t, out, "EventPlayMusic UniqueID = 2932040671\n")
	assert.Contains(t, out, "StatePlayerLifeGroup UniqueID = 444815956\n")
	assert.Contains(t, out, "AuxBusCaveReverb UniqueID = 3106238416\n")
	assert.Contains(t, out, `table.AddGroup(model.CategoryStates, model.Group{Name: "EMPTY_GROUP", ID: StateEmptyGroupGroup})`)
	assert.NotContains(t, out, "/some/where")

	// canonical order regardless of insertion order
	assert.Less(t, strings.Index(out, "EventPlayMusic "), strings.Index(out, "EventStopAll "))
	assert.Less(t, strings.Index(out, "StatePlayerLifeAlive "), strings.Index(out, "StatePlayerLifeDead "))
	assert.Less(t, strings.Index(out, "// STATES::"), strings.Index(out, "// AUX_BUSSES"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	table := sampleTable()

	first, err := Generate(table, Options{})
	require.NoError(t, err)

	for range 5 {
		again, err := Generate(table, Options{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	assert.Equal(t, "STOP_ALL", table.Sections[0].Entries[0].Name, "input table must not be reordered")
}

func TestGenerateEmptyTable(t *testing.T) {
	src, err := Generate(&model.Table{}, Options{})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package ak\n")
	assert.Contains(t, out, "func Manifest() *model.Table {")
	assert.NotContains(t, out, "const (")
}

func TestGenerateClash(t *testing.T) {
	table := &model.Table{}
	table.AddEntry(model.CategoryEvents, "PLAY_MUSIC", 1)
	table.AddEntry(model.CategoryEvents, "PLAY__MUSIC", 2)

	_, err := Generate(table, Options{})
	assert.ErrorIs(t, err, ErrIdentifierClash)
}

func TestGenerateBadPackage(t *testing.T) {
	_, err := Generate(sampleTable(), Options{Package: "not-a-package"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestWriteFileOnlyOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ids.go")

	changed, err := WriteFile(path, []byte("package ak\n"))
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = WriteFile(path, []byte("package ak\n"))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = WriteFile(path, []byte("package sounds\n"))
	require.NoError(t, err)
	assert.True(t, changed)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package sounds\n", string(written))
}
