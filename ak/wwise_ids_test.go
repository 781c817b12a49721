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
package ak_test

import (
	"context"
	"os"
	"testing"

	"wwise-ids/ak"
	"wwise-ids/codegen"
	"wwise-ids/header"
	"wwise-ids/integrity"
	"wwise-ids/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectHeader = "../header/testdata/Wwise_IDs.h"

func TestIdentifierValues(t *testing.T) {
	assert.Equal(t, ak.UniqueID(2932040671), ak.EventPlayMusic)
	assert.Equal(t, ak.UniqueID(452547817), ak.EventStopAll)
	assert.Equal(t, ak.UniqueID(275596552), ak.SwitchMusicRegionGroup)
	assert.Equal(t, ak.UniqueID(4122393694), ak.SwitchMusicRegionCave)
	assert.Equal(t, ak.UniqueID(491961918), ak.SwitchMusicRegionForest)
	assert.Equal(t, ak.UniqueID(3322072369), ak.SwitchMusicRegionTree)
	assert.Equal(t, ak.UniqueID(2246998526), ak.BusMainAudioBus)
	assert.Equal(t, ak.UniqueID(3859886410), ak.AudioDeviceSystem)
}

func TestManifestIsConsistent(t *testing.T) {
	table := ak.Manifest()

	report := integrity.Check(table)
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Warnings)

	assert.Equal(t, 20, table.Count())
	assert.Empty(t, table.Section(model.CategoryStates).Groups)

	// callers may mutate what they get back
	table.AddEntry(model.CategoryEvents, "EXTRA", 1)
	assert.Equal(t, 20, ak.Manifest().Count())
}

func TestManifestMatchesHeader(t *testing.T) {
	parsed, err := header.ParseFile(context.Background(), projectHeader)
	require.NoError(t, err)

	if diff := cmp.Diff(parsed, ak.Manifest()); diff != "" {
		t.Errorf("manifest out of date with header (-header +manifest):\n%s", diff)
	}
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	parsed, err := header.ParseFile(context.Background(), projectHeader)
	require.NoError(t, err)

	src, err := codegen.Generate(parsed, codegen.Options{Package: "ak", Source: projectHeader})
	require.NoError(t, err)

	current, err := os.ReadFile("wwise_ids.go")
	require.NoError(t, err)

	assert.Equal(t, string(current), string(src), "run go generate ./ak")
}
