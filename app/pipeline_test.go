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
package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wwise-ids/ak"
	"wwise-ids/integrity"
	"wwise-ids/model"
	"wwise-ids/store"
	"wwise-ids/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectHeader = "../header/testdata/Wwise_IDs.h"

func testConfig(t *testing.T) *model.Config {
	t.Helper()

	dir := t.TempDir()
	config := util.DefaultConfig()
	config.Header = projectHeader
	config.Output = filepath.Join(dir, "ak", "wwise_ids.go")
	config.SqlitePath = filepath.Join(dir, "ids.db")
	return config
}

func TestRegenerate(t *testing.T) {
	ctx := context.Background()
	config := testConfig(t)

	changed, err := regenerate(ctx, config)
	require.NoError(t, err)
	assert.True(t, changed)

	written, err := os.ReadFile(config.Output)
	require.NoError(t, err)
	golden, err := os.ReadFile("../ak/wwise_ids.go")
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(written))

	changed, err = regenerate(ctx, config)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged header must not rewrite the output")

	exported, err := store.Load(ctx, config.SqlitePath)
	require.NoError(t, err)
	if diff := cmp.Diff(ak.Manifest(), exported); diff != "" {
		t.Errorf("exported table differs (-want +got):\n%s", diff)
	}
}

func TestRegenerateMissingHeader(t *testing.T) {
	config := testConfig(t)
	config.Header = filepath.Join(t.TempDir(), "Wwise_IDs.h")

	_, err := regenerate(context.Background(), config)
	assert.Error(t, err)

	_, err = os.Stat(config.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadTableByExtension(t *testing.T) {
	ctx := context.Background()
	config := testConfig(t)
	require.NoError(t, store.Export(ctx, config.SqlitePath, ak.Manifest()))

	fromStore, err := loadTable(ctx, config.SqlitePath)
	require.NoError(t, err)

	fromHeader, err := loadTable(ctx, projectHeader)
	require.NoError(t, err)

	assert.Empty(t, integrity.Diff(fromHeader, fromStore))
}

func TestCheckTable(t *testing.T) {
	config := testConfig(t)

	table := ak.Manifest()
	assert.NoError(t, checkTable(config, "manifest", table))

	table.AddEntry(model.CategoryBanks, "MUSIC", ak.EventPlayMusic)
	assert.NoError(t, checkTable(config, "manifest", table))

	config.FailOnCrossCategory = true
	assert.ErrorIs(t, checkTable(config, "manifest", table), integrity.ErrCrossCategory)

	table.AddEntry(model.CategoryEvents, "PLAY_MUSIC_AGAIN", ak.EventPlayMusic)
	assert.ErrorIs(t, checkTable(config, "manifest", table), integrity.ErrIDCollision)
}
