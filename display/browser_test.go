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
package display

import (
	"strings"
	"testing"

	"wwise-ids/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	root := BuildTree(sampleTable())

	categories := root.GetChildren()
	require.Len(t, categories, len(model.Categories))

	events := categories[model.CategoryEvents]
	assert.Equal(t, "EVENTS (1)", events.GetText())
	require.Len(t, events.GetChildren(), 1)
	assert.Equal(t, "PLAY_MUSIC = 2932040671", events.GetChildren()[0].GetText())

	info, ok := events.GetChildren()[0].GetReference().(*NodeInfo)
	require.True(t, ok)
	assert.Equal(t, "EVENTS::PLAY_MUSIC", info.Path)
	assert.True(t, info.HasID)

	switches := categories[model.CategorySwitches]
	require.Len(t, switches.GetChildren(), 1)
	group := switches.GetChildren()[0]
	assert.Equal(t, "SWITCH_MUSIC_REGION = 275596552", group.GetText())
	require.Len(t, group.GetChildren(), 1)

	info = group.GetChildren()[0].GetReference().(*NodeInfo)
	assert.Equal(t, "SWITCHES::SWITCH_MUSIC_REGION::CAVE", info.Path)
	assert.Equal(t, model.UniqueID(4122393694), info.ID)
}

func TestBuildTreeShowsEmptyCategories(t *testing.T) {
	root := BuildTree(&model.Table{})

	for i, node := range root.GetChildren() {
		assert.Empty(t, node.GetChildren())
		assert.True(t, strings.HasSuffix(node.GetText(), "(0)"))

		info := node.GetReference().(*NodeInfo)
		assert.Equal(t, model.Categories[i], info.Category)
		assert.False(t, info.HasID)
	}
}
