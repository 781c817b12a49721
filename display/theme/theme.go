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
package theme

import (
	"wwise-ids/model"

	"github.com/gdamore/tcell/v2"
)

const (
	Blue      = tcell.ColorBlue
	Green     = tcell.Color71
	Red       = tcell.Color124
	RedRGB    = "AF0000"
	SoftGreen = tcell.Color72
	Yellow    = tcell.Color142
	YellowRGB = "AFAF00"
	Gray      = tcell.ColorGray
	GrayRGB   = "808080"

	BorderColor = tcell.Color243
)

var categoryColors = map[model.Category]tcell.Color{
	model.CategoryEvents:       Green,
	model.CategoryStates:       Blue,
	model.CategorySwitches:     Blue,
	model.CategoryBusses:       Yellow,
	model.CategoryAuxBusses:    Yellow,
	model.CategoryAudioDevices: SoftGreen,
}

// CategoryColor is the tree color for a category, gray when it has none.
func CategoryColor(category model.Category) tcell.Color {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return Gray
}
