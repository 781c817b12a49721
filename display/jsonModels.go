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
	"wwise-ids/integrity"
	"wwise-ids/model"
)

type JsonTable struct {
	MessageType string `json:"message_type" yaml:"message_type"`

	Source   string          `json:"source" yaml:"source"`
	Count    int             `json:"count" yaml:"count"`
	Sections []model.Section `json:"sections" yaml:"sections"`
}

type JsonReport struct {
	MessageType string `json:"message_type" yaml:"message_type"`

	Source   string              `json:"source" yaml:"source"`
	Problems []integrity.Problem `json:"problems" yaml:"problems"`
	Warnings []integrity.Problem `json:"warnings" yaml:"warnings"`
}

type JsonChanges struct {
	MessageType string `json:"message_type" yaml:"message_type"`

	Old     string             `json:"old" yaml:"old"`
	New     string             `json:"new" yaml:"new"`
	Changes []integrity.Change `json:"changes" yaml:"changes"`
}

type JsonCall struct {
	Op         string `json:"op" yaml:"op"`
	ID         uint32 `json:"id" yaml:"id"`
	Value      uint32 `json:"value,omitempty" yaml:"value,omitempty"`
	GameObject uint64 `json:"game_object" yaml:"game_object"`
	Known      bool   `json:"known" yaml:"known"`
}

type JsonSimulation struct {
	MessageType string `json:"message_type" yaml:"message_type"`

	Calls    []JsonCall `json:"calls" yaml:"calls"`
	Warnings int        `json:"warnings" yaml:"warnings"`
}
