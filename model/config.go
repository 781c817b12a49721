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
	"log/slog"
	"strings"
)

type OutputType int

const (
	OutputText OutputType = iota
	OutputJSON
	OutputYAML
)

var OutputTypeMap = map[string]OutputType{
	"text": OutputText,
	"json": OutputJSON,
	"yaml": OutputYAML,
}

// UnmarshalYAML reads an output type by name: text, json or yaml.
func (o *OutputType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	outputType, ok := OutputTypeMap[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("invalid output_type %q, valid options: text, json, yaml", name)
	}

	*o = outputType
	return nil
}

// LogLevel is a slog level, written by name (debug, info, warn, error) in
// the config file.
type LogLevel slog.Level

func (l *LogLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log_level %q", name)
	}

	*l = LogLevel(level)
	return nil
}

type CommandLineArgs struct {
	ConfigFile string
	LogLevel   string
	OutputType string

	Header  string
	Output  string
	Package string
}

type Config struct {
	Header     string     `yaml:"header,omitempty"`
	Output     string     `yaml:"output,omitempty"`
	Package    string     `yaml:"package,omitempty"`
	SqlitePath string     `yaml:"sqlite_path,omitempty"`
	LogLevel   LogLevel   `yaml:"log_level,omitempty"`
	OutputType OutputType `yaml:"output_type,omitempty"`

	// a cross-category ID collision is normally only a warning
	FailOnCrossCategory bool `yaml:"fail_on_cross_category,omitempty"`

	WatchOptions *WatchOptions `yaml:"watch"`
}

type WatchOptions struct {
	DebounceMilliseconds int  `yaml:"debounce_ms,omitempty"`
	RunOnStart           bool `yaml:"run_on_start,omitempty"`
}
