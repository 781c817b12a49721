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
package util

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"wwise-ids/model"
)

const (
	DefaultConfigFile = "wwise-ids.yml"
	DefaultHeader     = "GeneratedSoundBanks/Wwise_IDs.h"
	DefaultOutput     = "ak/wwise_ids.go"
	DefaultPackage    = "ak"
	DefaultDebounceMs = 500
)

func DefaultConfig() *model.Config {
	return &model.Config{
		Header:     DefaultHeader,
		Output:     DefaultOutput,
		Package:    DefaultPackage,
		SqlitePath: "",
		LogLevel:   model.LogLevel(slog.LevelInfo),
		OutputType: model.OutputText,
		WatchOptions: &model.WatchOptions{
			DebounceMilliseconds: DefaultDebounceMs,
			RunOnStart:           true,
		},
	}
}

// ReadConfig builds the effective configuration: defaults, then the yaml
// config file, then anything given on the command line.
func ReadConfig(args *model.CommandLineArgs) (*model.Config, error) {
	outputTypes := make([]string, 0, len(model.OutputTypeMap))
	for key := range model.OutputTypeMap {
		outputTypes = append(outputTypes, key)
	}
	slices.Sort(outputTypes)

	if args.OutputType != "" && !slices.Contains(outputTypes, strings.ToLower(args.OutputType)) {
		return nil, errors.New("invalid output type specified: " + args.OutputType + ". Valid options: " + strings.Join(outputTypes, ", "))
	}

	config := DefaultConfig()

	configFile := args.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile
	}

	if err := ReadYamlFile(config, configFile); err != nil {
		if explicit || !errors.Is(err, ErrNoYamlFile) {
			return nil, err
		}
		slog.Debug("No config file found, using defaults")
	}

	if config.WatchOptions == nil {
		config.WatchOptions = DefaultConfig().WatchOptions
	}

	if config.WatchOptions.DebounceMilliseconds <= 0 {
		config.WatchOptions.DebounceMilliseconds = DefaultDebounceMs
	}

	if args.OutputType != "" {
		config.OutputType = model.OutputTypeMap[strings.ToLower(args.OutputType)]
	}

	if args.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(args.LogLevel)); err != nil {
			return nil, errors.New("invalid log level specified: " + args.LogLevel)
		}
		config.LogLevel = model.LogLevel(level)
	}

	if args.Header != "" {
		config.Header = args.Header
	}

	if args.Output != "" {
		config.Output = args.Output
	}

	if args.Package != "" {
		config.Package = args.Package
	}

	for _, value := range []*string{&config.Header, &config.Output, &config.SqlitePath} {
		resolved, err := ResolveHomeDirPath(*value)
		if err != nil {
			return nil, err
		}
		*value = resolved
	}

	return config, nil
}
