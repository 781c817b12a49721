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
	"log/slog"
	"os"

	"wwise-ids/display"
	"wwise-ids/model"
	"wwise-ids/shared"
)

// ConfigureLogger installs the default logger for the configured output
// type. Machine readable output gets machine readable logs.
func ConfigureLogger(config *model.Config) {
	if config.OutputType == model.OutputJSON {
		ConfigureJsonLogger(slog.Level(config.LogLevel))
		return
	}

	ConfigureTextLogger(slog.Level(config.LogLevel))
}

func ConfigureTextLogger(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func ConfigureJsonLogger(level slog.Level) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func ConfigureUiLogger(ui display.UI, level slog.Level) {
	handler := shared.NewUiLogHandler(ui, level, func(message string) {
		ui.IncrementErrorCount()
	})
	slog.SetDefault(slog.New(handler))
}
