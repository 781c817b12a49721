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
	"path/filepath"

	"wwise-ids/display"
	"wwise-ids/header"
	"wwise-ids/reaper"
	"wwise-ids/shared"

	"github.com/spf13/cobra"
)

var (
	browseCmd = &cobra.Command{
		Use:   "browse",
		Short: "Browse the header's identifiers in a terminal UI",

		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := header.ParseFile(cmd.Context(), config.Header)
			if err != nil {
				return err
			}

			browser := display.NewBrowser()
			browser.Initialize(filepath.Base(config.Header), table)
			browser.Start()
			reaper.Callback("browser", browser.Shutdown)

			ConfigureUiLogger(browser, slog.Level(config.LogLevel))

			restoreOutput, err := shared.CaptureOutput()
			if err != nil {
				slog.Warn("Could not capture stdout: " + err.Error())
				restoreOutput = func() {}
			}

			shared.CatchSigint(func() {
				slog.Info("Caught sigint, calling reaper")
				reaper.Reap()
			})

			if err := checkTable(config, config.Header, table); err != nil {
				slog.Error(err.Error())
			}

			reaper.Wait()
			restoreOutput()
			ConfigureLogger(config)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(browseCmd)
}
