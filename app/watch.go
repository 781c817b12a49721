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
	"log/slog"
	"time"

	"wwise-ids/reaper"
	"wwise-ids/shared"
	"wwise-ids/watch"

	"github.com/spf13/cobra"
)

var (
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the Go constants whenever the header changes",

		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if config.WatchOptions.RunOnStart {
				if _, err := regenerate(ctx, config); err != nil {
					slog.Error("Initial generation failed: " + err.Error())
				}
			}

			debounce := time.Duration(config.WatchOptions.DebounceMilliseconds) * time.Millisecond
			watcher, err := watch.New(config.Header, debounce, func(ctx context.Context, _ string) error {
				_, err := regenerate(ctx, config)
				return err
			})
			if err != nil {
				return err
			}

			if err := watcher.Start(ctx); err != nil {
				return err
			}

			reaper.Register("watch")
			reaper.Callback("watch", func() {
				watcher.Stop()

				stats := watcher.Stats()
				slog.Info("Stopped watching", "regenerations", stats.Regenerations, "errors", stats.Errors)
				reaper.Done("watch")
			})

			shared.CatchSigint(func() {
				slog.Info("Caught sigint, calling reaper")
				reaper.Reap()
			})

			reaper.Wait()
			return nil
		},
	}
)

func init() {
	watchCmd.Flags().StringVar(&args.Output, "out", "", "Path of the generated Go file")
	watchCmd.Flags().StringVar(&args.Package, "package", "", "Name of the generated Go package")

	rootCmd.AddCommand(watchCmd)
}
