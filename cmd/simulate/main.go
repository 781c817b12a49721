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
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"wwise-ids/ak"
	"wwise-ids/app"
	"wwise-ids/display"
	"wwise-ids/engine"
	"wwise-ids/engine/game"
	"wwise-ids/header"
	"wwise-ids/model"
	"wwise-ids/reaper"
	"wwise-ids/shared"
	"wwise-ids/util"

	"github.com/spf13/cobra"
)

const playerObject engine.GameObject = 100

var (
	// arguments
	args        = &model.CommandLineArgs{}
	argRepeat   int
	argInterval time.Duration

	rootCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Replay the game's sound calls against a silent engine",
		Long: `Replay the sound calls the game makes, compiled against the built in
constants, on an engine that has loaded the identifiers of --header. Calls
using identifiers the header no longer declares are reported as warnings.
Without --header the built in table is loaded.`,

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := util.ReadConfig(args)
			if err != nil {
				slog.Error(err.Error())
				return err
			}

			app.ConfigureLogger(config)

			loaded := ak.Manifest()
			if args.Header != "" {
				loaded, err = header.ParseFile(cmd.Context(), config.Header)
				if err != nil {
					return err
				}
			}

			soundEngine := engine.NewNullEngine(loaded)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			reaper.Callback("simulation", cancel)
			shared.CatchSigint(func() {
				slog.Info("Caught sigint, calling reaper")
				reaper.Reap()
			})

			session := &game.Session{Engine: soundEngine, Player: playerObject}
			if err := session.Run(ctx, argRepeat, argInterval); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return display.NewPrinter(os.Stdout, config.OutputType).PrintSimulation(soundEngine.Calls(), soundEngine.Warnings())
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&args.ConfigFile, "config", "c", "", "Path of the config file (default "+util.DefaultConfigFile+" if present)")
	rootCmd.Flags().StringVar(&args.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().StringVarP(&args.OutputType, "output", "o", "", "Output type: text, json or yaml")
	rootCmd.Flags().StringVarP(&args.Header, "header", "H", "", "Load this header into the engine instead of the built in table")
	rootCmd.Flags().IntVar(&argRepeat, "repeat", 1, "Number of times to play the script")
	rootCmd.Flags().DurationVar(&argInterval, "interval", 150*time.Millisecond, "Pause between repeats")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
