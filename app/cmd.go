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

	"wwise-ids/model"
	"wwise-ids/util"

	"github.com/spf13/cobra"
)

var (
	// arguments
	args = &model.CommandLineArgs{}

	config *model.Config

	rootCmd = &cobra.Command{
		Use:   "wwise-ids",
		Short: "Turn a Wwise_IDs.h sound bank header into Go constants",
		Long: `wwise-ids reads the Wwise_IDs.h header that the Wwise authoring tool writes
next to its generated sound banks and turns it into a Go package of
constants, checks it for collisions, and reports what changed between
generations.`,

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			config, err = util.ReadConfig(args)
			if err != nil {
				slog.Error(err.Error())
				return err
			}

			ConfigureLogger(config)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&args.ConfigFile, "config", "c", "", "Path of the config file (default "+util.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&args.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&args.OutputType, "output", "o", "", "Output type: text, json or yaml")
	rootCmd.PersistentFlags().StringVarP(&args.Header, "header", "H", "", "Path of the Wwise_IDs.h header (default "+util.DefaultHeader+")")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
