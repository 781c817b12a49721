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
	"errors"

	"wwise-ids/header"
	"wwise-ids/store"

	"github.com/spf13/cobra"
)

var (
	argDatabase string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the header's identifiers to a SQLite database",

		RunE: func(cmd *cobra.Command, _ []string) error {
			path := argDatabase
			if path == "" {
				path = config.SqlitePath
			}

			if path == "" {
				return errors.New("no database path given, use --db or sqlite_path in the config")
			}

			table, err := header.ParseFile(cmd.Context(), config.Header)
			if err != nil {
				return err
			}

			if err := checkTable(config, config.Header, table); err != nil {
				return err
			}

			return store.Export(cmd.Context(), path, table)
		},
	}
)

func init() {
	exportCmd.Flags().StringVar(&argDatabase, "db", "", "Path of the SQLite database to write")

	rootCmd.AddCommand(exportCmd)
}
