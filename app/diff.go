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
	"fmt"
	"os"

	"wwise-ids/display"
	"wwise-ids/integrity"

	"github.com/spf13/cobra"
)

var (
	argFailOnStale bool

	diffCmd = &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Show identifiers added, removed or renumbered between two generations",
		Long: `Compare two headers, or SQLite exports of them. Removed and renumbered
identifiers are the ones compiled code may still be using.`,
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, paths []string) error {
			previous, err := loadTable(cmd.Context(), paths[0])
			if err != nil {
				return err
			}

			current, err := loadTable(cmd.Context(), paths[1])
			if err != nil {
				return err
			}

			changes := integrity.Diff(previous, current)

			if err := display.NewPrinter(os.Stdout, config.OutputType).PrintChanges(paths[0], paths[1], changes); err != nil {
				return err
			}

			stale := 0
			for _, change := range changes {
				if change.Kind != integrity.Added {
					stale++
				}
			}

			if argFailOnStale && stale > 0 {
				return fmt.Errorf("%d identifiers were removed or renumbered", stale)
			}

			return nil
		},
	}
)

func init() {
	diffCmd.Flags().BoolVar(&argFailOnStale, "fail-on-stale", false, "Exit non-zero when identifiers were removed or renumbered")

	rootCmd.AddCommand(diffCmd)
}
