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
	"runtime"

	"wwise-ids/display"
	"wwise-ids/integrity"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [header...]",
		Short: "Check one or more headers for duplicate names and id collisions",

		RunE: func(cmd *cobra.Command, paths []string) error {
			if len(paths) == 0 {
				paths = []string{config.Header}
			}

			reports := make([]integrity.Report, len(paths))

			group, ctx := errgroup.WithContext(cmd.Context())
			group.SetLimit(runtime.NumCPU())

			for i, path := range paths {
				group.Go(func() error {
					table, err := loadTable(ctx, path)
					if err != nil {
						return err
					}

					reports[i] = integrity.Check(table)
					return nil
				})
			}

			if err := group.Wait(); err != nil {
				return err
			}

			printer := display.NewPrinter(os.Stdout, config.OutputType)
			failed := 0

			for i, path := range paths {
				if err := printer.PrintReport(path, reports[i]); err != nil {
					return err
				}

				if len(reports[i].Problems) > 0 || (config.FailOnCrossCategory && len(reports[i].Warnings) > 0) {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d headers failed the check", failed, len(paths))
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
