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
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"wwise-ids/codegen"
	"wwise-ids/header"
	"wwise-ids/integrity"
	"wwise-ids/model"
	"wwise-ids/store"
)

// loadTable reads a table from a header, or from a SQLite export when the
// file extension says so.
func loadTable(ctx context.Context, path string) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return store.Load(ctx, path)
	}

	return header.ParseFile(ctx, path)
}

// checkTable logs warnings and returns an error for anything that must stop
// a generation.
func checkTable(config *model.Config, source string, table *model.Table) error {
	report := integrity.Check(table)

	for _, warning := range report.Warnings {
		slog.Warn(source + ": " + warning.Error())
	}

	if err := report.Err(); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	if config.FailOnCrossCategory && len(report.Warnings) > 0 {
		return fmt.Errorf("%s: %d ids shared across categories: %w", source, len(report.Warnings), integrity.ErrCrossCategory)
	}

	return nil
}

// regenerate runs the whole header to Go pipeline and reports whether the
// output file changed.
func regenerate(ctx context.Context, config *model.Config) (bool, error) {
	table, err := header.ParseFile(ctx, config.Header)
	if err != nil {
		return false, err
	}

	if err := checkTable(config, config.Header, table); err != nil {
		return false, err
	}

	src, err := codegen.Generate(table, codegen.Options{
		Package: config.Package,
		Source:  config.Header,
	})
	if err != nil {
		return false, err
	}

	changed, err := codegen.WriteFile(config.Output, src)
	if err != nil {
		return false, err
	}

	if changed {
		slog.Info(fmt.Sprintf("Wrote %d identifiers to %s", table.Count(), config.Output))
	} else {
		slog.Info(config.Output + " is up to date")
	}

	if config.SqlitePath != "" {
		if err := store.Export(ctx, config.SqlitePath, table); err != nil {
			return changed, err
		}
	}

	return changed, nil
}
