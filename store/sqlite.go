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
// Package store exports identifier tables to SQLite files for tools that
// cannot link Go code, and reads them back.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"wwise-ids/model"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE value_groups (
		category TEXT NOT NULL,
		name     TEXT NOT NULL,
		id       INTEGER NOT NULL,
		PRIMARY KEY (category, name)
	)`,
	`CREATE TABLE entries (
		category TEXT NOT NULL,
		grp      TEXT NOT NULL DEFAULT '',
		name     TEXT NOT NULL,
		id       INTEGER NOT NULL,
		PRIMARY KEY (category, grp, name)
	)`,
	`CREATE INDEX entries_id ON entries (id)`,
}

var ErrUnknownCategory = errors.New("unknown category in store")

// Export writes the table to a new SQLite file at path. Any previous file is
// replaced whole once the new one is complete.
func Export(ctx context.Context, path string, table *model.Table) error {
	tmpPath := path + ".tmp"
	os.Remove(tmpPath)

	if err := write(ctx, tmpPath, table); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	slog.Info(fmt.Sprintf("Exported %d identifiers to %s", table.Count(), path))
	return nil
}

func write(ctx context.Context, path string, table *model.Table) error {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, section := range table.Sections {
		category := section.Category.String()

		for _, entry := range section.Entries {
			if _, err := tx.ExecContext(ctx, `INSERT INTO entries (category, grp, name, id) VALUES (?, '', ?, ?)`, category, entry.Name, int64(entry.ID)); err != nil {
				return fmt.Errorf("inserting %s::%s: %w", category, entry.Name, err)
			}
		}

		for _, group := range section.Groups {
			if _, err := tx.ExecContext(ctx, `INSERT INTO value_groups (category, name, id) VALUES (?, ?, ?)`, category, group.Name, int64(group.ID)); err != nil {
				return fmt.Errorf("inserting %s::%s: %w", category, group.Name, err)
			}

			for _, value := range group.Values {
				if _, err := tx.ExecContext(ctx, `INSERT INTO entries (category, grp, name, id) VALUES (?, ?, ?, ?)`, category, group.Name, value.Name, int64(value.ID)); err != nil {
					return fmt.Errorf("inserting %s::%s::%s: %w", category, group.Name, value.Name, err)
				}
			}
		}
	}

	return tx.Commit()
}

// Load reads a table previously written by Export.
func Load(ctx context.Context, path string) (*model.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	type groupKey struct {
		category model.Category
		name     string
	}

	groups := make(map[groupKey]*model.Group)
	order := make([]groupKey, 0)

	rows, err := db.QueryContext(ctx, `SELECT category, name, id FROM value_groups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryName, name string
		var id int64
		if err := rows.Scan(&categoryName, &name, &id); err != nil {
			return nil, err
		}

		category, ok := model.CategoryByNamespace(categoryName)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryName)
		}

		key := groupKey{category, name}
		groups[key] = &model.Group{Name: name, ID: model.UniqueID(id)}
		order = append(order, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	table := &model.Table{}

	entryRows, err := db.QueryContext(ctx, `SELECT category, grp, name, id FROM entries`)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var categoryName, groupName, name string
		var id int64
		if err := entryRows.Scan(&categoryName, &groupName, &name, &id); err != nil {
			return nil, err
		}

		category, ok := model.CategoryByNamespace(categoryName)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryName)
		}

		if groupName == "" {
			table.AddEntry(category, name, model.UniqueID(id))
			continue
		}

		group, ok := groups[groupKey{category, groupName}]
		if !ok {
			return nil, fmt.Errorf("value %s::%s::%s has no group row", categoryName, groupName, name)
		}
		group.Values = append(group.Values, model.Entry{Name: name, ID: model.UniqueID(id)})
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	for _, key := range order {
		table.AddGroup(key.category, *groups[key])
	}

	table.Sort()
	return table, nil
}
