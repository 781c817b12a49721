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
// Package codegen writes the identifier table as Go source.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"wwise-ids/model"
)

const DefaultModelImport = "wwise-ids/model"

var (
	ErrIdentifierClash   = errors.New("identifier clash")
	ErrInvalidIdentifier = errors.New("invalid go identifier")
)

type Options struct {
	// Package is the name of the generated package.
	Package string
	// Source is recorded in the generated header. Only the base name is
	// used so the output does not depend on where the header lives.
	Source string
	// ModelImport is the import path of the model package.
	ModelImport string
}

type generator struct {
	buf    bytes.Buffer
	idents map[string]string
}

// Generate renders the table as a gofmt'd Go file. The same table always
// produces the same bytes.
func Generate(table *model.Table, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "ak"
	}

	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidIdentifier, opts.Package)
	}

	if opts.ModelImport == "" {
		opts.ModelImport = DefaultModelImport
	}

	source := "Wwise_IDs.h"
	if opts.Source != "" {
		source = filepath.Base(opts.Source)
	}

	sorted := *table
	sorted.Sections = cloneSections(table.Sections)
	sorted.Sort()

	g := &generator{idents: make(map[string]string)}

	g.printf("// Code generated by wwise-ids from %s. DO NOT EDIT.\n\n", source)
	g.printf("// Package %s holds the sound engine identifiers of a Wwise project.\n", opts.Package)
	g.printf("package %s\n\n", opts.Package)
	g.printf("import %q\n\n", opts.ModelImport)
	g.printf("// UniqueID identifies an object in a loaded sound bank.\n")
	g.printf("type UniqueID = model.UniqueID\n")

	for _, section := range sorted.Sections {
		if err := g.constants(section); err != nil {
			return nil, err
		}
	}

	g.manifest(&sorted)

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return src, nil
}

// WriteFile writes src to path unless the file already holds exactly src.
// It reports whether the file changed.
func WriteFile(path string, src []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, src) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(path, src, 0644); err != nil {
		return false, err
	}

	return true, nil
}

//
// private functions
//

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) declare(category model.Category, parts ...string) (string, error) {
	ident, err := Identifier(category, parts...)
	if err != nil {
		return "", err
	}

	owner := category.String() + "::" + strings.Join(parts, "::")
	if previous, ok := g.idents[ident]; ok {
		return "", fmt.Errorf("%w: %s and %s both become %s", ErrIdentifierClash, previous, owner, ident)
	}
	g.idents[ident] = owner

	return ident, nil
}

func (g *generator) constants(section model.Section) error {
	if len(section.Entries) > 0 {
		g.printf("\n// %s\nconst (\n", section.Category)

		for _, entry := range section.Entries {
			ident, err := g.declare(section.Category, entry.Name)
			if err != nil {
				return err
			}
			g.printf("%s UniqueID = %d\n", ident, entry.ID)
		}

		g.printf(")\n")
	}

	for _, group := range section.Groups {
		g.printf("\n// %s::%s\nconst (\n", section.Category, group.Name)

		ident, err := g.declare(section.Category, group.Name, "GROUP")
		if err != nil {
			return err
		}
		g.printf("%s UniqueID = %d\n", ident, group.ID)

		for _, value := range group.Values {
			ident, err := g.declare(section.Category, group.Name, value.Name)
			if err != nil {
				return err
			}
			g.printf("%s UniqueID = %d\n", ident, value.ID)
		}

		g.printf(")\n")
	}

	return nil
}

func (g *generator) manifest(table *model.Table) {
	g.printf("\n// Manifest describes every identifier above, grouped the way the header\n")
	g.printf("// groups them. Each call returns a new table.\n")
	g.printf("func Manifest() *model.Table {\n")
	g.printf("table := &model.Table{}\n")

	for _, section := range table.Sections {
		g.printf("\n")
		for _, entry := range section.Entries {
			ident, _ := Identifier(section.Category, entry.Name)
			g.printf("table.AddEntry(%s, %q, %s)\n", categoryConstant(section.Category), entry.Name, ident)
		}

		for _, group := range section.Groups {
			groupIdent, _ := Identifier(section.Category, group.Name, "GROUP")

			if len(group.Values) == 0 {
				g.printf("table.AddGroup(%s, model.Group{Name: %q, ID: %s})\n", categoryConstant(section.Category), group.Name, groupIdent)
				continue
			}

			g.printf("table.AddGroup(%s, model.Group{Name: %q, ID: %s, Values: []model.Entry{\n", categoryConstant(section.Category), group.Name, groupIdent)
			for _, value := range group.Values {
				ident, _ := Identifier(section.Category, group.Name, value.Name)
				g.printf("{Name: %q, ID: %s},\n", value.Name, ident)
			}
			g.printf("}})\n")
		}
	}

	g.printf("\nreturn table\n}\n")
}

var categoryConstants = map[model.Category]string{
	model.CategoryEvents:          "model.CategoryEvents",
	model.CategoryStates:          "model.CategoryStates",
	model.CategorySwitches:        "model.CategorySwitches",
	model.CategoryGameParameters:  "model.CategoryGameParameters",
	model.CategoryTriggers:        "model.CategoryTriggers",
	model.CategoryArguments:       "model.CategoryArguments",
	model.CategoryBanks:           "model.CategoryBanks",
	model.CategoryBusses:          "model.CategoryBusses",
	model.CategoryAuxBusses:       "model.CategoryAuxBusses",
	model.CategoryAudioDevices:    "model.CategoryAudioDevices",
	model.CategoryExternalSources: "model.CategoryExternalSources",
}

func categoryConstant(category model.Category) string {
	return categoryConstants[category]
}

func cloneSections(sections []model.Section) []model.Section {
	cloned := make([]model.Section, len(sections))

	for i, section := range sections {
		cloned[i] = model.Section{
			Category: section.Category,
			Entries:  append([]model.Entry(nil), section.Entries...),
			Groups:   make([]model.Group, len(section.Groups)),
		}

		for j, group := range section.Groups {
			group.Values = append([]model.Entry(nil), group.Values...)
			cloned[i].Groups[j] = group
		}

		if len(section.Groups) == 0 {
			cloned[i].Groups = nil
		}
	}

	return cloned
}
