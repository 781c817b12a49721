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
// Package header reads the Wwise_IDs.h file the Wwise authoring tool writes
// next to its generated sound banks.
package header

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"wwise-ids/model"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

const (
	rootNamespace  = "AK"
	groupConstant  = "GROUP"
	uniqueIDType   = "AkUniqueID"
	namespaceScope = "::"
)

var (
	ErrSyntax            = errors.New("header syntax error")
	ErrUnknownCategory   = errors.New("unknown category namespace")
	ErrUnexpectedNesting = errors.New("unexpected namespace nesting")
	ErrBadLiteral        = errors.New("invalid unique id literal")
	ErrOrphanValue       = errors.New("group value without a GROUP id")
	ErrDuplicateGroup    = errors.New("GROUP id declared twice")
)

type declaration struct {
	path  []string
	name  string
	value string
	line  int
}

type groupBuilder struct {
	name   string
	id     model.UniqueID
	hasID  bool
	idLine int
	line   int
	values []model.Entry
}

// Parser turns header source into a table. A Parser is not safe for
// concurrent use; create one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())

	return &Parser{
		parser: parser,
	}
}

func (p *Parser) Close() {
	p.parser.Close()
}

// ParseFile reads and parses a header from disk.
func ParseFile(ctx context.Context, path string) (*model.Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := NewParser()
	defer p.Close()

	table, err := p.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// Parse reads every AkUniqueID declared under the AK namespace. The returned
// table is in canonical order.
func (p *Parser) Parse(ctx context.Context, src []byte) (*model.Table, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			return nil, fmt.Errorf("line %d: %w", bad.StartPoint().Row+1, ErrSyntax)
		}
		return nil, ErrSyntax
	}

	var declarations []declaration
	if err := collect(root, src, nil, &declarations); err != nil {
		return nil, err
	}

	table, err := build(declarations)
	if err != nil {
		return nil, err
	}

	slog.Debug(fmt.Sprintf("header: parsed %d declarations into %d identifiers", len(declarations), table.Count()))
	return table, nil
}

//
// tree walking
//

func firstError(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if bad := firstError(node.Child(i)); bad != nil {
			return bad
		}
	}

	return nil
}

func collect(node *sitter.Node, src []byte, path []string, out *[]declaration) error {
	switch node.Type() {
	case "namespace_definition":
		nested := path
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			for _, part := range strings.Split(nameNode.Content(src), namespaceScope) {
				nested = append(extendPath(nested), strings.TrimSpace(part))
			}
		}

		if len(nested) == 2 && nested[0] == rootNamespace {
			if _, ok := model.CategoryByNamespace(nested[1]); !ok {
				return fmt.Errorf("line %d: %w: %s", node.StartPoint().Row+1, ErrUnknownCategory, nested[1])
			}
		}

		if body := node.ChildByFieldName("body"); body != nil {
			return collect(body, src, nested, out)
		}
		return nil

	case "declaration":
		decl, ok := readDeclaration(node, src)
		if !ok {
			slog.Debug(fmt.Sprintf("header: skipping declaration on line %d", node.StartPoint().Row+1))
			return nil
		}

		decl.path = path
		*out = append(*out, decl)
		return nil
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		if err := collect(node.NamedChild(i), src, path, out); err != nil {
			return err
		}
	}

	return nil
}

// extendPath copies a namespace path so sibling namespaces never share a backing array.
func extendPath(path []string) []string {
	return append(make([]string, 0, len(path)+1), path...)
}

func readDeclaration(node *sitter.Node, src []byte) (declaration, bool) {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil || typeNode.Content(src) != uniqueIDType {
		return declaration{}, false
	}

	init := node.ChildByFieldName("declarator")
	if init == nil || init.Type() != "init_declarator" {
		return declaration{}, false
	}

	nameNode := init.ChildByFieldName("declarator")
	valueNode := init.ChildByFieldName("value")
	if nameNode == nil || valueNode == nil {
		return declaration{}, false
	}

	return declaration{
		name:  nameNode.Content(src),
		value: valueNode.Content(src),
		line:  int(node.StartPoint().Row) + 1,
	}, true
}

//
// table building
//

func parseLiteral(literal string) (model.UniqueID, error) {
	digits := strings.TrimRight(literal, "uUlL")

	value, err := strconv.ParseUint(digits, 0, 32)
	if err != nil {
		return 0, err
	}

	return model.UniqueID(value), nil
}

func build(declarations []declaration) (*model.Table, error) {
	table := &model.Table{}

	groups := make(map[model.Category][]*groupBuilder)
	findGroup := func(category model.Category, name string) *groupBuilder {
		for _, group := range groups[category] {
			if group.name == name {
				return group
			}
		}

		group := &groupBuilder{name: name}
		groups[category] = append(groups[category], group)
		return group
	}

	for _, decl := range declarations {
		if len(decl.path) < 2 || decl.path[0] != rootNamespace {
			slog.Debug(fmt.Sprintf("header: ignoring %s outside of a category on line %d", decl.name, decl.line))
			continue
		}

		category, ok := model.CategoryByNamespace(decl.path[1])
		if !ok {
			return nil, fmt.Errorf("line %d: %w: %s", decl.line, ErrUnknownCategory, decl.path[1])
		}

		id, err := parseLiteral(decl.value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %s", decl.line, ErrBadLiteral, decl.value)
		}

		depth := len(decl.path)

		switch {
		case !category.Grouped() && depth == 2:
			table.AddEntry(category, decl.name, id)

		case category.Grouped() && depth == 3 && decl.name == groupConstant:
			group := findGroup(category, decl.path[2])
			if group.hasID {
				return nil, fmt.Errorf("lines %d and %d: %w: %s::%s", group.idLine, decl.line, ErrDuplicateGroup, category, group.name)
			}
			group.id = id
			group.hasID = true
			group.idLine = decl.line

		case category.Grouped() && depth == 4 && decl.path[3] == category.ValueNamespace():
			group := findGroup(category, decl.path[2])
			group.values = append(group.values, model.Entry{Name: decl.name, ID: id})
			if group.line == 0 {
				group.line = decl.line
			}

		default:
			return nil, fmt.Errorf("line %d: %w: %s", decl.line, ErrUnexpectedNesting, strings.Join(append(extendPath(decl.path), decl.name), namespaceScope))
		}
	}

	for _, category := range model.Categories {
		for _, group := range groups[category] {
			if !group.hasID {
				return nil, fmt.Errorf("line %d: %w: %s::%s", group.line, ErrOrphanValue, category, group.name)
			}

			table.AddGroup(category, model.Group{
				Name:   group.name,
				ID:     group.id,
				Values: group.values,
			})
		}
	}

	table.Sort()
	return table, nil
}
