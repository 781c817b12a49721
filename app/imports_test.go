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
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	modulePath = "wwise-ids"
	moduleRoot = ".."
)

// packageImports lists the module-local imports of the non-test files in a
// package directory.
func packageImports(t *testing.T, pkg string) []string {
	t.Helper()

	dir := filepath.Join(moduleRoot, strings.TrimPrefix(strings.TrimPrefix(pkg, modulePath), "/"))
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no Go files for %s", pkg)

	local := make([]string, 0)
	fset := token.NewFileSet()

	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}

		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		require.NoError(t, err)

		for _, imp := range parsed.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)

			if path == modulePath || strings.HasPrefix(path, modulePath+"/") {
				local = append(local, path)
			}
		}
	}

	return local
}

// The generator must build while the generated package is broken, so
// nothing reachable from the wwise-ids binary may import ak.
func TestGeneratorDoesNotImportGeneratedPackage(t *testing.T) {
	generated := modulePath + "/ak"

	seen := map[string]string{modulePath: ""}
	queue := []string{modulePath}

	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]

		for _, imported := range packageImports(t, pkg) {
			if imported == generated {
				chain := []string{generated, pkg}
				for from := seen[pkg]; from != ""; from = seen[from] {
					chain = append(chain, from)
				}
				t.Fatalf("%s is reachable from the generator: %s", generated, strings.Join(chain, " <- "))
			}

			if _, ok := seen[imported]; !ok {
				seen[imported] = pkg
				queue = append(queue, imported)
			}
		}
	}

	require.Contains(t, seen, modulePath+"/app")
	require.Contains(t, seen, modulePath+"/codegen")
}
