package cellauto_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const licenseHeader = "// SPDX-License-Identifier: MIT\n"

// sourceFiles lists the module's non-test Go files outside hidden,
// underscore and testdata directories.
func sourceFiles(t *testing.T) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go") {
			out = append(out, path)
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	return out
}

// TestSources_LicenseHeader requires the SPDX line at the top of every
// source file except package doc files.
func TestSources_LicenseHeader(t *testing.T) {
	for _, path := range sourceFiles(t) {
		if filepath.Base(path) == "doc.go" {
			continue
		}
		src, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), licenseHeader), "%s lacks the license header", path)
	}
}

// TestSources_ExportedFuncsDocumented requires a doc comment on every
// exported function and on every exported method of an exported type.
func TestSources_ExportedFuncsDocumented(t *testing.T) {
	fset := token.NewFileSet()
	for _, path := range sourceFiles(t) {
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !fn.Name.IsExported() {
				continue
			}
			if fn.Recv != nil && !exportedReceiver(fn.Recv) {
				continue
			}
			assert.NotNil(t, fn.Doc, "%s: %s has no doc comment", fset.Position(fn.Pos()), fn.Name.Name)
		}
	}
}

// exportedReceiver reports whether a method's receiver type is exported.
func exportedReceiver(recv *ast.FieldList) bool {
	if len(recv.List) == 0 {
		return false
	}
	typ := recv.List[0].Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}
	if idx, ok := typ.(*ast.IndexExpr); ok {
		typ = idx.X
	}
	id, ok := typ.(*ast.Ident)

	return ok && id.IsExported()
}
