// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rawrasaur/aventine-simd/simd"
)

// declNames lists the top-level declarations of a Go source file, methods
// as Recv.Name with the receiver's type parameters dropped.
func declNames(t *testing.T, filename string, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse %s: %v", filename, err)
	}
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				recv := d.Recv.List[0].Type
				if idx, ok := recv.(*ast.IndexListExpr); ok {
					recv = idx.X
				}
				if idx, ok := recv.(*ast.IndexExpr); ok {
					recv = idx.X
				}
				name = recv.(*ast.Ident).Name + "." + name
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	slices.Sort(names)
	return names
}

func TestGeneratedSourcesParse(t *testing.T) {
	g := &Generator{}
	for _, f := range g.files() {
		t.Run(filepath.Base(f.path), func(t *testing.T) {
			src, err := format(f.path, f.src)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if !bytes.HasPrefix(src, []byte(generatedHeader)) {
				t.Errorf("missing generated header")
			}
			if len(declNames(t, f.path, src)) == 0 {
				t.Errorf("no declarations")
			}
		})
	}
}

func TestGeneratedDecls(t *testing.T) {
	g := &Generator{}
	want := map[string][]string{
		"vectors_int.gen.go": {
			"IntVec16", "IntVec3.Select", "IntVec2.Bitselect", "IntVec8.ShrScalar",
			"IntVec4.ToFloat64Sat", "IntVec16.All",
		},
		"vectors_uint.gen.go": {
			"UintVec2", "UintVec8.Rem", "UintVec16.ToInt8Sat", "UintVec3.Hi",
		},
		"vectors_float.gen.go": {
			"FloatVec2.Cross", "FloatVec3.Cross", "FloatVec4.Refract",
			"FloatVec16.Smoothstep", "FloatVec8.Lo", "FloatVec2.ToUint64Sat",
		},
		"aliases.gen.go": {
			"Float32x4", "Int8x16", "Uint64x3", "BroadcastFloat64x8", "LoadUint16x2Slice",
		},
		"matrices.gen.go": {
			"Mat2x2.Inverse", "Mat4x4.InverseChecked", "Mat3x3.Determinant",
			"Mat2x4.DotMat4", "Mat4x2.DotMat2", "Mat3x4.Transpose", "FromRows4x3",
			"Float32x4x4", "Float64x2x3",
		},
	}
	absent := map[string][]string{
		"vectors_uint.gen.go":  {"UintVec4.Select", "UintVec4.Bitselect"},
		"vectors_float.gen.go": {"FloatVec4.Cross", "FloatVec8.And", "FloatVec4.Shl"},
		"matrices.gen.go":      {"Mat2x3.Inverse", "Mat4x3.Identity", "Mat3x2.Mul"},
	}
	for _, f := range g.files() {
		base := filepath.Base(f.path)
		names := declNames(t, f.path, f.src)
		for _, n := range want[base] {
			if _, ok := slices.BinarySearch(names, n); !ok {
				t.Errorf("%s: missing %s", base, n)
			}
		}
		for _, n := range absent[base] {
			if _, ok := slices.BinarySearch(names, n); ok {
				t.Errorf("%s: unexpected %s", base, n)
			}
		}
	}
}

// The checked-in files declare exactly what the generator emits.
func TestCheckedInFilesInSync(t *testing.T) {
	g := &Generator{}
	for _, f := range g.files() {
		path := filepath.Join("..", "..", f.path)
		old, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		got, want := declNames(t, f.path, f.src), declNames(t, path, old)
		if !slices.Equal(got, want) {
			t.Errorf("%s: generator emits %d declarations, file has %d; run go generate ./...",
				f.path, len(got), len(want))
		}
	}
}

func TestAliasName(t *testing.T) {
	tests := []struct {
		k    laneKind
		n    int
		want string
	}{
		{kindFloat32, 4, "Float32x4"},
		{kindUint8, 16, "Uint8x16"},
		{kindInt64, 2, "Int64x2"},
		{kindFloat64, 3, "Float64x3"},
	}
	for _, tt := range tests {
		if got := aliasName(tt.k, tt.n); got != tt.want {
			t.Errorf("aliasName(%v, %d) = %q, want %q", tt.k, tt.n, got, tt.want)
		}
	}
	if got := classOf(kindUint32).typeName; got != "UintVec" {
		t.Errorf("classOf(uint32) = %q", got)
	}
}

func TestKindTableMatchesSimd(t *testing.T) {
	want := simd.Kinds()
	if len(laneKinds) != len(want) {
		t.Fatalf("generator knows %d kinds, simd has %d", len(laneKinds), len(want))
	}
	for i, k := range laneKinds {
		w := want[i]
		if k.String() != w.String() || k.bits != w.Bits() {
			t.Errorf("kind %d: generator has %s/%d, simd has %s/%d", i, k, k.bits, w, w.Bits())
		}
		if k.signed().String() != w.Signed().String() {
			t.Errorf("%s: mask kind %s, simd says %s", k, k.signed(), w.Signed())
		}
	}
}

// The generator must build even when the generated files are stale.
func TestGeneratorDoesNotImportSimd(t *testing.T) {
	pkgs, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range pkgs {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(token.NewFileSet(), name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatal(err)
		}
		for _, imp := range f.Imports {
			if strings.HasPrefix(strings.Trim(imp.Path.Value, `"`), modulePath+"/") {
				t.Errorf("%s imports %s", name, imp.Path.Value)
			}
		}
	}
}

func TestDivDocPerClass(t *testing.T) {
	for _, c := range vectorClasses() {
		src := string(emitVectorClass(c, []int{4}))
		panics := strings.Contains(src, "panic on division by zero")
		if want := c.bit != classFloat; panics != want {
			t.Errorf("%s: division-by-zero panic documented = %v, want %v", c.typeName, panics, want)
		}
		if c.bit == classFloat && !strings.Contains(src, "Float lanes follow IEEE-754") {
			t.Errorf("%s: Div doc lacks IEEE-754 note", c.typeName)
		}
	}
}

func TestAppliesTo(t *testing.T) {
	mt := m("Cross", classFloat, "", "").only(2, 3)
	if !mt.appliesTo(classFloat, 3) || mt.appliesTo(classFloat, 4) || mt.appliesTo(classInt, 3) {
		t.Error("width or class restriction ignored")
	}
	if !m("And", integerClasses, "", "").appliesTo(classUint, 16) {
		t.Error("integer method not generated for unsigned vectors")
	}
}

func TestRunWriteThenCheck(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"simd", "mat"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	run := func(args ...string) (string, error) {
		cmd := newRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	if _, err := run("--check", "--out", dir); err == nil {
		t.Fatal("--check passed on an empty directory")
	}
	out, err := run("--dry-run", "--out", dir)
	if err != nil {
		t.Fatalf("--dry-run: %v", err)
	}
	if !strings.Contains(out, "matrices.gen.go") {
		t.Errorf("--dry-run output lacks matrices.gen.go:\n%s", out)
	}
	if entries, _ := os.ReadDir(filepath.Join(dir, "simd")); len(entries) != 0 {
		t.Errorf("--dry-run wrote %d files", len(entries))
	}

	if _, err := run("--out", dir); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := run("--check", "--out", dir); err != nil {
		t.Errorf("--check after write: %v", err)
	}
	if _, err := run("--check", "--dry-run"); err == nil {
		t.Error("--check and --dry-run accepted together")
	}
}
