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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Placeholders available to vector method templates:
//
//	{V}   the vector type, e.g. FloatVec4[T, M]
//	{M}   its mask type, e.g. IntVec4[M]
//	{H}   the half-width vector type, or T for 2-lane vectors
//	{R3}  the 3-lane vector of the same family
//	{N}   the lane count, {N2} half of it
//
// Matrix templates use {X} (the matrix), {XT} (its transpose), {Col} and
// {RowV} (column and row vectors), {C}, {R}, {CC} (C*C) and, for per-K
// methods, {K}, {XK} and {XKR}.

const generatedHeader = "// Code generated by vecgen. DO NOT EDIT.\n\n"

const modulePath = "github.com/rawrasaur/aventine-simd"

// Widths lists the lane counts of the vector families.
var Widths = []int{2, 3, 4, 8, 16}

var titleCaser = cases.Title(language.Und)

// vectorClass describes one generic vector family.
type vectorClass struct {
	bit      classSet
	typeName string
	decl     string
	args     string
	maskElem string
	file     string
	doc      string
	kinds    []laneKind
}

func vectorClasses() []vectorClass {
	return []vectorClass{
		{
			bit: classInt, typeName: "IntVec", decl: "[T SignedInts]", args: "[T]", maskElem: "T",
			file:  "vectors_int.gen.go",
			doc:   "{Tn} is a vector of {N} signed integer lanes. It is also the comparison\nmask of every {N}-lane vector whose lanes have the size of T.",
			kinds: kindsOf(classInt),
		},
		{
			bit: classUint, typeName: "UintVec", decl: "[T UnsignedInts, M SignedInts]", args: "[T, M]", maskElem: "M",
			file:  "vectors_uint.gen.go",
			doc:   "{Tn} is a vector of {N} unsigned integer lanes. M is the signed integer\nkind of the same size as T, used for comparison masks. Instantiations\nwith any other M compile, but their masks are rejected by Select and\nBitselect; the aliases (Uint32x4, ...) always pair T with the right M.",
			kinds: kindsOf(classUint),
		},
		{
			bit: classFloat, typeName: "FloatVec", decl: "[T Floats, M SignedInts]", args: "[T, M]", maskElem: "M",
			file:  "vectors_float.gen.go",
			doc:   "{Tn} is a vector of {N} floating-point lanes. M is the signed integer\nkind of the same size as T, used for comparison masks. Instantiations\nwith any other M compile, but their masks are rejected by Select and\nBitselect; the aliases (Float32x4, ...) always pair T with the right M.",
			kinds: kindsOf(classFloat),
		},
	}
}

func classOf(k laneKind) vectorClass {
	c, _ := lo.Find(vectorClasses(), func(c vectorClass) bool { return c.bit == k.class })
	return c
}

// aliasName returns the concrete vector name for kind k at width n, e.g.
// Float32x4.
func aliasName(k laneKind, n int) string {
	return fmt.Sprintf("%sx%d", titleCaser.String(k.String()), n)
}

func (c vectorClass) typeAt(n int) string {
	return fmt.Sprintf("%s%d%s", c.typeName, n, c.args)
}

func (c vectorClass) replacer(n int) *strings.Replacer {
	half := "T"
	switch {
	case n == 3:
		half = c.typeAt(2)
	case n > 2:
		half = c.typeAt(n / 2)
	}
	return strings.NewReplacer(
		"{V}", c.typeAt(n),
		"{M}", fmt.Sprintf("IntVec%d[%s]", n, c.maskElem),
		"{H}", half,
		"{R3}", c.typeAt(3),
		"{N2}", fmt.Sprint(n/2),
		"{N}", fmt.Sprint(n),
	)
}

// emitFunc writes one method with its doc comment. An empty body is written
// on a single line.
func emitFunc(buf *bytes.Buffer, recv, name, sig, doc string, body []string, r *strings.Replacer) {
	fmt.Fprintf(buf, "\n")
	if doc != "" {
		for _, line := range strings.Split(r.Replace(doc), "\n") {
			fmt.Fprintf(buf, "// %s\n", line)
		}
	}
	head := fmt.Sprintf("func (%s) %s%s", recv, r.Replace(name), r.Replace(sig))
	if len(body) == 0 {
		fmt.Fprintf(buf, "%s {}\n", head)
		return
	}
	fmt.Fprintf(buf, "%s {\n", head)
	for _, chunk := range body {
		for _, line := range strings.Split(r.Replace(chunk), "\n") {
			if line == "" {
				fmt.Fprintf(buf, "\n")
				continue
			}
			fmt.Fprintf(buf, "\t%s\n", line)
		}
	}
	fmt.Fprintf(buf, "}\n")
}

// emitVectorClass renders the file holding every width of one family.
func emitVectorClass(c vectorClass, widths []int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s", generatedHeader)
	fmt.Fprintf(&buf, "package simd\n")
	for _, n := range widths {
		r := c.replacer(n)
		tn := fmt.Sprintf("%s%d", c.typeName, n)
		fmt.Fprintf(&buf, "\n")
		doc := strings.NewReplacer("{Tn}", tn, "{N}", fmt.Sprint(n)).Replace(c.doc)
		for _, line := range strings.Split(doc, "\n") {
			fmt.Fprintf(&buf, "// %s\n", line)
		}
		fmt.Fprintf(&buf, "type %s%s [%d]T\n", tn, c.decl, n)

		recv := "v " + c.typeAt(n)
		for _, mt := range vectorMethods {
			if mt.appliesTo(c.bit, n) {
				emitFunc(&buf, recv, mt.Name, mt.Sig, mt.Doc, mt.Body, r)
			}
		}
		for _, k := range laneKinds {
			name, a := titleCaser.String(k.String()), aliasName(k, n)
			emitFunc(&buf, recv, "To"+name, "() "+a,
				fmt.Sprintf("To%s converts each lane to %s with Go conversion semantics.", name, k),
				[]string{"var r " + a, "convertLanes(r[:], v[:])", "return r"}, r)
			emitFunc(&buf, recv, "To"+name+"Sat", "() "+a,
				fmt.Sprintf("To%sSat converts each lane to %s, clamping to the %s range.", name, k, k),
				[]string{"var r " + a, "saturateLanes(r[:], v[:])", "return r"}, r)
		}
	}
	return buf.Bytes()
}

// emitAliases renders the concrete names, their constructors and the
// compile-time trait assertions.
func emitAliases(widths []int) []byte {
	var buf, asserts bytes.Buffer
	fmt.Fprintf(&buf, "%s", generatedHeader)
	fmt.Fprintf(&buf, "package simd\n")
	for _, k := range laneKinds {
		c := classOf(k)
		for _, n := range widths {
			a := aliasName(k, n)
			args := fmt.Sprintf("[%s, %s]", k, k.signed())
			if c.bit == classInt {
				args = fmt.Sprintf("[%s]", k)
			}
			article := "a"
			if strings.HasPrefix(a, "Int") {
				article = "an"
			}
			fmt.Fprintf(&buf, "\n// %s is a vector of %d %s lanes.\n", a, n, k)
			fmt.Fprintf(&buf, "type %s = %s%d%s\n", a, c.typeName, n, args)
			fmt.Fprintf(&buf, "\n// Broadcast%s returns %s %s with every lane set to x.\n", a, article, a)
			fmt.Fprintf(&buf, "func Broadcast%s(x %s) %s {\n\treturn %s{}.Broadcast(x)\n}\n", a, k, a, a)
			fmt.Fprintf(&buf, "\n// Load%sSlice loads %s %s from the first lanes of s. Lanes past\n// len(s) are zero.\n", a, article, a)
			fmt.Fprintf(&buf, "func Load%sSlice(s []%s) %s {\n\tvar v %s\n\tcopy(v[:], s)\n\treturn v\n}\n", a, k, a, a)

			mask := aliasName(k.signed(), n)
			switch c.bit {
			case classFloat:
				fmt.Fprintf(&asserts, "var _ Float[%s, %s, %s] = %s{}\n", a, k, mask, a)
				fmt.Fprintf(&asserts, "var _ Geometry[%s, %s] = %s{}\n", a, k, a)
				if n == 2 || n == 3 {
					fmt.Fprintf(&asserts, "var _ Crosser[%s, %s] = %s{}\n", a, aliasName(k, 3), a)
				}
			default:
				fmt.Fprintf(&asserts, "var _ Integer[%s, %s, %s] = %s{}\n", a, k, mask, a)
				if c.bit == classInt {
					fmt.Fprintf(&asserts, "var _ Selector[%s] = %s{}\n", a, a)
				}
			}
		}
	}
	fmt.Fprintf(&buf, "\n")
	buf.Write(asserts.Bytes())
	return buf.Bytes()
}

type shape struct{ c, r int }

func matrixShapes() []shape {
	var shapes []shape
	for c := 2; c <= 4; c++ {
		for r := 2; r <= 4; r++ {
			shapes = append(shapes, shape{c, r})
		}
	}
	return shapes
}

func (s shape) replacer(k int) *strings.Replacer {
	pairs := []string{
		"{XT}", fmt.Sprintf("Mat%dx%d[T, M]", s.r, s.c),
		"{X}", fmt.Sprintf("Mat%dx%d[T, M]", s.c, s.r),
		"{Col}", fmt.Sprintf("simd.FloatVec%d[T, M]", s.r),
		"{RowV}", fmt.Sprintf("simd.FloatVec%d[T, M]", s.c),
		"{CC}", fmt.Sprint(s.c * s.c),
		"{C}", fmt.Sprint(s.c),
		"{R}", fmt.Sprint(s.r),
	}
	if k > 0 {
		pairs = append(pairs,
			"{XKR}", fmt.Sprintf("Mat%dx%d[T, M]", k, s.r),
			"{XK}", fmt.Sprintf("Mat%dx%d[T, M]", k, s.c),
			"{K}", fmt.Sprint(k),
		)
	}
	return strings.NewReplacer(pairs...)
}

// emitMatrices renders every matrix shape with its methods, row
// constructor and float32/float64 aliases.
func emitMatrices() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s", generatedHeader)
	fmt.Fprintf(&buf, "package mat\n\n")
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t\"github.com/pkg/errors\"\n\n")
	fmt.Fprintf(&buf, "\t\"%s/internal/linalg\"\n", modulePath)
	fmt.Fprintf(&buf, "\t\"%s/simd\"\n", modulePath)
	fmt.Fprintf(&buf, ")\n")
	for _, s := range matrixShapes() {
		fmt.Fprintf(&buf, "\n// Mat%dx%d is a matrix of %d columns and %d rows, stored column by column.\n", s.c, s.r, s.c, s.r)
		fmt.Fprintf(&buf, "type Mat%dx%d[T simd.Floats, M simd.SignedInts] [%d]simd.FloatVec%d[T, M]\n", s.c, s.r, s.c, s.r)
		recv := fmt.Sprintf("m Mat%dx%d[T, M]", s.c, s.r)
		for _, mt := range matrixMethods {
			if mt.Square && s.c != s.r {
				continue
			}
			ks := []int{0}
			if mt.PerK {
				ks = []int{2, 3, 4}
			}
			for _, k := range ks {
				emitFunc(&buf, recv, mt.Name, mt.Sig, mt.Doc, mt.Body, s.replacer(k))
			}
		}
		rows := strings.Join(lo.Times(s.r, func(i int) string { return fmt.Sprintf("r%d", i) }), ", ")
		fmt.Fprintf(&buf, "\n// FromRows%dx%d builds a Mat%dx%d from its %d rows.\n", s.c, s.r, s.c, s.r, s.r)
		fmt.Fprintf(&buf, "func FromRows%dx%d[T simd.Floats, M simd.SignedInts](%s simd.FloatVec%d[T, M]) Mat%dx%d[T, M] {\n",
			s.c, s.r, rows, s.c, s.c, s.r)
		fmt.Fprintf(&buf, "\treturn Mat%dx%d[T, M]{%s}.Transpose()\n}\n", s.r, s.c, rows)
	}
	for _, k := range []laneKind{kindFloat32, kindFloat64} {
		for _, s := range matrixShapes() {
			name := titleCaser.String(k.String())
			fmt.Fprintf(&buf, "\n// %sx%dx%d is a Mat%dx%d of %s.\n", name, s.c, s.r, s.c, s.r, k)
			fmt.Fprintf(&buf, "type %sx%dx%d = Mat%dx%d[%s, %s]\n", name, s.c, s.r, s.c, s.r, k, k.signed())
		}
	}
	return buf.Bytes()
}

// format runs goimports over a generated file in format-only mode: the
// source is gofmt'ed and module-local imports are grouped last.
func format(filename string, src []byte) ([]byte, error) {
	imports.LocalPrefix = modulePath
	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}
	out, err := imports.Process(filename, src, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "format %s", filename)
	}
	return out, nil
}
