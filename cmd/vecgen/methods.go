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

import "slices"

// classSet selects the vector families a method is generated for.
type classSet uint8

const (
	classInt classSet = 1 << iota
	classUint
	classFloat

	noClasses      classSet = 0
	integerClasses          = classInt | classUint
	allClasses              = classInt | classUint | classFloat
)

// method is one row of a method table. Sig, Doc and Body are templates; see
// placeholders in emitter.go for the names they may use.
type method struct {
	Name    string
	Classes classSet
	Sig     string
	Doc     string
	Body    []string

	// Widths restricts a vector method to the listed widths; nil means all.
	Widths []int
	// Square restricts a matrix method to square shapes.
	Square bool
	// PerK expands a matrix method once for each column count K of the
	// right-hand operand.
	PerK bool
}

func m(name string, classes classSet, sig, doc string, body ...string) method {
	return method{Name: name, Classes: classes, Sig: sig, Doc: doc, Body: body}
}

func (mt method) only(widths ...int) method {
	mt.Widths = widths
	return mt
}

func (mt method) squareOnly() method {
	mt.Square = true
	return mt
}

func (mt method) eachK() method {
	mt.PerK = true
	return mt
}

// appliesTo reports whether a vector method is generated for class c at
// width n.
func (mt method) appliesTo(c classSet, n int) bool {
	if mt.Classes&c == 0 {
		return false
	}
	return mt.Widths == nil || slices.Contains(mt.Widths, n)
}

var vectorMethods = []method{
	m("NumLanes", allClasses, "() int",
		"NumLanes returns {N}.",
		"return {N}"),
	m("register", allClasses, "()",
		""),
	m("Broadcast", allClasses, "(s T) {V}",
		"Broadcast returns a vector of the same type with every lane set to s.\nThe receiver is ignored.",
		"var r {V}",
		"for i := range r {\n\tr[i] = s\n}",
		"return r"),
	m("Get", allClasses, "(i int) T",
		"Get returns lane i.",
		"return v[i]"),
	m("With", allClasses, "(i int, s T) {V}",
		"With returns a copy of v with lane i replaced by s.",
		"v[i] = s",
		"return v"),
	m("Store", allClasses, "(dst []T)",
		"Store copies the lanes into dst, stopping at len(dst).",
		"copy(dst, v[:])"),
	m("Add", allClasses, "(w {V}) {V}",
		"Add returns v + w.",
		"var r {V}",
		"addLanes(r[:], v[:], w[:])",
		"return r"),
	m("Sub", allClasses, "(w {V}) {V}",
		"Sub returns v - w.",
		"var r {V}",
		"subLanes(r[:], v[:], w[:])",
		"return r"),
	m("Mul", allClasses, "(w {V}) {V}",
		"Mul returns v * w.",
		"var r {V}",
		"mulLanes(r[:], v[:], w[:])",
		"return r"),
	m("Div", integerClasses, "(w {V}) {V}",
		"Div returns v / w. Integer lanes panic on division by zero.",
		"var r {V}",
		"divLanes(r[:], v[:], w[:])",
		"return r"),
	m("Div", classFloat, "(w {V}) {V}",
		"Div returns v / w. Float lanes follow IEEE-754.",
		"var r {V}",
		"divLanes(r[:], v[:], w[:])",
		"return r"),
	m("AddScalar", allClasses, "(s T) {V}",
		"AddScalar returns v + s.",
		"var r {V}",
		"addScalarLanes(r[:], v[:], s)",
		"return r"),
	m("SubScalar", allClasses, "(s T) {V}",
		"SubScalar returns v - s.",
		"var r {V}",
		"subScalarLanes(r[:], v[:], s)",
		"return r"),
	m("MulScalar", allClasses, "(s T) {V}",
		"MulScalar returns v * s.",
		"var r {V}",
		"mulScalarLanes(r[:], v[:], s)",
		"return r"),
	m("DivScalar", allClasses, "(s T) {V}",
		"DivScalar returns v / s.",
		"var r {V}",
		"divScalarLanes(r[:], v[:], s)",
		"return r"),
	m("RSubScalar", allClasses, "(s T) {V}",
		"RSubScalar returns s - v.",
		"var r {V}",
		"rsubScalarLanes(r[:], v[:], s)",
		"return r"),
	m("RDivScalar", allClasses, "(s T) {V}",
		"RDivScalar returns s / v.",
		"var r {V}",
		"rdivScalarLanes(r[:], v[:], s)",
		"return r"),
	m("Neg", allClasses, "() {V}",
		"Neg returns 0 - v.",
		"var r {V}",
		"negLanes(r[:], v[:])",
		"return r"),
	m("Madd", allClasses, "(y, z {V}) {V}",
		"Madd returns v*y + z without fusing the multiply and the add.",
		"var r {V}",
		"maddLanes(r[:], v[:], y[:], z[:])",
		"return r"),
	m("Abs", classInt, "() {V}",
		"Abs returns the absolute value of each lane. The most negative value\nmaps to itself.",
		"var r {V}",
		"absSignedLanes(r[:], v[:])",
		"return r"),
	m("Abs", classUint, "() {V}",
		"Abs returns v; unsigned lanes are already non-negative.",
		"return v"),
	m("Abs", classFloat, "() {V}",
		"Abs clears the sign bit of each lane.",
		"var r {V}",
		"absFloatLanes(r[:], v[:])",
		"return r"),
	m("Min", allClasses, "(w {V}) {V}",
		"Min returns the lane-wise minimum.",
		"var r {V}",
		"minLanes(r[:], v[:], w[:])",
		"return r"),
	m("Max", allClasses, "(w {V}) {V}",
		"Max returns the lane-wise maximum.",
		"var r {V}",
		"maxLanes(r[:], v[:], w[:])",
		"return r"),
	m("Clamp", allClasses, "(lo, hi {V}) {V}",
		"Clamp returns Min(Max(v, lo), hi).",
		"var r {V}",
		"clampLanes(r[:], v[:], lo[:], hi[:])",
		"return r"),
	m("ReduceAdd", allClasses, "() T",
		"ReduceAdd returns the sum of the lanes.",
		"return reduceAddLanes(v[:])"),
	m("ReduceMin", allClasses, "() T",
		"ReduceMin returns the smallest lane.",
		"return reduceMinLanes(v[:])"),
	m("ReduceMax", allClasses, "() T",
		"ReduceMax returns the largest lane.",
		"return reduceMaxLanes(v[:])"),
	m("Dot", allClasses, "(w {V}) T",
		"Dot returns the sum of the lane-wise products of v and w.",
		"return dotLanes(v[:], w[:])"),
	m("Eq", allClasses, "(w {V}) {M}",
		"Eq returns the mask of lanes where v == w.",
		"var r {M}",
		"eqLanes(r[:], v[:], w[:])",
		"return r"),
	m("Ne", allClasses, "(w {V}) {M}",
		"Ne returns the mask of lanes where v != w.",
		"var r {M}",
		"neLanes(r[:], v[:], w[:])",
		"return r"),
	m("Lt", allClasses, "(w {V}) {M}",
		"Lt returns the mask of lanes where v < w.",
		"var r {M}",
		"ltLanes(r[:], v[:], w[:])",
		"return r"),
	m("Le", allClasses, "(w {V}) {M}",
		"Le returns the mask of lanes where v <= w.",
		"var r {M}",
		"leLanes(r[:], v[:], w[:])",
		"return r"),
	m("Gt", allClasses, "(w {V}) {M}",
		"Gt returns the mask of lanes where v > w.",
		"var r {M}",
		"gtLanes(r[:], v[:], w[:])",
		"return r"),
	m("Ge", allClasses, "(w {V}) {M}",
		"Ge returns the mask of lanes where v >= w.",
		"var r {M}",
		"geLanes(r[:], v[:], w[:])",
		"return r"),
	m("Equal", allClasses, "(w {V}) bool",
		"Equal reports whether every lane of v equals the lane of w.",
		"return equalLanes(v[:], w[:])"),
	m("NotEqual", allClasses, "(w {V}) bool",
		"NotEqual reports whether any lane of v differs from the lane of w.",
		"return notEqualLanes(v[:], w[:])"),
	m("Lo", allClasses, "() T",
		"Lo returns lane 0.",
		"return v[0]").only(2),
	m("Lo", allClasses, "() {H}",
		"Lo returns lanes 0 and 1.",
		"return {H}{v[0], v[1]}").only(3),
	m("Lo", allClasses, "() {H}",
		"Lo returns the low half of the lanes.",
		"var r {H}",
		"copy(r[:], v[:{N2}])",
		"return r").only(4, 8, 16),
	m("Hi", allClasses, "() T",
		"Hi returns lane 1.",
		"return v[1]").only(2),
	m("Hi", allClasses, "() {H}",
		"Hi returns lane 2 followed by a zero lane.",
		"return {H}{v[2], 0}").only(3),
	m("Hi", allClasses, "() {H}",
		"Hi returns the high half of the lanes.",
		"var r {H}",
		"copy(r[:], v[{N2}:])",
		"return r").only(4, 8, 16),
	m("Odd", allClasses, "() T",
		"Odd returns lane 1.",
		"return v[1]").only(2),
	m("Odd", allClasses, "() {H}",
		"Odd returns lane 1 followed by a zero lane.",
		"return {H}{v[1], 0}").only(3),
	m("Odd", allClasses, "() {H}",
		"Odd returns the odd-numbered lanes.",
		"var r {H}",
		"for i := range r {\n\tr[i] = v[2*i+1]\n}",
		"return r").only(4, 8, 16),
	m("Even", allClasses, "() T",
		"Even returns lane 0.",
		"return v[0]").only(2),
	m("Even", allClasses, "() {H}",
		"Even returns lanes 0 and 2.",
		"return {H}{v[0], v[2]}").only(3),
	m("Even", allClasses, "() {H}",
		"Even returns the even-numbered lanes.",
		"var r {H}",
		"for i := range r {\n\tr[i] = v[2*i]\n}",
		"return r").only(4, 8, 16),
	m("And", integerClasses, "(w {V}) {V}",
		"And returns v & w.",
		"var r {V}",
		"andLanes(r[:], v[:], w[:])",
		"return r"),
	m("Or", integerClasses, "(w {V}) {V}",
		"Or returns v | w.",
		"var r {V}",
		"orLanes(r[:], v[:], w[:])",
		"return r"),
	m("Xor", integerClasses, "(w {V}) {V}",
		"Xor returns v ^ w.",
		"var r {V}",
		"xorLanes(r[:], v[:], w[:])",
		"return r"),
	m("AndNot", integerClasses, "(w {V}) {V}",
		"AndNot returns v &^ w.",
		"var r {V}",
		"andNotLanes(r[:], v[:], w[:])",
		"return r"),
	m("Not", integerClasses, "() {V}",
		"Not flips every bit of v.",
		"var r {V}",
		"notLanes(r[:], v[:])",
		"return r"),
	m("AndScalar", integerClasses, "(s T) {V}",
		"AndScalar returns v & s.",
		"var r {V}",
		"andScalarLanes(r[:], v[:], s)",
		"return r"),
	m("OrScalar", integerClasses, "(s T) {V}",
		"OrScalar returns v | s.",
		"var r {V}",
		"orScalarLanes(r[:], v[:], s)",
		"return r"),
	m("XorScalar", integerClasses, "(s T) {V}",
		"XorScalar returns v ^ s.",
		"var r {V}",
		"xorScalarLanes(r[:], v[:], s)",
		"return r"),
	m("Shl", integerClasses, "(n {V}) {V}",
		"Shl shifts each lane left by the matching lane of n, read as unsigned.",
		"var r {V}",
		"shlLanes(r[:], v[:], n[:])",
		"return r"),
	m("Shr", integerClasses, "(n {V}) {V}",
		"Shr shifts each lane right by the matching lane of n, read as unsigned.\nSigned lanes shift arithmetically.",
		"var r {V}",
		"shrLanes(r[:], v[:], n[:])",
		"return r"),
	m("ShlScalar", integerClasses, "(n uint) {V}",
		"ShlScalar shifts every lane left by n.",
		"var r {V}",
		"shlScalarLanes(r[:], v[:], n)",
		"return r"),
	m("ShrScalar", integerClasses, "(n uint) {V}",
		"ShrScalar shifts every lane right by n.",
		"var r {V}",
		"shrScalarLanes(r[:], v[:], n)",
		"return r"),
	m("Rem", integerClasses, "(w {V}) {V}",
		"Rem returns v - (v/w)*w, the remainder of truncated division.",
		"var r {V}",
		"remLanes(r[:], v[:], w[:])",
		"return r"),
	m("RemScalar", integerClasses, "(s T) {V}",
		"RemScalar returns v - (v/s)*s.",
		"var r {V}",
		"remScalarLanes(r[:], v[:], s)",
		"return r"),
	m("ReduceAnd", integerClasses, "() T",
		"ReduceAnd returns the bitwise AND of the lanes.",
		"return reduceAndLanes(v[:])"),
	m("ReduceOr", integerClasses, "() T",
		"ReduceOr returns the bitwise OR of the lanes.",
		"return reduceOrLanes(v[:])"),
	m("ReduceXor", integerClasses, "() T",
		"ReduceXor returns the bitwise XOR of the lanes.",
		"return reduceXorLanes(v[:])"),
	m("All", integerClasses, "() bool",
		"All reports whether the sign bit is set in every lane.",
		"return allLanes(v[:])"),
	m("Any", integerClasses, "() bool",
		"Any reports whether the sign bit is set in at least one lane.",
		"return anyLanes(v[:])"),
	m("Select", classInt, "(a, b {V}) {V}",
		"Select uses v as a mask: lanes with the sign bit set take b, the\nothers take a.",
		"var r {V}",
		"selectLanes(r[:], v[:], a[:], b[:])",
		"return r"),
	m("Bitselect", classInt, "(a, b {V}) {V}",
		"Bitselect uses v as a bit mask: set bits take b, clear bits take a.",
		"var r {V}",
		"bitselectLanes(r[:], v[:], a[:], b[:])",
		"return r"),
	m("Sqrt", classFloat, "() {V}",
		"Sqrt returns the square root of each lane.",
		"var r {V}",
		"sqrtLanes(r[:], v[:])",
		"return r"),
	m("Rsqrt", classFloat, "() {V}",
		"Rsqrt returns 1/Sqrt of each lane.",
		"var r {V}",
		"rsqrtLanes(r[:], v[:])",
		"return r"),
	m("Recip", classFloat, "() {V}",
		"Recip returns 1/v.",
		"var r {V}",
		"recipLanes(r[:], v[:])",
		"return r"),
	m("Fract", classFloat, "() {V}",
		"Fract returns v - Trunc(v).",
		"var r {V}",
		"fractLanes(r[:], v[:])",
		"return r"),
	m("Ceil", classFloat, "() {V}",
		"Ceil rounds each lane toward positive infinity.",
		"var r {V}",
		"ceilLanes(r[:], v[:])",
		"return r"),
	m("Floor", classFloat, "() {V}",
		"Floor rounds each lane toward negative infinity.",
		"var r {V}",
		"floorLanes(r[:], v[:])",
		"return r"),
	m("Trunc", classFloat, "() {V}",
		"Trunc rounds each lane toward zero.",
		"var r {V}",
		"truncLanes(r[:], v[:])",
		"return r"),
	m("Sin", classFloat, "() {V}",
		"Sin returns the sine of each lane.",
		"var r {V}",
		"sinLanes(r[:], v[:])",
		"return r"),
	m("Cos", classFloat, "() {V}",
		"Cos returns the cosine of each lane.",
		"var r {V}",
		"cosLanes(r[:], v[:])",
		"return r"),
	m("Sign", classFloat, "() {V}",
		"Sign returns 1 with the sign of each lane, or 0 for zero and NaN lanes.",
		"var r {V}",
		"signLanes(r[:], v[:])",
		"return r"),
	m("CopySign", classFloat, "(sign {V}) {V}",
		"CopySign returns the magnitudes of v with the signs of sign.",
		"var r {V}",
		"copySignLanes(r[:], v[:], sign[:])",
		"return r"),
	m("Mix", classFloat, "(a, b {V}) {V}",
		"Mix interpolates a + v*(b-a).",
		"var r {V}",
		"mixLanes(r[:], v[:], a[:], b[:])",
		"return r"),
	m("Step", classFloat, "(edge {V}) {V}",
		"Step returns 1 in lanes where v < edge and 0 elsewhere.",
		"var r {V}",
		"stepLanes(r[:], v[:], edge[:])",
		"return r"),
	m("Smoothstep", classFloat, "(e0, e1 {V}) {V}",
		"Smoothstep returns the Hermite interpolation t*t*(3-2t) with\nt = Clamp((v-e0)/(e1-e0), 0, 1).",
		"var r {V}",
		"smoothstepLanes(r[:], v[:], e0[:], e1[:])",
		"return r"),
	m("Length", classFloat, "() T",
		"Length returns the Euclidean length of v.",
		"return lengthLanes(v[:])"),
	m("LengthSquared", classFloat, "() T",
		"LengthSquared returns Dot(v, v).",
		"return lengthSquaredLanes(v[:])"),
	m("Distance", classFloat, "(w {V}) T",
		"Distance returns the length of v - w.",
		"return distanceLanes(v[:], w[:])"),
	m("DistanceSquared", classFloat, "(w {V}) T",
		"DistanceSquared returns the squared length of v - w.",
		"return distanceSquaredLanes(v[:], w[:])"),
	m("NormOne", classFloat, "() T",
		"NormOne returns the sum of the absolute lanes.",
		"return normOneLanes(v[:])"),
	m("NormInf", classFloat, "() T",
		"NormInf returns the largest absolute lane.",
		"return normInfLanes(v[:])"),
	m("Normalize", classFloat, "() {V}",
		"Normalize scales v to unit length.",
		"var r {V}",
		"normalizeLanes(r[:], v[:])",
		"return r"),
	m("Reflect", classFloat, "(n {V}) {V}",
		"Reflect mirrors v about the plane with unit normal n.",
		"var r {V}",
		"reflectLanes(r[:], v[:], n[:])",
		"return r"),
	m("Refract", classFloat, "(n {V}, eta T) {V}",
		"Refract bends v through the surface with unit normal n, where eta is\nthe ratio of refractive indices. It returns the zero vector on total\ninternal reflection.",
		"var r {V}",
		"refractLanes(r[:], v[:], n[:], eta)",
		"return r"),
	m("Project", classFloat, "(onto {V}) {V}",
		"Project returns the projection of v onto the direction of onto.",
		"var r {V}",
		"projectLanes(r[:], v[:], onto[:])",
		"return r"),
	m("Cross", classFloat, "(w {V}) {R3}",
		"Cross returns the cross product of v and w embedded in the z = 0 plane;\nonly the z lane can be non-zero.",
		"return {R3}{0, 0, T(v[0]*w[1]) - T(v[1]*w[0])}").only(2),
	m("Cross", classFloat, "(w {V}) {V}",
		"Cross returns the cross product of v and w.",
		"return {V}{\n\tT(v[1]*w[2]) - T(v[2]*w[1]),\n\tT(v[2]*w[0]) - T(v[0]*w[2]),\n\tT(v[0]*w[1]) - T(v[1]*w[0]),\n}").only(3),
}

var matrixMethods = []method{
	m("Col", noClasses, "(i int) {Col}",
		"Col returns column i.",
		"return m[i]"),
	m("Row", noClasses, "(i int) {RowV}",
		"Row returns row i.",
		"var r {RowV}",
		"for c := range m {\n\tr[c] = m[c][i]\n}",
		"return r"),
	m("Add", noClasses, "(o {X}) {X}",
		"Add returns m + o.",
		"for c := range m {\n\tm[c] = m[c].Add(o[c])\n}",
		"return m"),
	m("Sub", noClasses, "(o {X}) {X}",
		"Sub returns m - o.",
		"for c := range m {\n\tm[c] = m[c].Sub(o[c])\n}",
		"return m"),
	m("Scale", noClasses, "(s T) {X}",
		"Scale returns m with every element multiplied by s.",
		"for c := range m {\n\tm[c] = m[c].MulScalar(s)\n}",
		"return m"),
	m("LinearCombination", noClasses, "(a, b T, o {X}) {X}",
		"LinearCombination returns a*m + b*o.",
		"for c := range m {\n\tm[c] = m[c].MulScalar(a).Add(o[c].MulScalar(b))\n}",
		"return m"),
	m("Dot", noClasses, "(v {RowV}) {Col}",
		"Dot returns the matrix-vector product m * v, summing the scaled\ncolumns from left to right.",
		"r := m[0].MulScalar(v[0])",
		"for c := 1; c < {C}; c++ {\n\tr = r.Add(m[c].MulScalar(v[c]))\n}",
		"return r"),
	m("DotMat{K}", noClasses, "(o {XK}) {XKR}",
		"DotMat{K} returns the matrix product m * o, one column of o at a time.",
		"var r {XKR}",
		"for i := range r {\n\tr[i] = m.Dot(o[i])\n}",
		"return r").eachK(),
	m("Transpose", noClasses, "() {XT}",
		"Transpose returns the transpose of m.",
		"var r {XT}",
		"for c := range m {\n\tfor i := range m[c] {\n\t\tr[i][c] = m[c][i]\n\t}\n}",
		"return r"),
	m("Equal", noClasses, "(o {X}) bool",
		"Equal reports whether every element of m equals the element of o.",
		"for c := range m {\n\tif !m[c].Equal(o[c]) {\n\t\treturn false\n\t}\n}",
		"return true"),
	m("Identity", noClasses, "() {X}",
		"Identity returns the identity matrix. The receiver is ignored.",
		"var r {X}",
		"for i := range r {\n\tr[i][i] = 1\n}",
		"return r").squareOnly(),
	m("Mul", noClasses, "(o {X}) {X}",
		"Mul returns the matrix product m * o.",
		"return m.DotMat{C}(o)").squareOnly(),
	m("Determinant", noClasses, "() T",
		"Determinant returns the determinant of m.",
		"a := m.float64s()",
		"return T(linalg.Determinant(a[:], {C}))").squareOnly(),
	m("Inverse", noClasses, "() {X}",
		"Inverse returns the inverse of m. A singular m yields NaN in every\nelement; see InverseChecked.",
		"a := m.float64s()",
		"linalg.Invert(a[:], {C})",
		"return m.fromFloat64s(a)").squareOnly(),
	m("InverseChecked", noClasses, "() ({X}, error)",
		"InverseChecked returns the inverse of m, or ErrSingular when m has no\ninverse.",
		"a := m.float64s()",
		"if _, ok := linalg.Invert(a[:], {C}); !ok {\n\treturn m, errors.Wrapf(ErrSingular, \"inverse of %dx%d matrix\", {C}, {C})\n}",
		"return m.fromFloat64s(a), nil").squareOnly(),
	m("float64s", noClasses, "() [{CC}]float64",
		"",
		"var a [{CC}]float64",
		"for c := range m {\n\tfor i := range m[c] {\n\t\ta[c*{C}+i] = float64(m[c][i])\n\t}\n}",
		"return a").squareOnly(),
	m("fromFloat64s", noClasses, "(a [{CC}]float64) {X}",
		"",
		"var r {X}",
		"for c := range r {\n\tfor i := range r[c] {\n\t\tr[c][i] = T(a[c*{C}+i])\n\t}\n}",
		"return r").squareOnly(),
}
