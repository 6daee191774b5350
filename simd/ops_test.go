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

package simd

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStore(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := LoadFloat32x4Slice(data)
	if v.NumLanes() != 4 {
		t.Fatalf("NumLanes: got %d, want 4", v.NumLanes())
	}
	for i := range v.NumLanes() {
		if v[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v[i], data[i])
		}
	}

	short := LoadInt16x8Slice([]int16{7, 8})
	if diff := cmp.Diff(Int16x8{7, 8}, short); diff != "" {
		t.Errorf("Load of a short slice (-want +got):\n%s", diff)
	}

	out := make([]float32, 2)
	v.Store(out)
	if diff := cmp.Diff([]float32{1, 2}, out); diff != "" {
		t.Errorf("Store into a short slice (-want +got):\n%s", diff)
	}
}

func TestBroadcast(t *testing.T) {
	v := BroadcastFloat64x8(42)
	for i := range v.NumLanes() {
		if v[i] != 42 {
			t.Errorf("Broadcast: lane %d: got %v, want 42", i, v[i])
		}
	}
	if got := (Uint8x16{}).Broadcast(3); got != BroadcastUint8x16(3) {
		t.Errorf("Broadcast method: got %v", got)
	}
}

func TestGetWith(t *testing.T) {
	v := Int32x4{1, 2, 3, 4}
	w := v.With(2, 30)
	if w.Get(2) != 30 || v.Get(2) != 3 {
		t.Errorf("With: got %v from %v", w, v)
	}
}

func TestArithmetic(t *testing.T) {
	a := Float32x4{10, 20, 30, 40}
	b := Float32x4{1, 2, 4, 8}

	tests := []struct {
		name string
		got  Float32x4
		want Float32x4
	}{
		{"Add", a.Add(b), Float32x4{11, 22, 34, 48}},
		{"Sub", a.Sub(b), Float32x4{9, 18, 26, 32}},
		{"Mul", a.Mul(b), Float32x4{10, 40, 120, 320}},
		{"Div", a.Div(b), Float32x4{10, 10, 7.5, 5}},
		{"AddScalar", a.AddScalar(1), Float32x4{11, 21, 31, 41}},
		{"SubScalar", a.SubScalar(1), Float32x4{9, 19, 29, 39}},
		{"MulScalar", a.MulScalar(0.5), Float32x4{5, 10, 15, 20}},
		{"DivScalar", a.DivScalar(10), Float32x4{1, 2, 3, 4}},
		{"RSubScalar", b.RSubScalar(10), Float32x4{9, 8, 6, 2}},
		{"RDivScalar", b.RDivScalar(8), Float32x4{8, 4, 2, 1}},
		{"Neg", b.Neg(), Float32x4{-1, -2, -4, -8}},
		{"Madd", b.Madd(b, a), Float32x4{11, 24, 46, 104}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIntegerWraparound(t *testing.T) {
	a := Int8x4{127, -128, 100, -1}
	if got, want := a.AddScalar(1), (Int8x4{-128, -127, 101, 0}); got != want {
		t.Errorf("Int8 add: got %v, want %v", got, want)
	}
	if got, want := a.Neg(), (Int8x4{-127, -128, -100, 1}); got != want {
		t.Errorf("Int8 neg: got %v, want %v", got, want)
	}

	u := Uint16x2{0, 65535}
	if got, want := u.SubScalar(1), (Uint16x2{65535, 65534}); got != want {
		t.Errorf("Uint16 sub: got %v, want %v", got, want)
	}
	if got, want := u.Neg(), (Uint16x2{0, 1}); got != want {
		t.Errorf("Uint16 neg: got %v, want %v", got, want)
	}

	lowest := Int32x2{math.MinInt32, 7}
	if got, want := lowest.Div(Int32x2{-1, 2}), (Int32x2{math.MinInt32, 3}); got != want {
		t.Errorf("MinInt32 / -1: got %v, want %v", got, want)
	}
}

func TestIntegerDivideByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by a zero lane did not panic")
		}
	}()
	_ = Int32x4{1, 2, 3, 4}.Div(Int32x4{1, 0, 1, 1})
}

func TestRem(t *testing.T) {
	a := Int32x4{7, -7, 7, -7}
	b := Int32x4{3, 3, -3, -3}
	if got, want := a.Rem(b), (Int32x4{1, -1, 1, -1}); got != want {
		t.Errorf("Rem: got %v, want %v", got, want)
	}
	if got, want := (Uint8x4{10, 11, 12, 13}).RemScalar(4), (Uint8x4{2, 3, 0, 1}); got != want {
		t.Errorf("RemScalar: got %v, want %v", got, want)
	}
}

func TestBitwise(t *testing.T) {
	a := Uint8x4{0xF0, 0x0F, 0xAA, 0xFF}
	b := Uint8x4{0xFF, 0xF0, 0x0F, 0x00}

	tests := []struct {
		name string
		got  Uint8x4
		want Uint8x4
	}{
		{"And", a.And(b), Uint8x4{0xF0, 0x00, 0x0A, 0x00}},
		{"Or", a.Or(b), Uint8x4{0xFF, 0xFF, 0xAF, 0xFF}},
		{"Xor", a.Xor(b), Uint8x4{0x0F, 0xFF, 0xA5, 0xFF}},
		{"AndNot", a.AndNot(b), Uint8x4{0x00, 0x0F, 0xA0, 0xFF}},
		{"Not", a.Not(), Uint8x4{0x0F, 0xF0, 0x55, 0x00}},
		{"AndScalar", a.AndScalar(0x3C), Uint8x4{0x30, 0x0C, 0x28, 0x3C}},
		{"OrScalar", a.OrScalar(0x01), Uint8x4{0xF1, 0x0F, 0xAB, 0xFF}},
		{"XorScalar", a.XorScalar(0xFF), Uint8x4{0x0F, 0xF0, 0x55, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}

	if got, want := (Int16x4{0, 1, -1, 12345}).Not(), (Int16x4{-1, -2, 0, -12346}); got != want {
		t.Errorf("signed Not: got %v, want %v", got, want)
	}
}

func TestShifts(t *testing.T) {
	s := Int8x4{-128, 64, -1, 3}
	if got, want := s.ShrScalar(2), (Int8x4{-32, 16, -1, 0}); got != want {
		t.Errorf("arithmetic ShrScalar: got %v, want %v", got, want)
	}
	u := Uint8x4{0x80, 0x40, 0xFF, 3}
	if got, want := u.ShrScalar(2), (Uint8x4{0x20, 0x10, 0x3F, 0}); got != want {
		t.Errorf("logical ShrScalar: got %v, want %v", got, want)
	}
	if got, want := u.ShlScalar(1), (Uint8x4{0, 0x80, 0xFE, 6}); got != want {
		t.Errorf("ShlScalar: got %v, want %v", got, want)
	}

	counts := Int32x4{0, 1, 31, 32}
	if got, want := (Int32x4{1, 1, 1, 1}).Shl(counts), (Int32x4{1, 2, math.MinInt32, 0}); got != want {
		t.Errorf("Shl: got %v, want %v", got, want)
	}
	if got, want := (Int32x4{-8, -8, -8, -8}).Shr(counts), (Int32x4{-8, -4, -1, -1}); got != want {
		t.Errorf("Shr: got %v, want %v", got, want)
	}
	// Negative counts read as huge unsigned counts.
	if got, want := (Int32x2{5, -5}).Shr(Int32x2{-1, -1}), (Int32x2{0, -1}); got != want {
		t.Errorf("Shr by negative count: got %v, want %v", got, want)
	}
}

func TestMinMaxClamp(t *testing.T) {
	a := Int16x4{-5, 10, 3, 0}
	b := Int16x4{2, -10, 3, 1}
	if got, want := a.Min(b), (Int16x4{-5, -10, 3, 0}); got != want {
		t.Errorf("Min: got %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Int16x4{2, 10, 3, 1}); got != want {
		t.Errorf("Max: got %v, want %v", got, want)
	}
	lo, hi := BroadcastInt16x4(-1), BroadcastInt16x4(5)
	if got, want := a.Clamp(lo, hi), (Int16x4{-1, 5, 3, 0}); got != want {
		t.Errorf("Clamp: got %v, want %v", got, want)
	}

	nan := float32(math.NaN())
	f := Float32x2{nan, 1}
	g := Float32x2{2, nan}
	if got, want := f.Max(g), (Float32x2{2, 1}); got != want {
		t.Errorf("float Max ignores NaN: got %v, want %v", got, want)
	}
	if got, want := f.Min(g), (Float32x2{2, 1}); got != want {
		t.Errorf("float Min ignores NaN: got %v, want %v", got, want)
	}
}

func TestAbs(t *testing.T) {
	if got, want := (Int8x4{-128, -1, 0, 127}).Abs(), (Int8x4{-128, 1, 0, 127}); got != want {
		t.Errorf("signed Abs: got %v, want %v", got, want)
	}
	if got, want := (Uint32x2{0, math.MaxUint32}).Abs(), (Uint32x2{0, math.MaxUint32}); got != want {
		t.Errorf("unsigned Abs: got %v, want %v", got, want)
	}
	negZero := math.Copysign(0, -1)
	got := Float64x4{-1.5, negZero, math.Inf(-1), 2}.Abs()
	if got != (Float64x4{1.5, 0, math.Inf(1), 2}) || math.Signbit(got[1]) {
		t.Errorf("float Abs: got %v", got)
	}
	if n := (Float32x2{float32(math.NaN()), 0}).Abs(); !math.IsNaN(float64(n[0])) {
		t.Errorf("Abs(NaN) = %v, want NaN", n[0])
	}
}

func TestComparisons(t *testing.T) {
	a := Float32x4{1, 2, 3, float32(math.NaN())}
	b := Float32x4{2, 2, 2, 0}

	tests := []struct {
		name string
		got  Int32x4
		want Int32x4
	}{
		{"Eq", a.Eq(b), Int32x4{0, -1, 0, 0}},
		{"Ne", a.Ne(b), Int32x4{-1, 0, -1, -1}},
		{"Lt", a.Lt(b), Int32x4{-1, 0, 0, 0}},
		{"Le", a.Le(b), Int32x4{-1, -1, 0, 0}},
		{"Gt", a.Gt(b), Int32x4{0, 0, -1, 0}},
		{"Ge", a.Ge(b), Int32x4{0, -1, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	u := Uint8x2{200, 1}
	if got, want := u.Gt(Uint8x2{100, 2}), (Int8x2{-1, 0}); got != want {
		t.Errorf("unsigned Gt: got %v, want %v", got, want)
	}
}

func TestEquality(t *testing.T) {
	a := Int64x3{1, 2, 3}
	if !a.Equal(Int64x3{1, 2, 3}) || a.NotEqual(Int64x3{1, 2, 3}) {
		t.Error("identical vectors compare unequal")
	}
	if a.Equal(Int64x3{1, 2, 4}) || !a.NotEqual(Int64x3{1, 2, 4}) {
		t.Error("vectors differing in the last lane compare equal")
	}
	z := Float32x2{0, 1}
	if !z.Equal(Float32x2{float32(math.Copysign(0, -1)), 1}) {
		t.Error("+0 and -0 lanes compare unequal")
	}
	n := Float32x2{float32(math.NaN()), 1}
	if n.Equal(n) || !n.NotEqual(n) {
		t.Error("NaN lane compares equal to itself")
	}
}
