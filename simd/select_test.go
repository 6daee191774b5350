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
	"strings"
	"testing"
)

func TestSelectFloat32x2(t *testing.T) {
	mask := Int32x2{math.MinInt32, 0}
	got := Select(mask, Float32x2{10, -2}, Float32x2{11, -3})
	if want := (Float32x2{11, -2}); got != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}
}

func TestSelectFloat64x4(t *testing.T) {
	// Only the sign bit matters: the low bits of the last lane are noise.
	mask := Int64x4{math.MinInt64, 0, 0, math.MinInt64 + 0xFFFF}
	got := Select(mask, Float64x4{10, -2, -9.5, 1}, Float64x4{11, -3, 10, 0})
	if want := (Float64x4{11, -2, -9.5, 0}); got != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}
}

func TestSelectFromComparison(t *testing.T) {
	a := Float32x4{1, 5, 3, 8}
	b := Float32x4{4, 2, 6, 7}
	if got, want := Select(a.Lt(b), b, a), (Float32x4{1, 2, 3, 7}); got != want {
		t.Errorf("Select as min: got %v, want %v", got, want)
	}

	u := Uint16x8{1, 2, 3, 4, 5, 6, 7, 8}
	w := BroadcastUint16x8(4)
	if got, want := Select(u.Gt(w), u, w), (Uint16x8{1, 2, 3, 4, 4, 4, 4, 4}); got != want {
		t.Errorf("Select as clamp: got %v, want %v", got, want)
	}
}

func TestSelectMethod(t *testing.T) {
	mask := Int8x4{-1, 0, -128, 127}
	got := mask.Select(Int8x4{1, 2, 3, 4}, Int8x4{5, 6, 7, 8})
	if want := (Int8x4{5, 2, 7, 4}); got != want {
		t.Errorf("Int8x4.Select: got %v, want %v", got, want)
	}
}

func TestBitselectInt8x2(t *testing.T) {
	mask := Int8x2{0x11, 0x33}
	a := Int8x2{-1, 0}
	b := Int8x2{0, -1}
	got := mask.Bitselect(a, b)
	if want := (Int8x2{i8(0xEE), 0x33}); got != want {
		t.Errorf("Bitselect: got %#x, want %#x", got, want)
	}
	if free := Bitselect(mask, a, b); free != got {
		t.Errorf("Bitselect free function: got %#x, method gave %#x", free, got)
	}
}

func TestBitselectUint8x4(t *testing.T) {
	mask := Int8x4{0x11, 0x33, 0x55, i8(0x88)}
	got := Bitselect(mask, Uint8x4{0xFF, 0x00, 0xFF, 0x00}, Uint8x4{0x00, 0xFF, 0x00, 0xFF})
	if want := (Uint8x4{0xEE, 0x33, 0xAA, 0x88}); got != want {
		t.Errorf("Bitselect: got %#x, want %#x", got, want)
	}
}

func TestBitselectInt32x4(t *testing.T) {
	mask := Int32x4{0x11111111, 0x33333333, 0x55555555, i32(0x88888888)}
	a := Int32x4{-1, 0, 0, 0}
	b := Int32x4{0, -1, 0x55555555, -1}
	want := Int32x4{i32(0xEEEEEEEE), 0x33333333, 0x55555555, i32(0x88888888)}
	if got := mask.Bitselect(a, b); got != want {
		t.Errorf("Bitselect: got %#x, want %#x", got, want)
	}
}

func TestBitselectUint64x2(t *testing.T) {
	mask := Int64x2{i64(0xFFFFFFFF00000000), 0x00000000FFFFFFFF}
	a := Uint64x2{0x1111111111111111, 0x2222222222222222}
	b := Uint64x2{0x3333333333333333, 0x4444444444444444}
	want := Uint64x2{0x3333333311111111, 0x2222222244444444}
	if got := Bitselect(mask, a, b); got != want {
		t.Errorf("Bitselect: got %#x, want %#x", got, want)
	}
}

func TestBitselectFloat(t *testing.T) {
	// Selecting only the sign bit copies the sign of b onto a.
	mask := BroadcastInt32x4(math.MinInt32)
	got := Bitselect(mask, Float32x4{1, -2, 3, -4}, Float32x4{-1, -1, 1, 1})
	if want := (Float32x4{-1, -2, 3, 4}); got != want {
		t.Errorf("Bitselect sign: got %v, want %v", got, want)
	}
}

func TestSelectMaskMismatchPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"lane width", func() { Select(Int16x4{}, Float32x4{}, Float32x4{}) }},
		{"lane count", func() { Select(Int32x2{}, Float32x4{}, Float32x4{}) }},
		{"bitselect", func() { Bitselect(Int8x16{}, Uint16x8{}, Uint16x8{}) }},
		{"narrow mask kind", func() {
			v := FloatVec4[float32, int8]{1, 2, 3, 4}
			Select(v.Eq(v), v, v)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "simd: ") {
					t.Errorf("unexpected panic value %v", r)
				}
			}()
			tt.fn()
		})
	}
}

func i8(u uint8) int8    { return int8(u) }
func i32(u uint32) int32 { return int32(u) }
func i64(u uint64) int64 { return int64(u) }
