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
)

func TestConvertPlain(t *testing.T) {
	if got, want := (Int32x4{256, -1, 0, 128}).ToUint8(), (Uint8x4{0, 255, 0, 128}); got != want {
		t.Errorf("Int32x4.ToUint8: got %v, want %v", got, want)
	}
	if got, want := (Int8x2{-1, 1}).ToUint16(), (Uint16x2{65535, 1}); got != want {
		t.Errorf("Int8x2.ToUint16: got %v, want %v", got, want)
	}
	if got, want := (Uint8x4{255, 0, 1, 128}).ToFloat32(), (Float32x4{255, 0, 1, 128}); got != want {
		t.Errorf("Uint8x4.ToFloat32: got %v, want %v", got, want)
	}
	if got, want := (Float64x2{-2.9, 2.9}).ToInt32(), (Int32x2{-2, 2}); got != want {
		t.Errorf("Float64x2.ToInt32 truncates: got %v, want %v", got, want)
	}
	if got, want := (Float32x3{0.1, 1, -3}).ToFloat64(), (Float64x3{float64(float32(0.1)), 1, -3}); got != want {
		t.Errorf("Float32x3.ToFloat64: got %v, want %v", got, want)
	}
}

func TestConvertSaturatedFloat(t *testing.T) {
	nan := math.NaN()

	u8 := (Float32x4{-1, 300, float32(nan), 127.9}).ToUint8Sat()
	if want := (Uint8x4{0, 255, 0, 127}); u8 != want {
		t.Errorf("ToUint8Sat: got %v, want %v", u8, want)
	}

	i64 := (Float64x4{1e30, -1e30, nan, 42}).ToInt64Sat()
	if want := (Int64x4{math.MaxInt64, math.MinInt64, math.MinInt64, 42}); i64 != want {
		t.Errorf("ToInt64Sat: got %v, want %v", i64, want)
	}

	u64 := (Float64x4{1e30, -5, nan, 1 << 63}).ToUint64Sat()
	if want := (Uint64x4{math.MaxUint64, 0, 0, 1 << 63}); u64 != want {
		t.Errorf("ToUint64Sat: got %v, want %v", u64, want)
	}

	i16 := (Float32x2{math.MaxInt16 + 0.5, math.MinInt16 - 0.5}).ToInt16Sat()
	if want := (Int16x2{math.MaxInt16, math.MinInt16}); i16 != want {
		t.Errorf("ToInt16Sat: got %v, want %v", i16, want)
	}

	f32 := (Float64x4{1e300, nan, math.Inf(-1), 1.5}).ToFloat32Sat()
	if want := (Float32x4{math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32, 1.5}); f32 != want {
		t.Errorf("ToFloat32Sat: got %v, want %v", f32, want)
	}
}

func TestConvertSaturatedInteger(t *testing.T) {
	v := Int32x4{-200, 200, 5, -5}
	if got, want := v.ToInt8Sat(), (Int8x4{-128, 127, 5, -5}); got != want {
		t.Errorf("ToInt8Sat: got %v, want %v", got, want)
	}
	if got, want := v.ToUint8Sat(), (Uint8x4{0, 255, 5, 0}); got != want {
		t.Errorf("ToUint8Sat: got %v, want %v", got, want)
	}
	if got, want := (Uint32x2{math.MaxUint32, 7}).ToInt32Sat(), (Int32x2{math.MaxInt32, 7}); got != want {
		t.Errorf("Uint32x2.ToInt32Sat: got %v, want %v", got, want)
	}
	if got, want := (Int64x2{math.MaxInt64, -1}).ToUint64Sat(), (Uint64x2{math.MaxInt64, 0}); got != want {
		t.Errorf("Int64x2.ToUint64Sat: got %v, want %v", got, want)
	}
	if got, want := (Uint64x2{math.MaxUint64, 3}).ToUint16Sat(), (Uint16x2{math.MaxUint16, 3}); got != want {
		t.Errorf("Uint64x2.ToUint16Sat: got %v, want %v", got, want)
	}
}

type (
	meters  float32
	counter int32
	tick    uint16
	small   int8
)

func TestConvertSaturatedDefinedLanes(t *testing.T) {
	m := FloatVec4[meters, int32]{300, -300, 1e10, 5}
	if got, want := m.ToInt8Sat(), (Int8x4{127, -128, 127, 5}); got != want {
		t.Errorf("FloatVec4[meters].ToInt8Sat: got %v, want %v", got, want)
	}
	if got, want := m.ToUint8Sat(), (Uint8x4{255, 0, 255, 5}); got != want {
		t.Errorf("FloatVec4[meters].ToUint8Sat: got %v, want %v", got, want)
	}
	c := IntVec4[counter]{1000, -1000, 5, 0}
	if got, want := c.ToInt8Sat(), (Int8x4{127, -128, 5, 0}); got != want {
		t.Errorf("IntVec4[counter].ToInt8Sat: got %v, want %v", got, want)
	}
	if got, want := (UintVec2[tick, int16]{65535, 3}).ToInt8Sat(), (Int8x2{127, 3}); got != want {
		t.Errorf("UintVec2[tick].ToInt8Sat: got %v, want %v", got, want)
	}
	if got := Saturate[small](int32(1000)); got != math.MaxInt8 {
		t.Errorf("Saturate[small](1000) = %v", got)
	}
	if got := Saturate[small](meters(-1e9)); got != math.MinInt8 {
		t.Errorf("Saturate[small](-1e9) = %v", got)
	}
}

func TestSaturateVec(t *testing.T) {
	v := Float32x4{300, -300, float32(math.NaN()), 5}
	got := SaturateVec[Int8x4, int8, Float32x4, float32](v)
	if want := v.ToInt8Sat(); got != want {
		t.Errorf("SaturateVec: got %v, want %v", got, want)
	}
	if got, want := SaturateVec[Uint16x2, uint16, Int64x2, int64](Int64x2{-1, 1 << 40}), (Uint16x2{0, math.MaxUint16}); got != want {
		t.Errorf("SaturateVec[Uint16x2]: got %v, want %v", got, want)
	}
	defer func() {
		if recover() == nil {
			t.Error("lane count mismatch did not panic")
		}
	}()
	SaturateVec[Int8x2, int8, Float32x4, float32](v)
}

// In range, saturating and plain conversions agree.
func TestConvertSaturatedInRange(t *testing.T) {
	v := Int16x8{-128, -1, 0, 1, 42, 100, 127, -7}
	if v.ToInt8Sat() != v.ToInt8() {
		t.Errorf("ToInt8Sat(%v) = %v, ToInt8 = %v", v, v.ToInt8Sat(), v.ToInt8())
	}
	w := Uint8x16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 255}
	if w.ToInt32Sat() != w.ToInt32() {
		t.Errorf("widening ToInt32Sat differs from ToInt32: %v", w.ToInt32Sat())
	}
	f := Float32x4{-128, 0, 3.75, 127}
	if f.ToInt8Sat() != f.ToInt8() {
		t.Errorf("ToInt8Sat(%v) = %v, ToInt8 = %v", f, f.ToInt8Sat(), f.ToInt8())
	}
}

func TestSaturateScalar(t *testing.T) {
	if got := Saturate[int8](int32(1000)); got != math.MaxInt8 {
		t.Errorf("Saturate[int8](1000) = %v", got)
	}
	if got := Saturate[uint8](float32(-3)); got != 0 {
		t.Errorf("Saturate[uint8](-3) = %v", got)
	}
	if got := Saturate[uint32](int64(-1)); got != 0 {
		t.Errorf("Saturate[uint32](-1) = %v", got)
	}
	if got := Saturate[float64](uint64(math.MaxUint64)); got != math.MaxUint64 {
		t.Errorf("Saturate[float64](MaxUint64) = %v", got)
	}
}

func TestBitcast(t *testing.T) {
	f := Float32x4{1, -2, 0, float32(math.Inf(1))}
	u := Bitcast[Uint32x4](f)
	for i := range f {
		if u[i] != math.Float32bits(f[i]) {
			t.Errorf("lane %d: got %#x, want %#x", i, u[i], math.Float32bits(f[i]))
		}
	}
	if back := Bitcast[Float32x4](u); back != f {
		t.Errorf("round trip: got %v, want %v", back, f)
	}

	b := Bitcast[Uint8x16](Uint64x2{0x0807060504030201, 0x100F0E0D0C0B0A09})
	for i := range b {
		if b[i] != uint8(i+1) {
			t.Fatalf("Bitcast to bytes assumes little-endian lane order: got %v", b)
		}
	}

	// Lane count may change with the lane width.
	if got := Bitcast[Int16x8](Int32x4{}); got != (Int16x8{}) {
		t.Errorf("Bitcast of zero: got %v", got)
	}
}

func TestBitcastSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bitcast between different sizes did not panic")
		}
	}()
	_ = Bitcast[Float32x8](Float32x4{})
}
