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
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRounding(t *testing.T) {
	v := Float64x4{-1.5, 1.5, -0.5, 2}
	tests := []struct {
		name string
		got  Float64x4
		want Float64x4
	}{
		{"Ceil", v.Ceil(), Float64x4{-1, 2, 0, 2}},
		{"Floor", v.Floor(), Float64x4{-2, 1, -1, 2}},
		{"Trunc", v.Trunc(), Float64x4{-1, 1, 0, 2}},
		{"Fract", v.Fract(), Float64x4{-0.5, 0.5, -0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestSqrtRecip(t *testing.T) {
	v := Float32x4{4, 16, 0.25, 1}
	if got, want := v.Sqrt(), (Float32x4{2, 4, 0.5, 1}); got != want {
		t.Errorf("Sqrt: got %v, want %v", got, want)
	}
	if got, want := v.Rsqrt(), (Float32x4{0.5, 0.25, 2, 1}); got != want {
		t.Errorf("Rsqrt: got %v, want %v", got, want)
	}
	if got, want := v.Recip(), (Float32x4{0.25, 0.0625, 4, 1}); got != want {
		t.Errorf("Recip: got %v, want %v", got, want)
	}
	if got := (Float32x2{-1, 0}).Sqrt(); !math.IsNaN(float64(got[0])) || got[1] != 0 {
		t.Errorf("Sqrt of negative: got %v", got)
	}
}

func TestSinCos(t *testing.T) {
	x := Float64x4{0, math.Pi / 2, math.Pi, -math.Pi / 6}
	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff(Float64x4{0, 1, 0, -0.5}, x.Sin(), approx); diff != "" {
		t.Errorf("Sin (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Float64x4{1, 0, -1, math.Sqrt(3) / 2}, x.Cos(), approx); diff != "" {
		t.Errorf("Cos (-want +got):\n%s", diff)
	}
}

func TestSign(t *testing.T) {
	negZero := math.Copysign(0, -1)
	v := Float64x4{-3, 0, negZero, math.Inf(1)}
	if got, want := v.Sign(), (Float64x4{-1, 0, 0, 1}); got != want {
		t.Errorf("Sign: got %v, want %v", got, want)
	}
	if got := (Float32x2{float32(math.NaN()), 2}).Sign(); got != (Float32x2{0, 1}) {
		t.Errorf("Sign(NaN): got %v, want 0", got[0])
	}
}

func TestCopySign(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	a := Float32x4{1, -2, 3, float32(math.Inf(1))}
	s := Float32x4{-1, 5, negZero, -0.5}
	if got, want := a.CopySign(s), (Float32x4{-1, 2, -3, float32(math.Inf(-1))}); got != want {
		t.Errorf("CopySign: got %v, want %v", got, want)
	}
	n := (Float64x2{math.NaN(), 0}).CopySign(Float64x2{-1, -1})
	if !math.IsNaN(n[0]) || !math.Signbit(n[0]) || !math.Signbit(n[1]) {
		t.Errorf("CopySign keeps NaN and sets the sign: got %v", n)
	}
}

func TestMix(t *testing.T) {
	tv := Float32x4{0, 0.5, 1, 0.25}
	a := BroadcastFloat32x4(0)
	b := BroadcastFloat32x4(8)
	if got, want := tv.Mix(a, b), (Float32x4{0, 4, 8, 2}); got != want {
		t.Errorf("Mix: got %v, want %v", got, want)
	}
}

func TestStep(t *testing.T) {
	x := Float32x4{-1, 0, 0.5, 2}
	edge := BroadcastFloat32x4(0.5)
	if got, want := x.Step(edge), (Float32x4{1, 1, 0, 0}); got != want {
		t.Errorf("Step: got %v, want %v", got, want)
	}
}

func TestSmoothstep(t *testing.T) {
	x := Float64x4{-1, 0.25, 0.5, 2}
	e0 := BroadcastFloat64x4(0)
	e1 := BroadcastFloat64x4(1)
	if got, want := x.Smoothstep(e0, e1), (Float64x4{0, 0.15625, 0.5, 1}); got != want {
		t.Errorf("Smoothstep: got %v, want %v", got, want)
	}
}

func TestFloatReductions(t *testing.T) {
	v := Float32x8{3, -1, 4, 1, -5, 9, 2, 6}
	if got := v.ReduceAdd(); got != 19 {
		t.Errorf("ReduceAdd: got %v, want 19", got)
	}
	if got := v.ReduceMin(); got != -5 {
		t.Errorf("ReduceMin: got %v, want -5", got)
	}
	if got := v.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}
	w := Float32x3{1, 2, float32(math.NaN())}
	if got := w.ReduceMax(); got != 2 {
		t.Errorf("ReduceMax skips NaN: got %v, want 2", got)
	}
	if got := (Float64x4{1, 2, 3, 4}).Dot(Float64x4{5, 6, 7, 8}); got != 70 {
		t.Errorf("Dot: got %v, want 70", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if got := Max(int32(3), 7); got != 7 {
		t.Errorf("Max: got %v", got)
	}
	if got := Min(uint8(3), 7); got != 3 {
		t.Errorf("Min: got %v", got)
	}
	if got := Clamp(int16(12), 0, 10); got != 10 {
		t.Errorf("Clamp: got %v", got)
	}
	if got := Clamp(math.NaN(), 0, 10); got != 0 {
		t.Errorf("Clamp(NaN): got %v, want 0", got)
	}
	if got := Fract(float32(-2.75)); got != -0.75 {
		t.Errorf("Fract: got %v, want -0.75", got)
	}
	if got := Sign(-0.0001); got != -1 {
		t.Errorf("Sign: got %v, want -1", got)
	}
}
