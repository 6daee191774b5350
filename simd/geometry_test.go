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

func TestLength(t *testing.T) {
	v := Float32x2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared: got %v, want 25", got)
	}
	a, b := Float64x3{1, 1, 1}, Float64x3{4, 5, 1}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance: got %v, want 5", got)
	}
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("DistanceSquared: got %v, want 25", got)
	}
}

func TestNorms(t *testing.T) {
	v := Float64x4{-1, 2, -3, 0.5}
	if got := v.NormOne(); got != 6.5 {
		t.Errorf("NormOne: got %v, want 6.5", got)
	}
	if got := v.NormInf(); got != 3 {
		t.Errorf("NormInf: got %v, want 3", got)
	}
}

func TestNormalize(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-6, 0)
	if diff := cmp.Diff(Float32x2{0.6, 0.8}, (Float32x2{3, 4}).Normalize(), approx); diff != "" {
		t.Errorf("Normalize (-want +got):\n%s", diff)
	}
	for _, v := range []Float64x4{{1, 2, 3, 4}, {-1e-3, 0, 0, 1e-3}, {1e100, 1e100, 0, 0}} {
		if l := v.Normalize().Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Normalize(%v) has length %v", v, l)
		}
	}
	z := (Float32x3{}).Normalize()
	for i, x := range z {
		if !math.IsNaN(float64(x)) {
			t.Errorf("Normalize(0): lane %d = %v, want NaN", i, x)
		}
	}
}

func TestReflect(t *testing.T) {
	v := Float32x2{1, -1}
	n := Float32x2{0, 1}
	if got, want := v.Reflect(n), (Float32x2{1, 1}); got != want {
		t.Errorf("Reflect: got %v, want %v", got, want)
	}
}

func TestRefract(t *testing.T) {
	n := Float64x2{0, 1}
	down := Float64x2{0, -1}
	if got := down.Refract(n, 1.5); got != down {
		t.Errorf("Refract along the normal: got %v, want %v", got, down)
	}

	// Snell: sin(out) = eta * sin(in).
	in := Float64x2{math.Sin(math.Pi / 6), -math.Cos(math.Pi / 6)}
	out := in.Refract(n, 0.5)
	if got := out[0]; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Refract: sin of the refracted angle = %v, want 0.25", got)
	}
	if l := out.Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("Refract: length %v, want 1", l)
	}

	grazing := (Float64x2{1, -0.1}).Normalize()
	if got := grazing.Refract(n, 1.5); got != (Float64x2{}) {
		t.Errorf("Refract under total internal reflection: got %v, want zero", got)
	}
}

func TestProject(t *testing.T) {
	v := Float32x3{2, 3, 4}
	if got, want := v.Project(Float32x3{0, 2, 0}), (Float32x3{0, 3, 0}); got != want {
		t.Errorf("Project: got %v, want %v", got, want)
	}
}

func TestCross(t *testing.T) {
	x, y, z := Float32x3{1, 0, 0}, Float32x3{0, 1, 0}, Float32x3{0, 0, 1}
	tests := []struct {
		name string
		got  Float32x3
		want Float32x3
	}{
		{"x*y", x.Cross(y), z},
		{"y*z", y.Cross(z), x},
		{"z*x", z.Cross(x), y},
		{"y*x", y.Cross(x), z.Neg()},
		{"general", (Float32x3{1, 2, 3}).Cross(Float32x3{4, 5, 6}), Float32x3{-3, 6, -3}},
		{"2d", (Float32x2{2, 0}).Cross(Float32x2{0, 3}), Float32x3{0, 0, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
