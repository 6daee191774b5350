// Copyright 2026 aventine-simd Authors
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

package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mul returns the product of two column-major n×n matrices.
func mul(a, b []float64, n int) []float64 {
	r := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				r[j*n+i] += a[k*n+i] * b[j*n+k]
			}
		}
	}
	return r
}

func identity(n int) []float64 {
	r := make([]float64, n*n)
	for i := 0; i < n; i++ {
		r[i*n+i] = 1
	}
	return r
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		n    int
		a    []float64
		det  float64
	}{
		{"1x1", 1, []float64{4}, 4},
		{"2x2", 2, []float64{1, 3, 2, 4}, -2},
		{"3x3 needs pivoting", 3, []float64{0, 1, 0, 1, 0, 0, 0, 0, 2}, -2},
		{"4x4", 4, []float64{
			4, 0, 1, 2,
			7, 5, 0, 1,
			2, 0, 3, 0,
			3, 1, 0, 6,
		}, 242},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]float64(nil), tt.a...)
			inv := append([]float64(nil), tt.a...)
			det, ok := Invert(inv, tt.n)
			require.True(t, ok)
			assert.InDelta(t, tt.det, det, 1e-9)
			assert.InDelta(t, Determinant(orig, tt.n), det, 1e-9)
			assert.InDeltaSlice(t, identity(tt.n), mul(orig, inv, tt.n), 1e-12)
			assert.InDeltaSlice(t, identity(tt.n), mul(inv, orig, tt.n), 1e-12)
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		n    int
		a    []float64
	}{
		{"zero", 2, make([]float64, 4)},
		{"dependent rows", 3, []float64{1, 2, 0, 2, 4, 0, 3, 6, 1}},
		{"zero column", 4, []float64{
			1, 2, 3, 4,
			0, 0, 0, 0,
			5, 6, 7, 8,
			9, 1, 2, 3,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := append([]float64(nil), tt.a...)
			det, ok := Invert(a, tt.n)
			assert.False(t, ok)
			assert.Zero(t, det)
			for i, x := range a {
				assert.Truef(t, math.IsNaN(x), "element %d = %v, want NaN", i, x)
			}
			assert.Zero(t, Determinant(tt.a, tt.n))
		})
	}
}

func TestDeterminant(t *testing.T) {
	// Upper triangular: the product of the diagonal.
	a := []float64{
		2, 0, 0, 0,
		5, 3, 0, 0,
		7, 8, 4, 0,
		1, 9, 6, 0.5,
	}
	assert.InDelta(t, 12.0, Determinant(a, 4), 1e-12)

	// Swapping two columns flips the sign.
	b := append([]float64(nil), a...)
	copy(b[0:4], a[4:8])
	copy(b[4:8], a[0:4])
	assert.InDelta(t, -12.0, Determinant(b, 4), 1e-12)

	// The input is left untouched.
	assert.Equal(t, 2.0, a[0])
}

func TestDimensionPanics(t *testing.T) {
	assert.Panics(t, func() { Determinant(make([]float64, 25), 5) })
	assert.Panics(t, func() { Invert(make([]float64, 3), 2) })
	assert.Panics(t, func() { Invert(nil, 0) })
}
