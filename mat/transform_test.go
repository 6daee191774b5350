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

package mat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rawrasaur/aventine-simd/simd"
)

const eps = 1e-12

func assertVecNear(t *testing.T, want, got simd.Float64x4, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta)
}

// assertOrthonormal checks that the upper-left 3x3 block of m is a rotation.
func assertOrthonormal(t *testing.T, m Float64x4x4) {
	t.Helper()
	r := Float64x3x3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
	id := r.Identity().float64s()
	got := r.Transpose().Mul(r).float64s()
	assert.InDeltaSlice(t, id[:], got[:], 1e-9)
	assert.InDelta(t, 1.0, r.Determinant(), 1e-9)
}

func TestFromScale(t *testing.T) {
	s := FromScale[Float32x4x4](2)
	assert.Equal(t, simd.Float32x4{2, 4, 6, 1}, s.Dot(simd.Float32x4{1, 2, 3, 1}))
}

func TestFromTranslation(t *testing.T) {
	m := FromTranslation[Float64x4x4](1, 2, 3)
	assert.Equal(t, simd.Float64x4{1, 2, 3, 1}, m.Dot(simd.Float64x4{0, 0, 0, 1}))
	assert.Equal(t, simd.Float64x4{5, 5, 5, 1}, m.Dot(simd.Float64x4{4, 3, 2, 1}))
	// Directions ignore the translation.
	assert.Equal(t, simd.Float64x4{4, 3, 2, 0}, m.Dot(simd.Float64x4{4, 3, 2, 0}))

	back := FromTranslation[Float64x4x4](-1, -2, -3)
	assert.True(t, m.Mul(back).Equal(m.Identity()))
}

func TestFromEulerAngles(t *testing.T) {
	x := simd.Float64x4{1, 0, 0, 0}
	y := simd.Float64x4{0, 1, 0, 0}
	tests := []struct {
		name             string
		roll, pitch, yaw float64
		in, want         simd.Float64x4
	}{
		{"yaw turns x into y", 0, 0, math.Pi / 2, x, y},
		{"roll turns y into z", math.Pi / 2, 0, 0, y, simd.Float64x4{0, 0, 1, 0}},
		{"pitch turns x into -z", 0, math.Pi / 2, 0, x, simd.Float64x4{0, 0, -1, 0}},
		{"identity", 0, 0, 0, simd.Float64x4{1, 2, 3, 1}, simd.Float64x4{1, 2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromEulerAngles[Float64x4x4](tt.roll, tt.pitch, tt.yaw)
			assertVecNear(t, tt.want, m.Dot(tt.in), eps)
		})
	}

	m := FromEulerAngles[Float64x4x4](0.3, -1.1, 2.5)
	assertOrthonormal(t, m)
	yaw := FromEulerAngles[Float64x4x4](0, 0, 2.5)
	pitch := FromEulerAngles[Float64x4x4](0, -1.1, 0)
	roll := FromEulerAngles[Float64x4x4](0.3, 0, 0)
	want := yaw.Mul(pitch).Mul(roll).float64s()
	got := m.float64s()
	assert.InDeltaSlice(t, want[:], got[:], eps)
}

func TestLookAt(t *testing.T) {
	eye := simd.Float64x3{1, 2, 3}
	center := simd.Float64x3{1, 2, 10}
	up := simd.Float64x3{0, 1, 0}
	m := LookAt(eye, center, up)

	assertVecNear(t, simd.Float64x4{0, 0, 0, 1}, m.Dot(simd.Float64x4{1, 2, 3, 1}), eps)
	assertVecNear(t, simd.Float64x4{0, 0, 7, 1}, m.Dot(simd.Float64x4{1, 2, 10, 1}), eps)
	assertVecNear(t, simd.Float64x4{0, 1, 0, 0}, m.Dot(simd.Float64x4{0, 1, 0, 0}), eps)

	m = LookAt(simd.Float64x3{3, 4, 5}, simd.Float64x3{}, up)
	assertOrthonormal(t, m)
	// The target lies straight ahead.
	got := m.Dot(simd.Float64x4{0, 0, 0, 1})
	assertVecNear(t, simd.Float64x4{0, 0, math.Sqrt(50), 1}, got, 1e-9)
}

func TestPerspective(t *testing.T) {
	m := Perspective[Float64x4x4](2, 1, 1, 10)
	near := m.Dot(simd.Float64x4{0, 0, 1, 1})
	far := m.Dot(simd.Float64x4{0, 0, 10, 1})
	assert.InDelta(t, 0.0, near[2]/near[3], eps)
	assert.InDelta(t, 1.0, far[2]/far[3], eps)

	corner := m.Dot(simd.Float64x4{1, 0.5, 1, 1})
	assert.InDelta(t, 1.0, corner[0]/corner[3], eps)
	assert.InDelta(t, 1.0, corner[1]/corner[3], eps)
}

func TestPerspectiveFov(t *testing.T) {
	m := PerspectiveFov[Float64x4x4](math.Pi/2, 2, 0.1, 100)
	assert.InDelta(t, 0.5, m[0][0], eps)
	assert.InDelta(t, 1.0, m[1][1], eps)
	assert.Equal(t, 1.0, m[2][3])
	assert.Zero(t, m[3][3])

	far := m.Dot(simd.Float64x4{0, 0, 100, 1})
	assert.InDelta(t, 1.0, far[2]/far[3], eps)

	// A point on the upper edge of the field of view.
	top := m.Dot(simd.Float64x4{0, 5, 5, 1})
	assert.InDelta(t, 1.0, top[1]/top[3], eps)
}

func TestOrthographic(t *testing.T) {
	m := Orthographic[Float64x4x4](-2, 2, -1, 1, 0, 10)
	assert.Equal(t, simd.Float64x4{1, 1, 1, 1}, m.Dot(simd.Float64x4{2, 1, 10, 1}))
	assert.Equal(t, simd.Float64x4{-1, -1, 0, 1}, m.Dot(simd.Float64x4{-2, -1, 0, 1}))

	f := Orthographic[Float32x4x4](0, 3, 0, 7, 1, 4)
	assert.Equal(t, 2*(1/float32(3)), f[0][0])
	assert.Equal(t, 2*(1/float32(7)), f[1][1])
	assert.Equal(t, -1*(1/float32(3)), f[3][2])
}
