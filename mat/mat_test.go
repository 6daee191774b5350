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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawrasaur/aventine-simd/simd"
)

func TestColRow(t *testing.T) {
	m := FromRows2x3(
		simd.Float32x2{1, 2},
		simd.Float32x2{3, 4},
		simd.Float32x2{5, 6},
	)
	assert.Equal(t, simd.Float32x3{1, 3, 5}, m.Col(0))
	assert.Equal(t, simd.Float32x3{2, 4, 6}, m.Col(1))
	assert.Equal(t, simd.Float32x2{3, 4}, m.Row(1))
	assert.Equal(t, Float32x2x3{{1, 3, 5}, {2, 4, 6}}, m)
}

func TestTranspose(t *testing.T) {
	m := Float64x3x2{{1, 2}, {3, 4}, {5, 6}}
	tr := m.Transpose()
	assert.Equal(t, Float64x2x3{{1, 3, 5}, {2, 4, 6}}, tr)
	assert.True(t, tr.Transpose().Equal(m))

	sq := Float32x4x4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	assert.True(t, sq.Transpose().Transpose().Equal(sq))
	assert.Equal(t, sq.Row(2), sq.Transpose().Col(2))
}

func TestArithmetic(t *testing.T) {
	a := Float32x2x2{{1, 2}, {3, 4}}
	b := Float32x2x2{{10, 20}, {30, 40}}
	assert.Equal(t, Float32x2x2{{11, 22}, {33, 44}}, a.Add(b))
	assert.Equal(t, Float32x2x2{{9, 18}, {27, 36}}, b.Sub(a))
	assert.Equal(t, Float32x2x2{{0.5, 1}, {1.5, 2}}, a.Scale(0.5))
	assert.Equal(t, Float32x2x2{{7, 14}, {21, 28}}, a.LinearCombination(2, 0.5, b))
	// Operands are values.
	assert.Equal(t, Float32x2x2{{1, 2}, {3, 4}}, a)
}

func TestDot(t *testing.T) {
	m := FromRows3x2(
		simd.Float64x3{1, 2, 3},
		simd.Float64x3{4, 5, 6},
	)
	assert.Equal(t, simd.Float64x2{14, 32}, m.Dot(simd.Float64x3{1, 2, 3}))

	n := FromRows2x3(
		simd.Float64x2{1, 0},
		simd.Float64x2{0, 1},
		simd.Float64x2{1, 1},
	)
	assert.Equal(t, FromRows2x2(simd.Float64x2{4, 5}, simd.Float64x2{10, 11}), m.DotMat2(n))
	assert.Equal(t, FromRows3x3(
		simd.Float64x3{1, 2, 3},
		simd.Float64x3{4, 5, 6},
		simd.Float64x3{5, 7, 9},
	), n.DotMat3(m))
}

func TestIdentity(t *testing.T) {
	m := Float32x4x4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	id := m.Identity()
	assert.Equal(t, Float32x4x4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, id)
	assert.True(t, m.DotMat4(id).Equal(m))
	assert.True(t, id.Mul(m).Equal(m))

	v := simd.Float32x4{1, -2, 3, -4}
	assert.Equal(t, v, id.Dot(v))
	assert.Equal(t, Float64x3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Float64x3x3{}.Identity())
}

func TestMulAssociates(t *testing.T) {
	a := Float64x3x3{{1, 2, 0}, {0, 1, 3}, {4, 0, 1}}
	b := Float64x3x3{{2, 0, 1}, {1, 1, 0}, {0, 3, 1}}
	c := Float64x3x3{{1, 1, 1}, {0, 2, 0}, {5, 0, 1}}
	assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
	assert.False(t, a.Mul(b).Equal(b.Mul(a)))
}

func TestDeterminant(t *testing.T) {
	m2 := FromRows2x2(simd.Float64x2{1, 2}, simd.Float64x2{3, 4})
	assert.InDelta(t, -2.0, m2.Determinant(), 1e-12)

	m3 := FromRows3x3(
		simd.Float32x3{2, 0, 0},
		simd.Float32x3{0, 3, 0},
		simd.Float32x3{7, 1, 4},
	)
	assert.InDelta(t, 24.0, float64(m3.Determinant()), 1e-5)

	s := FromScale[Float64x4x4](2.0)
	assert.InDelta(t, 8.0, s.Determinant(), 1e-12)
}

func TestInverse(t *testing.T) {
	m := FromRows4x4(
		simd.Float64x4{4, 7, 2, 3},
		simd.Float64x4{0, 5, 0, 1},
		simd.Float64x4{1, 0, 3, 0},
		simd.Float64x4{2, 1, 0, 6},
	)
	inv := m.Inverse()
	id := m.Identity().float64s()
	left := inv.Mul(m).float64s()
	right := m.Mul(inv).float64s()
	assert.InDeltaSlice(t, id[:], left[:], 1e-12)
	assert.InDeltaSlice(t, id[:], right[:], 1e-12)

	checked, err := m.InverseChecked()
	require.NoError(t, err)
	assert.Equal(t, inv, checked)

	m2 := Float32x2x2{{4, 2}, {7, 6}}
	got := m2.Inverse().float64s()
	assert.InDeltaSlice(t, []float64{0.6, -0.2, -0.7, 0.4}, got[:], 1e-6)

	m3 := Float64x3x3{{0, 1, 0}, {1, 0, 0}, {0, 0, 0.5}}
	assert.Equal(t, Float64x3x3{{0, 1, 0}, {1, 0, 0}, {0, 0, 2}}, m3.Inverse())
}

func TestInverseSingular(t *testing.T) {
	m := Float32x3x3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	for _, x := range m.Inverse().float64s() {
		assert.True(t, math.IsNaN(x))
	}

	got, err := m.InverseChecked()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingular))
	assert.Contains(t, err.Error(), "3x3")
	assert.Equal(t, m, got)

	_, err = Float64x4x4{}.InverseChecked()
	assert.ErrorIs(t, err, ErrSingular)
	assert.Zero(t, Float64x2x2{}.Determinant())
}
