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
	"math/rand/v2"
	"testing"
)

// randomVector fills every lane of V from next.
func randomVector[V Vector[V, S, B], S Lanes, B any](next func() S) V {
	var v V
	for i := range v.NumLanes() {
		v = v.With(i, next())
	}
	return v
}

func checkAlgebra[V Vector[V, S, B], S Lanes, B any](t *testing.T, next func() S) {
	t.Helper()
	for range 100 {
		x := randomVector[V, S, B](next)
		y := randomVector[V, S, B](next)
		if !x.Add(y).Equal(y.Add(x)) {
			t.Fatalf("%T: x+y != y+x for x=%v y=%v", x, x, y)
		}
		if !x.Mul(y).Equal(y.Mul(x)) {
			t.Fatalf("%T: x*y != y*x for x=%v y=%v", x, x, y)
		}
		if !x.Sub(y).Equal(y.Sub(x).Neg()) {
			t.Fatalf("%T: x-y != -(y-x) for x=%v y=%v", x, x, y)
		}
		if !x.Min(y).Max(x).Equal(x) {
			t.Fatalf("%T: max(min(x, y), x) != x for x=%v y=%v", x, x, y)
		}
	}
}

func TestAlgebraProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	t.Run("Int8x16", func(t *testing.T) {
		checkAlgebra[Int8x16, int8, Int8x16](t, func() int8 { return int8(r.Uint32()) })
	})
	t.Run("Uint16x8", func(t *testing.T) {
		checkAlgebra[Uint16x8, uint16, Int16x8](t, func() uint16 { return uint16(r.Uint32()) })
	})
	t.Run("Int32x3", func(t *testing.T) {
		checkAlgebra[Int32x3, int32, Int32x3](t, func() int32 { return int32(r.Uint32()) })
	})
	t.Run("Uint64x2", func(t *testing.T) {
		checkAlgebra[Uint64x2, uint64, Int64x2](t, r.Uint64)
	})
	// Small integers keep float sums exact.
	t.Run("Float32x4", func(t *testing.T) {
		checkAlgebra[Float32x4, float32, Int32x4](t, func() float32 { return float32(r.IntN(2001) - 1000) })
	})
	t.Run("Float64x8", func(t *testing.T) {
		checkAlgebra[Float64x8, float64, Int64x8](t, func() float64 { return float64(r.IntN(2001) - 1000) })
	})
}

func checkIntegerAssociativity[V Integer[V, S, B], S Integers, B any](t *testing.T, next func() S) {
	t.Helper()
	for range 100 {
		x := randomVector[V, S, B](next)
		y := randomVector[V, S, B](next)
		z := randomVector[V, S, B](next)
		if !x.Add(y).Add(z).Equal(x.Add(y.Add(z))) {
			t.Fatalf("%T: (x+y)+z != x+(y+z)", x)
		}
		if !x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z))) {
			t.Fatalf("%T: (x*y)*z != x*(y*z)", x)
		}
		if !x.Xor(y).Xor(y).Equal(x) {
			t.Fatalf("%T: x^y^y != x", x)
		}
		if !x.AndNot(y).Or(x.And(y)).Equal(x) {
			t.Fatalf("%T: (x &^ y) | (x & y) != x", x)
		}
	}
}

func TestIntegerAssociativity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	checkIntegerAssociativity[Int16x16, int16, Int16x16](t, func() int16 { return int16(r.Uint32()) })
	checkIntegerAssociativity[Uint32x8, uint32, Int32x8](t, r.Uint32)
	checkIntegerAssociativity[Int64x4, int64, Int64x4](t, r.Int64)
}

func checkReduceBroadcast[V Vector[V, S, B], S Lanes, B any](t *testing.T, k S) {
	t.Helper()
	var zero V
	v := zero.Broadcast(k)
	n := S(v.NumLanes())
	if got, want := v.ReduceAdd(), k*n; got != want {
		t.Errorf("%T: ReduceAdd(Broadcast(%v)) = %v, want %v", v, k, got, want)
	}
	if got := v.ReduceMin(); got != k {
		t.Errorf("%T: ReduceMin(Broadcast(%v)) = %v", v, k, got)
	}
	if got := v.ReduceMax(); got != k {
		t.Errorf("%T: ReduceMax(Broadcast(%v)) = %v", v, k, got)
	}
}

func TestReduceBroadcast(t *testing.T) {
	checkReduceBroadcast[Int8x16, int8, Int8x16](t, 100)
	checkReduceBroadcast[Uint8x8, uint8, Int8x8](t, 200)
	checkReduceBroadcast[Int16x3, int16, Int16x3](t, -7)
	checkReduceBroadcast[Uint32x2, uint32, Int32x2](t, 1<<31)
	checkReduceBroadcast[Int64x16, int64, Int64x16](t, -1)
	checkReduceBroadcast[Float32x16, float32, Int32x16](t, 0.5)
	checkReduceBroadcast[Float64x3, float64, Int64x3](t, 3)
}

func lerp[V Float[V, S, B], S Floats, B any](t S, a, b V) V {
	return a.Broadcast(t).Mix(a, b)
}

func TestFloatTraitGeneric(t *testing.T) {
	a := Float32x4{0, 10, -4, 1}
	b := Float32x4{10, 20, 4, 1}
	if got, want := lerp[Float32x4, float32, Int32x4](0.5, a, b), (Float32x4{5, 15, 0, 1}); got != want {
		t.Errorf("lerp: got %v, want %v", got, want)
	}
	c := Float64x2{-1, 1}
	if got, want := lerp[Float64x2, float64, Int64x2](0.25, c, c.Neg()), (Float64x2{-0.5, 0.5}); got != want {
		t.Errorf("lerp: got %v, want %v", got, want)
	}
}
