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
	"fmt"
	"math"
)

// This file provides saturating conversions between lane kinds.
// A saturating conversion clamps each lane to the destination range before
// converting it, instead of wrapping or relying on implementation-defined
// float-to-integer behavior.

// saturateLanes converts src into dst with saturation. When the destination
// range contains the source range it is a plain conversion.
func saturateLanes[D, S Lanes](dst []D, src []S) {
	dk, sk := KindOf[D](), KindOf[S]()
	if dk.Contains(sk) {
		convertLanes(dst, src)
		return
	}
	switch {
	case sk.IsFloat():
		for i := range dst {
			dst[i] = saturateFloat[D](dk, float64(src[i]))
		}
	case sk.IsSigned():
		for i := range dst {
			dst[i] = saturateSigned[D](dk, int64(src[i]))
		}
	default:
		for i := range dst {
			dst[i] = saturateUnsigned[D](dk, uint64(src[i]))
		}
	}
}

// saturateFloat clamps with maxNum/minNum semantics, so NaN lands on the
// lower bound. The upper bound of 64-bit integers is not representable as a
// float and is matched by comparison instead of by clamping.
func saturateFloat[D Lanes](dk Kind, f float64) D {
	if dk.IsFloat() {
		return D(Clamp(f, -math.MaxFloat32, math.MaxFloat32))
	}
	lo, hi := dk.minInt(), dk.maxUint()
	switch {
	case f != f || f <= float64(lo):
		return D(lo)
	case f >= float64(hi):
		return D(hi)
	}
	return D(f)
}

func saturateSigned[D Lanes](dk Kind, v int64) D {
	lo, hi := dk.minInt(), dk.maxUint()
	switch {
	case v < lo:
		return D(lo)
	case v > 0 && uint64(v) > hi:
		return D(hi)
	}
	return D(v)
}

func saturateUnsigned[D Lanes](dk Kind, v uint64) D {
	if hi := dk.maxUint(); v > hi {
		return D(hi)
	}
	return D(v)
}

// Saturate converts a single scalar from kind S to kind D with saturation.
func Saturate[D, S Lanes](x S) D {
	var d [1]D
	saturateLanes(d[:], []S{x})
	return d[0]
}

// Lanewise is the lane access shared by every vector type with lane type S.
type Lanewise[V any, S Lanes] interface {
	Register
	Get(i int) S
	With(i int, s S) V
}

// SaturateVec converts v into D lane by lane with saturation. It serves
// generic code that cannot name the To<Kind>Sat methods. D must have as many
// lanes as V.
func SaturateVec[D Lanewise[D, DS], DS Lanes, V Lanewise[V, S], S Lanes](v V) D {
	var d D
	if d.NumLanes() != v.NumLanes() {
		panic(fmt.Sprintf("simd: saturate %T into %T", v, d))
	}
	for i := range v.NumLanes() {
		d = d.With(i, Saturate[DS](v.Get(i)))
	}
	return d
}
