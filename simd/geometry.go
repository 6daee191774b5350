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

// Geometry kernels for float vectors of any width.

func lengthSquaredLanes[T Floats](a []T) T {
	return dotLanes(a, a)
}

func lengthLanes[T Floats](a []T) T {
	return Sqrt(lengthSquaredLanes(a))
}

func distanceSquaredLanes[T Floats](a, b []T) T {
	var buf [16]T
	d := buf[:len(a)]
	subLanes(d, a, b)
	return lengthSquaredLanes(d)
}

func distanceLanes[T Floats](a, b []T) T {
	return Sqrt(distanceSquaredLanes(a, b))
}

// normOneLanes is the sum of absolute values.
func normOneLanes[T Floats](a []T) T {
	var buf [16]T
	d := buf[:len(a)]
	absFloatLanes(d, a)
	return reduceAddLanes(d)
}

// normInfLanes is the largest absolute value.
func normInfLanes[T Floats](a []T) T {
	var buf [16]T
	d := buf[:len(a)]
	absFloatLanes(d, a)
	return reduceMaxLanes(d)
}

// normalizeLanes scales a by the reciprocal square root of its squared
// length. The zero vector normalizes to NaN lanes.
func normalizeLanes[T Floats](dst, a []T) {
	r := 1 / Sqrt(lengthSquaredLanes(a))
	mulScalarLanes(dst, a, r)
}

// reflectLanes computes a - 2*dot(a, n)*n.
func reflectLanes[T Floats](dst, a, n []T) {
	d := dotLanes(a, n)
	s := T(2 * d)
	for i := range dst {
		dst[i] = a[i] - T(s*n[i])
	}
}

// refractLanes bends a through the surface with normal n and index ratio
// eta. Total internal reflection yields the zero vector.
func refractLanes[T Floats](dst, a, n []T, eta T) {
	d := dotLanes(n, a)
	k := 1 - T(eta*eta)*(1-T(d*d))
	if k < 0 {
		clear(dst)
		return
	}
	s := T(eta*d) + Sqrt(k)
	for i := range dst {
		dst[i] = T(eta*a[i]) - T(s*n[i])
	}
}

// projectLanes projects a onto b: (dot(a, b) / dot(b, b)) * b.
func projectLanes[T Floats](dst, a, b []T) {
	s := dotLanes(a, b) / dotLanes(b, b)
	mulScalarLanes(dst, b, s)
}
