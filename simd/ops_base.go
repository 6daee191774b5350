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

// This file holds the portable lane kernels behind every vector method.
// Each kernel is written once per kind class and works on lane slices taken
// from the fixed-size arrays, so the same code serves all widths.
//
// Products are wrapped in an explicit conversion so the compiler cannot fuse
// them into a following add.

func addLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = T(a[i] * b[i])
	}
}

// divLanes divides lane by lane. Integer division by zero panics like any Go
// integer division; MIN / -1 wraps to MIN.
func divLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func addScalarLanes[T Lanes](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalarLanes[T Lanes](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulScalarLanes[T Lanes](dst, a []T, s T) {
	for i := range dst {
		dst[i] = T(a[i] * s)
	}
}

func divScalarLanes[T Lanes](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// rsubScalarLanes computes s - a.
func rsubScalarLanes[T Lanes](dst, a []T, s T) {
	for i := range dst {
		dst[i] = s - a[i]
	}
}

// rdivScalarLanes computes s / a.
func rdivScalarLanes[T Lanes](dst, a []T, s T) {
	for i := range dst {
		dst[i] = s / a[i]
	}
}

func negLanes[T Lanes](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// maddLanes computes x*y + z with the product rounded on its own.
func maddLanes[T Lanes](dst, x, y, z []T) {
	for i := range dst {
		dst[i] = T(x[i]*y[i]) + z[i]
	}
}

func minLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = Min(a[i], b[i])
	}
}

func maxLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = Max(a[i], b[i])
	}
}

func clampLanes[T Lanes](dst, a, lo, hi []T) {
	for i := range dst {
		dst[i] = Clamp(a[i], lo[i], hi[i])
	}
}

// absSignedLanes computes (x ^ m) - m with m the broadcast sign, so that
// the most negative value maps to itself.
func absSignedLanes[T SignedInts](dst, a []T) {
	for i := range dst {
		m := broadcastSign(a[i])
		dst[i] = (a[i] ^ m) - m
	}
}

func equalLanes[T Lanes](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func notEqualLanes[T Lanes](a, b []T) bool {
	return !equalLanes(a, b)
}

// Comparisons write an all-ones lane where the predicate holds.

func eqLanes[T Lanes, M SignedInts](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] == b[i])
	}
}

func neLanes[T Lanes, M SignedInts](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] != b[i])
	}
}

func ltLanes[T Lanes, M SignedInts](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] < b[i])
	}
}

func leLanes[T Lanes, M SignedInts](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] <= b[i])
	}
}

func gtLanes[T Lanes, M SignedInts](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] > b[i])
	}
}

func geLanes[T Lanes, M SignedInts](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] >= b[i])
	}
}

// Reductions combine lanes as a balanced tree: two lanes combine directly,
// three lanes fold the third into the reduced low pair, and wider vectors
// first combine the low and high halves lane by lane. Float results depend
// on this order.

func reduceLanes[T Lanes](a []T, op func(x, y T) T) T {
	switch len(a) {
	case 1:
		return a[0]
	case 2:
		return op(a[0], a[1])
	case 3:
		return op(op(a[0], a[1]), a[2])
	}
	var buf [8]T
	half := len(a) / 2
	tmp := buf[:half]
	for i := range tmp {
		tmp[i] = op(a[i], a[i+half])
	}
	return reduceLanes(tmp, op)
}

func reduceAddLanes[T Lanes](a []T) T {
	return reduceLanes(a, func(x, y T) T { return x + y })
}

func reduceMinLanes[T Lanes](a []T) T {
	return reduceLanes(a, Min[T])
}

func reduceMaxLanes[T Lanes](a []T) T {
	return reduceLanes(a, Max[T])
}

func dotLanes[T Lanes](a, b []T) T {
	var buf [16]T
	p := buf[:len(a)]
	mulLanes(p, a, b)
	return reduceAddLanes(p)
}

// Integer kernels.

func andLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func orLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func xorLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func andNotLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

func andScalarLanes[T Integers](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] & s
	}
}

func orScalarLanes[T Integers](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] | s
	}
}

func xorScalarLanes[T Integers](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] ^ s
	}
}

// notLanes flips every bit: x ^ -1 for signed kinds, x ^ MAX for unsigned.
func notLanes[T Integers](dst, a []T) {
	ones := allOnes[T]()
	for i := range dst {
		dst[i] = a[i] ^ ones
	}
}

// Shift counts are read as unsigned, so a negative count behaves like a huge
// one. Counts of at least the lane width produce 0, or the sign fill for an
// arithmetic right shift.

func shlLanes[T Integers](dst, a, n []T) {
	for i := range dst {
		dst[i] = a[i] << uint64(n[i])
	}
}

func shrLanes[T Integers](dst, a, n []T) {
	for i := range dst {
		dst[i] = a[i] >> uint64(n[i])
	}
}

func shlScalarLanes[T Integers](dst, a []T, n uint) {
	for i := range dst {
		dst[i] = a[i] << n
	}
}

func shrScalarLanes[T Integers](dst, a []T, n uint) {
	for i := range dst {
		dst[i] = a[i] >> n
	}
}

// remLanes computes x - (x/y)*y, the remainder of truncated division.
func remLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - (a[i]/b[i])*b[i]
	}
}

func remScalarLanes[T Integers](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - (a[i]/s)*s
	}
}

func reduceAndLanes[T Integers](a []T) T {
	return reduceLanes(a, func(x, y T) T { return x & y })
}

func reduceOrLanes[T Integers](a []T) T {
	return reduceLanes(a, func(x, y T) T { return x | y })
}

func reduceXorLanes[T Integers](a []T) T {
	return reduceLanes(a, func(x, y T) T { return x ^ y })
}

// allLanes reports whether the sign bit survives the AND reduction.
func allLanes[T Integers](a []T) bool {
	return signBitSet(reduceAndLanes(a))
}

// anyLanes reports whether the sign bit survives the OR reduction.
func anyLanes[T Integers](a []T) bool {
	return signBitSet(reduceOrLanes(a))
}

// bitselectLanes computes (a &^ m) | (b & m): set mask bits pick b.
func bitselectLanes[T Integers](dst, m, a, b []T) {
	for i := range dst {
		dst[i] = a[i]&^m[i] | b[i]&m[i]
	}
}

// selectLanes broadcasts the sign bit of every mask lane before
// bitselecting, so any lane with its top bit set counts as true.
func selectLanes[T SignedInts](dst, m, a, b []T) {
	for i := range dst {
		s := broadcastSign(m[i])
		dst[i] = a[i]&^s | b[i]&s
	}
}

// convertLanes converts lane by lane with Go conversion semantics.
func convertLanes[D, S Lanes](dst []D, src []S) {
	for i := range dst {
		dst[i] = D(src[i])
	}
}
