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

import "math"

// Bit-pattern helpers shared by the kernels. Float lanes are handled through
// their IEEE-754 encoding widened to uint64.

func floatBits[T Floats](x T) uint64 {
	if sizeOf[T]() == 4 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

func floatFromBits[T Floats](b uint64) T {
	if sizeOf[T]() == 4 {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// signBitOf returns the sign bit of T in the encoding used by floatBits.
func signBitOf[T Floats]() uint64 {
	return 1 << (sizeOf[T]()*8 - 1)
}

// signBitSet reports whether the most significant bit of x is set.
func signBitSet[T Integers](x T) bool {
	return x>>(sizeOf[T]()*8-1) != 0
}

// broadcastSign fills every bit of x with its most significant bit.
func broadcastSign[T SignedInts](x T) T {
	return x >> (sizeOf[T]()*8 - 1)
}

// allOnes returns the value of T with every bit set: -1 for signed kinds and
// MAX for unsigned kinds.
func allOnes[T Integers]() T {
	var zero T
	return ^zero
}

// maskOf returns the all-ones lane when b holds and zero otherwise.
func maskOf[M SignedInts](b bool) M {
	if b {
		return -1
	}
	return 0
}
