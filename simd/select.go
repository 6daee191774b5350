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
	"unsafe"
)

// Bitcast reinterprets the bytes of v as a vector of type D.
// D and S must have the same size in bytes, e.g. Float32x4 and Uint8x16.
// Bitcast panics otherwise.
func Bitcast[D, S Register](v S) D {
	var d D
	n := unsafe.Sizeof(d)
	if n != unsafe.Sizeof(v) {
		panic(fmt.Sprintf("simd: bitcast from %T (%d bytes) to %T (%d bytes)",
			v, unsafe.Sizeof(v), d, n))
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&d)), n), unsafe.Slice((*byte)(unsafe.Pointer(&v)), n))
	return d
}

// Bitselect returns (a &^ mask) | (b & mask), bit by bit: set mask bits pick
// b. The mask may be of any kind with the same lane width and lane count as
// the values; Bitselect panics otherwise.
func Bitselect[M, V Register](mask M, a, b V) V {
	size := checkMask(mask, a, "bitselect")
	var r V
	switch size {
	case 1:
		bitselectLanes(laneView[uint8](&r), laneView[uint8](&mask), laneView[uint8](&a), laneView[uint8](&b))
	case 2:
		bitselectLanes(laneView[uint16](&r), laneView[uint16](&mask), laneView[uint16](&a), laneView[uint16](&b))
	case 4:
		bitselectLanes(laneView[uint32](&r), laneView[uint32](&mask), laneView[uint32](&a), laneView[uint32](&b))
	default:
		bitselectLanes(laneView[uint64](&r), laneView[uint64](&mask), laneView[uint64](&a), laneView[uint64](&b))
	}
	return r
}

// Select picks b in every lane whose mask sign bit is set and a elsewhere.
// The remaining mask bits are ignored, so 0x800000000000FFFF selects like
// an all-ones lane. Mask shape rules are those of Bitselect.
func Select[M, V Register](mask M, a, b V) V {
	size := checkMask(mask, a, "select")
	var r V
	switch size {
	case 1:
		selectLanes(laneView[int8](&r), laneView[int8](&mask), laneView[int8](&a), laneView[int8](&b))
	case 2:
		selectLanes(laneView[int16](&r), laneView[int16](&mask), laneView[int16](&a), laneView[int16](&b))
	case 4:
		selectLanes(laneView[int32](&r), laneView[int32](&mask), laneView[int32](&a), laneView[int32](&b))
	default:
		selectLanes(laneView[int64](&r), laneView[int64](&mask), laneView[int64](&a), laneView[int64](&b))
	}
	return r
}

// checkMask validates that mask and v share lane count and lane size and
// returns the lane size in bytes.
func checkMask[M, V Register](mask M, v V, op string) int {
	if mask.NumLanes() != v.NumLanes() || unsafe.Sizeof(mask) != unsafe.Sizeof(v) {
		panic(fmt.Sprintf("simd: %s with mask %T does not match %T", op, mask, v))
	}
	return int(unsafe.Sizeof(v)) / v.NumLanes()
}

// laneView reinterprets the vector at p as a slice of integer lanes of the
// same size. Lane types of one size share their alignment, so the view is
// always aligned.
func laneView[U Integers, V Register](p *V) []U {
	var u U
	n := int(unsafe.Sizeof(*p) / unsafe.Sizeof(u))
	return unsafe.Slice((*U)(unsafe.Pointer(p)), n)
}
