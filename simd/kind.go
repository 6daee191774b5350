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
	"unsafe"

	"github.com/samber/lo"
)

// Kind identifies one of the ten scalar lane types.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no lane type maps to it.
	KindInvalid Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// Kinds lists the valid kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, Float32, Float64}
}

// KindOf returns the Kind of the lane type T. Types defined on top of a
// lane type (type Celsius float32) report the kind of their underlying type.
func KindOf[T Lanes]() Kind {
	var zero T
	one := T(1)
	size := unsafe.Sizeof(zero)
	if one/2 != zero {
		if size == 4 {
			return Float32
		}
		return Float64
	}
	signed := zero-one < zero
	switch size {
	case 1:
		return lo.Ternary(signed, Int8, Uint8)
	case 2:
		return lo.Ternary(signed, Int16, Uint16)
	case 4:
		return lo.Ternary(signed, Int32, Uint32)
	default:
		return lo.Ternary(signed, Int64, Uint64)
	}
}

// String returns the Go name of the lane type, e.g. "uint16".
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Bits returns the lane width in bits.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k == Int8 || k == Int16 || k == Int32 || k == Int64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k == Uint8 || k == Uint16 || k == Uint32 || k == Uint64
}

// Signed returns the signed integer kind of the same width.
// It is the element kind of comparison masks.
func (k Kind) Signed() Kind {
	switch k.Bits() {
	case 8:
		return Int8
	case 16:
		return Int16
	case 32:
		return Int32
	case 64:
		return Int64
	default:
		return KindInvalid
	}
}

// minInt returns the smallest value of an integer kind.
func (k Kind) minInt() int64 {
	if !k.IsSigned() {
		return 0
	}
	return -1 << (k.Bits() - 1)
}

// maxUint returns the largest value of an integer kind.
func (k Kind) maxUint() uint64 {
	if k.IsSigned() {
		return 1<<(k.Bits()-1) - 1
	}
	return math.MaxUint64 >> (64 - k.Bits())
}

// Contains reports whether every value of kind src is inside the range of k.
// Conversions from src to k never need to saturate when it holds; precision
// may still be lost (int64 to float64).
func (k Kind) Contains(src Kind) bool {
	switch {
	case k == src:
		return true
	case k == Float64:
		return true
	case k == Float32:
		return src != Float64
	case src.IsFloat():
		return false
	case k.IsUnsigned():
		return src.IsUnsigned() && k.Bits() >= src.Bits()
	case src.IsSigned():
		return k.Bits() >= src.Bits()
	default:
		// Unsigned source into a signed destination needs a spare bit.
		return k.Bits() > src.Bits()
	}
}

func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
