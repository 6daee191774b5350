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

// This file provides the scalar operations the vector kernels are built from.
// Integer kinds use their natural ordering. Float kinds follow IEEE-754
// maxNum/minNum: when exactly one operand is NaN the other one is returned.

// Max returns the larger of x and y.
func Max[T Lanes](x, y T) T {
	if x != x {
		return y
	}
	if y != y {
		return x
	}
	if y > x {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func Min[T Lanes](x, y T) T {
	if x != x {
		return y
	}
	if y != y {
		return x
	}
	if y < x {
		return y
	}
	return x
}

// Clamp returns min(max(x, lo), hi).
func Clamp[T Lanes](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// Sqrt returns the correctly rounded square root of x.
func Sqrt[T Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Fract returns the fractional part of x, x - Trunc(x).
func Fract[T Floats](x T) T {
	return x - Trunc(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Floats](x T) T {
	return T(math.Ceil(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Floats](x T) T {
	return T(math.Floor(float64(x)))
}

// Trunc returns the integer value of x rounded toward zero.
func Trunc[T Floats](x T) T {
	return T(math.Trunc(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Floats](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Floats](x T) T {
	return T(math.Cos(float64(x)))
}

// CopySign returns a value with the magnitude of x and the sign of sign.
func CopySign[T Floats](x, sign T) T {
	m := floatBits(x) &^ signBitOf[T]()
	return floatFromBits[T](m | floatBits(sign)&signBitOf[T]())
}

// Sign returns 1 with the sign of x, or 0 when x is zero or NaN.
func Sign[T Floats](x T) T {
	if x == 0 || x != x {
		return 0
	}
	return CopySign(1, x)
}
