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

// Kind traits as constraint interfaces. Every generated vector type satisfies
// the traits for its kind; aliases.gen.go asserts it at compile time. Generic
// code written against a trait runs unchanged on every width:
//
//	func Lerp[V Float[V, S, B], S Floats, B any](t S, a, b V) V {
//		return a.Broadcast(t).Mix(a, b)
//	}
//
// The To<Kind> and To<Kind>Sat conversions return width-specific types and
// are therefore methods of the concrete types only.

// Vector is the contract shared by all kinds. V is the vector type, S its
// lane type and B the mask type its comparisons return.
type Vector[V any, S Lanes, B any] interface {
	Register

	Broadcast(s S) V
	Get(i int) S
	With(i int, s S) V
	Store(dst []S)

	Add(w V) V
	Sub(w V) V
	Mul(w V) V
	Div(w V) V
	AddScalar(s S) V
	SubScalar(s S) V
	MulScalar(s S) V
	DivScalar(s S) V
	RSubScalar(s S) V
	RDivScalar(s S) V
	Neg() V
	Madd(y, z V) V

	Abs() V
	Min(w V) V
	Max(w V) V
	Clamp(lo, hi V) V

	ReduceAdd() S
	ReduceMin() S
	ReduceMax() S
	Dot(w V) S

	Eq(w V) B
	Ne(w V) B
	Lt(w V) B
	Le(w V) B
	Gt(w V) B
	Ge(w V) B
	Equal(w V) bool
	NotEqual(w V) bool
}

// Integer adds the bitwise operations shared by signed and unsigned kinds.
type Integer[V any, S Integers, B any] interface {
	Vector[V, S, B]

	And(w V) V
	Or(w V) V
	Xor(w V) V
	AndNot(w V) V
	Not() V
	AndScalar(s S) V
	OrScalar(s S) V
	XorScalar(s S) V
	Shl(n V) V
	Shr(n V) V
	ShlScalar(n uint) V
	ShrScalar(n uint) V
	Rem(w V) V
	RemScalar(s S) V

	ReduceAnd() S
	ReduceOr() S
	ReduceXor() S
	All() bool
	Any() bool
}

// Float adds the IEEE-754 lane operations.
type Float[V any, S Floats, B any] interface {
	Vector[V, S, B]

	Sqrt() V
	Rsqrt() V
	Recip() V
	Fract() V
	Ceil() V
	Floor() V
	Trunc() V
	Sin() V
	Cos() V
	Sign() V
	CopySign(sign V) V
	Mix(a, b V) V
	Step(edge V) V
	Smoothstep(e0, e1 V) V
}

// Geometry holds the Euclidean operations of float vectors.
type Geometry[V any, S Floats] interface {
	Length() S
	LengthSquared() S
	Distance(w V) S
	DistanceSquared(w V) S
	NormOne() S
	NormInf() S
	Normalize() V
	Reflect(n V) V
	Refract(n V, eta S) V
	Project(onto V) V
}

// Crosser is implemented by the 2- and 3-lane float vectors. R is always
// the 3-lane vector of the same lane type.
type Crosser[V, R any] interface {
	Cross(w V) R
}

// Selector is implemented by signed integer vectors, which double as masks
// for values of their own type. Use the Select and Bitselect functions to
// blend other kinds.
type Selector[V any] interface {
	Select(a, b V) V
	Bitselect(a, b V) V
}
