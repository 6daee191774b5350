// Package simd provides fixed-width vector types with exact lane semantics.
//
// Every vector is a plain Go array of 2, 3, 4, 8 or 16 lanes, laid out exactly
// like the corresponding C array. Three generic families cover the scalar kinds:
//
//	IntVecN[T SignedInts]                    signed integers
//	UintVecN[T UnsignedInts, M SignedInts]   unsigned integers
//	FloatVecN[T Floats, M SignedInts]        floating point
//
// M is the same-size signed integer used for comparison masks. The aliases
// (Int8x16, Uint32x4, Float32x4, Float64x2, ...) fix it so that user code
// never has to spell it out:
//
//	import "github.com/rawrasaur/aventine-simd/simd"
//
//	a := simd.Float32x4{1, 2, 3, 4}
//	b := simd.BroadcastFloat32x4(2)
//
//	sum := a.Add(b).ReduceAdd() // 18
//	m := a.Lt(b)                // Int32x4{-1, 0, 0, 0}
//	c := simd.Select(m, a, b)   // Float32x4{2, 2, 3, 4}
//
// Integer arithmetic wraps. Float arithmetic is IEEE-754 and is never fused.
// Saturating conversions (ToInt8Sat, ToUint16Sat, ...) clamp to the
// destination range.
package simd

//go:generate go run ../cmd/vecgen --out ..

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Register is satisfied by every fixed-width vector type in this package.
// It is sealed: only the generated vector families implement it.
type Register interface {
	// NumLanes returns the number of lanes, fixed by the type.
	NumLanes() int
	register()
}
