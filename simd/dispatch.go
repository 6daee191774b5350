package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the widest SIMD instruction set the host offers.
//
// The vector types in this package have fixed widths and their results never
// depend on the level. It is reported so callers can pick a vector width that
// maps onto whole registers; see NativeLanes.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, or SIMD disabled by NoSimdEnv.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes of the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected SIMD instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnvVar names the environment variable checked by NoSimdEnv.
const NoSimdEnvVar = "AVENTINE_NO_SIMD"

// NoSimdEnv checks if the AVENTINE_NO_SIMD environment variable is set.
// When set, the detected level is reported as DispatchScalar regardless of
// CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// NativeLanes returns how many lanes of T fit into one register at the
// current level.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes, a Float32x8
//   - float64: 32/8 = 4 lanes, a Float64x4
//   - int8: 32/1 = 32 lanes, two Int8x16
func NativeLanes[T Lanes]() int {
	var dummy T
	return CurrentWidth() / int(unsafe.Sizeof(dummy))
}
