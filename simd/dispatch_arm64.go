//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// Check for AVENTINE_NO_SIMD environment variable first
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = DispatchSVE
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
	default:
		currentLevel = DispatchScalar
	}
}
