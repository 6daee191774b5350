//go:build !amd64 && !arm64

package simd

func init() {
	// Other architectures report scalar mode. The vector types behave
	// identically everywhere; only NativeLanes changes.
	currentLevel = DispatchScalar
}
