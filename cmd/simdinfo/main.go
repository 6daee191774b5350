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

// Command simdinfo prints the CPU features Go detects and the dispatch level
// package simd derives from them.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/rawrasaur/aventine-simd/simd"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Dispatch level: %s\n", simd.CurrentLevel())
	fmt.Printf("Dispatch width: %d bytes\n", simd.CurrentWidth())
	if simd.NoSimdEnv() {
		fmt.Printf("  (forced to scalar by %s=%s)\n", simd.NoSimdEnvVar, os.Getenv(simd.NoSimdEnvVar))
	}
	fmt.Println()

	fmt.Println("Native lanes per register:")
	for _, k := range simd.Kinds() {
		fmt.Printf("  %-8s %d\n", k, nativeLanes(k))
	}
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func nativeLanes(k simd.Kind) int {
	switch k {
	case simd.Int8:
		return simd.NativeLanes[int8]()
	case simd.Uint8:
		return simd.NativeLanes[uint8]()
	case simd.Int16:
		return simd.NativeLanes[int16]()
	case simd.Uint16:
		return simd.NativeLanes[uint16]()
	case simd.Int32:
		return simd.NativeLanes[int32]()
	case simd.Uint32:
		return simd.NativeLanes[uint32]()
	case simd.Int64:
		return simd.NativeLanes[int64]()
	case simd.Uint64:
		return simd.NativeLanes[uint64]()
	case simd.Float32:
		return simd.NativeLanes[float32]()
	default:
		return simd.NativeLanes[float64]()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Printf("  HasAVX512DQ: %v\n", cpu.X86.HasAVX512DQ)
}
