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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}
	currentLevel = hostX86().level()
}

// x86Features is the subset of CPUID bits the level depends on.
type x86Features struct {
	avx512 bool
	avx2   bool
	sse2   bool
}

// hostX86 reads the features of the running CPU. AVX-512 counts only with
// the F, BW, VL and DQ subsets.
func hostX86() x86Features {
	return x86Features{
		avx512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512DQ,
		avx2:   cpu.X86.HasAVX2 && cpu.X86.HasFMA,
		sse2:   cpu.X86.HasSSE2,
	}
}

// level picks the widest level whose features are all present.
func (f x86Features) level() DispatchLevel {
	switch {
	case f.avx512:
		return DispatchAVX512
	case f.avx2:
		return DispatchAVX2
	case f.sse2:
		return DispatchSSE2
	default:
		return DispatchScalar
	}
}
