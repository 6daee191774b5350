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

import "testing"

type celsius float32

func TestKindOf(t *testing.T) {
	tests := []struct {
		got, want Kind
	}{
		{KindOf[int8](), Int8},
		{KindOf[uint8](), Uint8},
		{KindOf[int16](), Int16},
		{KindOf[uint16](), Uint16},
		{KindOf[int32](), Int32},
		{KindOf[uint32](), Uint32},
		{KindOf[int64](), Int64},
		{KindOf[uint64](), Uint64},
		{KindOf[float32](), Float32},
		{KindOf[float64](), Float64},
		{KindOf[celsius](), Float32},
		{KindOf[counter](), Int32},
		{KindOf[tick](), Uint16},
		{KindOf[small](), Int8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("KindOf: got %v, want %v", tt.got, tt.want)
		}
	}
}

func TestKindProperties(t *testing.T) {
	for _, k := range Kinds() {
		n := 0
		for _, is := range []bool{k.IsFloat(), k.IsSigned(), k.IsUnsigned()} {
			if is {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%v belongs to %d classes", k, n)
		}
		if s := k.Signed(); !s.IsSigned() || s.Bits() != k.Bits() {
			t.Errorf("%v.Signed() = %v", k, s)
		}
		if !k.Contains(k) {
			t.Errorf("%v does not contain itself", k)
		}
	}
	if got := Uint16.String(); got != "uint16" {
		t.Errorf("String: got %q", got)
	}
	if got := KindInvalid.Bits(); got != 0 {
		t.Errorf("KindInvalid.Bits() = %d", got)
	}
}

func TestKindContains(t *testing.T) {
	tests := []struct {
		dst, src Kind
		want     bool
	}{
		{Int16, Int8, true},
		{Int16, Uint8, true},
		{Int16, Uint16, false},
		{Uint16, Int8, false},
		{Uint32, Uint16, true},
		{Int8, Int16, false},
		{Int64, Float32, false},
		{Float32, Int64, true},
		{Float32, Float64, false},
		{Float64, Uint64, true},
	}
	for _, tt := range tests {
		if got := tt.dst.Contains(tt.src); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", tt.dst, tt.src, got, tt.want)
		}
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchSVE, "sve", 16},
		{DispatchLevel(99), "unknown", 16},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("String(%d) = %q, want %q", tt.level, got, tt.name)
		}
		if got := tt.level.Width(); got != tt.width {
			t.Errorf("%v.Width() = %d, want %d", tt.level, got, tt.width)
		}
	}
}

func TestNativeLanes(t *testing.T) {
	w := CurrentWidth()
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName %q does not match level %v", CurrentName(), CurrentLevel())
	}
	if got := NativeLanes[float32](); got != w/4 {
		t.Errorf("NativeLanes[float32] = %d, want %d", got, w/4)
	}
	if got := NativeLanes[int8](); got != w {
		t.Errorf("NativeLanes[int8] = %d, want %d", got, w)
	}
	if got := NativeLanes[uint64](); got != w/8 {
		t.Errorf("NativeLanes[uint64] = %d, want %d", got, w/8)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(NoSimdEnvVar, tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}
