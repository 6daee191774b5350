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

import "testing"

func TestX86Level(t *testing.T) {
	tests := []struct {
		f    x86Features
		want DispatchLevel
	}{
		{x86Features{}, DispatchScalar},
		{x86Features{sse2: true}, DispatchSSE2},
		{x86Features{sse2: true, avx2: true}, DispatchAVX2},
		{x86Features{sse2: true, avx2: true, avx512: true}, DispatchAVX512},
		{x86Features{avx512: true}, DispatchAVX512},
	}
	for _, tt := range tests {
		if got := tt.f.level(); got != tt.want {
			t.Errorf("%+v.level() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestHostLevel(t *testing.T) {
	if NoSimdEnv() {
		t.Skipf("%s is set", NoSimdEnvVar)
	}
	if got, want := CurrentLevel(), hostX86().level(); got != want {
		t.Errorf("CurrentLevel() = %v, host reports %v", got, want)
	}
}
