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

func TestBitwiseReductions(t *testing.T) {
	v := Uint8x4{0xF1, 0x72, 0x34, 0xB8}
	if got := v.ReduceAnd(); got != 0x30 {
		t.Errorf("ReduceAnd: got %#x, want 0x30", got)
	}
	if got := v.ReduceOr(); got != 0xFF {
		t.Errorf("ReduceOr: got %#x, want 0xff", got)
	}
	if got := v.ReduceXor(); got != 0x0F {
		t.Errorf("ReduceXor: got %#x, want 0x0f", got)
	}
}

func TestIntegerReductions(t *testing.T) {
	v := Int32x8{5, -3, 9, 0, -12, 7, 1, 2}
	if got := v.ReduceAdd(); got != 9 {
		t.Errorf("ReduceAdd: got %d, want 9", got)
	}
	if got := v.ReduceMin(); got != -12 {
		t.Errorf("ReduceMin: got %d, want -12", got)
	}
	if got := v.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax: got %d, want 9", got)
	}
	if got := (Uint16x3{1, 2, 3}).Dot(Uint16x3{4, 5, 6}); got != 32 {
		t.Errorf("Dot: got %d, want 32", got)
	}
}

func TestAllAny(t *testing.T) {
	tests := []struct {
		name     string
		v        Int16x4
		all, any bool
	}{
		{"zero", Int16x4{}, false, false},
		{"ones", BroadcastInt16x4(-1), true, true},
		{"one lane", Int16x4{0, 0, -1, 0}, false, true},
		{"sign bits only", Int16x4{-32768, -32768, -32768, -32768}, true, true},
		{"positive lanes", Int16x4{1, 2, 0x7FFF, 3}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.All(); got != tt.all {
				t.Errorf("All(%v) = %v, want %v", tt.v, got, tt.all)
			}
			if got := tt.v.Any(); got != tt.any {
				t.Errorf("Any(%v) = %v, want %v", tt.v, got, tt.any)
			}
		})
	}

	f := Float64x3{1, 2, 3}
	if !f.Gt(Float64x3{}).All() || f.Lt(Float64x3{}).Any() {
		t.Error("All/Any of a comparison mask")
	}
	if !(Uint8x2{0x80, 0}).Any() || (Uint8x2{0x80, 0}).All() {
		t.Error("unsigned All/Any test the top bit")
	}
}

func TestSplit(t *testing.T) {
	v8 := Int16x8{0, 1, 2, 3, 4, 5, 6, 7}
	tests := []struct {
		name string
		got  Int16x4
		want Int16x4
	}{
		{"Lo", v8.Lo(), Int16x4{0, 1, 2, 3}},
		{"Hi", v8.Hi(), Int16x4{4, 5, 6, 7}},
		{"Even", v8.Even(), Int16x4{0, 2, 4, 6}},
		{"Odd", v8.Odd(), Int16x4{1, 3, 5, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	v16 := LoadUint8x16Slice([]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if got, want := v16.Hi().Odd(), (Uint8x4{9, 11, 13, 15}); got != want {
		t.Errorf("Uint8x16 Hi.Odd: got %v, want %v", got, want)
	}
	if got, want := v16.Even().Lo(), (Uint8x4{0, 2, 4, 6}); got != want {
		t.Errorf("Uint8x16 Even.Lo: got %v, want %v", got, want)
	}

	v4 := Float32x4{1, 2, 3, 4}
	if got, want := v4.Hi(), (Float32x2{3, 4}); got != want {
		t.Errorf("Float32x4 Hi: got %v, want %v", got, want)
	}
	if got, want := v4.Even(), (Float32x2{1, 3}); got != want {
		t.Errorf("Float32x4 Even: got %v, want %v", got, want)
	}
}

func TestSplitWidth3(t *testing.T) {
	v := Int32x3{10, 20, 30}
	tests := []struct {
		name string
		got  Int32x2
		want Int32x2
	}{
		{"Lo", v.Lo(), Int32x2{10, 20}},
		{"Hi", v.Hi(), Int32x2{30, 0}},
		{"Even", v.Even(), Int32x2{10, 30}},
		{"Odd", v.Odd(), Int32x2{20, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestSplitWidth2(t *testing.T) {
	v := Float64x2{1.5, -2.5}
	if v.Lo() != 1.5 || v.Even() != 1.5 {
		t.Errorf("Lo/Even of %v: got %v/%v", v, v.Lo(), v.Even())
	}
	if v.Hi() != -2.5 || v.Odd() != -2.5 {
		t.Errorf("Hi/Odd of %v: got %v/%v", v, v.Hi(), v.Odd())
	}
}
