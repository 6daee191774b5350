// Copyright 2026 aventine-simd Authors
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

package main

import "github.com/samber/lo"

// laneKind is one of the ten scalar lane types. The generator keeps its own
// table and must not import package simd, whose files it rewrites.
type laneKind struct {
	name  string
	bits  int
	class classSet
}

var (
	kindInt8    = laneKind{"int8", 8, classInt}
	kindUint8   = laneKind{"uint8", 8, classUint}
	kindInt16   = laneKind{"int16", 16, classInt}
	kindUint16  = laneKind{"uint16", 16, classUint}
	kindInt32   = laneKind{"int32", 32, classInt}
	kindUint32  = laneKind{"uint32", 32, classUint}
	kindInt64   = laneKind{"int64", 64, classInt}
	kindUint64  = laneKind{"uint64", 64, classUint}
	kindFloat32 = laneKind{"float32", 32, classFloat}
	kindFloat64 = laneKind{"float64", 64, classFloat}
)

// laneKinds lists the kinds in the order simd.Kinds returns them.
var laneKinds = []laneKind{
	kindInt8, kindUint8, kindInt16, kindUint16, kindInt32,
	kindUint32, kindInt64, kindUint64, kindFloat32, kindFloat64,
}

func (k laneKind) String() string { return k.name }

// signed returns the signed integer kind of the same width, the lane type
// of k's comparison masks.
func (k laneKind) signed() laneKind {
	s, _ := lo.Find(laneKinds, func(s laneKind) bool { return s.class == classInt && s.bits == k.bits })
	return s
}

func kindsOf(c classSet) []laneKind {
	return lo.Filter(laneKinds, func(k laneKind, _ int) bool { return k.class == c })
}
