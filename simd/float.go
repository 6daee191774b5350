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

// Float kernels. They mirror the scalar functions in scalar.go lane by lane.

func absFloatLanes[T Floats](dst, a []T) {
	sign := signBitOf[T]()
	for i := range dst {
		dst[i] = floatFromBits[T](floatBits(a[i]) &^ sign)
	}
}

func sqrtLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Sqrt(a[i])
	}
}

func recipLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = 1 / a[i]
	}
}

// rsqrtLanes computes 1/sqrt(x) as two correctly rounded steps.
func rsqrtLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = 1 / Sqrt(a[i])
	}
}

func fractLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Fract(a[i])
	}
}

func ceilLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Ceil(a[i])
	}
}

func floorLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Floor(a[i])
	}
}

func truncLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Trunc(a[i])
	}
}

func sinLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Sin(a[i])
	}
}

func cosLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Cos(a[i])
	}
}

func signLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = Sign(a[i])
	}
}

func copySignLanes[T Floats](dst, a, sign []T) {
	for i := range dst {
		dst[i] = CopySign(a[i], sign[i])
	}
}

// mixLanes interpolates a + t*(b-a).
func mixLanes[T Floats](dst, t, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + T(t[i]*(b[i]-a[i]))
	}
}

// stepLanes yields 1 where x < edge and 0 elsewhere.
func stepLanes[T Floats](dst, x, edge []T) {
	for i := range dst {
		if x[i] < edge[i] {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// smoothstepLanes evaluates t*t*(3-2t) with t = clamp((x-e0)/(e1-e0), 0, 1).
func smoothstepLanes[T Floats](dst, x, e0, e1 []T) {
	for i := range dst {
		t := Clamp((x[i]-e0[i])/(e1[i]-e0[i]), 0, 1)
		dst[i] = T(t*t) * (3 - T(2*t))
	}
}
