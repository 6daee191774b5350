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

package mat

import (
	"math"

	"github.com/rawrasaur/aventine-simd/simd"
)

// Constructors for 4x4 homogeneous transforms. The ones taking only scalars
// name the result type explicitly, e.g. FromScale[Float32x4x4](2).

// FromScale returns the uniform scaling matrix diag(s, s, s, 1).
func FromScale[X ~[4]simd.FloatVec4[T, M], T simd.Floats, M simd.SignedInts](s T) X {
	return X{
		{s, 0, 0, 0},
		{0, s, 0, 0},
		{0, 0, s, 0},
		{0, 0, 0, 1},
	}
}

// FromTranslation returns the matrix translating by (x, y, z).
func FromTranslation[X ~[4]simd.FloatVec4[T, M], T simd.Floats, M simd.SignedInts](x, y, z T) X {
	return X{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

// FromEulerAngles returns the rotation by yaw about z, then pitch about y,
// then roll about x, composed as Rz(yaw) * Ry(pitch) * Rx(roll).
func FromEulerAngles[X ~[4]simd.FloatVec4[T, M], T simd.Floats, M simd.SignedInts](roll, pitch, yaw T) X {
	sr, cr := sincos(roll)
	sp, cp := sincos(pitch)
	sy, cy := sincos(yaw)
	return X{
		{T(cy * cp), T(sy * cp), -sp, 0},
		{T(T(cy*sp)*sr) - T(sy*cr), T(T(sy*sp)*sr) + T(cy*cr), T(cp * sr), 0},
		{T(T(cy*sp)*cr) + T(sy*sr), T(T(sy*sp)*cr) - T(cy*sr), T(cp * cr), 0},
		{0, 0, 0, 1},
	}
}

// LookAt returns the view matrix of a camera at eye looking toward center,
// with up giving the vertical direction. The camera looks down +z.
func LookAt[T simd.Floats, M simd.SignedInts](eye, center, up simd.FloatVec3[T, M]) Mat4x4[T, M] {
	z := center.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Mat4x4[T, M]{
		{x[0], y[0], z[0], 0},
		{x[1], y[1], z[1], 0},
		{x[2], y[2], z[2], 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}
}

// Perspective returns a perspective projection for a view volume of the
// given width and height at the near plane. Depth maps to [0, 1].
func Perspective[X ~[4]simd.FloatVec4[T, M], T simd.Floats, M simd.SignedInts](width, height, near, far T) X {
	zn := 2 * near
	zf := far / (far - near)
	return X{
		{zn / width, 0, 0, 0},
		{0, zn / height, 0, 0},
		{0, 0, zf, 1},
		{0, 0, T(-near * zf), 0},
	}
}

// PerspectiveFov returns a perspective projection from the vertical field
// of view in radians and the width/height aspect ratio. Depth maps to [0, 1].
func PerspectiveFov[X ~[4]simd.FloatVec4[T, M], T simd.Floats, M simd.SignedInts](fovY, aspect, near, far T) X {
	ys := 1 / T(math.Tan(float64(T(0.5*fovY))))
	xs := ys / aspect
	zs := far / (far - near)
	return X{
		{xs, 0, 0, 0},
		{0, ys, 0, 0},
		{0, 0, zs, 1},
		{0, 0, T(-near * zs), 0},
	}
}

// Orthographic returns the parallel projection of a view box with depth
// mapped to [0, 1]. The box is centered on the view axis: left and right
// only set its width, bottom and top its height.
func Orthographic[X ~[4]simd.FloatVec4[T, M], T simd.Floats, M simd.SignedInts](left, right, bottom, top, near, far T) X {
	sw := 1 / (right - left)
	sh := 1 / (top - bottom)
	sd := 1 / (far - near)
	return X{
		{2 * sw, 0, 0, 0},
		{0, 2 * sh, 0, 0},
		{0, 0, sd, 0},
		{0, 0, T(-near * sd), 1},
	}
}

func sincos[T simd.Floats](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}
