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

// Package mat provides small dense float matrices built from simd vectors.
//
// A MatCxR has C columns of R-lane vectors and is stored column by column,
// matching the memory layout of the graphics APIs these matrices feed:
//
//	m := mat.Float32x4x4{}.Identity()
//	t := mat.FromTranslation[mat.Float32x4x4](1, 2, 3)
//	p := t.Mul(m).Dot(simd.Float32x4{0, 0, 0, 1}) // {1, 2, 3, 1}
//
// Square shapes can be inverted. Inverse returns NaN elements for a singular
// matrix; InverseChecked reports ErrSingular instead.
package mat

import "errors"

// ErrSingular is returned when a matrix has no inverse.
var ErrSingular = errors.New("mat: matrix is singular")
