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

// Package linalg holds the dense linear-algebra kernels behind the small
// matrix types: inversion and determinants of n×n matrices for n ≤ 4.
//
// Matrices are passed as column-major float64 slices of length n*n, element
// (row i, column j) at a[j*n+i]. The kernels allocate nothing.
package linalg

import "math"

// MaxN is the largest supported dimension.
const MaxN = 4

// lu holds a PA = LU factorization with L unit lower triangular. Both
// factors share lu.a, stored row-major for the elimination loops.
type lu struct {
	n    int
	a    [MaxN * MaxN]float64
	perm [MaxN]int
	sign float64
}

// factor decomposes the column-major matrix a with partial pivoting. It
// reports false when a pivot is exactly zero.
func factor(a []float64, n int) (f lu, ok bool) {
	if n < 1 || n > MaxN || len(a) < n*n {
		panic("linalg: matrix dimension out of range")
	}
	f.n, f.sign = n, 1
	for i := 0; i < n; i++ {
		f.perm[i] = i
		for j := 0; j < n; j++ {
			f.a[i*n+j] = a[j*n+i]
		}
	}
	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(f.a[i*n+k]) > math.Abs(f.a[p*n+k]) {
				p = i
			}
		}
		if f.a[p*n+k] == 0 {
			return f, false
		}
		if p != k {
			for j := 0; j < n; j++ {
				f.a[p*n+j], f.a[k*n+j] = f.a[k*n+j], f.a[p*n+j]
			}
			f.perm[p], f.perm[k] = f.perm[k], f.perm[p]
			f.sign = -f.sign
		}
		for i := k + 1; i < n; i++ {
			l := f.a[i*n+k] / f.a[k*n+k]
			f.a[i*n+k] = l
			for j := k + 1; j < n; j++ {
				f.a[i*n+j] -= l * f.a[k*n+j]
			}
		}
	}
	return f, true
}

func (f *lu) det() float64 {
	d := f.sign
	for i := 0; i < f.n; i++ {
		d *= f.a[i*f.n+i]
	}
	return d
}

// solveUnit solves A x = e_col into x.
func (f *lu) solveUnit(col int, x []float64) {
	n := f.n
	// Forward substitution: L y = P e_col.
	for i := 0; i < n; i++ {
		var sum float64
		if f.perm[i] == col {
			sum = 1
		}
		for k := 0; k < i; k++ {
			sum -= f.a[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U x = y.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= f.a[i*n+k] * x[k]
		}
		x[i] = sum / f.a[i*n+i]
	}
}

// Invert replaces the column-major n×n matrix a with its inverse and
// returns the determinant. When a is singular it reports false and fills a
// with NaN. Invert panics if n is outside [1, MaxN] or a is too short.
func Invert(a []float64, n int) (det float64, ok bool) {
	f, ok := factor(a, n)
	if !ok {
		for i := range a[:n*n] {
			a[i] = math.NaN()
		}
		return 0, false
	}
	for col := 0; col < n; col++ {
		f.solveUnit(col, a[col*n:col*n+n])
	}
	return f.det(), true
}

// Determinant returns the determinant of the column-major n×n matrix a.
func Determinant(a []float64, n int) float64 {
	f, ok := factor(a, n)
	if !ok {
		return 0
	}
	return f.det()
}
