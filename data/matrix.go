/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"
	"math/big"

	"github.com/lattice-project/gomlwe/sample"
)

// Matrix wraps a two-dimensional slice of Poly elements. It represents
// a row-major order matrix whose entries are polynomials.
//
// The j-th polynomial from the i-th row of the matrix can be obtained
// as m[i][j].
type Matrix [][]Poly

// NewMatrix accepts a two-dimensional slice of Poly elements and
// returns a new Matrix instance.
// It returns error if not all the rows have the same number of entries.
func NewMatrix(rows [][]Poly) (Matrix, error) {
	l := -1
	newRows := make([][]Poly, len(rows))

	if len(rows) > 0 {
		l = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != l {
			return nil, fmt.Errorf("all rows should be of the same length")
		}
		newRows[i] = r
	}

	return Matrix(newRows), nil
}

// NewRandomMatrix returns a new Matrix instance of polynomials with n
// coefficients each, sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols, n int, sampler sample.Sampler) (Matrix, error) {
	mat := make([][]Poly, rows)

	for i := 0; i < rows; i++ {
		mat[i] = make([]Poly, cols)
		for j := 0; j < cols; j++ {
			p, err := NewRandomPoly(n, sampler)
			if err != nil {
				return nil, err
			}

			mat[i][j] = p
		}
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance of polynomials with n
// coefficients each, all set to constant c.
func NewConstantMatrix(rows, cols, n int, c *big.Int) Matrix {
	mat := make([][]Poly, rows)
	for i := 0; i < rows; i++ {
		mat[i] = make([]Poly, cols)
		for j := 0; j < cols; j++ {
			mat[i][j] = NewConstantPoly(n, c)
		}
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns i-th column of matrix m as a slice of polynomials.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) ([]Poly, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]Poly, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// Transpose transposes matrix m and returns the result in a new
// Matrix. Entries are not copied and no arithmetic is performed.
func (m Matrix) Transpose() Matrix {
	transposed := make([][]Poly, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Copy creates a new matrix with copies of all polynomial entries.
func (m Matrix) Copy() Matrix {
	mat := make([][]Poly, m.Rows())
	for i, r := range m {
		mat[i] = make([]Poly, len(r))
		for j, p := range r {
			mat[i][j] = p.Copy()
		}
	}

	return mat
}

// Equal returns a bool indicating whether matrices m and other agree
// in dimensions and in all polynomial entries.
func (m Matrix) Equal(other Matrix) bool {
	if !m.DimsMatch(other) {
		return false
	}
	for i, r := range m {
		for j, p := range r {
			if !p.Equal(other[i][j]) {
				return false
			}
		}
	}

	return true
}

// Apply applies an entry-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(Poly) Poly) Matrix {
	res := make(Matrix, len(m))

	for i, r := range m {
		res[i] = make([]Poly, len(r))
		for j, p := range r {
			res[i][j] = f(p)
		}
	}

	return res
}
