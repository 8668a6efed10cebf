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

package ring

import (
	"github.com/lattice-project/gomlwe/data"
	"github.com/lattice-project/gomlwe/internal"
)

// MatAdd adds matrices of ring elements a and b entry-wise.
// The result is returned in a new Matrix, with every entry reduced.
// internal.ErrShapeMismatch is returned if a and b differ in
// dimensions; no partial result is produced.
func (r *Ring) MatAdd(a, b data.Matrix) (data.Matrix, error) {
	if !a.DimsMatch(b) {
		return nil, internal.ErrShapeMismatch
	}

	res := make(data.Matrix, a.Rows())
	for i := range a {
		res[i] = make([]data.Poly, a.Cols())
		for j := range a[i] {
			res[i][j] = r.Add(a[i][j], b[i][j])
		}
	}

	return res, nil
}

// MatSub subtracts matrix b from a entry-wise.
// The result is returned in a new Matrix, with every entry reduced.
// internal.ErrShapeMismatch is returned if a and b differ in
// dimensions.
func (r *Ring) MatSub(a, b data.Matrix) (data.Matrix, error) {
	if !a.DimsMatch(b) {
		return nil, internal.ErrShapeMismatch
	}

	res := make(data.Matrix, a.Rows())
	for i := range a {
		res[i] = make([]data.Poly, a.Cols())
		for j := range a[i] {
			res[i][j] = r.Sub(a[i][j], b[i][j])
		}
	}

	return res, nil
}

// MatMul multiplies matrices of ring elements a and b, replacing scalar
// multiplication with polynomial convolution. Accumulation over the
// inner dimension applies centered-mod addition at every step; each
// output entry is reduced once, after the whole sum is accumulated.
// internal.ErrShapeMismatch is returned if the inner dimensions are
// incompatible.
func (r *Ring) MatMul(a, b data.Matrix) (data.Matrix, error) {
	if a.Cols() != b.Rows() {
		return nil, internal.ErrShapeMismatch
	}

	res := make(data.Matrix, a.Rows())
	for i := 0; i < a.Rows(); i++ {
		res[i] = make([]data.Poly, b.Cols())
		for j := 0; j < b.Cols(); j++ {
			acc := data.Poly{}
			for k := 0; k < a.Cols(); k++ {
				acc = r.addCentered(acc, r.conv(a[i][k], b[k][j]))
			}
			res[i][j] = r.Reduce(acc)
		}
	}

	return res, nil
}
