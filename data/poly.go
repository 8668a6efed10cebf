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
	"math/big"

	"github.com/lattice-project/gomlwe/sample"
)

// Poly wraps a slice of *big.Int coefficients. It represents a
// polynomial with integer coefficients where the i-th element is the
// coefficient of the degree-i term, so Poly{3, 2, 1} represents
// x² + 2x + 3.
type Poly []*big.Int

// NewPoly accepts a slice of coefficients and returns a new Poly
// instance.
func NewPoly(coefficients []*big.Int) Poly {
	return Poly(coefficients)
}

// NewRandomPoly returns a new Poly instance of the given length
// with random coefficients sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomPoly(len int, sampler sample.Sampler) (Poly, error) {
	coefficients := make([]*big.Int, len)
	var err error

	for i := 0; i < len; i++ {
		coefficients[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewPoly(coefficients), nil
}

// NewRandomDetPoly returns a new Poly instance with deterministic
// pseudo-random coefficients sampled from [0, max). The key and stream
// determine the pseudo-random generator.
func NewRandomDetPoly(len int, max *big.Int, key *[32]byte, stream uint32) (Poly, error) {
	return NewRandomPoly(len, sample.NewUniformDet(max, key, stream))
}

// NewConstantPoly returns a new Poly instance of the given length
// with all coefficients set to constant c.
func NewConstantPoly(len int, c *big.Int) Poly {
	coefficients := make([]*big.Int, len)
	for i := 0; i < len; i++ {
		coefficients[i] = new(big.Int).Set(c)
	}

	return coefficients
}

// Copy creates a new polynomial with the same values of the
// coefficients.
func (p Poly) Copy() Poly {
	newPoly := make(Poly, len(p))

	for i, c := range p {
		newPoly[i] = new(big.Int).Set(c)
	}

	return newPoly
}

// Degree returns the degree of polynomial p, ignoring trailing zero
// coefficients. The degree of the zero polynomial is -1.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Sign() != 0 {
			return i
		}
	}

	return -1
}

// Trim removes trailing zero coefficients from polynomial p.
// The result is returned in a new Poly.
func (p Poly) Trim() Poly {
	return p[:p.Degree()+1].Copy()
}

// IsZero returns a bool indicating whether all coefficients of
// polynomial p are zero.
func (p Poly) IsZero() bool {
	return p.Degree() == -1
}

// Equal returns a bool indicating whether polynomials p and other have
// the same coefficients. Lengths must match as well.
func (p Poly) Equal(other Poly) bool {
	if len(p) != len(other) {
		return false
	}
	for i, c := range p {
		if c.Cmp(other[i]) != 0 {
			return false
		}
	}

	return true
}

// Apply applies a coefficient-wise function f to polynomial p.
// The result is returned in a new Poly.
func (p Poly) Apply(f func(*big.Int) *big.Int) Poly {
	res := make(Poly, len(p))

	for i, c := range p {
		res[i] = f(c)
	}

	return res
}

// String produces a string representation of a polynomial.
func (p Poly) String() string {
	pStr := ""
	for _, c := range p {
		pStr = pStr + " " + c.String()
	}
	return pStr
}
