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

// Package ring implements arithmetic in the quotient ring
// Z_q[x]/(x^n + 1) with coefficients kept in the symmetric residue
// range, together with the matrix-of-polynomials operations built
// on top of it.
package ring

import (
	"math/big"

	"github.com/lattice-project/gomlwe/data"
)

var two = big.NewInt(2)

// Center maps v into the symmetric residue range (-m/2, m/2] modulo m.
// The remainder of v modulo m is adjusted by m at most once, so the
// result is correct for negative v as well.
func Center(v, m *big.Int) *big.Int {
	r := new(big.Int).Mod(v, m)
	if new(big.Int).Mul(r, two).Cmp(m) > 0 {
		r.Sub(r, m)
	}

	return r
}

// Bit decodes a centered coefficient back to a message bit. It returns
// 1 if the absolute value of v exceeds half of ⌊m/2⌋, that is if v lies
// closer to ±⌊m/2⌋ than to zero, and 0 otherwise.
func Bit(v, m *big.Int) *big.Int {
	threshold := new(big.Int).Div(m, two)
	threshold.Div(threshold, two)

	if new(big.Int).Abs(v).Cmp(threshold) > 0 {
		return big.NewInt(1)
	}

	return big.NewInt(0)
}

// Ring represents the quotient ring Z_q[x]/(f(x)) for the modulus
// polynomial f(x) = x^n + 1. All operations return canonical ring
// elements: coefficients centered modulo q and trailing zero
// coefficients trimmed.
type Ring struct {
	// Q is the coefficient modulus.
	Q *big.Int

	// N is the degree of the modulus polynomial.
	N int

	// F is the modulus polynomial x^N + 1.
	F data.Poly
}

// NewRing returns the quotient ring Z_q[x]/(x^n + 1).
func NewRing(q *big.Int, n int) *Ring {
	f := data.NewConstantPoly(n+1, big.NewInt(0))
	f[0] = big.NewInt(1)
	f[n] = big.NewInt(1)

	return &Ring{
		Q: new(big.Int).Set(q),
		N: n,
		F: f,
	}
}

// Reduce computes the remainder of polynomial p modulo the ring's
// modulus polynomial by synthetic long division in centered-mod-q
// arithmetic. At each step the leading coefficient is divided by the
// divisor's leading coefficient, the scaled divisor is subtracted at
// the matching offset and every touched coefficient is re-centered
// modulo q. Reducing an already reduced element returns it unchanged.
func (r *Ring) Reduce(p data.Poly) data.Poly {
	rem := p.Apply(func(c *big.Int) *big.Int {
		return Center(c, r.Q)
	}).Trim()

	fDeg := r.F.Degree()
	lead := r.F[fDeg]

	for rem.Degree() >= fDeg {
		d := rem.Degree()
		factor := new(big.Int).Quo(rem[d], lead)
		offset := d - fDeg

		for i := 0; i <= fDeg; i++ {
			scaled := new(big.Int).Mul(factor, r.F[i])
			rem[offset+i] = Center(new(big.Int).Sub(rem[offset+i], scaled), r.Q)
		}
		rem = rem[:rem.Degree()+1]
	}

	return rem
}

// Add adds polynomials a and b as ring elements. The shorter operand is
// padded with implicit zero coefficients, coefficients are combined
// with centered-mod addition and the sum is reduced modulo the modulus
// polynomial.
func (r *Ring) Add(a, b data.Poly) data.Poly {
	return r.Reduce(r.addCentered(a, b))
}

// Sub subtracts polynomial b from a as ring elements, with the same
// padding, centering and reduction as Add.
func (r *Ring) Sub(a, b data.Poly) data.Poly {
	return r.Reduce(r.subCentered(a, b))
}

// Mul multiplies polynomials a and b as ring elements using the
// schoolbook convolution, then reduces the product modulo the modulus
// polynomial.
func (r *Ring) Mul(a, b data.Poly) data.Poly {
	return r.Reduce(r.conv(a, b))
}

var zero = big.NewInt(0)

func coeff(p data.Poly, i int) *big.Int {
	if i < len(p) {
		return p[i]
	}

	return zero
}

// addCentered combines coefficients of a and b with centered-mod
// addition, padding the shorter operand, without reducing the result.
func (r *Ring) addCentered(a, b data.Poly) data.Poly {
	l := len(a)
	if len(b) > l {
		l = len(b)
	}

	sum := make(data.Poly, l)
	for i := 0; i < l; i++ {
		sum[i] = Center(new(big.Int).Add(coeff(a, i), coeff(b, i)), r.Q)
	}

	return sum
}

func (r *Ring) subCentered(a, b data.Poly) data.Poly {
	l := len(a)
	if len(b) > l {
		l = len(b)
	}

	diff := make(data.Poly, l)
	for i := 0; i < l; i++ {
		diff[i] = Center(new(big.Int).Sub(coeff(a, i), coeff(b, i)), r.Q)
	}

	return diff
}

// conv computes the schoolbook convolution of a and b: the coefficient
// at index i+j accumulates a[i]*b[j] for all i, j, with centered-mod
// addition at every accumulation step. The result is not reduced; its
// degree can reach deg(a) + deg(b).
func (r *Ring) conv(a, b data.Poly) data.Poly {
	if len(a) == 0 || len(b) == 0 {
		return data.Poly{}
	}

	res := make(data.Poly, len(a)+len(b)-1)
	for i := range res {
		res[i] = big.NewInt(0)
	}

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			prod := new(big.Int).Mul(a[i], b[j])
			res[i+j] = Center(prod.Add(prod, res[i+j]), r.Q)
		}
	}

	return res
}
