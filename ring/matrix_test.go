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

package ring_test

import (
	"math/big"
	"testing"

	"github.com/lattice-project/gomlwe/data"
	"github.com/lattice-project/gomlwe/internal"
	"github.com/lattice-project/gomlwe/ring"
	"github.com/lattice-project/gomlwe/sample"
	"github.com/stretchr/testify/assert"
)

func randomMatrix(t *testing.T, rows, cols, n int, q *big.Int) data.Matrix {
	m, err := data.NewRandomMatrix(rows, cols, n, sample.NewUniform(q))
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	return m
}

func identity(k int) data.Matrix {
	id := make(data.Matrix, k)
	for i := 0; i < k; i++ {
		id[i] = make([]data.Poly, k)
		for j := 0; j < k; j++ {
			if i == j {
				id[i][j] = data.Poly{big.NewInt(1)}
			} else {
				id[i][j] = data.Poly{}
			}
		}
	}

	return id
}

func TestRing_MatAddSub(t *testing.T) {
	q := big.NewInt(3329)
	r := ring.NewRing(q, 8)

	a := randomMatrix(t, 2, 3, 8, q)
	b := randomMatrix(t, 2, 3, 8, q)

	sum, err := r.MatAdd(a, b)
	assert.NoError(t, err)

	// canonical form of a, for comparison after the round trip
	reduced := a.Apply(func(p data.Poly) data.Poly {
		return r.Reduce(p)
	})

	back, err := r.MatSub(sum, b)
	assert.NoError(t, err)
	assert.True(t, back.Equal(reduced))
}

func TestRing_MatMul_Identity(t *testing.T) {
	q := big.NewInt(3329)
	r := ring.NewRing(q, 8)

	a := randomMatrix(t, 3, 3, 8, q)
	reduced := a.Apply(func(p data.Poly) data.Poly {
		return r.Reduce(p)
	})

	prod, err := r.MatMul(a, identity(3))
	assert.NoError(t, err)
	assert.True(t, prod.Equal(reduced))

	prod, err = r.MatMul(identity(3), a)
	assert.NoError(t, err)
	assert.True(t, prod.Equal(reduced))
}

func TestRing_MatMul_Dims(t *testing.T) {
	q := big.NewInt(3329)
	r := ring.NewRing(q, 8)

	a := randomMatrix(t, 2, 3, 8, q)
	b := randomMatrix(t, 3, 1, 8, q)

	prod, err := r.MatMul(a, b)
	assert.NoError(t, err)
	assert.True(t, prod.CheckDims(2, 1))
}

func TestRing_ShapeMismatch(t *testing.T) {
	q := big.NewInt(3329)
	r := ring.NewRing(q, 8)

	a := randomMatrix(t, 2, 3, 8, q)
	b := randomMatrix(t, 3, 3, 8, q)

	sum, err := r.MatAdd(a, b)
	assert.ErrorIs(t, err, internal.ErrShapeMismatch)
	assert.Nil(t, sum, "no partial result on shape mismatch")

	diff, err := r.MatSub(a, b)
	assert.ErrorIs(t, err, internal.ErrShapeMismatch)
	assert.Nil(t, diff)

	prod, err := r.MatMul(b, a)
	assert.ErrorIs(t, err, internal.ErrShapeMismatch)
	assert.Nil(t, prod)
}
