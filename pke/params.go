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

package pke

import "math/big"

// Params holds the parameters of a module-LWE encryption scheme
// instance. A Params value is immutable once created and is threaded
// through every operation of the scheme, so schemes with different
// presets can coexist in one process.
type Params struct {
	// Q is the coefficient modulus.
	Q *big.Int

	// N is the degree of the ring, i.e. the number of coefficients of a
	// ring element. It must be a power of 2.
	N int

	// K is the module rank: the number of ring elements composing a key
	// vector. It determines the security level.
	K int

	// Eta1 bounds the coefficients of the secret and of the encryption
	// randomness, which are sampled from [-Eta1, Eta1].
	Eta1 int

	// Eta2 bounds the coefficients of the error terms, which are
	// sampled from [-Eta2, Eta2].
	Eta2 int
}

// NewParams512 returns the rank-2 parameter set
// (q=3329, n=256, k=2, η1=3, η2=2).
func NewParams512() *Params {
	return &Params{
		Q:    big.NewInt(3329),
		N:    256,
		K:    2,
		Eta1: 3,
		Eta2: 2,
	}
}

// NewParams768 returns the rank-3 parameter set
// (q=3329, n=256, k=3, η1=2, η2=2).
func NewParams768() *Params {
	return &Params{
		Q:    big.NewInt(3329),
		N:    256,
		K:    3,
		Eta1: 2,
		Eta2: 2,
	}
}

// NewParams1024 returns the rank-4 parameter set
// (q=3329, n=256, k=4, η1=2, η2=2).
func NewParams1024() *Params {
	return &Params{
		Q:    big.NewInt(3329),
		N:    256,
		K:    4,
		Eta1: 2,
		Eta2: 2,
	}
}

func isPowOf2(x int) bool {
	return x&(x-1) == 0
}
