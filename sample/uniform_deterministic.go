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

package sample

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// UniformDet samples deterministic pseudo-random values from the
// interval [0, max). The key determines the pseudo-random generator and
// the stream identifier separates independent samplers derived from the
// same key. Two UniformDet instances with equal key, stream and max
// produce identical sample sequences.
type UniformDet struct {
	key     *[32]byte
	max     *big.Int
	maxBits int
	stream  uint32
	ctr     uint32
}

// NewUniformDet returns an instance of the UniformDet sampler.
// It accepts an upper bound on the sampled values, a key for the
// underlying keystream and a stream identifier.
func NewUniformDet(max *big.Int, key *[32]byte, stream uint32) *UniformDet {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	if maxBits == 0 {
		maxBits = 1
	}

	return &UniformDet{
		key:     key,
		max:     max,
		maxBits: maxBits,
		stream:  stream,
	}
}

// Sample samples a deterministic pseudo-random value from the
// interval [0, max) using rejection sampling on the keystream.
func (u *UniformDet) Sample() (*big.Int, error) {
	maxBytes := (u.maxBits + 7) / 8
	over := uint((8 * maxBytes) - u.maxBits)

	nonce := make([]byte, 8)
	for {
		binary.LittleEndian.PutUint32(nonce[:4], u.stream)
		binary.LittleEndian.PutUint32(nonce[4:], u.ctr)
		u.ctr++

		in := make([]byte, maxBytes) // input is initialized to zeros
		out := make([]byte, maxBytes)
		salsa20.XORKeyStream(out, in, nonce, u.key)

		out[0] = out[0] >> over
		ret := new(big.Int).SetBytes(out)
		if ret.Cmp(u.max) < 0 {
			return ret, nil
		}
	}
}
