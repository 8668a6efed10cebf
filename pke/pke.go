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

// Package pke implements a module-LWE public-key encryption scheme
// over the quotient ring Z_q[x]/(x^n + 1), together with a message
// codec that lets arbitrary text be encrypted block-wise.
//
// The scheme is didactic: ring multiplication uses the schoolbook
// convolution and decryption carries no integrity check, so a tampered
// ciphertext decrypts to garbage without a detectable error.
package pke

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/pkg/errors"

	"github.com/lattice-project/gomlwe/data"
	"github.com/lattice-project/gomlwe/internal"
	"github.com/lattice-project/gomlwe/ring"
	"github.com/lattice-project/gomlwe/sample"
)

// PublicKey is the public part of a keypair: the noisy syndrome
// t = A·s + e and the uniformly random matrix A.
type PublicKey struct {
	T data.Matrix // k×1
	A data.Matrix // k×k
}

// SecretKey is the secret part of a keypair: a k×1 vector of ring
// elements with small coefficients.
type SecretKey struct {
	S data.Matrix
}

// CiphertextBlock is the encryption of a single message block.
type CiphertextBlock struct {
	U data.Matrix // k×1
	V data.Matrix // 1×1
}

// MLWE represents an instance of the module-LWE encryption scheme with
// a fixed parameter set.
type MLWE struct {
	Params *Params

	ring       *ring.Ring
	log        *slog.Logger
	newSampler func(max *big.Int) sample.Sampler
}

// New configures a new instance of the scheme for the given parameter
// set. Randomness is drawn from the process-wide crypto/rand source.
// The logger receives debug-level traces of intermediate values; a nil
// logger discards them.
//
// If the parameter set is malformed, an error is returned.
func New(params *Params, log *slog.Logger) (*MLWE, error) {
	if params.Q == nil || params.Q.Sign() <= 0 {
		return nil, fmt.Errorf("modulus q must be positive")
	}
	if params.N < 1 || !isPowOf2(params.N) {
		return nil, fmt.Errorf("ring degree n is not a power of 2")
	}
	if params.K < 1 {
		return nil, fmt.Errorf("module rank k must be at least 1")
	}
	if params.Eta1 < 1 || params.Eta2 < 1 {
		return nil, fmt.Errorf("noise bounds must be at least 1")
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &MLWE{
		Params: params,
		ring:   ring.NewRing(params.Q, params.N),
		log:    log,
		newSampler: func(max *big.Int) sample.Sampler {
			return sample.NewUniform(max)
		},
	}, nil
}

// NewDeterministic configures an instance of the scheme whose
// randomness is derived from the given key. Two deterministic schemes
// with equal parameters and equal keys reproduce identical keypairs and
// ciphertexts, since the internal sampling order is fixed: key
// generation draws s, e, A and encryption draws r, e1, e2.
func NewDeterministic(params *Params, log *slog.Logger, key *[32]byte) (*MLWE, error) {
	s, err := New(params, log)
	if err != nil {
		return nil, err
	}

	var stream uint32
	s.newSampler = func(max *big.Int) sample.Sampler {
		det := sample.NewUniformDet(max, key, stream)
		stream++
		return det
	}

	return s, nil
}

// uniformMatrix samples a rows×cols matrix of ring elements whose
// coefficients are uniform over [0, max) and then centered modulo max.
func (s *MLWE) uniformMatrix(rows, cols int, max *big.Int) (data.Matrix, error) {
	m, err := data.NewRandomMatrix(rows, cols, s.Params.N, s.newSampler(max))
	if err != nil {
		return nil, err
	}

	return m.Apply(func(p data.Poly) data.Poly {
		return p.Apply(func(c *big.Int) *big.Int {
			return ring.Center(c, max)
		})
	}), nil
}

// noiseMatrix samples a rows×cols matrix of ring elements with small
// coefficients, approximately uniform over [-eta, eta].
func (s *MLWE) noiseMatrix(rows, cols, eta int) (data.Matrix, error) {
	return s.uniformMatrix(rows, cols, big.NewInt(int64(2*eta+1)))
}

// GenerateKeys generates a fresh keypair: secret s, error e and public
// matrix A are sampled in this order, and the public syndrome is
// computed as t = A·s + e.
func (s *MLWE) GenerateKeys() (*PublicKey, *SecretKey, error) {
	k := s.Params.K

	sec, err := s.noiseMatrix(k, 1, s.Params.Eta1)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot sample secret")
	}
	e, err := s.noiseMatrix(k, 1, s.Params.Eta2)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot sample error")
	}
	A, err := s.uniformMatrix(k, k, s.Params.Q)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot sample public matrix")
	}

	As, err := s.ring.MatMul(A, sec)
	if err != nil {
		return nil, nil, err
	}
	t, err := s.ring.MatAdd(As, e)
	if err != nil {
		return nil, nil, err
	}

	s.log.Debug("generated keypair", "k", k, "n", s.Params.N, "t", t)

	return &PublicKey{T: t, A: A}, &SecretKey{S: sec}, nil
}

// EncryptBlock encrypts a single message block m, a ring element with
// 0/1 coefficients, under the public key. Randomness r and error terms
// e1, e2 are sampled in this order, the message is scaled by ⌊q/2⌋ and
// the ciphertext is computed as
//
//	u = Aᵀ·r + e1
//	v = tᵀ·r + e2 + ⌊q/2⌋·m
//
// A public key whose matrices do not match the scheme's rank is
// rejected with internal.ErrMalformedPubKey.
func (s *MLWE) EncryptBlock(m data.Poly, pk *PublicKey) (*CiphertextBlock, error) {
	k := s.Params.K

	if !pk.A.CheckDims(k, k) || !pk.T.CheckDims(k, 1) {
		return nil, internal.ErrMalformedPubKey
	}
	if len(m) > s.Params.N {
		return nil, internal.ErrMalformedInput
	}

	rnd, err := s.noiseMatrix(k, 1, s.Params.Eta1)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample encryption randomness")
	}
	e1, err := s.noiseMatrix(k, 1, s.Params.Eta2)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample error")
	}
	e2, err := s.noiseMatrix(1, 1, s.Params.Eta2)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample error")
	}

	halfQ := new(big.Int).Div(s.Params.Q, big.NewInt(2))
	scaled := data.Matrix{[]data.Poly{m.Apply(func(c *big.Int) *big.Int {
		return new(big.Int).Mul(c, halfQ)
	})}}

	Ar, err := s.ring.MatMul(pk.A.Transpose(), rnd)
	if err != nil {
		return nil, err
	}
	u, err := s.ring.MatAdd(Ar, e1)
	if err != nil {
		return nil, err
	}

	tr, err := s.ring.MatMul(pk.T.Transpose(), rnd)
	if err != nil {
		return nil, err
	}
	v, err := s.ring.MatAdd(tr, e2)
	if err != nil {
		return nil, err
	}
	v, err = s.ring.MatAdd(v, scaled)
	if err != nil {
		return nil, err
	}

	s.log.Debug("encrypted block", "u", u, "v", v)

	return &CiphertextBlock{U: u, V: v}, nil
}

// DecryptBlock decrypts a single ciphertext block with the secret key:
// it computes d = v − sᵀ·u and rounds every coefficient of the single
// entry of d back to a bit. The returned block has exactly n
// coefficients.
//
// There is no integrity check: a tampered block decodes to garbage
// bits without an error.
func (s *MLWE) DecryptBlock(ct *CiphertextBlock, sk *SecretKey) (data.Poly, error) {
	k := s.Params.K

	if !sk.S.CheckDims(k, 1) {
		return nil, internal.ErrMalformedSecKey
	}
	if !ct.U.CheckDims(k, 1) || !ct.V.CheckDims(1, 1) {
		return nil, internal.ErrMalformedCipher
	}

	su, err := s.ring.MatMul(sk.S.Transpose(), ct.U)
	if err != nil {
		return nil, err
	}
	d, err := s.ring.MatSub(ct.V, su)
	if err != nil {
		return nil, err
	}

	noisy := d[0][0]
	block := make(data.Poly, s.Params.N)
	for i := range block {
		if i < len(noisy) {
			block[i] = ring.Bit(noisy[i], s.Params.Q)
		} else {
			block[i] = big.NewInt(0)
		}
	}

	s.log.Debug("decrypted block", "d", noisy)

	return block, nil
}

// Encrypt encrypts text under the public key. The text is split into
// bit-polynomial blocks of n coefficients, and every block is encrypted
// independently with fresh randomness; there is no chaining between
// blocks.
func (s *MLWE) Encrypt(text string, pk *PublicKey) ([]*CiphertextBlock, error) {
	blocks := TextToBlocks(text, s.Params.N)

	cipher := make([]*CiphertextBlock, len(blocks))
	for i, b := range blocks {
		ct, err := s.EncryptBlock(b, pk)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot encrypt block %d", i)
		}
		cipher[i] = ct
	}

	s.log.Debug("encrypted message", "blocks", len(cipher))

	return cipher, nil
}

// Decrypt decrypts a sequence of ciphertext blocks with the secret key
// and decodes the result back to text. Every block is decrypted
// independently; if the final decrypted block is all zero it is dropped
// as a pure-padding filler, and padding is then stripped from the last
// remaining block only.
func (s *MLWE) Decrypt(cipher []*CiphertextBlock, sk *SecretKey) (string, error) {
	plain := make([]data.Poly, len(cipher))
	for i, ct := range cipher {
		b, err := s.DecryptBlock(ct, sk)
		if err != nil {
			return "", errors.Wrapf(err, "cannot decrypt block %d", i)
		}
		plain[i] = b
	}

	if len(plain) > 0 && plain[len(plain)-1].IsZero() {
		plain = plain[:len(plain)-1]
	}
	if len(plain) > 0 {
		plain[len(plain)-1] = RemovePadding(plain[len(plain)-1])
	}

	return BlocksToText(plain), nil
}
