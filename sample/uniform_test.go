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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniform(t *testing.T) {
	max := big.NewInt(7)
	sampler := NewUniform(max)

	for i := 0; i < 1000; i++ {
		x, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, x.Sign() >= 0, "sampled value should be non-negative")
		assert.True(t, x.Cmp(max) < 0, "sampled value should be smaller than max")
	}
}

func TestUniformRange(t *testing.T) {
	min := big.NewInt(-3)
	max := big.NewInt(4)
	sampler := NewUniformRange(min, max)

	for i := 0; i < 1000; i++ {
		x, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, x.Cmp(min) >= 0, "sampled value should be at least min")
		assert.True(t, x.Cmp(max) < 0, "sampled value should be smaller than max")
	}
}

func TestUniformRange_Empty(t *testing.T) {
	sampler := NewUniformRange(big.NewInt(2), big.NewInt(2))
	_, err := sampler.Sample()
	assert.Error(t, err)
}

func TestBit(t *testing.T) {
	sampler := NewBit()

	for i := 0; i < 100; i++ {
		x, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, x.Cmp(big.NewInt(2)) < 0)
	}
}

func TestUniformDet(t *testing.T) {
	max := big.NewInt(3329)
	key := [32]byte{1, 2, 3}

	s1 := NewUniformDet(max, &key, 0)
	s2 := NewUniformDet(max, &key, 0)
	s3 := NewUniformDet(max, &key, 1)

	same := true
	differ := false
	for i := 0; i < 100; i++ {
		x1, err := s1.Sample()
		assert.NoError(t, err)
		x2, err := s2.Sample()
		assert.NoError(t, err)
		x3, err := s3.Sample()
		assert.NoError(t, err)

		assert.True(t, x1.Cmp(max) < 0)
		if x1.Cmp(x2) != 0 {
			same = false
		}
		if x1.Cmp(x3) != 0 {
			differ = true
		}
	}

	assert.True(t, same, "equal key and stream should reproduce the sequence")
	assert.True(t, differ, "different streams should produce different sequences")
}
