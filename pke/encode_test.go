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

package pke_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/lattice-project/gomlwe/data"
	"github.com/lattice-project/gomlwe/pke"
	"github.com/stretchr/testify/assert"
)

// decode reverses TextToBlocks the way message-level decryption does:
// strip padding from the final block, then regroup bits into bytes.
func decode(blocks []data.Poly) string {
	if len(blocks) > 0 {
		blocks[len(blocks)-1] = pke.RemovePadding(blocks[len(blocks)-1])
	}

	return pke.BlocksToText(blocks)
}

func TestTextToBlocks(t *testing.T) {
	blocks := pke.TextToBlocks("Hi", 256)

	assert.Equal(t, 1, len(blocks))
	assert.Equal(t, 256, len(blocks[0]))
	for _, c := range blocks[0] {
		assert.True(t, c.Sign() == 0 || c.Int64() == 1, "blocks should contain only bits")
	}

	// "H" is 0100 1000, the marker follows the text bits
	assert.Equal(t, int64(0), blocks[0][0].Int64())
	assert.Equal(t, int64(1), blocks[0][1].Int64())
	assert.Equal(t, int64(1), blocks[0][16].Int64(), "marker bit should follow the text bits")
	assert.Equal(t, int64(0), blocks[0][17].Int64())
}

func TestTextToBlocks_ExactFill(t *testing.T) {
	// 4 characters = 32 bits fill a block exactly, so the marker
	// starts a fresh block
	blocks := pke.TextToBlocks("abcd", 32)

	assert.Equal(t, 2, len(blocks))
	assert.Equal(t, int64(1), blocks[1][0].Int64())
	for _, c := range blocks[1][1:] {
		assert.Equal(t, int64(0), c.Int64())
	}

	assert.Equal(t, "abcd", decode(blocks))
}

func TestTextToBlocks_Empty(t *testing.T) {
	blocks := pke.TextToBlocks("", 256)

	assert.Equal(t, 1, len(blocks))
	assert.Equal(t, int64(1), blocks[0][0].Int64())

	assert.Equal(t, "", decode(blocks))
}

func TestCodec_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"Hey Bob, Alice here, how are you?",
		strings.Repeat("x", 32),  // exactly one 256-bit block
		strings.Repeat("y", 64),  // exactly two 256-bit blocks
		strings.Repeat("z", 100), // several blocks plus a partial one
		"\x00\x7f full printable range !~",
	}

	for _, text := range texts {
		for _, blockSize := range []int{16, 64, 256} {
			blocks := pke.TextToBlocks(text, blockSize)
			for _, b := range blocks {
				assert.Equal(t, blockSize, len(b))
			}

			assert.Equal(t, text, decode(blocks), "text %q with block size %d", text, blockSize)
		}
	}
}

func TestRemovePadding(t *testing.T) {
	blocks := pke.TextToBlocks("a", 16)
	assert.Equal(t, 1, len(blocks))

	stripped := pke.RemovePadding(blocks[0])
	assert.Equal(t, 8, len(stripped), "only the text bits should remain")

	// an all-zero block strips to nothing
	zero := pke.TextToBlocks("", 16)[0].Apply(func(c *big.Int) *big.Int {
		return big.NewInt(0)
	})
	assert.Equal(t, 0, len(pke.RemovePadding(zero)))
}
