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

import (
	"math/big"
	"strings"

	"github.com/lattice-project/gomlwe/data"
)

// paddingMarker is the byte appended bit-by-bit after the message bits;
// its leading 1 bit marks the true end of the message.
const paddingMarker = 0x80

// TextToBlocks converts text into a sequence of bit-polynomials of
// exactly blockSize coefficients. Every byte of the text is expanded to
// its 8 bits, most significant first, and the bits are packed into
// blocks in order. The paddingMarker byte is then appended bit-by-bit
// to the final partial block and the remainder of the block is filled
// with zeros. If the text bits exactly fill a block, that block is
// emitted as-is and a fresh block is started to carry the marker.
func TextToBlocks(text string, blockSize int) []data.Poly {
	var blocks []data.Poly
	block := make(data.Poly, 0, blockSize)

	appendBit := func(bit byte) {
		block = append(block, big.NewInt(int64(bit)))
		if len(block) == blockSize {
			blocks = append(blocks, block)
			block = make(data.Poly, 0, blockSize)
		}
	}

	for i := 0; i < len(text); i++ {
		for j := 7; j >= 0; j-- {
			appendBit((text[i] >> uint(j)) & 1)
		}
	}

	for j := 7; j >= 0 && len(block) < blockSize; j-- {
		block = append(block, big.NewInt(int64((paddingMarker>>uint(j))&1)))
	}
	for len(block) < blockSize {
		block = append(block, big.NewInt(0))
	}

	return append(blocks, block)
}

// BlocksToText concatenates the coefficients of all blocks into a
// single bit sequence, regroups every 8 bits into a byte, most
// significant first, and maps the bytes back to text.
func BlocksToText(blocks []data.Poly) string {
	var bits data.Poly
	for _, b := range blocks {
		bits = append(bits, b...)
	}

	var text strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		var c byte
		for j := 0; j < 8; j++ {
			c = c << 1
			if bits[i+j].Sign() != 0 {
				c |= 1
			}
		}
		text.WriteByte(c)
	}

	return text.String()
}

// RemovePadding reconstructs the pre-padding bit sequence of the final
// block: trailing zero coefficients are popped, and the first
// coefficient equal to 1 encountered from the end is the marker bit,
// which is popped as well.
func RemovePadding(block data.Poly) data.Poly {
	i := len(block) - 1
	for i >= 0 && block[i].Sign() == 0 {
		i--
	}
	if i >= 0 {
		i--
	}

	return block[:i+1]
}
