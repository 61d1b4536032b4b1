// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reduce

// twoOverPi holds the first 1280 bits of the fraction of 2/π. Bit 1, the
// most significant bit of the first word, has weight 2^-1.
var twoOverPi = [20]uint64{
	0xa2f9836e4e441529, 0xfc2757d1f534ddc0, 0xdb6295993c439041, 0xfe5163abdebbc561,
	0xb7246e3a424dd2e0, 0x06492eea09d1921c, 0xfe1deb1cb129a73e, 0xe88235f52ebb4484,
	0xe99c7026b45f7e41, 0x3991d639835339f4, 0x9c845f8bbdf9283b, 0x1ff897ffde05980f,
	0xef2f118b5a0a6d1f, 0x6d367ecf27cb09b7, 0x4f463f669e5fea2d, 0x7527bac7ebe5f17b,
	0x3d0739f78a5292ea, 0x6bfb5fb11f8d5d08, 0x56033046fc7b6bab, 0xf0cfbc209af4361d,
}

const (
	// PiOver2Hi + PiOver2Lo is π/2 to about 107 bits.
	PiOver2Hi = 1.5707963267948966
	PiOver2Lo = 6.123233995736766e-17

	// PiOver4 is the largest argument returned unreduced.
	PiOver4 = 0.7853981633974483

	limbBits  = 24
	limbCount = 8
)

// limb returns the 24 bits of 2/π starting at bit pos, pos >= 1.
func limb(pos int) uint64 {
	w, off := (pos-1)/64, uint((pos-1)%64)
	chunk := twoOverPi[w] << off
	if off != 0 {
		chunk |= twoOverPi[w+1] >> (64 - off)
	}
	return chunk >> (64 - limbBits)
}
