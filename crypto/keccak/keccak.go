// Package keccak implements the Keccak-f[1600] permutation and the fixed-output
// sponge construction built on it.
//
// Both the legacy Keccak padding (domain byte 0x01, as used by ethash) and the
// FIPS 202 SHA-3 padding (domain byte 0x06) are supported through Sum.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// StateSize width of the permutation in bytes
const StateSize = 1600 / 8

const rounds = 24

// roundConstants iota step, one per round
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc rho rotation amounts, in pi traversal order
var rotc = [rounds]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piln pi lane destinations
var piln = [rounds]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
// Lanes are read and written little-endian regardless of host byte order.
func F1600(state *[StateSize]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}

	F1600Lanes(&a)

	for i := range a {
		binary.LittleEndian.PutUint64(state[i*8:], a[i])
	}
}

// F1600Lanes applies the Keccak-f[1600] permutation to a 5x5 lane state, indexed x + 5*y.
func F1600Lanes(a *[25]uint64) {
	var bc [5]uint64
	var t uint64

	for round := range rounds {
		// theta
		for i := range 5 {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := range 5 {
			t = bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho pi
		t = a[1]
		for i := range rounds {
			j := piln[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotc[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			bc[0], bc[1], bc[2], bc[3], bc[4] = a[j], a[j+1], a[j+2], a[j+3], a[j+4]
			for i := range 5 {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
