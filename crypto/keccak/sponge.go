package keccak

import (
	"crypto/subtle"
	"errors"
)

const (
	// DomainKeccak original Keccak submission padding, used by ethash
	DomainKeccak = 0x01
	// DomainSHA3 FIPS 202 SHA-3 padding
	DomainSHA3 = 0x06
)

const (
	Size256 = 256 / 8
	Size512 = 512 / 8

	// Rate256 rate for 256-bit security level, 200 - 2*32
	Rate256 = StateSize - 2*Size256
	// Rate512 rate for 512-bit security level, 200 - 2*64
	Rate512 = StateSize - 2*Size512
)

var (
	ErrInvalidRate   = errors.New("keccak: rate must be in range [1, 200)")
	ErrShortOutput   = errors.New("keccak: output buffer smaller than requested length")
	ErrOutputTooLong = errors.New("keccak: requested output exceeds digest size")
)

// Sum absorbs in and squeezes outLen bytes into out using a fresh sponge with the given rate
// and domain separation byte. out and in may overlap, as all of in is absorbed before
// any byte of out is written.
func Sum(out []byte, outLen int, in []byte, rate int, dsByte byte) error {
	if rate <= 0 || rate >= StateSize {
		return ErrInvalidRate
	}
	if outLen > 0 && len(out) < outLen {
		return ErrShortOutput
	}

	var state [StateSize]byte
	// sensitive intermediate material
	defer clear(state[:])

	// absorb full rate blocks
	for len(in) >= rate {
		subtle.XORBytes(state[:rate], state[:rate], in[:rate])
		F1600(&state)
		in = in[rate:]
	}

	// multi-rate padding, then the final partial block
	state[len(in)] ^= dsByte
	state[rate-1] ^= 0x80
	subtle.XORBytes(state[:len(in)], state[:len(in)], in)
	F1600(&state)

	// squeeze
	out = out[:max(outLen, 0)]
	for len(out) >= rate {
		copy(out, state[:rate])
		F1600(&state)
		out = out[rate:]
	}
	copy(out, state[:len(out)])

	return nil
}

// Sum256 writes the len(out) byte prefix of the Keccak-256 digest of in to out.
func Sum256(out, in []byte) error {
	if len(out) > Size256 {
		return ErrOutputTooLong
	}
	return Sum(out, len(out), in, Rate256, DomainKeccak)
}

// Sum512 writes the len(out) byte prefix of the Keccak-512 digest of in to out.
func Sum512(out, in []byte) error {
	if len(out) > Size512 {
		return ErrOutputTooLong
	}
	return Sum(out, len(out), in, Rate512, DomainKeccak)
}
