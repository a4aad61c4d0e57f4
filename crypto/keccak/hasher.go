package keccak

import (
	"crypto/subtle"
	"hash"
	"io"
)

// Hasher streaming sponge with a fixed rate, domain byte and default output size.
// Writes after the first Read panic. Not thread-safe.
type Hasher struct {
	state [StateSize]byte
	// offset into the rate portion of state, absorbed or squeezed bytes
	n         int
	rate      int
	dsByte    byte
	outputLen int
	squeezing bool
}

// NewLegacyKeccak256 Keccak-256 as used by ethash, padding 0x01
func NewLegacyKeccak256() *Hasher {
	return &Hasher{rate: Rate256, dsByte: DomainKeccak, outputLen: Size256}
}

// NewLegacyKeccak512 Keccak-512 as used by ethash, padding 0x01
func NewLegacyKeccak512() *Hasher {
	return &Hasher{rate: Rate512, dsByte: DomainKeccak, outputLen: Size512}
}

func (h *Hasher) Write(p []byte) (n int, err error) {
	if h.squeezing {
		panic("keccak: Write after Read")
	}
	n = len(p)

	for len(p) > 0 {
		k := min(len(p), h.rate-h.n)
		subtle.XORBytes(h.state[h.n:h.n+k], h.state[h.n:h.n+k], p[:k])
		h.n += k
		p = p[k:]
		if h.n == h.rate {
			F1600(&h.state)
			h.n = 0
		}
	}
	return n, nil
}

func (h *Hasher) padAndPermute() {
	h.state[h.n] ^= h.dsByte
	h.state[h.rate-1] ^= 0x80
	F1600(&h.state)
	h.n = 0
	h.squeezing = true
}

// Read squeezes an arbitrary number of bytes. The first call pads and finalizes absorption.
func (h *Hasher) Read(out []byte) (n int, err error) {
	if !h.squeezing {
		h.padAndPermute()
	}
	n = len(out)

	for len(out) > 0 {
		if h.n == h.rate {
			F1600(&h.state)
			h.n = 0
		}
		k := copy(out, h.state[h.n:h.rate])
		h.n += k
		out = out[k:]
	}
	return n, nil
}

// Sum appends the digest of the data written so far to b without changing the state.
func (h *Hasher) Sum(b []byte) []byte {
	dup := *h
	defer clear(dup.state[:])

	var out [Size512]byte
	_, _ = dup.Read(out[:h.outputLen])
	return append(b, out[:h.outputLen]...)
}

func (h *Hasher) Reset() {
	clear(h.state[:])
	h.n = 0
	h.squeezing = false
}

func (h *Hasher) Size() int {
	return h.outputLen
}

func (h *Hasher) BlockSize() int {
	return h.rate
}

var (
	_ hash.Hash = (*Hasher)(nil)
	_ io.Reader = (*Hasher)(nil)
)
