package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const HashSize = 32

const Hash512Size = 64

// Hash 32-byte digest, as used for header digests, results and mix hashes
//
//nolint:recvcheck
type Hash [HashSize]byte

// Hash512 64-byte digest, as produced by the seed expansion
//
//nolint:recvcheck
type Hash512 [Hash512Size]byte

var ZeroHash Hash

var (
	ErrWrongSize     = errors.New("wrong size")
	ErrWrongHashSize = errors.New("wrong hash size")
)

func MustBytesFromString[T ~[HashSize]byte | ~[Hash512Size]byte](s string) T {
	if h, err := BytesFromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func BytesFromString[T ~[HashSize]byte | ~[Hash512Size]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != len(h) {
			return h, ErrWrongSize
		}
		copy(h[:], buf)
		return h, nil
	}
}

func MustHashFromString(s string) Hash {
	return MustBytesFromString[Hash](s)
}

func HashFromString(s string) (Hash, error) {
	return BytesFromString[Hash](s)
}

// HashFromBytes returns ZeroHash when buf is not exactly HashSize bytes
func HashFromBytes(buf []byte) (h Hash) {
	if len(buf) != HashSize {
		return
	}
	copy(h[:], buf)
	return
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return marshalHex(h[:]), nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	return unmarshalHex(h[:], b)
}

func (h Hash512) Slice() []byte {
	return h[:]
}

// Low returns the first HashSize bytes
func (h Hash512) Low() (l Hash) {
	copy(l[:], h[:HashSize])
	return l
}

func (h Hash512) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash512) MarshalJSON() ([]byte, error) {
	return marshalHex(h[:]), nil
}

func (h *Hash512) UnmarshalJSON(b []byte) error {
	return unmarshalHex(h[:], b)
}

func marshalHex(v []byte) []byte {
	buf := make([]byte, len(v)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], v)
	return buf
}

// unmarshalHex leaves dst untouched on an empty string or null-like short input
func unmarshalHex(dst []byte, b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != len(dst)*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrWrongHashSize
	}

	if _, err := fasthex.Decode(dst, b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}
