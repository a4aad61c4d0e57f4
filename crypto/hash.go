package crypto

import (
	"hash"
	"io"

	"git.gammaspectra.live/P2Pool/ethash/crypto/keccak"
	"git.gammaspectra.live/P2Pool/ethash/types"
)

type HashReader interface {
	hash.Hash
	io.Reader
}

//go:nosplit
func NewKeccak256() HashReader {
	return keccak.NewLegacyKeccak256()
}

//go:nosplit
func NewKeccak512() HashReader {
	return keccak.NewLegacyKeccak512()
}

func Keccak256Var[T ~string | ~[]byte](data ...T) (result types.Hash) {
	h := keccak.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = h.Write([]byte(b))
	}
	_, _ = h.Read(result[:])

	return
}

func Keccak256[T ~string | ~[]byte](data T) (result types.Hash) {
	// fixed size output, cannot fail
	_ = keccak.Sum256(result[:], []byte(data))
	return
}

func Keccak512Var[T ~string | ~[]byte](data ...T) (result types.Hash512) {
	h := keccak.NewLegacyKeccak512()
	for _, b := range data {
		_, _ = h.Write([]byte(b))
	}
	_, _ = h.Read(result[:])

	return
}

func Keccak512[T ~string | ~[]byte](data T) (result types.Hash512) {
	_ = keccak.Sum512(result[:], []byte(data))
	return
}

// HashFastSum squeezes a digest into b without cloning the state. b must be pre-allocated
// to at least types.HashSize bytes. The hasher must be Reset before further writes.
//
//go:nosplit
func HashFastSum(hasher HashReader, b []byte) []byte {
	_ = b[types.HashSize-1] // bounds check hint to compiler; see golang.org/issue/14808
	_, _ = hasher.Read(b[:types.HashSize])
	return b
}
