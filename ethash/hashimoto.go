package ethash

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/ethash/crypto/keccak"
	"git.gammaspectra.live/P2Pool/ethash/types"
)

type Result struct {
	// Result final proof-of-work digest
	Result types.Hash `json:"result"`
	// MixHash compressed mix, lets verifiers recompute Result via QuickHash
	MixHash types.Hash `json:"mix_hash"`
}

// Hash aggregates data from the full dataset to produce the result and mix hash
// for a header digest and nonce. It returns an error, and no digest, when the dataset
// sizing is inconsistent.
func Hash(header types.Hash, nonce uint64, dataset *Dataset) (result Result, err error) {
	if err = dataset.valid(); err != nil {
		return Result{}, err
	}
	hashimoto(&result, dataset, header, nonce)
	return result, nil
}

// Compute fills result in place, see Hash
func Compute(result *Result, dataset *Dataset, header types.Hash, nonce uint64) error {
	if err := dataset.valid(); err != nil {
		return err
	}
	hashimoto(result, dataset, header, nonce)
	return nil
}

// MustHash as Hash, but panics on precondition violations
func MustHash(header types.Hash, nonce uint64, dataset *Dataset) Result {
	result, err := Hash(header, nonce, dataset)
	if err != nil {
		panic(err)
	}
	return result
}

// QuickHash recomputes the final digest from a claimed mix hash without touching the dataset.
// A matching QuickHash does not prove the mix hash itself; full verification still needs Hash.
func QuickHash(header types.Hash, nonce uint64, mixHash types.Hash) types.Hash {
	seed := seedHash(header, nonce)
	return finalHash(&seed, mixHash)
}

// QuickVerify checks result.Result against result.MixHash, see QuickHash
func QuickVerify(header types.Hash, nonce uint64, result Result) bool {
	return QuickHash(header, nonce, result.MixHash) == result.Result
}

// seedHash Keccak-512 of header || little endian nonce
func seedHash(header types.Hash, nonce uint64) (seed Node) {
	var buf [types.HashSize + 8]byte
	copy(buf[:], header[:])
	binary.LittleEndian.PutUint64(buf[types.HashSize:], nonce)

	// fixed sizes, cannot fail
	_ = keccak.Sum512(seed[:], buf[:])
	return seed
}

// finalHash Keccak-256 of seed || compressed mix
func finalHash(seed *Node, mixHash types.Hash) (result types.Hash) {
	var buf [NodeBytes + types.HashSize]byte
	copy(buf[:], seed[:])
	copy(buf[NodeBytes:], mixHash[:])

	_ = keccak.Sum256(result[:], buf[:])
	return result
}

func hashimoto(result *Result, dataset *Dataset, header types.Hash, nonce uint64) {
	seed := seedHash(header, nonce)
	seedHead := seed.Word(0)

	// start the mix with replicated seed
	var mix [MixWords]uint32
	seedWords := seed.Words()
	for w := range mix {
		mix[w] = seedWords[w%NodeWords]
	}

	pages := dataset.pages
	for i := range uint32(Accesses) {
		index := Fnv(seedHead^i, mix[i%MixWords]) % pages

		for n := range MixNodes {
			dataset.mixNode((*[NodeWords]uint32)(mix[n*NodeWords:]), uint64(index)*MixNodes+uint64(n))
		}
	}

	// compress mix
	for w := 0; w < MixWords; w += 4 {
		binary.LittleEndian.PutUint32(result.MixHash[w:], Fnv(Fnv(Fnv(mix[w], mix[w+1]), mix[w+2]), mix[w+3]))
	}

	result.Result = finalHash(&seed, result.MixHash)
}
