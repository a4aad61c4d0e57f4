package ethash

import (
	"errors"
	"sync"

	"git.gammaspectra.live/P2Pool/ethash/types"
	"git.gammaspectra.live/P2Pool/ethash/utils"
	"github.com/dolthub/swiss"
	"github.com/floatdrop/lru"
)

var ErrDuplicateShare = errors.New("ethash: duplicate share")

type shareKey struct {
	Header types.Hash
	Nonce  uint64
}

// Verifier re-checks submitted results against a dataset. Fully computed results are
// memoized in a bounded LRU; submissions are tracked until Reset to reject duplicates.
// Safe for concurrent use. Hashing runs outside the lock.
type Verifier struct {
	dataset *Dataset

	lock     sync.Mutex
	verified *lru.LRU[shareKey, Result]
	seen     *swiss.Map[shareKey, struct{}]
}

func NewVerifier(dataset *Dataset, cacheSize int) (*Verifier, error) {
	if err := dataset.valid(); err != nil {
		return nil, err
	}
	return &Verifier{
		dataset:  dataset,
		verified: lru.New[shareKey, Result](max(cacheSize, 1)),
		seen:     swiss.NewMap[shareKey, struct{}](64),
	}, nil
}

// Verify returns whether claimed is the correct result for header and nonce.
// A second submission of the same header and nonce before Reset fails with ErrDuplicateShare.
func (v *Verifier) Verify(header types.Hash, nonce uint64, claimed Result) (bool, error) {
	key := shareKey{Header: header, Nonce: nonce}

	cached, err := func() (*Result, error) {
		v.lock.Lock()
		defer v.lock.Unlock()

		if v.seen.Has(key) {
			return nil, ErrDuplicateShare
		}
		v.seen.Put(key, struct{}{})
		return v.verified.Get(key), nil
	}()
	if err != nil {
		return false, err
	}

	if cached != nil {
		return *cached == claimed, nil
	}

	// cheap finalization check first, avoids dataset reads for forged mix hashes
	if !QuickVerify(header, nonce, claimed) {
		utils.Debugf("Verifier", "header %s nonce %d: result does not match mix hash %s", header, nonce, claimed.MixHash)
		return false, nil
	}

	var result Result
	hashimoto(&result, v.dataset, header, nonce)

	func() {
		v.lock.Lock()
		defer v.lock.Unlock()
		v.verified.Set(key, result)
	}()

	if result != claimed {
		utils.Debugf("Verifier", "header %s nonce %d: mix hash %s, expected %s", header, nonce, claimed.MixHash, result.MixHash)
		return false, nil
	}
	return true, nil
}

// Reset forgets submitted shares, keeping memoized results
func (v *Verifier) Reset() {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.seen.Clear()
}

// Submitted number of shares seen since the last Reset
func (v *Verifier) Submitted() int {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.seen.Count()
}
