package ethash

import (
	"errors"
	"sync/atomic"

	"git.gammaspectra.live/P2Pool/ethash/types"
	"git.gammaspectra.live/P2Pool/ethash/utils"
	"golang.org/x/sys/cpu"
)

var ErrStopped = errors.New("ethash: batch stopped")

// batchRoutine per-routine counters, padded to keep routines off each other's cache lines
type batchRoutine struct {
	_      cpu.CacheLinePad
	hashes uint64
	_      cpu.CacheLinePad
}

// HashBatch hashes header against every nonce in parallel over routines goroutines (<= 0 selects NumCPU).
// Results are returned in nonce order. Individual hashes are never interrupted; once stop is set
// no further hash starts and ErrStopped is returned. stop may be nil.
func HashBatch(dataset *Dataset, header types.Hash, nonces []uint64, routines int, stop *atomic.Bool) ([]Result, error) {
	if err := dataset.valid(); err != nil {
		return nil, err
	}

	results := make([]Result, len(nonces))
	var counters []batchRoutine

	err := utils.SplitWork(routines, uint64(len(nonces)), func(workIndex uint64, routineIndex int) error {
		if stop != nil && stop.Load() {
			return ErrStopped
		}
		hashimoto(&results[workIndex], dataset, header, nonces[workIndex])
		counters[routineIndex].hashes++
		return nil
	}, func(routines, routineIndex int) error {
		if routineIndex == 0 {
			counters = make([]batchRoutine, routines)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if utils.IsLogLevelDebug() {
		for i := range counters {
			utils.Debugf("Batch", "routine %d hashed %d nonces", i, counters[i].hashes)
		}
	}

	return results, nil
}

// HashRange hashes count consecutive nonces starting at start, see HashBatch
func HashRange(dataset *Dataset, header types.Hash, start, count uint64, routines int, stop *atomic.Bool) ([]Result, error) {
	nonces := make([]uint64, count)
	for i := range nonces {
		nonces[i] = start + uint64(i)
	}
	return HashBatch(dataset, header, nonces, routines, stop)
}
