package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every workIndex in [0, workSize) across routines goroutines, handing
// out indices from a shared counter. routines <= 0 selects runtime.NumCPU(). init, when not nil,
// is called sequentially for every routine before any work starts.
// The first error returned by do stops that routine and is returned once all routines exit.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = runtime.NumCPU()
	}

	if workSize == 0 {
		return nil
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	if init != nil {
		for routineIndex := range routines {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var counter atomic.Uint64
	var failed atomic.Bool

	var eg errgroup.Group

	for routineIndex := range routines {
		eg.Go(func() error {
			for !failed.Load() {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
