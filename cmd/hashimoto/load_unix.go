//go:build unix

package main

import (
	"fmt"
	"os"

	"git.gammaspectra.live/P2Pool/ethash/utils"
	"golang.org/x/sys/unix"
)

// loadDataset maps path read-only. The returned function unmaps it.
func loadDataset(path string) (data []byte, closeFn func(), err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if stat.Size() == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}
	if int64(int(stat.Size())) != stat.Size() {
		return nil, nil, fmt.Errorf("%s: file too large to map", path)
	}

	data, err = unix.Mmap(int(f.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	// accesses are random
	if err = unix.Madvise(data, unix.MADV_RANDOM); err != nil {
		utils.Debugf("Dataset", "madvise: %s", err)
	}

	return data, func() {
		if err := unix.Munmap(data); err != nil {
			utils.Errorf("Dataset", "munmap %s: %s", path, err)
		}
	}, nil
}
