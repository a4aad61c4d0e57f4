//go:build !unix

package main

import (
	"fmt"
	"os"

	"git.gammaspectra.live/P2Pool/ethash/utils"
)

// loadDataset reads path fully into memory
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

	if _, err = utils.ReadFullProgressive(f, &data, int(stat.Size())); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, func() {}, nil
}
