// Command hashimoto hashes a header digest and nonce range against a precomputed ethash full dataset.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"git.gammaspectra.live/P2Pool/ethash/ethash"
	"git.gammaspectra.live/P2Pool/ethash/types"
	"git.gammaspectra.live/P2Pool/ethash/utils"
)

// record JSON output line
type record struct {
	Header types.Hash `json:"header"`
	Nonce  uint64     `json:"nonce"`
	ethash.Result
}

func main() {
	datasetPath := flag.String("dataset", "", "Path to the full dataset file. Required.")
	fullSize := flag.Uint64("full-size", 0, "Dataset full size in bytes, multiple of 128. Defaults to file size rounded down to 128.")
	headerHex := flag.String("header", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", "Header digest, 32 bytes in hex.")
	nonce := flag.Uint64("nonce", 0, "First nonce.")
	count := flag.Uint64("count", 1, "Number of consecutive nonces to hash.")
	threads := flag.Int("threads", 0, "Hashing threads. Defaults to number of CPUs.")
	jsonOutput := flag.Bool("json", false, "Output JSON records, one per line.")
	debug := flag.Bool("debug", false, "Log debug messages.")

	flag.Parse()

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelDebug | utils.LogLevelNotice
	}

	if *datasetPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	header, err := types.HashFromString(*headerHex)
	if err != nil {
		utils.Fatalf("invalid header %q: %s", *headerHex, err)
	}

	data, closeFn, err := loadDataset(*datasetPath)
	if err != nil {
		utils.Fatalf("could not load dataset: %s", err)
	}
	defer closeFn()

	if *fullSize == 0 {
		*fullSize = utils.AlignDown(uint64(len(data)), ethash.MixBytes)
	}
	utils.Noticef("Dataset", "loaded %s, %s addressable of %s", *datasetPath, utils.IecUnits(*fullSize, 2), utils.IecUnits(uint64(len(data)), 2))

	dataset, err := ethash.NewDataset(data, ethash.Params{FullSize: *fullSize})
	if err != nil {
		utils.Fatalf("invalid dataset: %s", err)
	}

	start := time.Now()
	results, err := ethash.HashRange(dataset, header, *nonce, *count, *threads, nil)
	if err != nil {
		utils.Fatalf("could not hash: %s", err)
	}
	elapsed := time.Since(start)

	for i, r := range results {
		if *jsonOutput {
			buf, err := utils.MarshalJSON(record{Header: header, Nonce: *nonce + uint64(i), Result: r})
			if err != nil {
				utils.Errorf("JSON", "could not encode nonce %d: %s", *nonce+uint64(i), err)
				continue
			}
			_, _ = os.Stdout.Write(append(buf, '\n'))
		} else {
			if *count > 1 {
				fmt.Printf("non: %d\n", *nonce+uint64(i))
			}
			fmt.Printf("mix: %s\n", r.MixHash)
			fmt.Printf("hsh: %s\n", r.Result)
		}
	}

	if elapsed > 0 {
		utils.Logf("Hashimoto", "%d hashes in %s, %sH/s", len(results), elapsed, utils.SiUnits(float64(len(results))/elapsed.Seconds(), 2))
	}
}
