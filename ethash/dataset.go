package ethash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrNilDataset       = errors.New("ethash: nil dataset")
	ErrInvalidFullSize  = errors.New("ethash: full size must be a nonzero multiple of mix size")
	ErrInvalidCacheSize = errors.New("ethash: cache size must be a multiple of node size")
	ErrDatasetTooSmall  = errors.New("ethash: dataset shorter than full size")
)

// Params sizing of a dataset epoch, in bytes
type Params struct {
	// FullSize size of the full dataset, multiple of MixBytes
	FullSize uint64 `json:"full_size"`
	// CacheSize size of the verification cache, multiple of NodeBytes. Not used by full hashing.
	CacheSize uint64 `json:"cache_size"`
}

func (p Params) Validate() error {
	if p.FullSize == 0 || p.FullSize%MixBytes != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFullSize, p.FullSize)
	}
	// page indices are 32-bit
	if p.FullSize/MixBytes > math.MaxUint32 {
		return fmt.Errorf("%w: %d pages do not fit 32-bit index", ErrInvalidFullSize, p.FullSize/MixBytes)
	}
	if p.CacheSize%NodeBytes != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, p.CacheSize)
	}
	return nil
}

// Pages number of MixBytes pages addressable by the hashimoto loop
func (p Params) Pages() uint32 {
	return uint32(p.FullSize / MixBytes)
}

// Dataset read-only view over an externally owned full dataset. The underlying bytes must not be
// modified while any hash using it is in progress. Safe for concurrent use.
type Dataset struct {
	data   []byte
	params Params
	pages  uint32
}

// NewDataset validates params against data. data may be longer than params.FullSize,
// only the first FullSize bytes are ever addressed.
func NewDataset(data []byte, params Params) (*Dataset, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(data)) < params.FullSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDatasetTooSmall, len(data), params.FullSize)
	}

	return &Dataset{
		data:   data[:params.FullSize],
		params: params,
		pages:  params.Pages(),
	}, nil
}

func (d *Dataset) Params() Params {
	return d.params
}

func (d *Dataset) FullSize() uint64 {
	return d.params.FullSize
}

// Nodes number of word-blocks in the addressable dataset
func (d *Dataset) Nodes() uint64 {
	return d.params.FullSize / NodeBytes
}

// Node returns a copy of word-block index. It panics if index is out of range.
func (d *Dataset) Node(index uint64) (n Node) {
	copy(n[:], d.data[index*NodeBytes:(index+1)*NodeBytes])
	return n
}

// mixNode folds word-block index into mix
func (d *Dataset) mixNode(mix *[NodeWords]uint32, index uint64) {
	var words [NodeWords]uint32
	buf := d.data[index*NodeBytes : (index+1)*NodeBytes]
	for w := range words {
		words[w] = binary.LittleEndian.Uint32(buf[w*4:])
	}
	fnvHash(mix[:], words[:])
}

func (d *Dataset) valid() error {
	if d == nil {
		return ErrNilDataset
	}
	if d.pages == 0 || uint64(len(d.data)) < d.params.FullSize {
		return ErrInvalidFullSize
	}
	return nil
}
