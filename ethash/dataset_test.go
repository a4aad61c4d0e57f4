package ethash

import (
	"encoding/binary"
	"errors"
	"testing"

	"git.gammaspectra.live/P2Pool/ethash/crypto"
	"git.gammaspectra.live/P2Pool/ethash/types"
	"git.gammaspectra.live/P2Pool/ethash/utils"
	"github.com/stretchr/testify/require"
)

// syntheticDataset concatenation of Keccak512(le64(j)) word-blocks
func syntheticDataset(nodes int) []byte {
	data := make([]byte, 0, nodes*NodeBytes)
	var buf [8]byte
	for j := range nodes {
		binary.LittleEndian.PutUint64(buf[:], uint64(j))
		h := crypto.Keccak512(buf[:])
		data = append(data, h[:]...)
	}
	return data
}

func TestParams(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params Params
		err    error
	}{
		{"minimal", Params{FullSize: MixBytes}, nil},
		{"with cache", Params{FullSize: MixBytes * 1999, CacheSize: NodeBytes * 7}, nil},
		{"zero", Params{}, ErrInvalidFullSize},
		{"node aligned only", Params{FullSize: MixBytes + NodeBytes}, ErrInvalidFullSize},
		{"pages overflow", Params{FullSize: (1 << 32) * MixBytes}, ErrInvalidFullSize},
		{"unaligned cache", Params{FullSize: MixBytes, CacheSize: 100}, ErrInvalidCacheSize},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
		})
	}

	if pages := (Params{FullSize: MixBytes * 1999}).Pages(); pages != 1999 {
		t.Errorf("expected 1999 pages, got %d", pages)
	}
}

func TestParams_JSON(t *testing.T) {
	buf, err := utils.MarshalJSON(Params{FullSize: 1 << 20, CacheSize: 1 << 16})
	require.NoError(t, err)
	require.JSONEq(t, `{"full_size":1048576,"cache_size":65536}`, string(buf))

	var p Params
	require.NoError(t, utils.UnmarshalJSON(buf, &p))
	require.Equal(t, Params{FullSize: 1 << 20, CacheSize: 1 << 16}, p)
}

func TestNewDataset(t *testing.T) {
	data := syntheticDataset(64)

	_, err := NewDataset(data, Params{FullSize: uint64(len(data)) + MixBytes})
	require.ErrorIs(t, err, ErrDatasetTooSmall)

	_, err = NewDataset(data, Params{FullSize: 100})
	require.ErrorIs(t, err, ErrInvalidFullSize)

	_, err = NewDataset(nil, Params{FullSize: MixBytes})
	require.ErrorIs(t, err, ErrDatasetTooSmall)

	d, err := NewDataset(data, Params{FullSize: MixBytes * 10})
	require.NoError(t, err)
	require.EqualValues(t, MixBytes*10, d.FullSize())
	require.EqualValues(t, 20, d.Nodes())
	require.Equal(t, Params{FullSize: MixBytes * 10}, d.Params())

	n := d.Node(19)
	require.Equal(t, data[19*NodeBytes:20*NodeBytes], n.Bytes())

	// beyond FullSize is not addressable even if present in data
	require.Panics(t, func() {
		d.Node(20)
	})
}

func TestDataset_Invalid(t *testing.T) {
	var nilDataset *Dataset
	if _, err := Hash(types.ZeroHash, 0, nilDataset); !errors.Is(err, ErrNilDataset) {
		t.Errorf("expected ErrNilDataset, got %v", err)
	}

	if _, err := Hash(types.ZeroHash, 0, &Dataset{}); !errors.Is(err, ErrInvalidFullSize) {
		t.Errorf("expected ErrInvalidFullSize, got %v", err)
	}

	if _, err := NewVerifier(nil, 16); !errors.Is(err, ErrNilDataset) {
		t.Errorf("expected ErrNilDataset, got %v", err)
	}

	if _, err := HashRange(nil, types.ZeroHash, 0, 4, 1, nil); !errors.Is(err, ErrNilDataset) {
		t.Errorf("expected ErrNilDataset, got %v", err)
	}

	require.Panics(t, func() {
		MustHash(types.ZeroHash, 0, nil)
	})
}
