package utils

import (
	"errors"
	"io"
	"math"
	"slices"
)

// ReadFullProgressive Reads into dst up to size bytes by doubling the buffer each time,
// so a wrong size hint does not allocate the whole amount up front.
// Reaching io.EOF before size bytes is not an error; the returned n is then smaller than size.
func ReadFullProgressive[T ~[]byte](r io.Reader, dst *T, size int) (n int, err error) {
	if size < 0 {
		return 0, io.EOF
	}

	buf := *dst

	var offset int

	// reserve some, start with 64 KiB
	buf = slices.Grow(buf[:0], min(math.MaxUint16+1, size))
	buf = buf[:min(math.MaxUint16+1, size)]

	for {
		// only read last part past read offset
		n, err = io.ReadFull(r, buf[offset:])
		offset += n
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = nil
			break
		} else if err != nil {
			*dst = buf[:offset]
			return offset, err
		}

		if offset >= size {
			break
		}

		// double size or just remainder
		buf = slices.Grow(buf, min(offset*2, size)-len(buf))
		buf = buf[:min(offset*2, size)]
	}
	*dst = buf[:offset]
	return offset, nil
}
