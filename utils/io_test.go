package utils

import (
	"bytes"
	"testing"
)

func TestReadFullProgressive(t *testing.T) {
	data := make([]byte, 300_000)
	for i := range data {
		data[i] = byte(i * 31)
	}

	var buf []byte
	n, err := ReadFullProgressive(bytes.NewReader(data), &buf, len(data))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(data) || !bytes.Equal(buf, data) {
		t.Fatalf("read %d bytes, want %d", n, len(data))
	}

	// size hint larger than available
	buf = nil
	n, err = ReadFullProgressive(bytes.NewReader(data[:1000]), &buf, len(data))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1000 || !bytes.Equal(buf, data[:1000]) {
		t.Fatalf("read %d bytes, want 1000", n)
	}

	// size hint smaller than available
	buf = nil
	n, err = ReadFullProgressive(bytes.NewReader(data), &buf, 70_000)
	if err != nil {
		t.Fatal(err)
	}
	if n != 70_000 || !bytes.Equal(buf, data[:70_000]) {
		t.Fatalf("read %d bytes, want 70000", n)
	}
}
