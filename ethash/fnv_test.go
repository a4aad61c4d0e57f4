package ethash

import "testing"

func TestFnv(t *testing.T) {
	for _, tc := range []struct {
		x, y, expected uint32
	}{
		{0, 0, 0},
		{1, 0, FnvPrime},
		{0, 0xdeadbeef, 0xdeadbeef},
		{0xffffffff, 0, 0xfefffe6d},
		{0x12345678, 0x9abcdef0, 0xbad8c018},
		{0x9abcdef0, 0x12345678, 0x9566a5a8},
	} {
		if r := Fnv(tc.x, tc.y); r != tc.expected {
			t.Errorf("Fnv(%#x, %#x) = %#x, expected %#x", tc.x, tc.y, r, tc.expected)
		}
	}

	if Fnv(0x12345678, 0x9abcdef0) == Fnv(0x9abcdef0, 0x12345678) {
		t.Errorf("expected Fnv to not commute")
	}
}

func TestFnvHash(t *testing.T) {
	mix := []uint32{0, 1, 0xffffffff, 0x12345678}
	data := []uint32{7, 0, 0, 0x9abcdef0, 0xaaaaaaaa}
	expected := make([]uint32, len(mix))
	for i := range mix {
		expected[i] = Fnv(mix[i], data[i])
	}

	fnvHash(mix, data)
	for i := range mix {
		if mix[i] != expected[i] {
			t.Errorf("element %d: got %#x, expected %#x", i, mix[i], expected[i])
		}
	}
}
