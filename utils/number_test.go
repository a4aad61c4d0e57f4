package utils

import "testing"

func TestAlignDown(t *testing.T) {
	if v := AlignDown(1073739904+100, 128); v != 1073739904 {
		t.Errorf("AlignDown() = %d", v)
	}
	if !IsAligned(1073739904, 128) {
		t.Error("expected aligned")
	}
	if IsAligned(0, 128) || IsAligned(1000, 128) {
		t.Error("expected unaligned")
	}
}

func TestUnits(t *testing.T) {
	if s := SiUnits(1500, 1); s != "1.5 K" {
		t.Errorf("SiUnits() = %q", s)
	}
	if s := IecUnits(1<<30, 2); s != "1.00 GiB" {
		t.Errorf("IecUnits() = %q", s)
	}
	if s := IecUnits(100, 2); s != "100 B" {
		t.Errorf("IecUnits() = %q", s)
	}
}
