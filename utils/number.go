package utils

// AlignDown rounds x down to a multiple of n. n must be nonzero.
func AlignDown(x, n uint64) uint64 {
	return x - x%n
}

// IsAligned whether x is a nonzero multiple of n
func IsAligned(x, n uint64) bool {
	return x != 0 && x%n == 0
}
