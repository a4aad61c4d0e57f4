package ethash

// FnvPrime 32-bit FNV prime
const FnvPrime = 0x01000193

// Fnv non-associative mixing of two words, x*FnvPrime ^ y modulo 2^32.
// Note this is not FNV-1 or FNV-1a, it folds a whole word per step.
func Fnv(x, y uint32) uint32 {
	return x*FnvPrime ^ y
}

// fnvHash mixes data into mix element-wise. data must be at least as long as mix.
func fnvHash(mix []uint32, data []uint32) {
	_ = data[len(mix)-1]
	for i := range mix {
		mix[i] = mix[i]*FnvPrime ^ data[i]
	}
}
