// Package ethash implements the hashimoto proof-of-work over a full, externally generated dataset.
//
// Dataset and cache generation, difficulty checks and mining loops are out of scope;
// callers hand in a validated read-only Dataset and get back the result and mix hash.
package ethash

const Revision = 23

const (
	// MixBytes width of mix
	MixBytes = 128
	// NodeBytes size of a dataset word-block
	NodeBytes = 64
	// NodeWords number of 32-bit words in a node
	NodeWords = NodeBytes / 4
	// MixWords number of 32-bit words in the mix
	MixWords = MixBytes / 4
	// MixNodes number of nodes fetched per access
	MixNodes = MixWords / NodeWords
	// Accesses number of accesses in the hashimoto loop
	Accesses = 64
)
