package ethash

import "encoding/binary"

// Node 64-byte dataset word-block. Word and DoubleWord views decode little-endian
// from the same bytes, independent of host byte order.
type Node [NodeBytes]byte

func (n *Node) Bytes() []byte {
	return n[:]
}

func (n *Node) Word(i int) uint32 {
	return binary.LittleEndian.Uint32(n[i*4:])
}

func (n *Node) SetWord(i int, v uint32) {
	binary.LittleEndian.PutUint32(n[i*4:], v)
}

func (n *Node) DoubleWord(i int) uint64 {
	return binary.LittleEndian.Uint64(n[i*8:])
}

func (n *Node) SetDoubleWord(i int, v uint64) {
	binary.LittleEndian.PutUint64(n[i*8:], v)
}

// Words decodes all words at once
func (n *Node) Words() (words [NodeWords]uint32) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(n[i*4:])
	}
	return words
}

func (n *Node) SetWords(words *[NodeWords]uint32) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(n[i*4:], w)
	}
}
