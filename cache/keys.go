package cache

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

type Family uint8

const (
	FamilyFetchValue Family = iota
	FamilyFetchAllValues
)

// Fingerprint hashes a statement family and its identifier parts into a cache
// key. Parts are length prefixed so ("ab", "c") and ("a", "bc") differ.
func Fingerprint(family Family, parts ...string) uint64 {
	h := xxh3.New()

	// Layout:
	// [0]:   family (1 byte)
	// then per part: uvarint length + bytes
	buf := make([]byte, 0, binary.MaxVarintLen64)
	_, _ = h.Write([]byte{byte(family)})
	for _, p := range parts {
		_, _ = h.Write(binary.AppendUvarint(buf[:0], uint64(len(p))))
		_, _ = h.WriteString(p)
	}

	return h.Sum64()
}
