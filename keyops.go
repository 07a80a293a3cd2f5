package hashmap

import (
	"bytes"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyOps is the hashing and equality strategy for keys of type K.
// Implementations must be deterministic and mutually consistent: keys
// that Compare equal must Hash to the same value, or lookups break.
type KeyOps[K any] interface {
	// Compare returns zero iff a and b are the same key.
	Compare(a, b K) int

	// Hash maps a key to an unsigned 32-bit value.
	Hash(k K) uint32
}

// StringOps is the default strategy for string keys: lexicographic
// comparison and the Bob Jenkins one-at-a-time hash.
type StringOps struct{}

func (StringOps) Compare(a, b string) int { return strings.Compare(a, b) }

func (StringOps) Hash(k string) uint32 {
	var h uint32
	for i := 0; i < len(k); i++ {
		h += uint32(k[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// BytesOps is a strategy for []byte keys using xxHash. The 64-bit
// digest is truncated to the low 32 bits.
type BytesOps struct{}

func (BytesOps) Compare(a, b []byte) int { return bytes.Compare(a, b) }

func (BytesOps) Hash(k []byte) uint32 { return uint32(xxhash.Sum64(k)) }

// OpsFunc adapts a pair of plain functions to KeyOps for key types
// without a built-in strategy. Both fields must be non-nil.
type OpsFunc[K any] struct {
	CompareFunc func(a, b K) int
	HashFunc    func(k K) uint32
}

func (o OpsFunc[K]) Compare(a, b K) int { return o.CompareFunc(a, b) }

func (o OpsFunc[K]) Hash(k K) uint32 { return o.HashFunc(k) }
