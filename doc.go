/*
Package hashmap provides a generic hash table using open addressing
with linear probing.

Map is designed for small, resource-constrained workloads: a flat slot
array, a pluggable key strategy, and capacity doubling only when an
insert finds no free slot. It stores exactly the keys and values it is
given — nothing is copied, and nothing is freed on removal.

Basic usage:

	import "github.com/ninja4826/arduino-hashmap"

	// String keys get a built-in strategy.
	m := hashmap.NewString[int](16)
	defer m.Destroy()

	// Insert and overwrite
	_ = m.Put("a", 1)
	_ = m.Put("b", 2)
	_ = m.Put("a", 3) // overwrites, count stays 2

	// Retrieve
	v, err := m.Get("a")
	if err == nil {
		fmt.Println("a =", v) // a = 3
	}

	// Remove returns the stored value
	old, _ := m.Remove("b")

Other key types supply a KeyOps strategy:

	ops := hashmap.OpsFunc[uint64]{
		CompareFunc: func(a, b uint64) int { ... },
		HashFunc:    func(k uint64) uint32 { ... },
	}
	m, err := hashmap.New[uint64, string](64, ops)

Features:

  - Open addressing with linear probing for collision resolution
  - Automatic doubling when an insert finds the table full
  - Pluggable hash/equality strategies; defaults for string ([StringOps],
    Jenkins one-at-a-time) and []byte ([BytesOps], xxHash) keys
  - Lazily cached key snapshot for cheap bulk enumeration
  - Sentinel errors for full/empty/not-found conditions; no panics for
    expected failures

Implementation Details:

Each slot holds a key, a value, and an occupancy flag. Placement probes
linearly from hash(key) mod capacity, taking the first slot that is
unused or already holds an equal key. Lookups probe the full circle
rather than stopping at the first unused slot: removal simply vacates a
slot without leaving a tombstone, so an empty slot says nothing about
keys placed beyond it. A pathological interleaving of inserts and
removals can therefore split a probe cluster and hide a key placed past
the vacated slot; workloads that delete heavily should prefer a rebuild
over in-place churn.

Map is not safe for concurrent use. Wrap it in a mutex if multiple
goroutines may touch the same instance, including the implicit growth
inside Put.
*/
package hashmap
