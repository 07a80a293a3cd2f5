package hashmap

import "errors"

// DefaultCapacity is the slot count used when a map is created with a
// non-positive capacity.
const DefaultCapacity = 16

// slot is one position in the backing array. A slot is either empty or
// occupied; an occupied slot always holds both a key and a value.
type slot[K, V any] struct {
	key   K
	value V
	inUse bool
}

// Map is a generic hash table using open addressing with linear
// probing. When an insert finds no free slot the table doubles its
// capacity and rehashes every entry, which is expensive; size the map
// generously up front to avoid it.
//
// A Map is not safe for concurrent use. It stores the keys and values
// it is given and never copies or releases what they reference; that
// memory remains the caller's responsibility for as long as an entry
// is stored.
type Map[K, V any] struct {
	slots   []slot[K, V]
	keys    []K // cached key snapshot, rebuilt lazily
	ops     KeyOps[K]
	size    int
	changed bool
}

// New returns a map with the given initial capacity using ops as the
// key strategy. A capacity <= 0 falls back to DefaultCapacity.
func New[K, V any](capacity int, ops KeyOps[K]) (*Map[K, V], error) {
	if ops == nil {
		return nil, errors.New("hashmap: nil key ops")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Map[K, V]{
		slots:   make([]slot[K, V], capacity),
		ops:     ops,
		changed: true,
	}, nil
}

// NewString returns a map keyed by strings using the default strategy
// (lexicographic comparison, Jenkins one-at-a-time hash).
func NewString[V any](capacity int) *Map[string, V] {
	m, _ := New[string, V](capacity, StringOps{})
	return m
}

// Len returns the number of live entries. A nil map has length 0.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Cap returns the current slot capacity. A nil map has capacity 0.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}
	return len(m.slots)
}

// Destroy releases the slot array and the key snapshot cache. It is
// idempotent and safe on a nil map. Stored key and value memory is
// never touched. Every later operation returns ErrNilMap.
func (m *Map[K, V]) Destroy() {
	if m == nil {
		return
	}
	m.slots = nil
	m.keys = nil
	m.size = 0
	m.changed = false
}

func (m *Map[K, V]) valid() bool {
	return m != nil && m.slots != nil
}

// Put stores value under key. An existing equal key has its value
// overwritten in place with no change to the live count; a fresh key
// occupies a new slot. When the table is full it grows before placing.
func (m *Map[K, V]) Put(key K, value V) error {
	if !m.valid() {
		return ErrNilMap
	}

	idx, err := m.findSlot(key)
	for errors.Is(err, ErrFull) {
		if rerr := m.rehash(); rerr != nil {
			return rerr
		}
		idx, err = m.findSlot(key)
	}
	if err != nil {
		return err
	}

	if m.slots[idx].inUse {
		m.slots[idx].value = value
	} else {
		m.slots[idx] = slot[K, V]{key: key, value: value, inUse: true}
		m.size++
	}
	m.changed = true
	return nil
}

// Get returns the value stored under key without removing it.
// Returns ErrEmpty when the map holds no entries and ErrNotFound when
// the key is absent.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if !m.valid() {
		return zero, ErrNilMap
	}

	idx, err := m.find(key)
	if err != nil {
		return zero, err
	}
	return m.slots[idx].value, nil
}

// Remove deletes key and returns the value it held. The vacated slot
// becomes immediately reusable; no tombstone is left behind. Returns
// ErrEmpty and ErrNotFound as Get does.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	if !m.valid() {
		return zero, ErrNilMap
	}

	idx, err := m.find(key)
	if err != nil {
		return zero, err
	}

	value := m.slots[idx].value
	m.slots[idx] = slot[K, V]{} // drop the stored references as well
	m.size--
	m.changed = true
	return value, nil
}

// Keys returns every stored key in slot-scan order. The slice is a
// cache owned by the map, rebuilt only after a mutation, and is valid
// until the next Put or Remove. Returns ErrEmpty when the map holds no
// entries.
func (m *Map[K, V]) Keys() ([]K, error) {
	if !m.valid() {
		return nil, ErrNilMap
	}
	if m.size == 0 {
		return nil, ErrEmpty
	}

	if m.changed {
		m.keys = make([]K, 0, m.size)
		for i := range m.slots {
			if m.slots[i].inUse {
				m.keys = append(m.keys, m.slots[i].key)
			}
		}
		m.changed = false
	}
	return m.keys, nil
}

// Iterate applies fn to every stored value in slot-scan order.
// Callback results are ignored and the scan always completes.
func (m *Map[K, V]) Iterate(fn func(V) error) error {
	return m.iterate(fn, false)
}

// IterateChecked applies fn to every stored value in slot-scan order,
// stopping at the first non-nil callback result, which is returned.
func (m *Map[K, V]) IterateChecked(fn func(V) error) error {
	return m.iterate(fn, true)
}

func (m *Map[K, V]) iterate(fn func(V) error, checked bool) error {
	if !m.valid() {
		return ErrNilMap
	}
	if m.size == 0 {
		return nil
	}

	for i := range m.slots {
		if !m.slots[i].inUse {
			continue
		}
		if err := fn(m.slots[i].value); err != nil && checked {
			return err
		}
	}
	return nil
}

// findSlot returns the index where key can be placed: the first unused
// slot on the key's probe sequence, or the slot already occupied by an
// equal key (the overwrite case). Reports ErrFull when the table has
// no capacity left.
func (m *Map[K, V]) findSlot(key K) (int, error) {
	if m.size == len(m.slots) {
		return 0, ErrFull
	}

	start := int(m.ops.Hash(key) % uint32(len(m.slots)))
	for i := 0; i < len(m.slots); i++ {
		idx := (start + i) % len(m.slots)
		if !m.slots[idx].inUse {
			return idx, nil
		}
		if m.ops.Compare(m.slots[idx].key, key) == 0 {
			return idx, nil
		}
	}

	// Unreachable given the size check above; kept as a probe bound.
	return 0, ErrFull
}

// find returns the index of the occupied slot holding an equal key.
// The probe covers the whole circle: slots vacated by Remove are
// ordinary unused slots and do not terminate the scan.
func (m *Map[K, V]) find(key K) (int, error) {
	if m.size == 0 {
		return 0, ErrEmpty
	}

	start := int(m.ops.Hash(key) % uint32(len(m.slots)))
	for i := 0; i < len(m.slots); i++ {
		idx := (start + i) % len(m.slots)
		if m.slots[idx].inUse && m.ops.Compare(m.slots[idx].key, key) == 0 {
			return idx, nil
		}
	}
	return 0, ErrNotFound
}

// rehash doubles the slot array and reinserts every occupied slot in
// index order.
func (m *Map[K, V]) rehash() error {
	oldSlots := m.slots
	m.slots = make([]slot[K, V], 2*len(oldSlots))
	m.size = 0

	for i := range oldSlots {
		if !oldSlots[i].inUse {
			continue
		}
		idx, err := m.findSlot(oldSlots[i].key)
		if err != nil {
			// The doubled table must fit every old entry.
			return ErrCorrupted
		}
		m.slots[idx] = oldSlots[i]
		m.size++
	}
	return nil
}
