package hashmap

import "errors"

// Sentinel errors returned by Map operations. Compare with errors.Is.
var (
	// ErrNilMap is returned by every operation invoked on a nil map or
	// on a map already released by Destroy.
	ErrNilMap = errors.New("hashmap: nil or destroyed map")

	// ErrFull is returned when no slot can be found for a key even
	// after the table attempted to grow.
	ErrFull = errors.New("hashmap: table full")

	// ErrEmpty is returned by lookups and removals against a map with
	// zero live entries.
	ErrEmpty = errors.New("hashmap: table empty")

	// ErrNotFound is returned when a key's probe sequence completes
	// without a match.
	ErrNotFound = errors.New("hashmap: key not found")

	// ErrCorrupted is returned when a grow fails to place an existing
	// entry. The map is no longer usable and must be discarded.
	ErrCorrupted = errors.New("hashmap: table corrupted during rehash")
)
