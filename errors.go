package hashtab

import "errors"

// Precondition violations are reported by panicking with an error that wraps
// one of these sentinels, so a caller that recovers can classify the
// failure with errors.Is. None of them is ever returned as a regular result.
var (
	// ErrNilTable is raised when a method is called on a nil *Table.
	ErrNilTable = errors.New("hashtab: nil table")

	// ErrMissingFunc is raised by New when the hash, equal or print
	// behavior is nil.
	ErrMissingFunc = errors.New("hashtab: missing behavior function")

	// ErrInvalidConfig is raised by New when an option is out of range.
	ErrInvalidConfig = errors.New("hashtab: invalid config")

	// ErrKeyNotFound is raised by Get when the key is absent. The failed
	// lookup is not added to the collision counter.
	ErrKeyNotFound = errors.New("hashtab: key not found")

	// ErrDestroyed is raised by any operation on a destroyed table.
	ErrDestroyed = errors.New("hashtab: table destroyed")

	// ErrTableFull is raised when Put finds neither an equal key nor an
	// empty slot, or when the capacity can no longer be multiplied without
	// overflowing int. Growth makes the first case unreachable.
	ErrTableFull = errors.New("hashtab: no empty slot")
)
