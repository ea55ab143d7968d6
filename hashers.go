package hashtab

import (
	"bytes"
	"fmt"
	"hash/maphash"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ============================================================================
// Behavior function types
// ============================================================================

// HashFunc maps a key to an unsigned hash. Keys that are equal under the
// table's EqualFunc must hash identically.
type HashFunc[K any] func(key K) uint

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

// PrintFunc renders one entry for Dump. It should not write a newline.
type PrintFunc[K, V any] func(w io.Writer, key K, value V)

// DisposeFunc releases a key/value pair when the table is destroyed.
type DisposeFunc[K, V any] func(key K, value V)

// ============================================================================
// Built-in behaviors
// ============================================================================

// Integer is the set of types HashInt accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// HashInt is the identity hash for integer keys. Sequential keys land in
// sequential slots.
func HashInt[T Integer](key T) uint {
	return uint(key)
}

// HashString hashes a string key with xxhash.
func HashString(key string) uint {
	return uint(xxhash.Sum64String(key))
}

// HashBytes hashes a byte slice key with xxhash. Pair it with EqualBytes.
func HashBytes(key []byte) uint {
	return uint(xxhash.Sum64(key))
}

// comparableSeed is fixed for the life of the process so that a key hashes
// the same way across growths.
var comparableSeed = maphash.MakeSeed()

// HashComparable hashes any comparable key with the runtime's hasher,
// the same one the built-in map uses.
//
// Notes:
//   - Hashes differ between processes; do not persist them.
//   - Pointer keys hash by address, consistent with ==.
func HashComparable[K comparable](key K) uint {
	return uint(maphash.Comparable(comparableSeed, key))
}

// Equal compares comparable keys with ==.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// EqualBytes compares byte slice keys by content.
func EqualBytes(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// FormatPrinter renders an entry as "key, value" using %v.
func FormatPrinter[K, V any](w io.Writer, key K, value V) {
	fmt.Fprintf(w, "%v, %v", key, value)
}
