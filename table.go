package hashtab

import (
	"fmt"
	"iter"
	"log/slog"
)

// Table is an open-addressing hash table with linear probing, parameterized
// by caller-supplied hash, equality, print and dispose behaviors.
//
// Core properties:
//   - Keys and values are held as given; the table never copies referents
//     behind pointer types and never releases them, except through the
//     optional DisposeFunc at Destroy.
//   - Growth is proactive: Put grows the table before inserting whenever
//     one more entry would push occupancy/capacity above the load threshold.
//   - Entries cannot be removed individually.
//
// Notes:
//   - Table is not safe for concurrent use; serialize access externally.
//   - Table must not be copied after first use.
//   - Misuse (Get on an absent key, use after Destroy, ...) panics with an
//     error wrapping one of the Err* sentinels.
type Table[K, V any] struct {
	_          noCopy
	slots      []slot[K, V]
	occupancy  int
	collisions uint64
	rehashes   uint32
	hash       HashFunc[K]
	equal      EqualFunc[K]
	print      PrintFunc[K, V]
	dispose    DisposeFunc[K, V] // optional
	threshold  float64
	factor     int
	logger     *slog.Logger
	destroyed  bool
}

// slot is one bucket of the table. An unused slot is empty regardless of
// what key and value hold, so zero-valued keys are valid keys.
type slot[K, V any] struct {
	key   K
	value V
	used  bool
}

// New creates an empty Table.
//
// Parameters:
//   - hash, equal, print: mandatory behaviors; New panics with
//     ErrMissingFunc if any of them is nil.
//   - dispose: optional; when non-nil Destroy calls it once per entry.
//   - options: WithInitialCapacity, WithLoadThreshold, WithGrowthFactor,
//     WithLogger. Out-of-range values panic with ErrInvalidConfig.
func New[K, V any](
	hash HashFunc[K],
	equal EqualFunc[K],
	print PrintFunc[K, V],
	dispose DisposeFunc[K, V],
	options ...func(*Config),
) *Table[K, V] {
	switch {
	case hash == nil:
		panic(fmt.Errorf("%w: hash", ErrMissingFunc))
	case equal == nil:
		panic(fmt.Errorf("%w: equal", ErrMissingFunc))
	case print == nil:
		panic(fmt.Errorf("%w: print", ErrMissingFunc))
	}

	cfg := defaultConfig()
	for _, o := range options {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		panic(err)
	}

	return &Table[K, V]{
		slots:     make([]slot[K, V], cfg.initialCapacity),
		hash:      hash,
		equal:     equal,
		print:     print,
		dispose:   dispose,
		threshold: cfg.loadThreshold,
		factor:    cfg.growthFactor,
		logger:    loggerOrDiscard(cfg.logger),
	}
}

// NewComparable creates a Table for comparable keys using HashComparable,
// Equal and FormatPrinter, without a dispose behavior.
func NewComparable[K comparable, V any](options ...func(*Config)) *Table[K, V] {
	return New(HashComparable[K], Equal[K], FormatPrinter[K, V], nil, options...)
}

func (t *Table[K, V]) mustBeLive() {
	if t == nil {
		panic(ErrNilTable)
	}
	if t.destroyed {
		panic(ErrDestroyed)
	}
}

// Destroy calls the dispose behavior, if any, once for every entry in
// bucket order, then releases the slots. The table must not be used
// afterwards; doing so panics with ErrDestroyed.
func (t *Table[K, V]) Destroy() {
	t.mustBeLive()

	disposed := 0
	if t.dispose != nil {
		for i := range t.slots {
			if s := &t.slots[i]; s.used {
				t.dispose(s.key, s.value)
				disposed++
			}
		}
	}
	t.logger.Debug("table destroyed",
		"occupancy", t.occupancy,
		"disposed", disposed,
		"collisions", t.collisions,
		"rehashes", t.rehashes,
	)
	t.slots = nil
	t.destroyed = true
}

// ============================================================================
// Put / Has / Get
// ============================================================================

// Put associates value with key.
//
// If the key is already present its value is overwritten, the stored key
// is kept, and the old value is returned with replaced == true. Otherwise
// the pair is inserted and replaced is false.
//
// Before probing, Put grows the table, as many times as needed, until one
// more entry would not push occupancy/capacity above the load threshold.
// The check does not depend on whether key is already present, and the
// ratio never exceeds the threshold once Put returns. Every occupied slot
// holding a different key counts as one collision.
func (t *Table[K, V]) Put(key K, value V) (previous V, replaced bool) {
	t.mustBeLive()

	for float64(t.occupancy+1)/float64(len(t.slots)) > t.threshold {
		t.grow()
	}

	h := t.hash(key)
	n := uint(len(t.slots))
	for range n {
		s := &t.slots[h%n]
		if !s.used {
			*s = slot[K, V]{key: key, value: value, used: true}
			t.occupancy++
			return previous, false
		}
		if t.equal(key, s.key) {
			previous, s.value = s.value, value
			return previous, true
		}
		t.collisions++
		// Advance the hash itself, not the index.
		h++
	}
	panic(fmt.Errorf("%w: %d of %d slots used", ErrTableFull, t.occupancy, n))
}

// Has reports whether key is present.
//
// Probing stops at the first empty slot or after visiting every slot once.
// Each occupied slot holding a different key counts as a collision, so Has
// updates the diagnostic counters.
func (t *Table[K, V]) Has(key K) bool {
	t.mustBeLive()
	_, steps, ok := t.find(key)
	t.collisions += steps
	return ok
}

// Get returns the value stored for key.
//
// The key must be present; Get panics with ErrKeyNotFound otherwise. Check
// with Has first when presence is not already known. A successful probe
// counts collisions exactly like Has; a failed one leaves the table,
// counters included, as it was.
func (t *Table[K, V]) Get(key K) V {
	t.mustBeLive()
	i, steps, ok := t.find(key)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	t.collisions += steps
	return t.slots[i].value
}

// find probes for key and returns its slot index along with the number of
// occupied slots holding other keys it passed. The caller decides whether
// those count as collisions.
func (t *Table[K, V]) find(key K) (idx int, steps uint64, ok bool) {
	h := t.hash(key)
	n := uint(len(t.slots))
	for range n {
		i := h % n
		s := &t.slots[i]
		if !s.used {
			return 0, steps, false
		}
		if t.equal(key, s.key) {
			return int(i), steps, true
		}
		steps++
		h++
	}
	return 0, steps, false
}

// ============================================================================
// Enumeration
// ============================================================================

// Keys returns a new slice of all keys in bucket order. Its length equals
// Len and Keys()[i] belongs to Values()[i] as long as the table is not
// modified between the two calls.
func (t *Table[K, V]) Keys() []K {
	t.mustBeLive()
	keys := make([]K, 0, t.occupancy)
	for i := range t.slots {
		if s := &t.slots[i]; s.used {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// Values returns a new slice of all values in bucket order.
func (t *Table[K, V]) Values() []V {
	t.mustBeLive()
	values := make([]V, 0, t.occupancy)
	for i := range t.slots {
		if s := &t.slots[i]; s.used {
			values = append(values, s.value)
		}
	}
	return values
}

// All returns an iterator over all entries in bucket order.
// The table must not be modified during iteration.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	t.mustBeLive()
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			if s := &t.slots[i]; s.used {
				if !yield(s.key, s.value) {
					return
				}
			}
		}
	}
}

// Len returns the number of entries. This is an O(1) operation.
func (t *Table[K, V]) Len() int {
	t.mustBeLive()
	return t.occupancy
}

// Cap returns the number of slots.
func (t *Table[K, V]) Cap() int {
	t.mustBeLive()
	return len(t.slots)
}
