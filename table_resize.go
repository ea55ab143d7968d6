package hashtab

import "fmt"

// grow reallocates the slots at capacity*factor and reinserts every entry
// by probing from its hash in the new array. Collisions met while
// reinserting are counted like any other.
func (t *Table[K, V]) grow() {
	old := t.slots
	if len(old) > maxInt/t.factor {
		panic(fmt.Errorf("%w: capacity %d cannot grow by %d", ErrTableFull, len(old), t.factor))
	}
	n := uint(len(old) * t.factor)
	slots := make([]slot[K, V], n)
	for i := range old {
		s := &old[i]
		if !s.used {
			continue
		}
		h := t.hash(s.key)
		// The new array has more empty slots than old has entries, so this
		// terminates.
		for slots[h%n].used {
			t.collisions++
			h++
		}
		slots[h%n] = *s
	}

	t.slots = slots
	t.rehashes++
	t.logger.Debug("table grown",
		"from", len(old),
		"to", n,
		"occupancy", t.occupancy,
		"collisions", t.collisions,
		"rehashes", t.rehashes,
	)
}
