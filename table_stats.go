package hashtab

import (
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// Statistics Utilities
// ============================================================================

// Stats is a snapshot of a Table's counters.
//
// Notes:
//   - Collisions and Rehashes are cumulative since creation; growth never
//     resets them.
//   - Has and Get probes count toward Collisions, not only Put.
type Stats struct {
	// Occupancy is the number of entries.
	Occupancy int
	// Capacity is the number of slots.
	Capacity int
	// Collisions is the number of occupied slots holding a different key
	// visited while probing.
	Collisions uint64
	// Rehashes is the number of times the table grew.
	Rehashes uint32
}

// LoadFactor returns Occupancy/Capacity.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Occupancy) / float64(s.Capacity)
}

// String returns string representation of table stats.
func (s Stats) String() string {
	var sb strings.Builder
	s.writeTo(&sb)
	return sb.String()
}

func (s Stats) writeTo(w io.Writer) {
	fmt.Fprintf(w, "Size: %d\n", s.Occupancy)
	fmt.Fprintf(w, "Capacity: %d\n", s.Capacity)
	fmt.Fprintf(w, "Collisions: %d\n", s.Collisions)
	fmt.Fprintf(w, "Rehashes: %d\n", s.Rehashes)
}

// Stats returns the table's counters. Unlike Has, it does not change them.
func (t *Table[K, V]) Stats() Stats {
	t.mustBeLive()
	return Stats{
		Occupancy:  t.occupancy,
		Capacity:   len(t.slots),
		Collisions: t.collisions,
		Rehashes:   t.rehashes,
	}
}

// Dump writes the table's counters to w and, if contents is true, one line
// per slot: "i: null" for an empty slot or "i: (...)" with the print
// behavior's rendering of the entry. Dump does not modify the table.
// It returns the first error reported by w.
func (t *Table[K, V]) Dump(w io.Writer, contents bool) error {
	t.mustBeLive()
	ew := &errWriter{w: w}
	t.Stats().writeTo(ew)
	if !contents {
		return ew.err
	}
	for i := range t.slots {
		if ew.err != nil {
			break
		}
		s := &t.slots[i]
		if !s.used {
			fmt.Fprintf(ew, "%d: null\n", i)
			continue
		}
		fmt.Fprintf(ew, "%d: (", i)
		t.print(ew, s.key, s.value)
		io.WriteString(ew, ")\n")
	}
	return ew.err
}

// String returns the counters in Dump format, without slot contents.
func (t *Table[K, V]) String() string {
	return t.Stats().String()
}
