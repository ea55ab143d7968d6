package hashtab

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Dump_Counters(t *testing.T) {
	tb := New(constHash[int], Equal[int], FormatPrinter[int, string], nil)
	tb.Put(1, "one")
	tb.Put(2, "two")

	var sb strings.Builder
	require.NoError(t, tb.Dump(&sb, false))
	want := "Size: 2\nCapacity: 8\nCollisions: 1\nRehashes: 0\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, want, tb.String())
}

func TestTable_Dump_Contents(t *testing.T) {
	tb := newIntTable(WithInitialCapacity(4))
	tb.Put(1, "one")
	tb.Put(2, "two")

	var sb strings.Builder
	require.NoError(t, tb.Dump(&sb, true))
	want := strings.Join([]string{
		"Size: 2",
		"Capacity: 4",
		"Collisions: 0",
		"Rehashes: 0",
		"0: null",
		"1: (1, one)",
		"2: (2, two)",
		"3: null",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestTable_Dump_CustomPrinter(t *testing.T) {
	tb := New(HashString, Equal[string], func(w io.Writer, k string, v []int) {
		fmt.Fprintf(w, "%s=%d", k, len(v))
	}, nil, WithInitialCapacity(1), WithLoadThreshold(1))
	tb.Put("xs", []int{1, 2, 3})

	var sb strings.Builder
	require.NoError(t, tb.Dump(&sb, true))
	assert.True(t, strings.HasSuffix(sb.String(), "0: (xs=3)\n"), sb.String())
}

func TestTable_Dump_DoesNotMutate(t *testing.T) {
	tb := New(constHash[int], Equal[int], FormatPrinter[int, int], nil)
	for i := range 5 {
		tb.Put(i, i)
	}
	before := tb.Stats()
	require.NoError(t, tb.Dump(io.Discard, true))
	require.Equal(t, before, tb.Stats())
}

var errSink = errors.New("sink full")

// limitWriter fails once more than n bytes have been written.
type limitWriter struct {
	n      int
	writes int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	w.writes++
	if len(p) > w.n {
		return 0, errSink
	}
	w.n -= len(p)
	return len(p), nil
}

func TestTable_Dump_WriteError(t *testing.T) {
	tb := newIntTable(WithInitialCapacity(64))
	w := &limitWriter{n: 20}
	err := tb.Dump(w, true)
	require.ErrorIs(t, err, errSink)
	// Stops shortly after the failure instead of walking all 64 slots.
	assert.Less(t, w.writes, 10)
}

func TestStats_LoadFactor(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.LoadFactor())
	assert.Equal(t, 0.5, Stats{Occupancy: 4, Capacity: 8}.LoadFactor())
}
