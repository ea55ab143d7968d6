package hashtab_test

import (
	"fmt"
	"io"
	"os"

	"github.com/llxisdsh/hashtab"
)

func Example() {
	t := hashtab.New(
		hashtab.HashInt[int],
		hashtab.Equal[int],
		hashtab.FormatPrinter[int, string],
		func(k int, v string) { fmt.Println("dispose", k, v) },
		hashtab.WithInitialCapacity(4),
	)

	t.Put(1, "one")
	prev, replaced := t.Put(1, "uno")
	fmt.Println(prev, replaced)

	t.Put(2, "two")
	if t.Has(2) {
		fmt.Println(t.Get(2))
	}
	fmt.Println(t.Has(3))

	_ = t.Dump(os.Stdout, true)
	t.Destroy()

	// Output:
	// one true
	// two
	// false
	// Size: 2
	// Capacity: 4
	// Collisions: 0
	// Rehashes: 0
	// 0: null
	// 1: (1, uno)
	// 2: (2, two)
	// 3: null
	// dispose 1 uno
	// dispose 2 two
}

func ExampleTable_Keys() {
	t := hashtab.New(
		hashtab.HashInt[int],
		hashtab.Equal[int],
		func(w io.Writer, k int, v float64) { fmt.Fprintf(w, "%d->%.1f", k, v) },
		nil,
	)
	defer t.Destroy()

	for i := range 3 {
		t.Put(i, float64(i)/2)
	}
	fmt.Println(t.Keys())
	fmt.Println(t.Values())
	// Output:
	// [0 1 2]
	// [0 0.5 1]
}

func ExampleTable_Stats() {
	t := hashtab.NewComparable[string, int]()
	defer t.Destroy()

	for i := range 7 {
		t.Put(fmt.Sprint(i), i)
	}
	s := t.Stats()
	fmt.Println(s.Occupancy, s.Capacity, s.Rehashes)
	// Output:
	// 7 16 1
}
