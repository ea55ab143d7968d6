/*
Package hashtab provides a generic open-addressing hash table whose hashing,
equality, printing and disposal are supplied by the caller.

Basic usage:

	t := hashtab.New(
		hashtab.HashString,
		hashtab.Equal[string],
		hashtab.FormatPrinter[string, int],
		nil, // no dispose behavior
	)
	defer t.Destroy()

	t.Put("a", 1)
	if prev, replaced := t.Put("a", 2); replaced {
		fmt.Println("replaced", prev)
	}
	if t.Has("a") {
		fmt.Println(t.Get("a"))
	}

Implementation Details:

Entries live directly in a slot slice. A key's probe starts at
hash(key) mod capacity; on an occupied slot holding a different key the hash
value is incremented and reduced again (linear probing). Every such step is
counted as a collision, on the read path as well as on the write path. A
Get on an absent key panics without touching the counter.

At the start of every Put the table grows by the growth factor (default 2)
until one more entry would not push occupancy/capacity above the load
threshold (default 0.75), so there is always an empty slot to insert into
and the ratio never exceeds the threshold. Growth rebuilds the slot
slice and is counted in Stats().Rehashes. Tables never shrink and entries
cannot be removed.

Error handling:

Expected negative outcomes are plain results: Has returns false and Put
reports replaced == false. Misuse is a programming error and panics with an
error wrapping a sentinel such as ErrKeyNotFound (Get on an absent key) or
ErrDestroyed (any call after Destroy).

A Table is not safe for concurrent use.
*/
package hashtab
