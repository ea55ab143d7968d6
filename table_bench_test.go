package hashtab

import (
	"strconv"
	"testing"
)

func BenchmarkTable_Put(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tb := New(HashInt[int], Equal[int], FormatPrinter[int, int], nil)
		for k := range 1024 {
			tb.Put(k, k)
		}
	}
}

func BenchmarkTable_Has(b *testing.B) {
	const n = 1 << 14
	tb := New(HashComparable[int], Equal[int], FormatPrinter[int, int], nil)
	for k := range n {
		tb.Put(k, k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tb.Has(i & (2*n - 1))
	}
}

func BenchmarkTable_GetString(b *testing.B) {
	const n = 1 << 12
	keys := make([]string, n)
	tb := New(HashString, Equal[string], FormatPrinter[string, int], nil)
	for k := range n {
		keys[k] = "key-" + strconv.Itoa(k)
		tb.Put(keys[k], k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tb.Get(keys[i&(n-1)])
	}
}
