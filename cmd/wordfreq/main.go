// Command wordfreq counts word occurrences in files (or stdin) with a
// hashtab.Table and prints the most frequent words and the table's
// diagnostics.
//
// Usage:
//
//	wordfreq [-top n] [-dump] [-contents] [-v] [file ...]
package main

import (
	"bufio"
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/llxisdsh/hashtab"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "wordfreq: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	top := fs.Int("top", 10, "number of most frequent words to print (0 for none)")
	dump := fs.Bool("dump", false, "print table diagnostics")
	contents := fs.Bool("contents", false, "with -dump, print every slot")
	verbose := fs.Bool("v", false, "log table growth to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *top < 0 {
		return fmt.Errorf("-top must not be negative, got %d", *top)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var total int
	t := hashtab.New(
		hashtab.HashString,
		hashtab.Equal[string],
		func(w io.Writer, word string, n *int) { fmt.Fprintf(w, "%s, %d", word, *n) },
		func(_ string, n *int) { total += *n },
		hashtab.WithLogger(logger),
	)

	if fs.NArg() == 0 {
		if err := count(t, stdin); err != nil {
			t.Destroy()
			return fmt.Errorf("stdin: %w", err)
		}
	}
	for _, name := range fs.Args() {
		if err := countFile(t, name); err != nil {
			t.Destroy()
			return err
		}
	}

	if *top > 0 {
		printTop(stdout, t, *top)
	}
	if *dump {
		if err := t.Dump(stdout, *contents); err != nil {
			t.Destroy()
			return err
		}
	}
	distinct := t.Len()
	t.Destroy()
	_, err := fmt.Fprintf(stdout, "%d words, %d distinct\n", total, distinct)
	return err
}

func countFile(t *hashtab.Table[string, *int], name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := count(t, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// count adds every word read from r to t. Words are lower-cased runs of
// letters and digits.
func count(t *hashtab.Table[string, *int], r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		word := strings.ToLower(strings.TrimFunc(sc.Text(), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}))
		if word == "" {
			continue
		}
		if t.Has(word) {
			*t.Get(word)++
			continue
		}
		n := 1
		t.Put(word, &n)
	}
	return sc.Err()
}

func printTop(w io.Writer, t *hashtab.Table[string, *int], n int) {
	words, counts := t.Keys(), t.Values()
	order := make([]int, len(words))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(*counts[b], *counts[a]); c != 0 {
			return c
		}
		return strings.Compare(words[a], words[b])
	})
	for _, i := range order[:min(n, len(order))] {
		fmt.Fprintf(w, "%7d %s\n", *counts[i], words[i])
	}
}
