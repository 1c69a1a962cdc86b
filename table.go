// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package truthtab

import (
	"fmt"
	"math/bits"
	"strings"
)

// _MAXVAR is the maximal number of variables in a table. A table over 30
// variables already needs 2^24 words (128 MB) of backing storage, so the
// limit is a memory safeguard rather than an algorithmic one.
const _MAXVAR int = 30

// Table is the truth table of a Boolean function over a fixed number of
// variables. Bit x of the table, for x in [0..2^NumVars), is the value of
// the function on the input assignment where variable v equals bit v of
// x; variable 0 is the least significant. The table is backed by 64-bit
// words, least significant word first; a table over at most 6 variables
// always occupies exactly one word, with the unused high bits held at
// zero. Each Table is exclusively owned by its holder: operations never
// share backing storage and copies are always deep.
type Table struct {
	nvars int
	words []uint64
}

func wordCount(nvars int) int {
	if nvars <= 6 {
		return 1
	}
	return 1 << (nvars - 6)
}

// New returns the constant-zero table over nvars variables. It panics if
// nvars is negative or greater than _MAXVAR.
func New(nvars int) *Table {
	if nvars < 0 || nvars > _MAXVAR {
		panic(fmt.Sprintf("truthtab: bad number of variables (%d)", nvars))
	}
	return &Table{nvars: nvars, words: make([]uint64, wordCount(nvars))}
}

// NthVar returns the table of the projection function f(x) = x_v over
// nvars variables.
func NthVar(nvars, v int) *Table {
	t := New(nvars)
	t.checkVar(v)
	if v < 6 {
		for k := range t.words {
			t.words[k] = projections[v]
		}
		t.maskBits()
		return t
	}
	// every word whose index has bit v-6 set lies in the half where
	// variable v is 1
	step := 1 << (v - 6)
	for k := range t.words {
		if k&step != 0 {
			t.words[k] = ^uint64(0)
		}
	}
	return t
}

// FromWords returns the table over nvars variables whose backing words
// are the given ones, least significant word first. Missing words are
// zero; bits beyond 2^nvars are cleared. It panics if more words are
// given than the table can hold.
func FromWords(nvars int, words ...uint64) *Table {
	t := New(nvars)
	if len(words) > len(t.words) {
		panic(fmt.Sprintf("truthtab: %d words do not fit in a table over %d variables", len(words), nvars))
	}
	copy(t.words, words)
	t.maskBits()
	return t
}

// NumVars returns the number of input variables of the table.
func (t *Table) NumVars() int { return t.nvars }

// NumBits returns the number of entries in the table, that is 2^NumVars.
func (t *Table) NumBits() int { return 1 << t.nvars }

// NumWords returns the number of 64-bit words backing the table.
func (t *Table) NumWords() int { return len(t.words) }

// Word returns the k-th backing word, least significant first. It gives
// read-only access to the in-memory encoding, for use by downstream
// serialization code; the mutable view of the storage never leaves this
// package.
func (t *Table) Word(k int) uint64 { return t.words[k] }

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{nvars: t.nvars, words: make([]uint64, len(t.words))}
	copy(c.words, t.words)
	return c
}

// Get returns the value of the function on input assignment x.
func (t *Table) Get(x int) bool {
	t.checkBit(x)
	return t.words[x>>6]&(1<<(x&63)) != 0
}

// Set sets the value of the function on input assignment x to 1.
func (t *Table) Set(x int) {
	t.checkBit(x)
	t.words[x>>6] |= 1 << (x & 63)
}

// Clear sets the value of the function on input assignment x to 0.
func (t *Table) Clear(x int) {
	t.checkBit(x)
	t.words[x>>6] &^= 1 << (x & 63)
}

// CountOnes returns the number of input assignments on which the
// function takes the value 1.
func (t *Table) CountOnes() int {
	n := 0
	for _, w := range t.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Equal reports whether t and x are the same function over the same
// number of variables. Tables with different variable counts are never
// equal.
func (t *Table) Equal(x *Table) bool {
	if t.nvars != x.nvars {
		return false
	}
	for k, w := range t.words {
		if w != x.words[k] {
			return false
		}
	}
	return true
}

// Less reports whether t is strictly smaller than x. Tables over fewer
// variables come first; tables of the same size are ordered
// lexicographically, most significant word first. The result is a strict
// total order, usable as a sort or deduplication key.
func (t *Table) Less(x *Table) bool {
	if t.nvars != x.nvars {
		return t.nvars < x.nvars
	}
	for k := len(t.words) - 1; k >= 0; k-- {
		if t.words[k] != x.words[k] {
			return t.words[k] < x.words[k]
		}
	}
	return false
}

// IsConst0 reports whether t is the constant-zero function.
func (t *Table) IsConst0() bool {
	for _, w := range t.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// String returns a hexadecimal dump of the table, most significant digit
// first. This is a debugging aid, not a serialization format.
func (t *Table) String() string {
	if t.nvars <= 6 {
		digits := 1
		if t.nvars > 2 {
			digits = 1 << (t.nvars - 2)
		}
		return fmt.Sprintf("%0*x", digits, t.words[0])
	}
	var sb strings.Builder
	for k := len(t.words) - 1; k >= 0; k-- {
		fmt.Fprintf(&sb, "%016x", t.words[k])
	}
	return sb.String()
}

// maskBits clears the bits beyond 2^nvars of a one-word table. Tables
// over more than 6 variables have no slack bits.
func (t *Table) maskBits() {
	if t.nvars < 6 {
		t.words[0] &= wordMasks[t.nvars]
	}
}

func (t *Table) checkVar(v int) {
	if v < 0 || v >= t.nvars {
		panic(fmt.Sprintf("truthtab: variable index %d out of range [0..%d)", v, t.nvars))
	}
}

func (t *Table) checkBit(x int) {
	if x < 0 || x >= t.NumBits() {
		panic(fmt.Sprintf("truthtab: bit index %d out of range [0..%d)", x, t.NumBits()))
	}
}

func (t *Table) checkSize(x *Table) {
	if t.nvars != x.nvars {
		panic(fmt.Sprintf("truthtab: mismatched variable counts (%d and %d)", t.nvars, x.nvars))
	}
}
