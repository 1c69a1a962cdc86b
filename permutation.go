// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package truthtab

import "fmt"

// This file implements the operations that reorder the variables of a
// table: adjacent and arbitrary swaps, reordering to minimum base, and
// the inverse expansion. The bit movement of a swap depends on where the
// two indices fall relative to the word boundary; the general Swap has
// four regimes, of which the cross-boundary one (one index inside a
// word, the other addressing whole blocks) transplants bit groups
// between block pairs with the projection mask of the smaller index.

// SwapAdjacent exchanges variables v and v+1 in t. It panics unless
// 0 <= v < NumVars-1.
func (t *Table) SwapAdjacent(v int) *Table {
	if v < 0 || v >= t.nvars-1 {
		panic(fmt.Sprintf("truthtab: adjacent pair %d,%d out of range [0..%d)", v, v+1, t.nvars))
	}
	switch {
	case v < 5:
		// masked shuffle inside each word
		shift := 1 << v
		m := &pairMasks[v][v+1]
		for k, w := range t.words {
			t.words[k] = w&m[0] | (w&m[1])<<shift | (w&m[2])>>shift
		}
	case v == 5:
		// exchange the upper half of each even word with the lower
		// half of the next one
		for k := 0; k < len(t.words); k += 2 {
			lo, hi := t.words[k], t.words[k+1]
			t.words[k] = lo&0x00000000ffffffff | hi<<32
			t.words[k+1] = hi&0xffffffff00000000 | lo>>32
		}
	default:
		// both indices address whole blocks
		step := 1 << (v - 6)
		for k := 0; k < len(t.words); k += 4 * step {
			for j := 0; j < step; j++ {
				t.words[k+j+step], t.words[k+j+2*step] = t.words[k+j+2*step], t.words[k+j+step]
			}
		}
	}
	if _DEBUG {
		t.checkMask()
	}
	return t
}

// Swap exchanges variables v1 and v2 in t. Swapping is its own inverse.
func (t *Table) Swap(v1, v2 int) *Table {
	t.checkVar(v1)
	t.checkVar(v2)
	if v1 == v2 {
		return t
	}
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	switch {
	case v2 < 6:
		// both indices inside one word
		m := &pairMasks[v1][v2]
		shift := (1 << v2) - (1 << v1)
		for k, w := range t.words {
			t.words[k] = w&m[0] | (w&m[1])<<shift | (w&m[2])>>shift
		}
	case v1 < 6:
		// v1 inside a word, v2 addressing whole blocks: for every
		// block pair split by v2, the group where v1 is 1 in the low
		// block trades places with the group where v1 is 0 in the
		// high block
		step := 1 << (v2 - 6)
		shift := 1 << v1
		for k := 0; k < len(t.words); k += 2 * step {
			for j := 0; j < step; j++ {
				lo, hi := t.words[k+j], t.words[k+j+step]
				t.words[k+j] = lo&^projections[v1] | (hi<<shift)&projections[v1]
				t.words[k+j+step] = hi&projections[v1] | (lo&projections[v1])>>shift
			}
		}
	default:
		// both indices address whole blocks
		step1 := 1 << (v1 - 6)
		step2 := 1 << (v2 - 6)
		for k := 0; k < len(t.words); k += 2 * step2 {
			for i := 0; i < step2; i += 2 * step1 {
				for j := 0; j < step1; j++ {
					t.words[k+i+j+step1], t.words[k+i+j+step2] = t.words[k+i+j+step2], t.words[k+i+j+step1]
				}
			}
		}
	}
	if _DEBUG {
		t.checkMask()
	}
	return t
}

// MinBase reorders the variables of t so that its functional support
// occupies a contiguous prefix of indices: every variable the function
// depends on is swapped forward into the next free slot, in order.
// Variables outside the support end up beyond the support size. The size
// of the table is unchanged.
//
// MinBase returns the original indices of the support variables, in the
// order they now occupy positions 0..k-1; Expand with that slice undoes
// the reordering.
func (t *Table) MinBase() []int {
	var support []int
	k := 0
	for v := 0; v < t.nvars; v++ {
		if !t.HasVar(v) {
			continue
		}
		if k < v {
			t.Swap(k, v)
		}
		support = append(support, v)
		k++
	}
	return support
}

// Expand restores variables moved by MinBase to their original
// positions, replaying the recorded swaps in reverse order. It panics if
// an entry of support is smaller than its position, since MinBase only
// ever moves variables forward.
func (t *Table) Expand(support []int) *Table {
	for k := len(support) - 1; k >= 0; k-- {
		if support[k] < k {
			panic(fmt.Sprintf("truthtab: bad support entry %d at position %d", support[k], k))
		}
		t.Swap(k, support[k])
	}
	return t
}

// Swap returns the table of t with variables v1 and v2 exchanged,
// leaving t untouched.
func Swap(t *Table, v1, v2 int) *Table { return t.Clone().Swap(v1, v2) }

// SwapAdjacent returns the table of t with variables v and v+1
// exchanged, leaving t untouched.
func SwapAdjacent(t *Table, v int) *Table { return t.Clone().SwapAdjacent(v) }
