// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package truthtab

// This file implements the elementary operations over truth tables:
// cofactors, support tests, variable complementation, extension to a
// larger variable count, and the raw bit-vector operations (left shift
// and lexicographic increment). Operations with a variable-index
// parameter select their algorithm from the position of the index
// relative to the word boundary: an index below 6 is handled with the
// projection masks and a shift of 2^v inside each word, a larger index
// addresses whole blocks of 2^(v-6) words.
//
// All methods mutate the table in place and return it, so that calls can
// be chained. The package-level functions of the same names leave their
// argument untouched and return the result as a new table.

// Cofactor0 replaces t with its cofactor with respect to variable v set
// to 0. The result does not depend on v anymore but keeps the same
// number of variables.
func (t *Table) Cofactor0(v int) *Table {
	t.checkVar(v)
	if v < 6 {
		for k, w := range t.words {
			t.words[k] = (w&projectionsNeg[v])<<(1<<v) | w&projectionsNeg[v]
		}
	} else {
		step := 1 << (v - 6)
		for k := 0; k < len(t.words); k += 2 * step {
			for j := 0; j < step; j++ {
				t.words[k+j+step] = t.words[k+j]
			}
		}
	}
	if _DEBUG {
		t.checkMask()
	}
	return t
}

// Cofactor1 replaces t with its cofactor with respect to variable v set
// to 1. See Cofactor0.
func (t *Table) Cofactor1(v int) *Table {
	t.checkVar(v)
	if v < 6 {
		for k, w := range t.words {
			t.words[k] = w&projections[v] | (w&projections[v])>>(1<<v)
		}
	} else {
		step := 1 << (v - 6)
		for k := 0; k < len(t.words); k += 2 * step {
			for j := 0; j < step; j++ {
				t.words[k+j] = t.words[k+j+step]
			}
		}
	}
	return t
}

// HasVar reports whether the function depends on variable v, that is
// whether its two cofactors with respect to v differ. Neither cofactor
// is materialized.
func (t *Table) HasVar(v int) bool {
	t.checkVar(v)
	if v < 6 {
		for _, w := range t.words {
			if (w>>(1<<v))&projectionsNeg[v] != w&projectionsNeg[v] {
				return true
			}
		}
		return false
	}
	step := 1 << (v - 6)
	for k := 0; k < len(t.words); k += 2 * step {
		for j := 0; j < step; j++ {
			if t.words[k+j] != t.words[k+j+step] {
				return true
			}
		}
	}
	return false
}

// Flip complements variable v in t, exchanging the two halves of the
// domain split by v.
func (t *Table) Flip(v int) *Table {
	t.checkVar(v)
	if v < 6 {
		shift := 1 << v
		for k, w := range t.words {
			t.words[k] = (w<<shift)&projections[v] | (w&projections[v])>>shift
		}
	} else {
		step := 1 << (v - 6)
		for k := 0; k < len(t.words); k += 2 * step {
			for j := 0; j < step; j++ {
				t.words[k+j], t.words[k+j+step] = t.words[k+j+step], t.words[k+j]
			}
		}
	}
	if _DEBUG {
		t.checkMask()
	}
	return t
}

// Extend fills t with the function of src extended to the variable count
// of t. The added variables are don't-care: the value of the result
// never depends on them. It panics if t has fewer variables than src.
// Extending a table to its own variable count copies it unchanged.
func (t *Table) Extend(src *Table) *Table {
	if t.nvars < src.nvars {
		panic("truthtab: cannot extend a table to fewer variables")
	}
	if src.nvars < 6 {
		w := src.words[0]
		max := t.nvars
		if max > 6 {
			max = 6
		}
		for v := src.nvars; v < max; v++ {
			w |= w << (1 << v)
		}
		for k := range t.words {
			t.words[k] = w
		}
		return t
	}
	for k := 0; k < len(t.words); k += len(src.words) {
		copy(t.words[k:k+len(src.words)], src.words)
	}
	return t
}

// ShiftLeft shifts the table, seen as one large unsigned integer, left
// by n bit positions. Overflowing high bits are dropped and the low bits
// are filled with zeroes; a shift of NumBits or more clears the table.
func (t *Table) ShiftLeft(n uint) *Table {
	if len(t.words) == 1 {
		if n >= 64 {
			t.words[0] = 0
		} else {
			t.words[0] <<= n
		}
		t.maskBits()
		return t
	}
	if n >= uint(t.NumBits()) {
		for k := range t.words {
			t.words[k] = 0
		}
		return t
	}
	if n == 0 {
		return t
	}
	last := len(t.words) - 1
	div := int(n / 64)
	rem := n % 64
	if rem != 0 {
		for k := last - div; k > 0; k-- {
			t.words[k+div] = t.words[k]<<rem | t.words[k-1]>>(64-rem)
		}
		t.words[div] = t.words[0] << rem
	} else {
		for k := last - div; k > 0; k-- {
			t.words[k+div] = t.words[k]
		}
		t.words[div] = t.words[0]
	}
	for k := 0; k < div; k++ {
		t.words[k] = 0
	}
	return t
}

// Next replaces t with the lexicographically next table, that is the
// table whose bit pattern is the successor of t's pattern as an unsigned
// integer. The largest table wraps around to the constant zero.
func (t *Table) Next() *Table {
	for k := range t.words {
		t.words[k]++
		if t.words[k] != 0 {
			break
		}
	}
	t.maskBits()
	return t
}

// Not complements every entry of the table.
func (t *Table) Not() *Table {
	for k, w := range t.words {
		t.words[k] = ^w
	}
	t.maskBits()
	return t
}

// NotIf complements every entry of the table when cond holds, and leaves
// the table unchanged otherwise.
func (t *Table) NotIf(cond bool) *Table {
	if cond {
		return t.Not()
	}
	return t
}

// And replaces t with the conjunction of t and x. Both tables must have
// the same number of variables.
func (t *Table) And(x *Table) *Table {
	t.checkSize(x)
	for k := range t.words {
		t.words[k] &= x.words[k]
	}
	return t
}

// Or replaces t with the disjunction of t and x. Both tables must have
// the same number of variables.
func (t *Table) Or(x *Table) *Table {
	t.checkSize(x)
	for k := range t.words {
		t.words[k] |= x.words[k]
	}
	return t
}

// Xor replaces t with the exclusive disjunction of t and x. Both tables
// must have the same number of variables.
func (t *Table) Xor(x *Table) *Table {
	t.checkSize(x)
	for k := range t.words {
		t.words[k] ^= x.words[k]
	}
	return t
}

// Ite replaces t, used as the condition, with the if-then-else of t, g
// and h: the result agrees with g where t is 1 and with h elsewhere. All
// three tables must have the same number of variables.
func (t *Table) Ite(g, h *Table) *Table {
	t.checkSize(g)
	t.checkSize(h)
	for k, w := range t.words {
		t.words[k] = w&g.words[k] | ^w&h.words[k]
	}
	return t
}

// Maj replaces t with the majority of t, x and y. All three tables must
// have the same number of variables.
func (t *Table) Maj(x, y *Table) *Table {
	t.checkSize(x)
	t.checkSize(y)
	for k, w := range t.words {
		t.words[k] = w&(x.words[k]^y.words[k]) ^ x.words[k]&y.words[k]
	}
	return t
}

// Cofactor0 returns the cofactor of t with respect to variable v set to
// 0, leaving t untouched.
func Cofactor0(t *Table, v int) *Table { return t.Clone().Cofactor0(v) }

// Cofactor1 returns the cofactor of t with respect to variable v set to
// 1, leaving t untouched.
func Cofactor1(t *Table, v int) *Table { return t.Clone().Cofactor1(v) }

// Flip returns the table of t with variable v complemented, leaving t
// untouched.
func Flip(t *Table, v int) *Table { return t.Clone().Flip(v) }

// Extend returns the function of t extended to nvars variables, leaving
// t untouched.
func Extend(t *Table, nvars int) *Table { return New(nvars).Extend(t) }

// ShiftLeft returns the table of t shifted left by n bit positions,
// leaving t untouched.
func ShiftLeft(t *Table, n uint) *Table { return t.Clone().ShiftLeft(n) }

// Next returns the lexicographically next table after t, leaving t
// untouched.
func Next(t *Table) *Table { return t.Clone().Next() }

// Not returns the complement of t, leaving t untouched.
func Not(t *Table) *Table { return t.Clone().Not() }
