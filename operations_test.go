// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package truthtab

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigFromTable returns the bit pattern of a table as an arbitrary
// precision integer, used as a reference for the raw bit-vector
// operations.
func bigFromTable(t *Table) *big.Int {
	z := new(big.Int)
	w := new(big.Int)
	for k := t.NumWords() - 1; k >= 0; k-- {
		z.Lsh(z, 64)
		z.Or(z, w.SetUint64(t.Word(k)))
	}
	return z
}

// TestCofactorScenario is the worked 3-variable example: f = x0 AND x1
// is 1 exactly on the assignments 3 and 7, so its word is 0x88.
func TestCofactorScenario(t *testing.T) {
	f := NthVar(3, 0).And(NthVar(3, 1))
	require.Equal(t, "88", f.String())
	assert.True(t, f.HasVar(0))
	assert.True(t, f.HasVar(1))
	assert.False(t, f.HasVar(2))
	// fixing x0 to 1 leaves x1, still over three variables
	assert.True(t, Cofactor1(f, 0).Equal(NthVar(3, 1)))
	// fixing x0 to 0 gives the constant zero
	assert.True(t, Cofactor0(f, 0).IsConst0())
	// flipping x0 gives (NOT x0) AND x1
	want := Not(NthVar(3, 0)).And(NthVar(3, 1))
	assert.True(t, Flip(f, 0).Equal(want))
	// the in-place and copy-returning variants agree
	assert.True(t, f.Clone().Flip(0).Equal(want))
	// f itself was never modified
	assert.Equal(t, "88", f.String())
}

// TestCofactorSemantics checks both cofactors bit by bit against the
// addressing convention, on every variable of random tables covering the
// word and block regimes.
func TestCofactorSemantics(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for nvars := 1; nvars <= 9; nvars++ {
		tab := randomTable(r, nvars)
		for v := 0; v < nvars; v++ {
			c0 := Cofactor0(tab, v)
			c1 := Cofactor1(tab, v)
			for x := 0; x < tab.NumBits(); x++ {
				if c0.Get(x) != tab.Get(x&^(1<<v)) {
					t.Fatalf("Cofactor0(%d vars, %d): wrong bit %d", nvars, v, x)
				}
				if c1.Get(x) != tab.Get(x|1<<v) {
					t.Fatalf("Cofactor1(%d vars, %d): wrong bit %d", nvars, v, x)
				}
			}
			require.False(t, c0.HasVar(v))
			require.False(t, c1.HasVar(v))
		}
	}
}

func TestHasVar(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for nvars := 1; nvars <= 9; nvars++ {
		tab := randomTable(r, nvars)
		for v := 0; v < nvars; v++ {
			depends := false
			for x := 0; x < tab.NumBits(); x++ {
				if x>>v&1 == 0 && tab.Get(x) != tab.Get(x|1<<v) {
					depends = true
					break
				}
			}
			if tab.HasVar(v) != depends {
				t.Errorf("HasVar(%d vars, %d): expected %v", nvars, v, depends)
			}
			// a function without the variable equals both cofactors
			if !depends {
				assert.True(t, Cofactor0(tab, v).Equal(tab))
				assert.True(t, Cofactor1(tab, v).Equal(tab))
			}
		}
	}
	assert.Panics(t, func() { New(4).HasVar(4) })
}

func TestFlipSemantics(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for nvars := 1; nvars <= 9; nvars++ {
		tab := randomTable(r, nvars)
		for v := 0; v < nvars; v++ {
			f := Flip(tab, v)
			for x := 0; x < tab.NumBits(); x++ {
				if f.Get(x) != tab.Get(x^1<<v) {
					t.Fatalf("Flip(%d vars, %d): wrong bit %d", nvars, v, x)
				}
			}
			// flipping twice is the identity
			require.True(t, f.Flip(v).Equal(tab), "flip involution (%d vars, %d)", nvars, v)
		}
	}
}

func TestExtend(t *testing.T) {
	// tile f = x0 AND x1 from 3 up to 8 variables
	f := NthVar(3, 0).And(NthVar(3, 1))
	for nvars := 3; nvars <= 8; nvars++ {
		ext := Extend(f, nvars)
		for x := 0; x < ext.NumBits(); x++ {
			if ext.Get(x) != (x&3 == 3) {
				t.Fatalf("Extend to %d vars: wrong bit %d", nvars, x)
			}
		}
		for v := 3; v < nvars; v++ {
			assert.False(t, ext.HasVar(v), "added variable %d must be don't-care", v)
		}
	}
	// extension from a multi-word source tiles the word sequence
	r := rand.New(rand.NewSource(5))
	src := randomTable(r, 7)
	dst := Extend(src, 9)
	for k := 0; k < dst.NumWords(); k++ {
		require.Equal(t, src.Word(k%src.NumWords()), dst.Word(k))
	}
	// extending to the same size is a copy
	assert.True(t, Extend(src, 7).Equal(src))
	assert.Panics(t, func() { New(3).Extend(New(4)) })
}

func TestShiftLeft(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for _, nvars := range []int{0, 3, 6, 7, 9} {
		tab := randomTable(r, nvars)
		nbits := uint(tab.NumBits())
		for _, n := range []uint{0, 1, 5, 31, 63, 64, 65, 130, nbits - 1, nbits, nbits + 7} {
			got := ShiftLeft(tab, n)
			want := bigFromTable(tab)
			want.Lsh(want, n)
			mod := new(big.Int).Lsh(big.NewInt(1), nbits)
			want.Mod(want, mod)
			if bigFromTable(got).Cmp(want) != 0 {
				t.Fatalf("ShiftLeft(%d vars, %d): expected %x, actual %s", nvars, n, want, got)
			}
		}
		assert.True(t, ShiftLeft(tab, nbits).IsConst0(), "shifting by the full width clears")
	}
}

func TestNext(t *testing.T) {
	// full wraparound for the very small sizes
	for nvars := 0; nvars <= 2; nvars++ {
		tab := New(nvars)
		count := 1 << (1 << nvars)
		for i := 0; i < count; i++ {
			tab.Next()
		}
		assert.True(t, tab.IsConst0(), "Next applied 2^2^%d times must wrap", nvars)
	}
	// all ones wraps to all zeroes
	for _, nvars := range []int{3, 6, 7, 8} {
		tab := New(nvars).Not()
		assert.True(t, tab.Next().IsConst0(), "all-ones over %d vars", nvars)
	}
	// carry across the word boundary
	tab := FromWords(7, ^uint64(0), 5)
	tab.Next()
	assert.Equal(t, uint64(0), tab.Word(0))
	assert.Equal(t, uint64(6), tab.Word(1))
}

// TestNextEnumerates checks that Next visits every function of 2
// variables exactly once before wrapping.
func TestNextEnumerates(t *testing.T) {
	seen := make(map[string]bool)
	tab := New(2)
	for i := 0; i < 16; i++ {
		seen[tab.String()] = true
		tab.Next()
	}
	require.True(t, tab.IsConst0())
	assert.Len(t, seen, 16)
}

func TestBitwise(t *testing.T) {
	x0, x1 := NthVar(2, 0), NthVar(2, 1)
	var bitwiseTests = []struct {
		name     string
		actual   *Table
		expected uint64
	}{
		{"and", x0.Clone().And(x1), 0x8},
		{"or", x0.Clone().Or(x1), 0xe},
		{"xor", x0.Clone().Xor(x1), 0x6},
		{"not", Not(x0), 0x5},
		{"notif", x0.Clone().NotIf(false), 0xa},
	}
	for _, tt := range bitwiseTests {
		if tt.actual.Word(0) != tt.expected {
			t.Errorf("%s: expected %x, actual %s", tt.name, tt.expected, tt.actual)
		}
	}
	assert.Panics(t, func() { New(2).And(New(3)) })
}

func TestBitwiseProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, nvars := range []int{2, 5, 8} {
		a := randomTable(r, nvars)
		b := randomTable(r, nvars)
		c := randomTable(r, nvars)
		// De Morgan
		assert.True(t, Not(a.Clone().And(b)).Equal(Not(a).Or(Not(b))))
		// double complement restores the masking invariant as well
		assert.True(t, Not(Not(a)).Equal(a))
		// ite(a, b, c) == (a AND b) OR (NOT a AND c)
		want := a.Clone().And(b).Or(Not(a).And(c))
		assert.True(t, a.Clone().Ite(b, c).Equal(want))
		// maj(a, b, c) == (a AND b) OR (a AND c) OR (b AND c)
		want = a.Clone().And(b).Or(a.Clone().And(c)).Or(b.Clone().And(c))
		assert.True(t, a.Clone().Maj(b, c).Equal(want))
	}
}
