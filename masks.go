// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package truthtab

// This file defines the precomputed mask tables used by every bit-level
// operation in the package. All three tables are package-wide immutable
// values, initialized before first use and never written again.

// wordMasks[n] selects the low 2^n bits of a word, for n in [0..6]. It is
// used to re-establish the masking invariant on one-word tables.
var wordMasks = [7]uint64{
	0x0000000000000001,
	0x0000000000000003,
	0x000000000000000f,
	0x00000000000000ff,
	0x000000000000ffff,
	0x00000000ffffffff,
	0xffffffffffffffff,
}

// projections[v] selects every bit position x in a word where bit v of x
// is 1, that is every entry of the truth table where variable v takes the
// value 1. projectionsNeg[v] is its complement. Both tables are valid at
// all 64 bit positions, independently of the variable count of the table
// they are applied to.
var projections = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000,
}

var projectionsNeg = [6]uint64{
	0x5555555555555555,
	0x3333333333333333,
	0x0f0f0f0f0f0f0f0f,
	0x00ff00ff00ff00ff,
	0x0000ffff0000ffff,
	0x00000000ffffffff,
}

// pairMasks[v1][v2], for v1 < v2 < 6, partitions a word into the three
// bit groups moved by a swap of variables v1 and v2: pairMasks[v1][v2][0]
// selects the positions left in place (bit v1 and bit v2 agree),
// pairMasks[v1][v2][1] the positions shifted up by 2^v2-2^v1 (bit v1 set,
// bit v2 clear), and pairMasks[v1][v2][2] the positions shifted down by
// the same amount. Entries with v1 >= v2 are zero and must never be used.
var pairMasks = makePairMasks()

func makePairMasks() [6][6][3]uint64 {
	var pm [6][6][3]uint64
	for v1 := 0; v1 < 6; v1++ {
		for v2 := v1 + 1; v2 < 6; v2++ {
			for x := 0; x < 64; x++ {
				b1 := (x >> v1) & 1
				b2 := (x >> v2) & 1
				switch {
				case b1 == b2:
					pm[v1][v2][0] |= 1 << x
				case b1 == 1:
					pm[v1][v2][1] |= 1 << x
				default:
					pm[v1][v2][2] |= 1 << x
				}
			}
		}
	}
	return pm
}
