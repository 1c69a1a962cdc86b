// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package truthtab defines a concrete type for dense truth tables, a data
structure used to represent Boolean functions over a fixed, small set of
variables as a plain bit vector, together with the bit-level algebra
needed to manipulate them: cofactors, variable complementation and
permutation, reordering to minimum base, extension to a larger variable
count, and raw shifting and enumeration of the underlying bit pattern.

# Basics

Each Table has a fixed number of variables, NumVars, declared when it is
created (with New, NthVar, FromWords or Extend) and immutable for the
lifetime of the table. Bit x of the table is the value of the function
on the input assignment where variable v is bit v of x, with variable 0
the least significant; this addressing convention is the only external
contract of the package, and every algorithm is defined relative to it.
The table is backed by 64-bit words: a table over at most 6 variables
occupies a single word, a larger one exactly 2^(NumVars-6) words. Bits
beyond 2^NumVars are always held at zero, and every operation preserves
this invariant.

Operations come in two forms. Methods on *Table mutate the table in
place and return it, so that calls can be chained:

	f := truthtab.NthVar(3, 0)
	f.And(truthtab.NthVar(3, 1)).Flip(0)

Package-level functions of the same names (Cofactor0, Flip, Swap, ...)
leave their argument untouched and return the result as a new table.
Both forms compute bit-identical results. Tables are exclusively owned
by their holder: no operation shares backing storage, copies are always
deep, and the package does no internal locking.

# Errors

Invalid arguments, such as a variable index outside [0..NumVars), an
extension to fewer variables, or a malformed support slice passed to
Expand, are programming errors on the caller's side; they make the
package panic rather than return an error value. No operation performs
any I/O.

# Use of build tags

When building with the build tag `debug`, mutating operations re-verify
the masking invariant after every shift-and-mask shuffle and panic on
the spot if a slack bit was set, which is helpful when experimenting
with new bit-level formulas.
*/
package truthtab
