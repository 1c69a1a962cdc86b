// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package truthtab_test

import (
	"fmt"

	"github.com/dalzilio/truthtab"
)

// This example shows the basic usage of the package: build the table of
// a small Boolean expression, test its support and take a cofactor.
func Example_basic() {
	// f == x0 & !x2, over three variables
	f := truthtab.NthVar(3, 0).And(truthtab.Not(truthtab.NthVar(3, 2)))
	fmt.Println(f)
	// f does not depend on x1
	fmt.Println(f.HasVar(1))
	// fixing x2 to 0 leaves x0
	fmt.Println(truthtab.Cofactor0(f, 2).Equal(truthtab.Extend(truthtab.NthVar(1, 0), 3)))
	// exchanging x0 and x2 gives x2 & !x0
	fmt.Println(truthtab.Swap(f, 0, 2))
	// Output:
	// 0a
	// false
	// true
	// 50
}

// This example reorders a function with a sparse support to its minimum
// base, and restores it afterwards.
func Example_minbase() {
	// f == x1 & x3, over five variables
	f := truthtab.NthVar(5, 1).And(truthtab.NthVar(5, 3))
	g := f.Clone()
	support := g.MinBase()
	fmt.Println(support)
	// the support now occupies positions 0 and 1: g == x0 & x1
	fmt.Println(g)
	// replaying the swaps in reverse restores f
	fmt.Println(g.Expand(support).Equal(f))
	// Output:
	// [1 3]
	// 88888888
	// true
}
