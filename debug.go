// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug
// +build debug

package truthtab

import (
	"log"
	"os"
)

const _DEBUG bool = true

func init() {
	log.SetOutput(os.Stdout)
}

// checkMask verifies the masking invariant: a one-word table must keep
// the bits beyond 2^nvars at zero. The check runs after every mutation
// that re-establishes the invariant by shift-and-mask arithmetic rather
// than by an explicit call to maskBits.
func (t *Table) checkMask() {
	if t.nvars < 6 && t.words[0]&^wordMasks[t.nvars] != 0 {
		log.Panicf("truthtab: unmasked bits %#x in table over %d variables", t.words[0]&^wordMasks[t.nvars], t.nvars)
	}
}
