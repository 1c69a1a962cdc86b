// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug
// +build !debug

package truthtab

const _DEBUG bool = false

func (t *Table) checkMask() {}
