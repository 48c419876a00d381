// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// id_fn.go - vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// Fixed vertex IDs used by terminal-oriented fixtures (Parallel, Bridge).
const (
	SourceID = "S"
	TargetID = "T"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal ("0","1",...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
