package ast

import (
	"math"

	"github.com/zero-lang/zc/internal/hashutil"
)

// floatBits gives LiteralReal's hash a bit-exact view of its value instead
// of a lossy numeric conversion.
func floatBits(f float64) uint64 { return math.Float64bits(f) }

// exprEqual compares two possibly-nil Expression children. Only
// Branch.OnFalse is ever nil by contract (spec.md §3 Invariants); every
// other optional child (Declaration.Init, Return.Value, Yield.Value,
// Select.Default) reuses this helper too since the parser leaves them nil
// when absent.
func exprEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// exprHash folds a possibly-nil child into acc, leaving acc untouched when
// the child is absent so that presence/absence of an optional child does
// not collide with a present child that happens to hash the same.
func exprHash(acc uint64, e Expression) uint64 {
	if e == nil {
		return acc
	}
	return hashutil.Combine(acc, e.Hash())
}
