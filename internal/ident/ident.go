// Package ident implements identifier interning: mapping source identifier
// text to a small, stable integer handle assigned in first-seen order
// (spec.md §3 "Identifier interning"). Grounded on the map-backed registry
// shape of mcgru-funxy/internal/symbols.SymbolTable, narrowed to the pure
// name-to-handle bijection spec.md describes — the richer per-symbol data
// (type, kind, constness) that funxy's SymbolTable also carries lives one
// layer up, in internal/scope, mirroring funxy's own split between
// interning-shaped storage and its outer scope chain.
package ident

import "github.com/zero-lang/zc/internal/hashutil"

// ID is an opaque, process-local identifier handle. Two IDs from the same
// Table compare equal iff the interned names compare byte-equal
// (spec.md §3 "Invariants").
type ID int32

// Invalid is never returned by Table.Intern. It is not the zero value of
// ID: zero is the handle of the first interned name.
const Invalid ID = -1

// Table owns the name<->ID mapping for one parse (spec.md "The parser owns
// the identifier table... for the duration of a parse").
type Table struct {
	byName []string // ID -> name, dense, index == int(ID)
	lookup map[string]ID
}

// NewTable returns an empty interning table.
func NewTable() *Table {
	return &Table{lookup: make(map[string]ID)}
}

// Intern returns the handle for name, allocating the next unused ID the
// first time name is seen and returning the existing handle on every
// subsequent call (spec.md §8 Property 5 "Idempotent interning").
func (t *Table) Intern(name string) ID {
	if id, ok := t.lookup[name]; ok {
		return id
	}
	id := ID(len(t.byName))
	t.byName = append(t.byName, name)
	t.lookup[name] = id
	return id
}

// Name returns the interned text for id. It panics if id was never
// returned by this Table's Intern — callers only ever hold IDs this table
// produced.
func (t *Table) Name(id ID) string {
	return t.byName[id]
}

// Hash mixes id itself through the structural hash avalanche
// (spec.md §4.4 "Identifier hashes mix their interned id through the
// mixer").
func (t *Table) Hash(id ID) uint64 {
	return hashutil.U64(uint64(uint32(id)))
}
