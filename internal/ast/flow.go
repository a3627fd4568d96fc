package ast

import "github.com/zero-lang/zc/internal/hashutil"

// Scope is a `{ <expr>* }` block (spec.md §4.6.5 parse_scope).
type Scope struct {
	Expressions []Expression
}

func (*Scope) Kind() Kind { return KindScope }

// IsConst holds iff every child does (spec.md §8 Property 4).
func (s *Scope) IsConst() bool {
	for _, e := range s.Expressions {
		if !e.IsConst() {
			return false
		}
	}
	return true
}
func (s *Scope) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedScope)
	for _, e := range s.Expressions {
		h = hashutil.Combine(h, e.Hash())
	}
	return h
}
func (s *Scope) Equal(o Expression) bool {
	os, ok := o.(*Scope)
	if !ok || len(s.Expressions) != len(os.Expressions) {
		return false
	}
	for i := range s.Expressions {
		if !s.Expressions[i].Equal(os.Expressions[i]) {
			return false
		}
	}
	return true
}

// Branch is `if cond body [elif…] [else body]`; OnFalse is the only
// optional mandatory-by-default child in the whole sum (spec.md §3
// Invariants).
type Branch struct {
	Condition Expression
	OnTrue    Expression
	OnFalse   Expression // nil when absent
}

func (*Branch) Kind() Kind { return KindBranch }

// IsConst requires a non-effectful condition and both arms constant; a
// missing else-arm is treated as constant since it contributes nothing.
func (b *Branch) IsConst() bool {
	if !b.Condition.IsConst() || !b.OnTrue.IsConst() {
		return false
	}
	return b.OnFalse == nil || b.OnFalse.IsConst()
}
func (b *Branch) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedBranch)
	h = hashutil.Combine(h, b.Condition.Hash())
	h = hashutil.Combine(h, b.OnTrue.Hash())
	return exprHash(h, b.OnFalse)
}
func (b *Branch) Equal(o Expression) bool {
	ob, ok := o.(*Branch)
	if !ok {
		return false
	}
	return b.Condition.Equal(ob.Condition) && b.OnTrue.Equal(ob.OnTrue) && exprEqual(b.OnFalse, ob.OnFalse)
}

// SelectCase is one `if k: v` arm of a Select.
type SelectCase struct {
	Key   Expression
	Value Expression
}

// Select is `select key { if k: v  else: v }` (spec.md §4.6.5
// parse_select). Cases is kept as an ordered slice rather than a Go map so
// that traversal order is deterministic; equality still compares
// key-by-key over the smaller side per spec.md §4.4.
type Select struct {
	Key     Expression
	Cases   []SelectCase
	Default Expression // nil when absent
}

func (*Select) Kind() Kind { return KindSelect }
func (s *Select) IsConst() bool {
	if !s.Key.IsConst() {
		return false
	}
	for _, c := range s.Cases {
		if !c.Key.IsConst() || !c.Value.IsConst() {
			return false
		}
	}
	return s.Default == nil || s.Default.IsConst()
}
func (s *Select) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedSelect)
	h = hashutil.Combine(h, s.Key.Hash())
	for _, c := range s.Cases {
		h = hashutil.Combine(h, c.Key.Hash())
		h = hashutil.Combine(h, c.Value.Hash())
	}
	return exprHash(h, s.Default)
}

// Equal compares cases key-by-key over the smaller side (spec.md §4.4) and
// treats an absent Default as equal only to another absent Default
// (spec.md §9 Open Question: the source dereferences default_case
// unconditionally; this port corrects that, see DESIGN.md).
func (s *Select) Equal(o Expression) bool {
	os, ok := o.(*Select)
	if !ok || !s.Key.Equal(os.Key) {
		return false
	}
	if (s.Default == nil) != (os.Default == nil) {
		return false
	}
	if s.Default != nil && !s.Default.Equal(os.Default) {
		return false
	}
	small, big := s.Cases, os.Cases
	if len(big) < len(small) {
		small, big = big, small
	}
	if len(small) != len(big) {
		return false
	}
	for _, sc := range small {
		found := false
		for _, bc := range big {
			if sc.Key.Equal(bc.Key) && sc.Value.Equal(bc.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// While is `while cond body`.
type While struct {
	Condition Expression
	Body      Expression
}

func (*While) Kind() Kind      { return KindWhile }
func (w *While) IsConst() bool { return w.Condition.IsConst() && w.Body.IsConst() }
func (w *While) Hash() uint64 {
	return hashutil.Combine(hashutil.Combine(hashutil.Mix64(hashutil.SeedWhile), w.Condition.Hash()), w.Body.Hash())
}
func (w *While) Equal(o Expression) bool {
	ow, ok := o.(*While)
	return ok && w.Condition.Equal(ow.Condition) && w.Body.Equal(ow.Body)
}

// DoWhile is `do body while cond`.
type DoWhile struct {
	Condition Expression
	Body      Expression
}

func (*DoWhile) Kind() Kind      { return KindDoWhile }
func (d *DoWhile) IsConst() bool { return d.Condition.IsConst() && d.Body.IsConst() }
func (d *DoWhile) Hash() uint64 {
	return hashutil.Combine(hashutil.Combine(hashutil.Mix64(hashutil.SeedDoWhile), d.Condition.Hash()), d.Body.Hash())
}
func (d *DoWhile) Equal(o Expression) bool {
	od, ok := o.(*DoWhile)
	return ok && d.Condition.Equal(od.Condition) && d.Body.Equal(od.Body)
}

// For is the classic three-part loop (spec.md §4.6.5 parse_for).
//
// Equal always returns false, preserving original_source's
// For::operator== unconditional-false contract (spec.md §9 Open Question,
// "A faithful port preserves this surprising contract"). See DESIGN.md.
type For struct {
	Init      Expression
	Condition Expression
	Update    Expression
	Body      Expression
}

func (*For) Kind() Kind { return KindFor }
func (f *For) IsConst() bool {
	return f.Init.IsConst() && f.Condition.IsConst() && f.Update.IsConst() && f.Body.IsConst()
}
func (f *For) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedFor)
	h = hashutil.Combine(h, f.Init.Hash())
	h = hashutil.Combine(h, f.Condition.Hash())
	h = hashutil.Combine(h, f.Update.Hash())
	return hashutil.Combine(h, f.Body.Hash())
}
func (f *For) Equal(Expression) bool { return false }

// ForEach is `for x : collection do body` (spec.md §4.6.5 parse_for's
// ForEach detection).
type ForEach struct {
	Iterator   Expression
	Collection Expression
	Body       Expression
}

func (*ForEach) Kind() Kind { return KindForEach }
func (f *ForEach) IsConst() bool {
	return f.Iterator.IsConst() && f.Collection.IsConst() && f.Body.IsConst()
}
func (f *ForEach) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedForEach)
	h = hashutil.Combine(h, f.Iterator.Hash())
	h = hashutil.Combine(h, f.Collection.Hash())
	return hashutil.Combine(h, f.Body.Hash())
}
func (f *ForEach) Equal(o Expression) bool {
	of, ok := o.(*ForEach)
	return ok && f.Iterator.Equal(of.Iterator) && f.Collection.Equal(of.Collection) && f.Body.Equal(of.Body)
}
