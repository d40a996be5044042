// Package logic implements the terms manipulated by a relational program.
//
// A logic term can fall in one of three categories:
//
// * atomic: a term that represents an immutable value. Numbers, strings, booleans
// and opaque Go values are atomic.
//
// * variable: a term that represents an unbound, yet-to-be-resolved term. Variables
// are compared by identity, never by name.
//
// * sequence: an ordered list of terms, recursively. A sequence may end in a tail
// term, meaning "the rest of this sequence is whatever the tail becomes".
package logic

import (
	"fmt"
	"sync/atomic"
)

// ---- Basic types

// Term is a representation of a logic term.
//
// The set of implementations is closed: *Var, Number, String, Bool, Opaque and *Seq.
type Term interface {
	fmt.Stringer
	isTerm()
	vars(seen map[*Var]struct{}, xs []*Var) []*Var
}

// Number is an atomic term representing a number.
type Number struct {
	// Value is the (immutable) value of a number.
	Value float64
}

// String is an atomic term representing a string.
type String struct {
	// Value is the (immutable) value of a string.
	Value string
}

// Bool is an atomic term representing a boolean.
type Bool struct {
	// Value is the (immutable) value of a boolean.
	Value bool
}

// Opaque is an atomic term wrapping any other Go value. Opaque values are equal
// when their wrapped values are comparable and equal with ==.
type Opaque struct {
	Value interface{}
}

// Var is a variable term. Use it by pointer: two vars are the same variable only
// when they are the same pointer.
type Var struct {
	// Name is the textual tag of a var. It is not unique.
	Name string
	id   uint64
}

// Seq is a sequence term.
//
// When Tail is not nil the sequence is incomplete: its remaining elements are
// given by the term in Tail, usually a var. Use NewIncompleteSeq to keep the
// representation normalized.
type Seq struct {
	// Items are the known elements of a sequence.
	Items []Term
	// Tail is the continuation of a sequence, or nil if the sequence is closed.
	Tail Term
}

func (Number) isTerm() {}
func (String) isTerm() {}
func (Bool) isTerm()   {}
func (Opaque) isTerm() {}
func (*Var) isTerm()   {}
func (*Seq) isTerm()   {}

// ---- Public vars

var (
	// EmptySeq is the closed sequence without elements.
	EmptySeq = &Seq{}
)

// ---- Vars

var lastVarID atomic.Uint64

// NewVar creates a new var with the provided name. Each call returns a distinct
// variable, even for repeated names.
func NewVar(name string) *Var {
	return &Var{Name: name, id: lastVarID.Add(1)}
}

// ID returns the creation serial of a var. Vars created later have larger IDs.
func (x *Var) ID() uint64 {
	return x.id
}

// VarGen hands out anonymous vars tagged "~.0", "~.1", and so on.
//
// A VarGen is owned by a single query, so tags are deterministic for each run. It
// is not safe for concurrent use.
type VarGen struct {
	next int
}

// Fresh returns a new anonymous var.
func (g *VarGen) Fresh() *Var {
	x := NewVar(fmt.Sprintf("~.%d", g.next))
	g.next++
	return x
}

// Count returns how many vars were generated since the last reset.
func (g *VarGen) Count() int {
	return g.next
}

// Reset restarts tag numbering from zero.
func (g *VarGen) Reset() {
	g.next = 0
}

// ---- Sequences

// NewSeq creates a closed sequence with the provided terms.
func NewSeq(items ...Term) *Seq {
	return &Seq{Items: items}
}

// NewIncompleteSeq creates a sequence with the provided items and tail.
//
// If there are no items, the tail itself is returned. If the tail is a sequence, its
// items are appended and its tail becomes the new tail. A nil tail closes the
// sequence.
func NewIncompleteSeq(items []Term, tail Term) Term {
	if s, ok := tail.(*Seq); ok {
		tmp := make([]Term, len(items)+len(s.Items))
		copy(tmp, items)
		copy(tmp[len(items):], s.Items)
		items = tmp
		tail = s.Tail
	}
	if len(items) == 0 {
		if tail == nil {
			return EmptySeq
		}
		return tail
	}
	return &Seq{Items: items, Tail: tail}
}

// IsEmpty returns whether this sequence is closed and has no items.
func (s *Seq) IsEmpty() bool {
	return len(s.Items) == 0 && s.Tail == nil
}

// Head returns the first item of a sequence. It panics on sequences without items.
func (s *Seq) Head() Term {
	if len(s.Items) == 0 {
		panic("(*Seq).Head: no items")
	}
	return s.Items[0]
}

// Rest returns the sequence without its first item. When the items run out, the
// tail term is returned as is (the empty sequence if closed).
func (s *Seq) Rest() Term {
	if len(s.Items) == 0 {
		panic("(*Seq).Rest: no items")
	}
	return NewIncompleteSeq(s.Items[1:], s.Tail)
}

// ---- Predicates

// IsVar returns whether t is a variable.
func IsVar(t Term) bool {
	_, ok := t.(*Var)
	return ok
}

// IsSeq returns whether t is a sequence.
func IsSeq(t Term) bool {
	_, ok := t.(*Seq)
	return ok
}

// IsAtomic returns whether t is neither a variable nor a sequence.
func IsAtomic(t Term) bool {
	switch t.(type) {
	case Number, String, Bool, Opaque:
		return true
	}
	return false
}

// ---- vars()

// Vars returns a set with all term variables, in insertion order.
func Vars(terms ...Term) []*Var {
	var xs []*Var
	seen := make(map[*Var]struct{})
	for _, t := range terms {
		xs = t.vars(seen, xs)
	}
	return xs
}

func (t Number) vars(seen map[*Var]struct{}, xs []*Var) []*Var { return xs }
func (t String) vars(seen map[*Var]struct{}, xs []*Var) []*Var { return xs }
func (t Bool) vars(seen map[*Var]struct{}, xs []*Var) []*Var   { return xs }
func (t Opaque) vars(seen map[*Var]struct{}, xs []*Var) []*Var { return xs }

func (t *Var) vars(seen map[*Var]struct{}, xs []*Var) []*Var {
	if _, ok := seen[t]; ok {
		return xs
	}
	seen[t] = struct{}{}
	return append(xs, t)
}

func (t *Seq) vars(seen map[*Var]struct{}, xs []*Var) []*Var {
	for _, item := range t.Items {
		xs = item.vars(seen, xs)
	}
	if t.Tail != nil {
		xs = t.Tail.vars(seen, xs)
	}
	return xs
}

// ---- Comparisons

func termOrder(t Term) int {
	switch t.(type) {
	case *Var:
		return 1
	case Bool:
		return 2
	case Number:
		return 3
	case String:
		return 4
	case Opaque:
		return 5
	case *Seq:
		return 6
	default:
		panic(fmt.Sprintf("logic.termOrder: unhandled type %T", t))
	}
}

type ordering int

const (
	less ordering = iota
	equal
	more
)

func compareStrings(s1, s2 string) ordering {
	if s1 < s2 {
		return less
	}
	if s1 > s2 {
		return more
	}
	return equal
}

func compareFloats(a, b float64) ordering {
	if a < b {
		return less
	}
	if a > b {
		return more
	}
	return equal
}

func compareUints(a, b uint64) ordering {
	if a < b {
		return less
	}
	if a > b {
		return more
	}
	return equal
}

func compare(t1, t2 Term) ordering {
	switch u := t1.(type) {
	case Number:
		if v, ok := t2.(Number); ok {
			return compareFloats(u.Value, v.Value)
		}
	case String:
		if v, ok := t2.(String); ok {
			return compareStrings(u.Value, v.Value)
		}
	case Bool:
		if v, ok := t2.(Bool); ok {
			return compareBools(u.Value, v.Value)
		}
	case Opaque:
		if v, ok := t2.(Opaque); ok {
			return compareOpaque(u, v)
		}
	case *Var:
		if v, ok := t2.(*Var); ok {
			return compareUints(u.id, v.id)
		}
	case *Seq:
		if v, ok := t2.(*Seq); ok {
			return u.compare(v)
		}
	default:
		panic(fmt.Sprintf("logic.compare: unhandled type %T", t1))
	}
	return compareFloats(float64(termOrder(t1)), float64(termOrder(t2)))
}

func compareBools(a, b bool) ordering {
	switch {
	case a == b:
		return equal
	case !a:
		return less
	default:
		return more
	}
}

func (s *Seq) compare(other *Seq) ordering {
	n := min(len(s.Items), len(other.Items))
	for i := 0; i < n; i++ {
		if o := compare(s.Items[i], other.Items[i]); o != equal {
			return o
		}
	}
	rest1 := NewIncompleteSeq(s.Items[n:], s.Tail)
	rest2 := NewIncompleteSeq(other.Items[n:], other.Tail)
	r1, ok1 := rest1.(*Seq)
	r2, ok2 := rest2.(*Seq)
	if ok1 && ok2 {
		if r1.IsEmpty() || r2.IsEmpty() {
			return compareFloats(float64(len(r1.Items)), float64(len(r2.Items)))
		}
		return r1.compare(r2)
	}
	return compare(rest1, rest2)
}

func (s *Seq) eq(other *Seq) bool {
	n := min(len(s.Items), len(other.Items))
	for i := 0; i < n; i++ {
		if !Eq(s.Items[i], other.Items[i]) {
			return false
		}
	}
	rest1 := NewIncompleteSeq(s.Items[n:], s.Tail)
	rest2 := NewIncompleteSeq(other.Items[n:], other.Tail)
	r1, ok1 := rest1.(*Seq)
	r2, ok2 := rest2.(*Seq)
	if ok1 && ok2 {
		if r1.IsEmpty() || r2.IsEmpty() {
			return r1.IsEmpty() && r2.IsEmpty()
		}
		return r1.eq(r2)
	}
	return Eq(rest1, rest2)
}

// Less returns the order between t1 and t2, following the standard order of terms.
//
// The order of terms is: Vars < Bools < Numbers < Strings < Opaques < Seqs.
// Vars are ordered by creation, sequences lexicographically.
func Less(t1, t2 Term) bool {
	return compare(t1, t2) == less
}

// Compare returns -1, 0 or 1 if t1 is less than, equal to or greater than t2 in
// the standard order of terms.
func Compare(t1, t2 Term) int {
	switch compare(t1, t2) {
	case less:
		return -1
	case more:
		return 1
	}
	return 0
}

// Eq returns whether t1 and t2 are identical terms.
//
// Note that this only takes into account the structure of terms, not whether
// any binding may make them identical. Vars are only equal to themselves.
func Eq(t1, t2 Term) bool {
	switch u := t1.(type) {
	case *Var:
		return t1 == t2
	case Opaque:
		v, ok := t2.(Opaque)
		return ok && opaqueEqual(u.Value, v.Value)
	case *Seq:
		v, ok := t2.(*Seq)
		return ok && u.eq(v)
	}
	return compare(t1, t2) == equal
}
