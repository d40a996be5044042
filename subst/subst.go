// Package subst implements substitutions, immutable associations from logic
// variables to terms, and the unification algorithm that extends them.
//
// A substitution is a persistent red-black tree ordered by variable creation. Every
// update copies only the path from the root to the changed node, so all previous
// versions stay valid and share the untouched subtrees. The nil *Subst is the empty
// substitution.
//
// Learn more in "Purely Functional Data Structures", Chris Okasaki.
package subst

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/brunokim/relational/logic"
)

type color uint8

const (
	red color = iota
	black
)

// Subst is a persistent mapping from variables to terms.
type Subst struct {
	color       color
	left, right *Subst
	binding
}

type binding struct {
	x    *logic.Var
	term logic.Term
}

// Binding is a single association within a substitution.
type Binding struct {
	Var  *logic.Var
	Term logic.Term
}

// New returns the empty substitution.
func New() *Subst {
	return nil
}

// Get returns the term bound to x, if any.
func (s *Subst) Get(x *logic.Var) (logic.Term, bool) {
	node := s
	for node != nil {
		switch {
		case x.ID() < node.x.ID():
			node = node.left
		case x.ID() > node.x.ID():
			node = node.right
		default:
			return node.term, true
		}
	}
	return nil, false
}

// Set returns a new substitution where x is bound to term. If x was already bound,
// the previous binding is replaced. The receiver is not modified.
func (s *Subst) Set(x *logic.Var, term logic.Term) *Subst {
	ret := *s.insert(x, term)
	ret.color = black
	return &ret
}

func (s *Subst) insert(x *logic.Var, term logic.Term) *Subst {
	if s == nil {
		return &Subst{color: red, binding: binding{x: x, term: term}}
	}
	switch {
	case x.ID() < s.x.ID():
		ret := *s
		ret.left = s.left.insert(x, term)
		ret.balance()
		return &ret
	case x.ID() > s.x.ID():
		ret := *s
		ret.right = s.right.insert(x, term)
		ret.balance()
		return &ret
	default:
		ret := *s
		ret.binding = binding{x: x, term: term}
		return &ret
	}
}

// balance fixes a black node with a red child that has a red child of its own,
// rotating the four possible configurations into a red node with two black
// children.
func (s *Subst) balance() {
	if s.color != black {
		return
	}
	var (
		a, b, c, d *Subst
		x, y, z    binding
	)
	switch {
	case isRed(s.left) && isRed(s.left.left):
		a = s.left.left.left
		b = s.left.left.right
		c = s.left.right
		d = s.right
		x = s.left.left.binding
		y = s.left.binding
		z = s.binding
	case isRed(s.left) && isRed(s.left.right):
		a = s.left.left
		b = s.left.right.left
		c = s.left.right.right
		d = s.right
		x = s.left.binding
		y = s.left.right.binding
		z = s.binding
	case isRed(s.right) && isRed(s.right.left):
		a = s.left
		b = s.right.left.left
		c = s.right.left.right
		d = s.right.right
		x = s.binding
		y = s.right.left.binding
		z = s.right.binding
	case isRed(s.right) && isRed(s.right.right):
		a = s.left
		b = s.right.left
		c = s.right.right.left
		d = s.right.right.right
		x = s.binding
		y = s.right.binding
		z = s.right.right.binding
	default:
		return
	}
	*s = Subst{
		color:   red,
		left:    &Subst{color: black, left: a, right: b, binding: x},
		right:   &Subst{color: black, left: c, right: d, binding: z},
		binding: y,
	}
}

func isRed(s *Subst) bool {
	return s != nil && s.color == red
}

// Len returns the number of bindings.
func (s *Subst) Len() int {
	if s == nil {
		return 0
	}
	return 1 + s.left.Len() + s.right.Len()
}

// All iterates over the bindings in variable creation order.
func (s *Subst) All() iter.Seq2[*logic.Var, logic.Term] {
	return func(yield func(*logic.Var, logic.Term) bool) {
		s.walk(yield)
	}
}

func (s *Subst) walk(yield func(*logic.Var, logic.Term) bool) bool {
	if s == nil {
		return true
	}
	return s.left.walk(yield) && yield(s.x, s.term) && s.right.walk(yield)
}

// Bindings returns all bindings in variable creation order.
func (s *Subst) Bindings() []Binding {
	var bs []Binding
	for x, term := range s.All() {
		bs = append(bs, Binding{x, term})
	}
	return bs
}

func (s *Subst) String() string {
	var parts []string
	for x, term := range s.All() {
		parts = append(parts, fmt.Sprintf("%v: %v", x, term))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// MarshalJSON encodes a substitution as a list of {"var", "term"} objects, with
// terms in their textual form.
func (s *Subst) MarshalJSON() ([]byte, error) {
	type entry struct {
		Var  string `json:"var"`
		Term string `json:"term"`
	}
	entries := []entry{}
	for x, term := range s.All() {
		entries = append(entries, entry{x.String(), term.String()})
	}
	return json.Marshal(entries)
}
