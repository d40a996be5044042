package subst

import (
	"github.com/brunokim/relational/logic"
)

// Resolve follows var bindings until reaching a non-var term or an unbound var.
//
// Resolution is shallow: vars within a sequence are not replaced.
func (s *Subst) Resolve(t logic.Term) logic.Term {
	for {
		x, ok := t.(*logic.Var)
		if !ok {
			return t
		}
		bound, ok := s.Get(x)
		if !ok {
			return x
		}
		t = bound
	}
}

// DeepResolve resolves a term and, recursively, all items and tails of sequences
// within it. Unbound vars are kept as they are, and a resolved tail that is itself a
// sequence is flattened into the result.
func (s *Subst) DeepResolve(t logic.Term) logic.Term {
	t = s.Resolve(t)
	seq, ok := t.(*logic.Seq)
	if !ok {
		return t
	}
	items := make([]logic.Term, len(seq.Items))
	for i, item := range seq.Items {
		items[i] = s.DeepResolve(item)
	}
	if seq.Tail == nil {
		return logic.NewSeq(items...)
	}
	return logic.NewIncompleteSeq(items, s.DeepResolve(seq.Tail))
}

// Unify attempts to make x and y equal, returning the extended substitution on
// success. The receiver is never modified.
//
// There is no occurs check: unifying X with [1|X] succeeds with a cyclic binding.
func (s *Subst) Unify(x, y logic.Term) (*Subst, bool) {
	x, y = s.Resolve(x), s.Resolve(y)
	if identical(x, y) {
		return s, true
	}
	if v, ok := x.(*logic.Var); ok {
		return s.Set(v, y), true
	}
	if v, ok := y.(*logic.Var); ok {
		return s.Set(v, x), true
	}
	xs, ok1 := x.(*logic.Seq)
	ys, ok2 := y.(*logic.Seq)
	if ok1 && ok2 {
		return s.unifySeqs(xs, ys)
	}
	return nil, false
}

func identical(x, y logic.Term) bool {
	switch x.(type) {
	case *logic.Var, *logic.Seq:
		return x == y
	}
	return logic.IsAtomic(y) && logic.Eq(x, y)
}

func (s *Subst) unifySeqs(x, y *logic.Seq) (*Subst, bool) {
	// A sequence without items but with a tail stands for the tail itself.
	if len(x.Items) == 0 && x.Tail != nil {
		return s.Unify(x.Tail, y)
	}
	if len(y.Items) == 0 && y.Tail != nil {
		return s.Unify(x, y.Tail)
	}
	if x.IsEmpty() || y.IsEmpty() {
		if x.IsEmpty() && y.IsEmpty() {
			return s, true
		}
		return nil, false
	}
	s, ok := s.Unify(x.Head(), y.Head())
	if !ok {
		return nil, false
	}
	return s.Unify(x.Rest(), y.Rest())
}
