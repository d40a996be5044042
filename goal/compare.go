package goal

import (
	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/subst"
)

// Ordering goals yield a single outcome: the input substitution if the relation
// holds, or "no". Both sides must resolve to numbers, or both to strings.

// Lt relates x < y.
func Lt(x, y logic.Term) Goal {
	return ordering(x, y, func(cmp int) bool { return cmp < 0 })
}

// Le relates x <= y.
func Le(x, y logic.Term) Goal {
	return ordering(x, y, func(cmp int) bool { return cmp <= 0 })
}

// Gt relates x > y.
func Gt(x, y logic.Term) Goal {
	return Lt(y, x)
}

// Ge relates x >= y.
func Ge(x, y logic.Term) Goal {
	return Le(y, x)
}

func ordering(x, y logic.Term, holds func(cmp int) bool) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return lazy(func() Outcome {
			x, y := s.Resolve(x), s.Resolve(y)
			if !sameKind(x, y) || !holds(logic.Compare(x, y)) {
				return No
			}
			return Success(s)
		})
	}
}

func sameKind(x, y logic.Term) bool {
	switch x.(type) {
	case logic.Number:
		_, ok := y.(logic.Number)
		return ok
	case logic.String:
		_, ok := y.(logic.String)
		return ok
	}
	return false
}
