package goal

import (
	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/subst"
)

// Stringo holds if x resolves to a string.
func Stringo(x logic.Term) Goal {
	return typeTest(x, func(t logic.Term) bool {
		_, ok := t.(logic.String)
		return ok
	})
}

// Numbero holds if x resolves to a number.
func Numbero(x logic.Term) Goal {
	return typeTest(x, func(t logic.Term) bool {
		_, ok := t.(logic.Number)
		return ok
	})
}

// Arrayo holds if x resolves to a sequence, even an incomplete one.
func Arrayo(x logic.Term) Goal {
	return typeTest(x, logic.IsSeq)
}

func typeTest(x logic.Term, test func(t logic.Term) bool) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return lazy(func() Outcome {
			if !test(s.Resolve(x)) {
				return No
			}
			return Success(s)
		})
	}
}
