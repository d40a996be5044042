package goal

import (
	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/subst"
)

// Arithmetic goals perform mode analysis on their three operands. After resolution:
//
// * with no unbound vars, the identity is checked;
// * with one unbound var, it's solved for if the other operands are numbers;
// * otherwise the goal fails, since there's no constraint propagation.
//
// Non-numeric operands always fail.

// operation describes a commutative binary operation a∘b = c.
type operation struct {
	apply func(a, b float64) float64
	// inverse returns the unknown operand x such that x∘known = c.
	inverse func(c, known float64) (float64, bool)
}

var (
	addition = operation{
		apply: func(a, b float64) float64 { return a + b },
		inverse: func(c, known float64) (float64, bool) {
			return c - known, true
		},
	}
	multiplication = operation{
		apply: func(a, b float64) float64 { return a * b },
		inverse: func(c, known float64) (float64, bool) {
			if known == 0 {
				return 0, false
			}
			return c / known, true
		},
	}
)

// Add relates a + b = c.
func Add(a, b, c logic.Term) Goal {
	return arith(addition, a, b, c)
}

// Sub relates a - b = c, that is, b + c = a.
func Sub(a, b, c logic.Term) Goal {
	return Add(b, c, a)
}

// Mul relates a * b = c.
func Mul(a, b, c logic.Term) Goal {
	return arith(multiplication, a, b, c)
}

// Div relates a / b = c, that is, b * c = a.
func Div(a, b, c logic.Term) Goal {
	return Mul(b, c, a)
}

func arith(op operation, a, b, c logic.Term) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return lazy(func() Outcome { return op.solve(s, a, b, c) })
	}
}

func (op operation) solve(s *subst.Subst, a, b, c logic.Term) Outcome {
	a, b, c = s.Resolve(a), s.Resolve(b), s.Resolve(c)
	numVars := 0
	for _, t := range []logic.Term{a, b, c} {
		if logic.IsVar(t) {
			numVars++
		}
	}
	x, xok := a.(logic.Number)
	y, yok := b.(logic.Number)
	z, zok := c.(logic.Number)
	switch {
	case numVars == 0 && xok && yok && zok:
		if op.apply(x.Value, y.Value) == z.Value {
			return Success(s)
		}
	case numVars != 1:
	case yok && zok:
		if v, ok := op.inverse(z.Value, y.Value); ok {
			return unify(s, a, logic.Number{Value: v})
		}
	case xok && zok:
		if v, ok := op.inverse(z.Value, x.Value); ok {
			return unify(s, b, logic.Number{Value: v})
		}
	case xok && yok:
		return unify(s, c, logic.Number{Value: op.apply(x.Value, y.Value)})
	}
	return No
}
