// Package goal implements goals, the building blocks of relational programs, and the
// combinators that compose them.
//
// A goal takes a substitution and returns a lazy stream of outcomes. Each outcome is
// either an extended substitution, meaning the goal holds under it, or the "no"
// token, signaling that one derivation branch failed. A stream ending is not a
// failure signal by itself: it only means there are no more outcomes.
//
// Streams are pulled strictly on demand, with Go's range-over-func iterators.
// Abandoning a stream (breaking out of the range loop) is the only cancellation
// mechanism, and nothing needs to be released.
package goal

import (
	"iter"

	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/subst"
)

// ---- Outcomes

// Outcome is a single element of a stream: a successful substitution or "no".
type Outcome struct {
	Subst *subst.Subst
	ok    bool
}

// No is the outcome of a failed derivation branch.
var No = Outcome{}

// Success returns a successful outcome with the given substitution.
func Success(s *subst.Subst) Outcome {
	return Outcome{Subst: s, ok: true}
}

// Failed returns whether this outcome is the "no" token.
func (o Outcome) Failed() bool {
	return !o.ok
}

func (o Outcome) String() string {
	if !o.ok {
		return "no"
	}
	return o.Subst.String()
}

// Stream is a lazy sequence of outcomes.
type Stream = iter.Seq[Outcome]

// Goal maps a substitution to the stream of outcomes where the goal holds.
//
// Goals are stateless and may be invoked any number of times, with any
// substitution. The env provides query-scoped resources, like fresh variables.
type Goal func(env *Env, s *subst.Subst) Stream

// ---- Env

// Env holds the resources shared by all goals within a single query.
//
// An Env is not safe for concurrent use. Concurrent queries must use separate envs.
type Env struct {
	gen *logic.VarGen
}

// NewEnv returns an env with its own variable generator.
func NewEnv() *Env {
	return &Env{gen: new(logic.VarGen)}
}

// Fresh returns a new anonymous variable, tagged in creation order within this env.
func (env *Env) Fresh() *logic.Var {
	return env.gen.Fresh()
}

// VarCount returns how many fresh variables were created within this env.
func (env *Env) VarCount() int {
	return env.gen.Count()
}

// ---- Basic goals

// lazy returns a stream whose single outcome is computed by f when pulled.
func lazy(f func() Outcome) Stream {
	return func(yield func(Outcome) bool) {
		yield(f())
	}
}

// Succeed returns a goal that yields its input substitution once.
func Succeed() Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return lazy(func() Outcome { return Success(s) })
	}
}

// Fail returns a goal that yields a single "no".
func Fail() Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return lazy(func() Outcome { return No })
	}
}

func unify(s *subst.Subst, x, y logic.Term) Outcome {
	s, ok := s.Unify(x, y)
	if !ok {
		return No
	}
	return Success(s)
}

// Eq returns a goal that unifies x and y, yielding exactly one outcome.
func Eq(x, y logic.Term) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return lazy(func() Outcome { return unify(s, x, y) })
	}
}

// ---- Combinators

// And returns the conjunction of clauses, searched depth-first from left to right.
//
// Each success of a clause seeds the next one. A "no" from any clause is propagated
// once for that branch, and the search continues with the remaining outcomes. The
// empty conjunction succeeds once.
func And(clauses ...Goal) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return func(yield func(Outcome) bool) {
			and(env, s, clauses, yield)
		}
	}
}

func and(env *Env, s *subst.Subst, clauses []Goal, yield func(Outcome) bool) bool {
	if len(clauses) == 0 {
		return yield(Success(s))
	}
	for o := range clauses[0](env, s) {
		if o.Failed() {
			if !yield(o) {
				return false
			}
			continue
		}
		if !and(env, o.Subst, clauses[1:], yield) {
			return false
		}
	}
	return true
}

// Or returns the disjunction of clauses. All successes of a clause are yielded
// before moving on to the next one, so an infinite clause starves the ones after it.
// Failures are not propagated.
func Or(clauses ...Goal) Goal {
	return OrN(0, clauses...)
}

// OrN is like Or, but stops after yielding k successes in total. If k <= 0 there is
// no limit.
//
// The count restarts every time the goal is invoked.
func OrN(k int, clauses ...Goal) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return func(yield func(Outcome) bool) {
			var n int
			for _, clause := range clauses {
				for o := range clause(env, s) {
					if o.Failed() {
						continue
					}
					if !yield(o) {
						return
					}
					n++
					if k > 0 && n >= k {
						return
					}
				}
			}
		}
	}
}

// Anyo returns a goal that yields all successes of g, then tries g again, forever.
// It behaves as Or(g, Anyo(g)).
//
// If g never succeeds, pulling the next outcome never returns.
func Anyo(g Goal) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return func(yield func(Outcome) bool) {
			for {
				for o := range g(env, s) {
					if o.Failed() {
						continue
					}
					if !yield(o) {
						return
					}
				}
			}
		}
	}
}

// Not implements negation as failure. If g has any success, it yields a single
// "no"; otherwise it yields the input substitution unchanged.
//
// This is only sound if g is ground, that is, if no binding of its free variables
// could change its result. This is not checked.
func Not(g Goal) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return func(yield func(Outcome) bool) {
			for o := range g(env, s) {
				if !o.Failed() {
					yield(No)
					return
				}
			}
			yield(Success(s))
		}
	}
}

// ---- Builders

// Defer returns a goal that calls build each time it's pulled, and then runs the
// resulting goal. Use it for recursive relations and to create fresh variables.
func Defer(build func(env *Env) Goal) Goal {
	return func(env *Env, s *subst.Subst) Stream {
		return func(yield func(Outcome) bool) {
			for o := range build(env)(env, s) {
				if !yield(o) {
					return
				}
			}
		}
	}
}

// Fresh returns a goal built with a new variable on each invocation.
func Fresh(f func(x *logic.Var) Goal) Goal {
	return Defer(func(env *Env) Goal {
		return f(env.Fresh())
	})
}

// Fresh2 is like Fresh, with two variables.
func Fresh2(f func(x, y *logic.Var) Goal) Goal {
	return Defer(func(env *Env) Goal {
		return f(env.Fresh(), env.Fresh())
	})
}

// Fresh3 is like Fresh, with three variables.
func Fresh3(f func(x, y, z *logic.Var) Goal) Goal {
	return Defer(func(env *Env) Goal {
		return f(env.Fresh(), env.Fresh(), env.Fresh())
	})
}
