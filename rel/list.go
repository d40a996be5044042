// Package rel contains relations derived from the basic goals, like the relational
// list vocabulary and fact tables.
//
// Relations here only use the public goal API, and are good examples of how to
// write new ones.
package rel

import (
	"github.com/brunokim/relational/goal"
	"github.com/brunokim/relational/logic"
)

// Conso relates a sequence out with its first element and the rest.
func Conso(first, rest, out logic.Term) goal.Goal {
	return goal.Eq(logic.NewIncompleteSeq([]logic.Term{first}, rest), out)
}

// Firsto relates a non-empty sequence out with its first element.
func Firsto(first, out logic.Term) goal.Goal {
	return goal.Fresh(func(rest *logic.Var) goal.Goal {
		return Conso(first, rest, out)
	})
}

// Resto relates a non-empty sequence out with the sequence after its first element.
func Resto(rest, out logic.Term) goal.Goal {
	return goal.Fresh(func(first *logic.Var) goal.Goal {
		return Conso(first, rest, out)
	})
}

// Emptyo holds if x is the empty sequence.
func Emptyo(x logic.Term) goal.Goal {
	return goal.Eq(x, logic.EmptySeq)
}

// Membero relates x with every element of seq, in order.
//
// If seq is incomplete, there are infinitely many solutions.
func Membero(x, seq logic.Term) goal.Goal {
	return goal.Or(
		Firsto(x, seq),
		goal.Fresh(func(rest *logic.Var) goal.Goal {
			return goal.And(
				Resto(rest, seq),
				Membero(x, rest))
		}))
}

// Appendo relates out with the concatenation of xs and ys.
//
// With out bound and xs, ys free, it enumerates every split of out, starting with
// an empty xs.
func Appendo(xs, ys, out logic.Term) goal.Goal {
	return goal.Or(
		goal.And(
			Emptyo(xs),
			goal.Eq(ys, out)),
		goal.Fresh3(func(first, rest, rec *logic.Var) goal.Goal {
			return goal.And(
				Conso(first, rest, xs),
				Conso(first, rec, out),
				Appendo(rest, ys, rec))
		}))
}
