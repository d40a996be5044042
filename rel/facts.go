package rel

import (
	"github.com/brunokim/relational/goal"
	"github.com/brunokim/relational/logic"
)

// Relation builds a goal from its arguments.
type Relation func(args ...logic.Term) goal.Goal

// Facts returns a relation that holds for each of the rows, unified argument by
// argument and enumerated in order. Rows with a different number of terms than
// the arguments never match.
func Facts(rows ...[]logic.Term) Relation {
	return func(args ...logic.Term) goal.Goal {
		clauses := make([]goal.Goal, len(rows))
		for i, row := range rows {
			clauses[i] = matchRow(row, args)
		}
		return goal.Or(clauses...)
	}
}

func matchRow(row, args []logic.Term) goal.Goal {
	if len(row) != len(args) {
		return goal.Fail()
	}
	eqs := make([]goal.Goal, len(row))
	for i, t := range row {
		eqs[i] = goal.Eq(t, args[i])
	}
	return goal.And(eqs...)
}
