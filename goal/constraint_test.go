package goal_test

import (
	"testing"

	"github.com/brunokim/relational/goal"

	"github.com/google/go-cmp/cmp"
)

func TestArithmetic(t *testing.T) {
	x, y := var_("X"), var_("Y")
	tests := []struct {
		desc string
		g    goal.Goal
		want string
	}{
		{"add solve a", goal.Add(x, num(3), num(10)), "X=7"},
		{"add solve b", goal.Add(num(4), x, num(10)), "X=6"},
		{"add solve c", goal.Add(num(4), num(5), x), "X=9"},
		{"add check", goal.Add(num(4), num(5), num(9)), "X=X"},
		{"add check fails", goal.Add(num(4), num(5), num(10)), "no"},
		{"add underdetermined", goal.Add(x, y, num(10)), "no"},
		{"add same var twice", goal.Add(x, x, num(10)), "no"},
		{"add non-number", goal.Add(str("a"), num(1), x), "no"},
		{"add non-number check", goal.Add(str("a"), str("b"), str("ab")), "no"},
		{"add seq", goal.Add(seq(), num(1), x), "no"},
		{"sub solve", goal.Sub(num(10), num(3), x), "X=7"},
		{"sub solve minuend", goal.Sub(x, num(3), num(7)), "X=10"},
		{"mul solve a", goal.Mul(x, num(4), num(12)), "X=3"},
		{"mul solve c", goal.Mul(num(2.5), num(4), x), "X=10"},
		{"mul check", goal.Mul(num(2), num(3), num(6)), "X=X"},
		{"mul by zero", goal.Mul(num(0), x, num(5)), "no"},
		{"mul zero by zero", goal.Mul(x, num(0), num(0)), "no"},
		{"div solve quotient", goal.Div(num(12), num(4), x), "X=3"},
		{"div solve divisor", goal.Div(num(12), x, num(4)), "X=3"},
		{"div solve dividend", goal.Div(x, num(2), num(5)), "X=10"},
		{"div by zero", goal.Div(num(1), num(0), x), "no"},
		{"bound operand", goal.And(goal.Eq(y, num(2)), goal.Add(y, x, num(5))), "X=3"},
		{"bound result", goal.And(goal.Eq(x, num(8)), goal.Add(num(4), num(4), x)), "X=8"},
		{"bound result conflict", goal.And(goal.Eq(x, num(7)), goal.Add(num(4), num(4), x)), "no"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := pull(-1, test.g, x)
			if diff := cmp.Diff([]string{test.want}, got); diff != "" {
				t.Errorf("(-want, +got)%s", diff)
			}
		})
	}
}

func TestOrdering(t *testing.T) {
	x := var_("X")
	tests := []struct {
		desc string
		g    goal.Goal
		want string
	}{
		{"lt numbers", goal.Lt(num(1), num(2)), "X=X"},
		{"lt equal", goal.Lt(num(2), num(2)), "no"},
		{"le equal", goal.Le(num(2), num(2)), "X=X"},
		{"le greater", goal.Le(num(3), num(2)), "no"},
		{"gt numbers", goal.Gt(num(3), num(-1)), "X=X"},
		{"ge equal", goal.Ge(num(0.5), num(0.5)), "X=X"},
		{"ge less", goal.Ge(num(0), num(0.5)), "no"},
		{"lt strings", goal.Lt(str("abc"), str("abd")), "X=X"},
		{"gt strings", goal.Gt(str("b"), str("abc")), "X=X"},
		{"mixed kinds", goal.Lt(num(1), str("2")), "no"},
		{"seqs", goal.Lt(nums(1), nums(2)), "no"},
		{"unbound", goal.Lt(x, num(1)), "no"},
		{"unbound right", goal.Ge(num(1), x), "no"},
		{"bound", goal.And(goal.Eq(x, num(0)), goal.Lt(x, num(1))), "X=0"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := pull(-1, test.g, x)
			if diff := cmp.Diff([]string{test.want}, got); diff != "" {
				t.Errorf("(-want, +got)%s", diff)
			}
		})
	}
}

func TestOrdering_SingleOutcomeWithinOr(t *testing.T) {
	x := var_("X")
	g := goal.And(
		goal.Or(goal.Eq(x, num(1)), goal.Eq(x, num(5)), goal.Eq(x, num(2))),
		goal.Le(x, num(2)))
	got := pull(-1, g, x)
	want := []string{"X=1", "no", "X=2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestTypeTests(t *testing.T) {
	x := var_("X")
	tests := []struct {
		desc string
		g    goal.Goal
		want string
	}{
		{"stringo", goal.Stringo(str("a")), "X=X"},
		{"stringo number", goal.Stringo(num(1)), "no"},
		{"stringo unbound", goal.Stringo(x), "no"},
		{"numbero", goal.Numbero(num(1)), "X=X"},
		{"numbero string", goal.Numbero(str("1")), "no"},
		{"numbero bound", goal.And(goal.Eq(x, num(1)), goal.Numbero(x)), "X=1"},
		{"arrayo", goal.Arrayo(nums(1, 2)), "X=X"},
		{"arrayo empty", goal.Arrayo(seq()), "X=X"},
		{"arrayo incomplete", goal.Arrayo(iseq(num(1), var_("T"))), "X=X"},
		{"arrayo string", goal.Arrayo(str("[]")), "no"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := pull(-1, test.g, x)
			if diff := cmp.Diff([]string{test.want}, got); diff != "" {
				t.Errorf("(-want, +got)%s", diff)
			}
		})
	}
}
