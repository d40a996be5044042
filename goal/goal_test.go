package goal_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brunokim/relational/dsl"
	"github.com/brunokim/relational/goal"
	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/subst"

	"github.com/google/go-cmp/cmp"
)

var (
	iseq = dsl.ISeq
	num  = dsl.Num
	nums = dsl.Nums
	seq  = dsl.Seq
	str  = dsl.Str
	var_ = dsl.Var
)

var (
	and   = goal.And
	eq    = goal.Eq
	fail  = goal.Fail
	not   = goal.Not
	or    = goal.Or
	orN   = goal.OrN
	anyo  = goal.Anyo
	fresh = goal.Fresh
)

// pull returns up to n outcomes of g, or all of them if n < 0, each formatted as
// "no" or as the resolved values of xs.
func pull(n int, g goal.Goal, xs ...*logic.Var) []string {
	outcomes := []string{}
	if n == 0 {
		return outcomes
	}
	for o := range g(goal.NewEnv(), subst.New()) {
		outcomes = append(outcomes, show(o, xs...))
		if len(outcomes) == n {
			break
		}
	}
	return outcomes
}

func show(o goal.Outcome, xs ...*logic.Var) string {
	if o.Failed() {
		return "no"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%v=%v", x, o.Subst.DeepResolve(x))
	}
	return strings.Join(parts, " ")
}

func successes(outcomes []string) []string {
	var ss []string
	for _, o := range outcomes {
		if o != "no" {
			ss = append(ss, o)
		}
	}
	return ss
}

func TestBasicGoals(t *testing.T) {
	x, y := var_("X"), var_("Y")
	tests := []struct {
		desc string
		g    goal.Goal
		want []string
	}{
		{"succeed", goal.Succeed(), []string{"X=X"}},
		{"fail", fail(), []string{"no"}},
		{"eq var", eq(x, num(5)), []string{"X=5"}},
		{"eq atoms", eq(num(1), num(1)), []string{"X=X"}},
		{"eq different atoms", eq(num(1), num(2)), []string{"no"}},
		{"eq seqs", eq(seq(x, num(2)), seq(num(1), y)), []string{"X=1"}},
		{"eq splice", eq(iseq(x, y), nums(1, 2, 3)), []string{"X=1"}},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := pull(-1, test.g, x)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want, +got)%s", diff)
			}
		})
	}
}

func TestAnd(t *testing.T) {
	x := var_("X")
	g := and(
		or(eq(x, num(1)), eq(x, num(2)), eq(x, num(3))),
		or(eq(x, num(2)), eq(x, num(3))))
	got := pull(-1, g, x)
	want := []string{"X=2", "X=3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestAnd_PropagatesFailurePerBranch(t *testing.T) {
	x, y := var_("X"), var_("Y")
	g := and(
		or(eq(x, num(1)), eq(x, num(2))),
		eq(x, num(1)),
		eq(y, x))
	got := pull(-1, g, x, y)
	want := []string{"X=1 Y=1", "no"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestAnd_Empty(t *testing.T) {
	got := pull(-1, and())
	if diff := cmp.Diff([]string{""}, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestAnd_Associativity(t *testing.T) {
	x, y, z := var_("X"), var_("Y"), var_("Z")
	g1 := or(eq(x, num(1)), eq(x, num(2)), eq(x, num(3)))
	g2 := or(eq(y, x), eq(y, num(2)))
	g3 := or(eq(z, y), fail(), eq(z, str("z")))
	g4 := not(eq(x, z))

	want := successes(pull(-1, and(g1, g2, g3, g4), x, y, z))
	if len(want) == 0 {
		t.Fatalf("want some solutions")
	}
	for _, g := range []goal.Goal{
		and(and(g1, g2), g3, g4),
		and(g1, and(g2, and(g3, g4))),
		and(and(and(g1, g2), g3), g4),
		and(and(), g1, and(g2, g3), and(g4)),
	} {
		got := successes(pull(-1, g, x, y, z))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("(-want, +got)%s", diff)
		}
	}
}

func TestOr(t *testing.T) {
	x := var_("X")
	tests := []struct {
		desc string
		g    goal.Goal
		want []string
	}{
		{"empty", or(), []string{}},
		{"only failures", or(fail(), eq(num(1), num(2))), []string{}},
		{"clause order", or(eq(x, num(1)), eq(x, num(2)), eq(x, num(3))), []string{"X=1", "X=2", "X=3"}},
		{"nested", or(or(eq(x, num(1)), eq(x, num(2))), fail(), eq(x, num(3))), []string{"X=1", "X=2", "X=3"}},
		{"no failures", or(fail(), eq(x, num(1)), fail()), []string{"X=1"}},
		{"cap", orN(2, eq(x, num(1)), eq(x, num(2)), eq(x, num(3))), []string{"X=1", "X=2"}},
		{"cap skips failures", orN(2, fail(), eq(x, num(1)), fail(), eq(x, num(2)), eq(x, num(3))), []string{"X=1", "X=2"}},
		{"cap above count", orN(5, eq(x, num(1)), eq(x, num(2))), []string{"X=1", "X=2"}},
		{"zero cap", orN(0, eq(x, num(1)), eq(x, num(2))), []string{"X=1", "X=2"}},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := pull(-1, test.g, x)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want, +got)%s", diff)
			}
		})
	}
}

func TestOrN_CapIsPerInvocation(t *testing.T) {
	x, y := var_("X"), var_("Y")
	first := orN(1, eq(x, num(1)), eq(x, num(2)))

	// Reusing the same goal restarts the count.
	for i := 0; i < 2; i++ {
		got := pull(-1, first, x)
		if diff := cmp.Diff([]string{"X=1"}, got); diff != "" {
			t.Errorf("#%d: (-want, +got)%s", i, diff)
		}
	}
	// Each branch of a conjunction invokes the goal anew.
	g := and(or(eq(y, str("a")), eq(y, str("b"))), first)
	got := pull(-1, g, x, y)
	want := []string{`X=1 Y="a"`, `X=1 Y="b"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestAnyo(t *testing.T) {
	x := var_("X")
	g := anyo(or(eq(x, num(1)), fail(), eq(x, num(2))))
	got := pull(5, g, x)
	want := []string{"X=1", "X=2", "X=1", "X=2", "X=1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestNot(t *testing.T) {
	x := var_("X")
	tests := []struct {
		desc string
		g    goal.Goal
		want []string
	}{
		{"different", not(eq(num(1), num(2))), []string{"X=X"}},
		{"equal", not(eq(num(1), num(1))), []string{"no"}},
		{"fail", not(fail()), []string{"X=X"}},
		{"some success", not(or(fail(), eq(x, num(1)))), []string{"no"}},
		{"keeps input", and(eq(x, num(3)), not(eq(x, num(4)))), []string{"X=3"}},
		{"infinite goal", not(anyo(goal.Succeed())), []string{"no"}},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := pull(-1, test.g, x)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want, +got)%s", diff)
			}
		})
	}
}

func TestDefer_IsLazy(t *testing.T) {
	var calls int
	g := goal.Defer(func(env *goal.Env) goal.Goal {
		calls++
		return goal.Succeed()
	})
	stream := and(fail(), g)(goal.NewEnv(), subst.New())
	if calls != 0 {
		t.Errorf("goal was built before pulling")
	}
	for range stream {
	}
	if calls != 0 {
		t.Errorf("goal was built after a failure: %d calls", calls)
	}
	for range or(g, g)(goal.NewEnv(), subst.New()) {
	}
	if calls != 2 {
		t.Errorf("want one build per invocation, got %d", calls)
	}
}

func TestFresh(t *testing.T) {
	x := var_("X")
	var names []string
	g := fresh(func(y *logic.Var) goal.Goal {
		names = append(names, y.Name)
		return goal.Fresh2(func(a, b *logic.Var) goal.Goal {
			names = append(names, a.Name, b.Name)
			return and(eq(a, num(1)), eq(b, a), eq(y, seq(a, b)), eq(x, y))
		})
	})
	env := goal.NewEnv()
	var got []string
	for o := range or(g, g)(env, subst.New()) {
		got = append(got, show(o, x))
	}
	if diff := cmp.Diff([]string{"X=[1, 1]", "X=[1, 1]"}, got); diff != "" {
		t.Errorf("solutions: (-want, +got)%s", diff)
	}
	wantNames := []string{"~.0", "~.1", "~.2", "~.3", "~.4", "~.5"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("names: (-want, +got)%s", diff)
	}
	if env.VarCount() != 6 {
		t.Errorf("env.VarCount() = %d", env.VarCount())
	}
}

func TestFresh3(t *testing.T) {
	x := var_("X")
	g := goal.Fresh3(func(a, b, c *logic.Var) goal.Goal {
		return and(eq(seq(a, b, c), nums(1, 2, 3)), eq(x, seq(c, b, a)))
	})
	got := pull(-1, g, x)
	if diff := cmp.Diff([]string{"X=[3, 2, 1]"}, got); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func ExampleOr() {
	x := logic.NewVar("X")
	g := goal.Or(
		goal.Eq(x, logic.String{Value: "a"}),
		goal.Fail(),
		goal.Eq(x, logic.String{Value: "b"}))
	for o := range g(goal.NewEnv(), subst.New()) {
		fmt.Println(o)
	}
	// Output:
	// {X: "a"}
	// {X: "b"}
}

func ExampleAnd() {
	x := logic.NewVar("X")
	g := goal.And(
		goal.Or(goal.Eq(x, logic.Number{Value: 1}), goal.Eq(x, logic.Number{Value: 2})),
		goal.Not(goal.Eq(x, logic.Number{Value: 1})))
	for o := range g(goal.NewEnv(), subst.New()) {
		fmt.Println(o)
	}
	// Output:
	// no
	// {X: 2}
}
