package parser

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/brunokim/relational/errors"
	"github.com/brunokim/relational/goal"
	"github.com/brunokim/relational/logic"
	"github.com/brunokim/relational/rel"
)

// builtin describes how a call to a predefined goal is decoded.
type builtin struct {
	// minArity and maxArity bound the number of arguments. A negative maxArity means
	// there's no upper bound.
	minArity, maxArity int
	decode             func(r *Registry, args []Expr) goal.Goal
}

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"succeed": {0, 0, func(r *Registry, args []Expr) goal.Goal { return goal.Succeed() }},
		"fail":    {0, 0, func(r *Registry, args []Expr) goal.Goal { return goal.Fail() }},
		"eq":      terms2(goal.Eq),
		"and": {0, -1, func(r *Registry, args []Expr) goal.Goal {
			return goal.And(r.decodeGoals(args)...)
		}},
		"or":   {0, -1, decodeOr},
		"anyo": {1, 1, func(r *Registry, args []Expr) goal.Goal { return goal.Anyo(r.decodeGoal(args[0])) }},
		"not":  {1, 1, func(r *Registry, args []Expr) goal.Goal { return goal.Not(r.decodeGoal(args[0])) }},
		// Constraints
		"add":     terms3(goal.Add),
		"sub":     terms3(goal.Sub),
		"mul":     terms3(goal.Mul),
		"div":     terms3(goal.Div),
		"lt":      terms2(goal.Lt),
		"le":      terms2(goal.Le),
		"gt":      terms2(goal.Gt),
		"ge":      terms2(goal.Ge),
		"stringo": terms1(goal.Stringo),
		"numbero": terms1(goal.Numbero),
		"arrayo":  terms1(goal.Arrayo),
		// Lists
		"conso":   terms3(rel.Conso),
		"firsto":  terms2(rel.Firsto),
		"resto":   terms2(rel.Resto),
		"emptyo":  terms1(rel.Emptyo),
		"membero": terms2(rel.Membero),
		"appendo": terms3(rel.Appendo),
	}
}

func terms1(f func(x logic.Term) goal.Goal) builtin {
	return builtin{1, 1, func(r *Registry, args []Expr) goal.Goal {
		return f(expectTerm(args[0]))
	}}
}

func terms2(f func(x, y logic.Term) goal.Goal) builtin {
	return builtin{2, 2, func(r *Registry, args []Expr) goal.Goal {
		return f(expectTerm(args[0]), expectTerm(args[1]))
	}}
}

func terms3(f func(x, y, z logic.Term) goal.Goal) builtin {
	return builtin{3, 3, func(r *Registry, args []Expr) goal.Goal {
		return f(expectTerm(args[0]), expectTerm(args[1]), expectTerm(args[2]))
	}}
}

// decodeOr accepts an optional leading integer, the maximum number of solutions.
func decodeOr(r *Registry, args []Expr) goal.Goal {
	if len(args) == 0 {
		return goal.Or()
	}
	n, ok := args[0].(logic.Number)
	if !ok {
		return goal.Or(r.decodeGoals(args)...)
	}
	if n.Value < 0 || n.Value != math.Trunc(n.Value) || n.Value > math.MaxInt32 {
		panic(errors.New("expected non-negative integer as solution cap, got %v", n))
	}
	return goal.OrN(int(n.Value), r.decodeGoals(args[1:])...)
}

// ---- Registry

type factTable struct {
	arity int
	rows  [][]logic.Term
}

// Registry decodes parsed queries into goals. Besides the builtin goals and
// relations, it knows about the fact tables added to it.
//
// A Registry is not safe for concurrent modification.
type Registry struct {
	tables map[string]*factTable
}

// NewRegistry returns a registry containing only builtins.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*factTable)}
}

// AddFacts adds rows to the fact table with the given name, creating it if needed.
// All rows within a table must have the same arity. If any row doesn't, no row is
// added.
func (r *Registry) AddFacts(name string, rows ...[]logic.Term) error {
	if _, ok := builtins[name]; ok {
		return errors.New("%s: can't redefine builtin", name)
	}
	if !logic.IsAtomName(name) {
		return errors.New("%q: invalid relation name", name)
	}
	if len(rows) == 0 {
		return nil
	}
	table, ok := r.tables[name]
	arity := len(rows[0])
	if ok {
		arity = table.arity
	}
	for i, row := range rows {
		if len(row) != arity {
			return errors.New("%s/%d: row #%d has %d terms", name, arity, i, len(row))
		}
	}
	if !ok {
		table = &factTable{arity: arity}
		r.tables[name] = table
	}
	table.rows = append(table.rows, rows...)
	return nil
}

// Relations returns the name/arity of every fact table, sorted.
func (r *Registry) Relations() []string {
	var names []string
	for name, table := range r.tables {
		names = append(names, fmt.Sprintf("%s/%d", name, table.arity))
	}
	sort.Strings(names)
	return names
}

// Decode returns the goal of a query: the conjunction of all its calls.
func (r *Registry) Decode(q *Query) (g goal.Goal, err error) {
	defer func() {
		if p := recover(); p != nil {
			derr, ok := p.(decodeError)
			if !ok {
				panic(p)
			}
			err = derr.error
		}
	}()
	goals := make([]goal.Goal, len(q.Calls))
	for i, c := range q.Calls {
		goals[i] = r.decodeCall(c)
	}
	if len(goals) == 1 {
		return goals[0], nil
	}
	return goal.And(goals...), nil
}

// Compile parses a single query and decodes it into a goal.
func (r *Registry) Compile(text string) (*Query, goal.Goal, error) {
	q, err := Parse(text)
	if err != nil {
		return nil, nil, err
	}
	g, err := r.Decode(q)
	if err != nil {
		return nil, nil, err
	}
	return q, g, nil
}

// decodeError is an error raised while decoding, annotated with the innermost call
// that caused it.
type decodeError struct {
	error
}

// ---- decode functions

func (r *Registry) decodeCall(c *Call) goal.Goal {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(decodeError); ok {
			panic(p)
		}
		if _, ok := p.(runtime.Error); ok {
			panic(p)
		}
		err, ok := p.(error)
		if !ok {
			panic(p)
		}
		if c.Pos == (Pos{}) {
			// Bare identifier without position, let the enclosing call annotate it.
			panic(errors.New("%s/%d: %v", c.Name, len(c.Args), err))
		}
		panic(decodeError{errors.New("%v: %s/%d: %v", c.Pos, c.Name, len(c.Args), err)})
	}()
	if b, ok := builtins[c.Name]; ok {
		n := len(c.Args)
		if n < b.minArity || (b.maxArity >= 0 && n > b.maxArity) {
			panic(errors.New("expected %s arguments", arityRange(b.minArity, b.maxArity)))
		}
		return b.decode(r, c.Args)
	}
	table, ok := r.tables[c.Name]
	if !ok {
		panic(errors.New("unknown relation"))
	}
	if len(c.Args) != table.arity {
		panic(errors.New("expected %d arguments", table.arity))
	}
	args := make([]logic.Term, len(c.Args))
	for i, arg := range c.Args {
		args[i] = expectTerm(arg)
	}
	return rel.Facts(table.rows...)(args...)
}

func arityRange(lo, hi int) string {
	switch {
	case lo == hi:
		return fmt.Sprintf("%d", lo)
	case hi < 0:
		return fmt.Sprintf("at least %d", lo)
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}

// decodeGoal accepts calls, bare identifiers as calls without arguments, and the
// booleans true and false as succeed and fail.
func (r *Registry) decodeGoal(arg Expr) goal.Goal {
	switch a := arg.(type) {
	case *Call:
		return r.decodeCall(a)
	case logic.Bool:
		if a.Value {
			return goal.Succeed()
		}
		return goal.Fail()
	case logic.String:
		if logic.IsAtomName(a.Value) {
			return r.decodeCall(&Call{Name: a.Value})
		}
	}
	panic(errors.New("expected goal, got %v", arg))
}

func (r *Registry) decodeGoals(args []Expr) []goal.Goal {
	goals := make([]goal.Goal, len(args))
	for i, arg := range args {
		goals[i] = r.decodeGoal(arg)
	}
	return goals
}

// ---- expect

func expectTerm(arg Expr) logic.Term {
	if c, ok := arg.(*Call); ok {
		panic(errors.New("expected term, got call %v", c))
	}
	return arg.(logic.Term)
}
