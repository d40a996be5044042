// Package dsl contains shorthand constructors for logic terms, so that tests and
// examples read close to the relations they express.
package dsl

import (
	"github.com/brunokim/relational/logic"
)

func Terms(terms ...logic.Term) []logic.Term {
	return terms
}

func Num(x float64) logic.Number {
	return logic.Number{Value: x}
}

func Str(s string) logic.String {
	return logic.String{Value: s}
}

func Bool(b bool) logic.Bool {
	return logic.Bool{Value: b}
}

func Opaque(v interface{}) logic.Opaque {
	return logic.Opaque{Value: v}
}

func Var(name string) *logic.Var {
	return logic.NewVar(name)
}

// Vars creates one var for each name.
func Vars(names ...string) []*logic.Var {
	xs := make([]*logic.Var, len(names))
	for i, name := range names {
		xs[i] = logic.NewVar(name)
	}
	return xs
}

// ----

func Seq(terms ...logic.Term) logic.Term {
	return logic.NewSeq(terms...)
}

// ISeq returns an incomplete sequence, whose last argument is the tail.
func ISeq(terms ...logic.Term) logic.Term {
	n := len(terms)
	butlast, last := terms[:n-1], terms[n-1]
	return logic.NewIncompleteSeq(butlast, last)
}

// Nums returns a closed sequence of numbers.
func Nums(xs ...float64) logic.Term {
	terms := make([]logic.Term, len(xs))
	for i, x := range xs {
		terms[i] = Num(x)
	}
	return logic.NewSeq(terms...)
}

// Strs returns a closed sequence of strings.
func Strs(ss ...string) logic.Term {
	terms := make([]logic.Term, len(ss))
	for i, s := range ss {
		terms[i] = Str(s)
	}
	return logic.NewSeq(terms...)
}
