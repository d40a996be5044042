// Package parser reads queries written in a small textual language, and decodes
// them into goals.
//
// A query is a comma-separated conjunction of calls, optionally ending with a dot:
//
//	membero(X, [1, 2, 3]), gt(X, 1).
//
// Call arguments are terms or nested calls, for combinators like and/or/not. Terms
// are written as:
//
//   - numbers: 1, -2.5, 1e3;
//   - strings: "double quoted", with Go escapes; lowercase identifiers like abc are
//     also strings;
//   - booleans: true and false;
//   - variables: identifiers starting with an uppercase letter or underscore. Each
//     "_" is a distinct anonymous variable;
//   - sequences: [1, 2, 3], or with a tail as [1, 2|Rest].
//
// Text from '%' until the end of the line is a comment. The input is normalized to
// Unicode NFC before parsing.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brunokim/relational/errors"
	"github.com/brunokim/relational/logic"

	"golang.org/x/text/unicode/norm"
)

// Expr is an argument of a call: either a logic.Term or a nested *Call.
type Expr interface {
	fmt.Stringer
}

// Call is a goal invocation, like membero(X, [1, 2]).
type Call struct {
	Name string
	Args []Expr
	Pos  Pos
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// Query is a conjunction of calls.
type Query struct {
	Calls []*Call
	// Vars are the named vars within the query, in order of first appearance.
	// Anonymous vars are not included.
	Vars []*logic.Var
}

func (q *Query) String() string {
	calls := make([]string, len(q.Calls))
	for i, c := range q.Calls {
		calls[i] = c.String()
	}
	return strings.Join(calls, ", ") + "."
}

// ---- parse functions

// Parse parses a single query.
func Parse(text string) (*Query, error) {
	queries, err := ParseAll(text)
	if err != nil {
		return nil, err
	}
	if len(queries) != 1 {
		return nil, errors.New("expected a single query, got %d", len(queries))
	}
	return queries[0], nil
}

// ParseAll parses a sequence of queries, each ending with a dot. The dot after the
// last query is optional. Vars are scoped to each query.
func ParseAll(text string) (queries []*Query, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asError(r)
		}
	}()
	p := newParser(text)
	for p.tok.kind != eofToken {
		queries = append(queries, p.query())
	}
	if len(queries) == 0 {
		return nil, errors.New("empty query")
	}
	return queries, nil
}

// ParseTerm parses a single term. Vars with the same name are the same var.
func ParseTerm(text string) (t logic.Term, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asError(r)
		}
	}()
	p := newParser(text)
	t = p.term()
	p.expectKind(eofToken)
	return t, nil
}

func asError(r interface{}) error {
	if err, ok := r.(parseError); ok {
		return err.error
	}
	panic(r)
}

// parseError wraps errors raised while parsing, to tell them apart from other panics.
type parseError struct {
	error
}

// ---- parser

type parser struct {
	lex  *lexer
	tok  token
	vars map[string]*logic.Var
	// order contains the named vars in order of first appearance.
	order []*logic.Var
}

func newParser(text string) *parser {
	p := &parser{lex: newLexer(norm.NFC.String(text))}
	p.resetVars()
	p.advance()
	return p
}

func (p *parser) resetVars() {
	p.vars = make(map[string]*logic.Var)
	p.order = nil
}

func (p *parser) advance() {
	tok, err := p.lex.next()
	if err != nil {
		panic(parseError{err})
	}
	p.tok = tok
}

func (p *parser) fail(msg string, args ...interface{}) {
	panic(parseError{errors.New("%v: %s, got %v", p.tok.pos, fmt.Sprintf(msg, args...), p.tok)})
}

func (p *parser) is(punct string) bool {
	return p.tok.kind == punctToken && p.tok.text == punct
}

func (p *parser) expect(punct string) {
	if !p.is(punct) {
		p.fail("expected %q", punct)
	}
	p.advance()
}

func (p *parser) expectKind(kind tokenKind) token {
	tok := p.tok
	if tok.kind != kind {
		p.fail("expected %v", kind)
	}
	if kind != eofToken {
		p.advance()
	}
	return tok
}

// query := goal ("," goal)* ("." | EOF)
func (p *parser) query() *Query {
	p.resetVars()
	q := new(Query)
	for {
		q.Calls = append(q.Calls, p.goal())
		if !p.is(",") {
			break
		}
		p.advance()
	}
	if p.is(".") {
		p.advance()
	} else if p.tok.kind != eofToken {
		p.fail("expected \",\" or \".\"")
	}
	q.Vars = p.order
	return q
}

// goal := ident ["(" args ")"]
func (p *parser) goal() *Call {
	tok := p.expectKind(identToken)
	c := &Call{Name: tok.text, Pos: tok.pos}
	if p.is("(") {
		c.Args = p.args("(", ")")
	}
	return c
}

// args := begin [expr ("," expr)* [","]] end
func (p *parser) args(begin, end string) []Expr {
	p.expect(begin)
	args := []Expr{}
	for !p.is(end) {
		args = append(args, p.expr())
		if !p.is(",") {
			break
		}
		p.advance()
	}
	p.expect(end)
	return args
}

// expr := goal | term
func (p *parser) expr() Expr {
	if p.tok.kind != identToken {
		return p.term()
	}
	tok := p.tok
	p.advance()
	if p.is("(") {
		return &Call{Name: tok.text, Args: p.args("(", ")"), Pos: tok.pos}
	}
	return atom(tok.text)
}

// term := number | string | ident | var | seq
func (p *parser) term() logic.Term {
	tok := p.tok
	switch tok.kind {
	case numberToken:
		p.advance()
		x, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			panic(parseError{errors.New("%v: invalid number %s: %v", tok.pos, tok.text, err)})
		}
		return logic.Number{Value: x}
	case stringToken:
		p.advance()
		s, err := strconv.Unquote(tok.text)
		if err != nil {
			panic(parseError{errors.New("%v: invalid string %s: %v", tok.pos, tok.text, err)})
		}
		return logic.String{Value: norm.NFC.String(s)}
	case identToken:
		p.advance()
		if p.is("(") {
			panic(parseError{errors.New("%v: calls are not terms: %s(...)", tok.pos, tok.text)})
		}
		return atom(tok.text)
	case varToken:
		p.advance()
		return p.variable(tok.text)
	}
	if p.is("[") {
		return p.seq()
	}
	p.fail("expected term")
	return nil
}

func atom(text string) logic.Term {
	switch text {
	case "true":
		return logic.Bool{Value: true}
	case "false":
		return logic.Bool{Value: false}
	}
	return logic.String{Value: text}
}

func (p *parser) variable(name string) *logic.Var {
	if name == "_" {
		return logic.NewVar(name)
	}
	if x, ok := p.vars[name]; ok {
		return x
	}
	x := logic.NewVar(name)
	p.vars[name] = x
	p.order = append(p.order, x)
	return x
}

// seq := "[" [term ("," term)* [","] ["|" term]] "]"
func (p *parser) seq() logic.Term {
	p.expect("[")
	var items []logic.Term
	for !p.is("]") && !p.is("|") {
		items = append(items, p.term())
		if !p.is(",") {
			break
		}
		p.advance()
	}
	var tail logic.Term
	if p.is("|") {
		if len(items) == 0 {
			p.fail("expected items before \"|\"")
		}
		p.advance()
		tail = p.term()
	}
	p.expect("]")
	if tail == nil {
		return logic.NewSeq(items...)
	}
	return logic.NewIncompleteSeq(items, tail)
}
