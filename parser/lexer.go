package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brunokim/relational/errors"
)

type tokenKind int

const (
	eofToken tokenKind = iota
	identToken
	varToken
	numberToken
	stringToken
	punctToken
)

func (k tokenKind) String() string {
	switch k {
	case eofToken:
		return "end of input"
	case identToken:
		return "identifier"
	case varToken:
		return "variable"
	case numberToken:
		return "number"
	case stringToken:
		return "string"
	case punctToken:
		return "punctuation"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Pos is a position within the parsed text. Lines and columns start at 1, and
// columns count runes.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type token struct {
	kind tokenKind
	text string
	pos  Pos
}

func (t token) String() string {
	if t.kind == eofToken {
		return t.kind.String()
	}
	return fmt.Sprintf("%q", t.text)
}

const punctuation = "()[],|."

// lexer splits the input text into tokens. Whitespace and comments, from '%' until
// the end of the line, are skipped.
type lexer struct {
	text  string
	begin int
	pos   int
	line  int
	col   int
	start Pos
}

func newLexer(text string) *lexer {
	return &lexer{text: text, line: 1, col: 1}
}

func (l *lexer) peekRune() rune {
	if l.pos >= len(l.text) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.text[l.pos:])
	return r
}

func (l *lexer) nextRune() rune {
	if l.pos >= len(l.text) {
		return utf8.RuneError
	}
	r, size := utf8.DecodeRuneInString(l.text[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) atEOF() bool {
	return l.pos >= len(l.text)
}

func (l *lexer) skipSpaces() {
	for !l.atEOF() {
		r := l.peekRune()
		switch {
		case r == '%':
			for !l.atEOF() && l.peekRune() != '\n' {
				l.nextRune()
			}
		case unicode.IsSpace(r):
			l.nextRune()
		default:
			return
		}
	}
}

func (l *lexer) emit(kind tokenKind) token {
	return token{kind: kind, text: l.text[l.begin:l.pos], pos: l.start}
}

func (l *lexer) errorf(msg string, args ...interface{}) error {
	return errors.New("%v: %s", l.start, fmt.Sprintf(msg, args...))
}

func (l *lexer) next() (token, error) {
	l.skipSpaces()
	l.begin, l.start = l.pos, Pos{l.line, l.col}
	if l.atEOF() {
		return l.emit(eofToken), nil
	}
	r, size := utf8.DecodeRuneInString(l.text[l.pos:])
	switch {
	case r == utf8.RuneError && size == 1:
		return token{}, l.errorf("invalid UTF-8 encoding")
	case r == '"':
		return l.lexString()
	case r == '-' || isDigit(r):
		return l.lexNumber()
	case r == '_' || unicode.IsLetter(r):
		for !l.atEOF() && isIdent(l.peekRune()) {
			l.nextRune()
		}
		if r == '_' || unicode.IsUpper(r) {
			return l.emit(varToken), nil
		}
		return l.emit(identToken), nil
	case strings.ContainsRune(punctuation, r):
		l.nextRune()
		return l.emit(punctToken), nil
	}
	return token{}, l.errorf("unexpected character %q", r)
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *lexer) digits() int {
	var n int
	for !l.atEOF() && isDigit(l.peekRune()) {
		l.nextRune()
		n++
	}
	return n
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// lexNumber reads numbers like -12, 3.5 and 1e-3.
func (l *lexer) lexNumber() (token, error) {
	if l.peekRune() == '-' {
		l.nextRune()
	}
	if l.digits() == 0 {
		return token{}, l.errorf("expected digits in number")
	}
	if l.peekRune() == '.' {
		// A dot not followed by a digit ends the query.
		rest := l.text[l.pos+1:]
		if r, _ := utf8.DecodeRuneInString(rest); isDigit(r) {
			l.nextRune()
			l.digits()
		}
	}
	if r := l.peekRune(); r == 'e' || r == 'E' {
		l.nextRune()
		if r := l.peekRune(); r == '+' || r == '-' {
			l.nextRune()
		}
		if l.digits() == 0 {
			return token{}, l.errorf("expected digits in exponent")
		}
	}
	if !l.atEOF() && isIdent(l.peekRune()) {
		return token{}, l.errorf("unexpected character %q after number", l.peekRune())
	}
	return l.emit(numberToken), nil
}

// lexString reads a double-quoted string, with the same escapes as Go strings.
func (l *lexer) lexString() (token, error) {
	l.nextRune()
	for {
		if l.atEOF() {
			return token{}, l.errorf("unterminated string")
		}
		switch l.nextRune() {
		case '\\':
			if l.atEOF() {
				return token{}, l.errorf("unterminated string")
			}
			l.nextRune()
		case '\n':
			return token{}, l.errorf("newline in string")
		case '"':
			return l.emit(stringToken), nil
		}
	}
}
