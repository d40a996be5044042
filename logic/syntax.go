package logic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/brunokim/relational/runes"
)

func isIdent(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isIdents(text string) bool {
	for _, ch := range text {
		if !isIdent(ch) {
			return false
		}
	}
	return true
}

func isVarFirst(ch rune) bool {
	return ch == '_' || unicode.IsUpper(ch)
}

// IsVarName returns whether text is written as a variable in the query syntax:
// an identifier starting with an uppercase letter or underscore.
func IsVarName(text string) bool {
	ch, ok := runes.First(text)
	if !ok || !isVarFirst(ch) {
		return false
	}
	return isIdents(text)
}

// IsAtomName returns whether text can be written unquoted as a string atom: an
// identifier starting with a lowercase letter.
func IsAtomName(text string) bool {
	ch, ok := runes.First(text)
	if !ok || !unicode.IsLower(ch) {
		return false
	}
	return isIdents(text)
}

// FormatNumber returns the shortest representation of a number.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatString returns a double-quoted string, with escapes.
func FormatString(text string) string {
	return strconv.Quote(text)
}

// ---- String()

func (t Number) String() string {
	return FormatNumber(t.Value)
}

func (t String) String() string {
	return FormatString(t.Value)
}

func (t Bool) String() string {
	return strconv.FormatBool(t.Value)
}

func (t Opaque) String() string {
	return fmt.Sprintf("%v", t.Value)
}

func (t *Var) String() string {
	return t.Name
}

func (t *Seq) String() string {
	items := make([]string, len(t.Items))
	for i, item := range t.Items {
		items[i] = item.String()
	}
	xs := strings.Join(items, ", ")
	if t.Tail == nil {
		return fmt.Sprintf("[%s]", xs)
	}
	return fmt.Sprintf("[%s|%v]", xs, t.Tail)
}
