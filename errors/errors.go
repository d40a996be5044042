// Package errors creates errors from format strings. The first error among the
// format arguments, if any, is returned by Unwrap.
package errors

import (
	"fmt"
)

type err struct {
	msg  string
	args []interface{}
}

func (err err) Error() string {
	return fmt.Sprintf(err.msg, err.args...)
}

func (err err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New returns an error formatted with fmt.Sprintf(msg, args...).
func New(msg string, args ...interface{}) error {
	return err{msg, args}
}
