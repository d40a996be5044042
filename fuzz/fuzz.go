// Package fuzz contains the entry point for fuzzing the query parser with go-fuzz.
package fuzz

import (
	"github.com/brunokim/relational/parser"
)

func Fuzz(data []byte) int {
	queries, err := parser.ParseAll(string(data))
	if err != nil {
		return 0
	}
	r := parser.NewRegistry()
	for _, q := range queries {
		if _, err := r.Decode(q); err != nil {
			return 0
		}
	}
	return 1
}
