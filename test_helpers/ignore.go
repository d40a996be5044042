package test_helpers

import (
	"github.com/brunokim/relational/logic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	// EqTerms compares logic terms with logic.Eq, so that vars only match themselves
	// and sequences match regardless of how their tails were built.
	EqTerms = cmp.Options{
		cmp.Comparer(logic.Eq),
		cmpopts.EquateEmpty(),
	}
)
