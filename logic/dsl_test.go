package logic_test

import (
	"github.com/brunokim/relational/dsl"
)

var (
	bool_  = dsl.Bool
	iseq   = dsl.ISeq
	num    = dsl.Num
	nums   = dsl.Nums
	opaque = dsl.Opaque
	seq    = dsl.Seq
	str    = dsl.Str
	strs   = dsl.Strs
	terms  = dsl.Terms
	var_   = dsl.Var
)
