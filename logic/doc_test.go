package logic_test

import (
	"fmt"

	. "github.com/brunokim/relational/logic"
)

func ExampleNewIncompleteSeq() {
	tail := NewVar("Tail")
	fmt.Println(NewIncompleteSeq([]Term{Number{Value: 1}}, tail))
	fmt.Println(NewIncompleteSeq([]Term{Number{Value: 1}}, NewSeq(String{Value: "a"}, Bool{Value: true})))
	fmt.Println(NewIncompleteSeq(nil, tail))
	// Output: [1|Tail]
	// [1, "a", true]
	// Tail
}

func ExampleVarGen() {
	var gen VarGen
	fmt.Println(gen.Fresh(), gen.Fresh(), gen.Count())
	// Output: ~.0 ~.1 2
}
