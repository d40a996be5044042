package logic

import (
	"fmt"
	"reflect"
)

// opaqueEqual compares two wrapped values with ==, treating values of
// non-comparable types as distinct instead of panicking.
func opaqueEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func compareOpaque(a, b Opaque) ordering {
	if opaqueEqual(a.Value, b.Value) {
		return equal
	}
	// Distinct values with the same representation compare as equal here, though
	// Eq still tells them apart.
	s1, s2 := fmt.Sprintf("%T:%v", a.Value, a.Value), fmt.Sprintf("%T:%v", b.Value, b.Value)
	return compareStrings(s1, s2)
}
