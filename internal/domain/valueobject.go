package domain

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// ValueObject is implemented by immutable domain value types that are
// compared structurally rather than by identity. A value type exposes its
// ordered equality components; Equal and Hash derive equality and hashing
// from that sequence, so each value type implements comparison exactly once.
//
// Components must be comparable values (strings, numbers, booleans, or
// comparable structs such as uuid.UUID and time.Time).
type ValueObject interface {
	EqualityComponents() []any
}

// Equal reports whether two value objects are structurally equal: both
// non-nil, of the exact same dynamic type, with element-wise equal component
// sequences. Position matters; identity never does.
func Equal(a, b ValueObject) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	ca, cb := a.EqualityComponents(), b.EqualityComponents()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}

// Hash folds the components of v into an order-sensitive FNV-1a hash,
// seeded with the value's dynamic type so distinct types with identical
// components hash apart. Equal(a, b) implies Hash(a) == Hash(b).
func Hash(v ValueObject) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T", v)
	for _, c := range v.EqualityComponents() {
		fmt.Fprintf(h, "/%T:%v", c, c)
	}
	return h.Sum64()
}
