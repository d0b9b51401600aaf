package tree

import (
	"math"
	"reflect"
)

// PropsEqual reports whether two props values are equal. Widgets use it in
// Update to skip work when nothing changed.
func PropsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && (av == bv || (math.IsNaN(av) && math.IsNaN(bv)))
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	case interface{ Equal(any) bool }:
		return av.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
