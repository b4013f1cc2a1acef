package sanitize

import (
	"fmt"
	"math"
	"reflect"

	"github.com/minshik/forensiq/internal/contracts"
)

// allowed rounding precisions, in decimal places
var allowedPrecisions = map[int]bool{2: true, 4: true, 6: true, 8: true}

const nonFiniteReason = "non-finite result"

var leafType = reflect.TypeOf(contracts.Leaf{})

// Apply walks every Leaf reachable from v (a pointer to a result struct),
// rounds present values to the given precision half-to-even, and rewrites
// any non-finite value as a null leaf. Applying twice is a no-op.
func Apply(v interface{}, precision int) error {
	if !allowedPrecisions[precision] {
		return fmt.Errorf("unsupported precision %d: must be one of 2, 4, 6, 8", precision)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("sanitize target must be a non-nil pointer, got %T", v)
	}
	walk(rv.Elem(), func(leaf *contracts.Leaf) {
		sanitizeLeaf(leaf, precision)
	})
	return nil
}

// FillEmpty rewrites every untouched zero-value leaf reachable from v as a
// null leaf carrying the given reason. Leaves that already hold a value or a
// reason are left alone. Used to annotate families the caller did not request.
func FillEmpty(v interface{}, reason string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("fill target must be a non-nil pointer, got %T", v)
	}
	walk(rv.Elem(), func(leaf *contracts.Leaf) {
		if leaf.Value == nil && leaf.Reason == nil {
			*leaf = contracts.Null(reason)
		}
	})
	return nil
}

// walk visits every addressable Leaf below root, depth first
func walk(root reflect.Value, visit func(*contracts.Leaf)) {
	switch root.Kind() {
	case reflect.Struct:
		if root.Type() == leafType {
			if root.CanAddr() {
				visit(root.Addr().Interface().(*contracts.Leaf))
			}
			return
		}
		for i := 0; i < root.NumField(); i++ {
			if root.Type().Field(i).PkgPath != "" {
				continue // unexported
			}
			walk(root.Field(i), visit)
		}
	case reflect.Ptr:
		if !root.IsNil() {
			walk(root.Elem(), visit)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < root.Len(); i++ {
			walk(root.Index(i), visit)
		}
	}
}

func sanitizeLeaf(leaf *contracts.Leaf, precision int) {
	if leaf.Value == nil {
		return
	}
	v := *leaf.Value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		*leaf = contracts.Null(nonFiniteReason)
		return
	}
	rounded := Round(v, precision)
	leaf.Value = &rounded
	leaf.Reason = nil
}

// Round rounds v to the given number of decimal places using banker's
// rounding (round half to even), matching IEEE 754 default behavior.
func Round(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.RoundToEven(v*scale) / scale
}
