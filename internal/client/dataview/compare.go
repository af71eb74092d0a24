package dataview

import (
	"cmp"
	"strings"

	"github.com/tidwall/gjson"
)

// Comparator orders two records by field, returning -1, 0 or 1.
type Comparator func(a, b Record, field string) int

// CompareField is the default comparator: numbers numerically, everything
// else as case-insensitive text. A number sorts before any non-number, so
// fields that mix the two still have a total order. Missing and null values
// compare greater than any present value, so they sort last in ascending
// order.
func CompareField(a, b Record, field string) int {
	return compareValues(a.Get(field), b.Get(field))
}

func compareValues(a, b gjson.Result) int {
	aNull, bNull := isNull(a), isNull(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}

	aNum, bNum := a.Type == gjson.Number, b.Type == gjson.Number
	switch {
	case aNum && bNum:
		return cmp.Compare(a.Float(), b.Float())
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
}

func isNull(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}
