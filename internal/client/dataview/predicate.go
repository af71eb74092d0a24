package dataview

import "strings"

// Predicate decides whether a record passes the filter text.
type Predicate func(r Record, filterText string) bool

// MatchAll accepts every record.
func MatchAll(Record, string) bool { return true }

// ContainsAny matches when any of the fields contains the filter text,
// ignoring case. An empty filter text matches every record.
func ContainsAny(fields ...string) Predicate {
	return func(r Record, filterText string) bool {
		if filterText == "" {
			return true
		}
		needle := strings.ToLower(filterText)
		for _, f := range fields {
			if strings.Contains(strings.ToLower(r.String(f)), needle) {
				return true
			}
		}
		return false
	}
}

// FieldEquals matches records whose field equals value exactly, ignoring
// the filter text. An empty value matches every record.
func FieldEquals(field, value string) Predicate {
	return func(r Record, _ string) bool {
		return value == "" || r.String(field) == value
	}
}

// All combines predicates with logical AND.
func All(preds ...Predicate) Predicate {
	return func(r Record, filterText string) bool {
		for _, p := range preds {
			if !p(r, filterText) {
				return false
			}
		}
		return true
	}
}
