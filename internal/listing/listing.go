// Package listing turns a fetched list into the list a screen displays:
// search, then stable sort, as a pure function of its inputs.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder falls back to def for anything that is not asc or desc.
func ParseOrder(s string, def Order) Order {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc
	case Desc:
		return Desc
	default:
		return def
	}
}

type Query struct {
	Search  string
	SortKey string
	Order   Order
}

// Spec describes how a screen searches and sorts its items.
// Match receives the search term already lower-cased and trimmed.
type Spec[T any] struct {
	Match   func(item T, term string) bool
	Sorters map[string]func(a, b T) int
}

// Apply returns a new slice; items is never modified. An empty search keeps every
// item and an unknown sort key keeps the fetched order.
func Apply[T any](items []T, q Query, spec Spec[T]) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if term == "" || spec.Match == nil || spec.Match(item, term) {
			out = append(out, item)
		}
	}

	less, ok := spec.Sorters[q.SortKey]
	if !ok {
		return out
	}
	if q.Order == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return less(b, a) })
	} else {
		slices.SortStableFunc(out, less)
	}
	return out
}

// Contains reports whether field contains the lower-cased term, ignoring case.
func Contains(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}

func ByString[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func ByTime[T any](get func(T) time.Time) func(a, b T) int {
	return func(a, b T) int {
		return get(a).Compare(get(b))
	}
}

func ByBool[T any](get func(T) bool) func(a, b T) int {
	return func(a, b T) int {
		x, y := get(a), get(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
}
