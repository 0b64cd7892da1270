package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bondly/bondly/internal/backend"
)

func matches(r backend.Row, q backend.Query) bool {
	if !matchAll(r, q.Filters) {
		return false
	}
	if len(q.Or) == 0 {
		return true
	}
	for _, group := range q.Or {
		if matchAll(r, group) {
			return true
		}
	}
	return false
}

func matchAll(r backend.Row, filters []backend.Filter) bool {
	for _, f := range filters {
		if !matchOne(r, f) {
			return false
		}
	}
	return true
}

func matchOne(r backend.Row, f backend.Filter) bool {
	got := r.String(f.Column)
	switch f.Op {
	case backend.OpEq:
		return compare(got, format(f.Value)) == 0
	case backend.OpNeq:
		return compare(got, format(f.Value)) != 0
	case backend.OpGt:
		return compare(got, format(f.Value)) > 0
	case backend.OpGte:
		return compare(got, format(f.Value)) >= 0
	case backend.OpIn:
		vs, _ := f.Value.([]string)
		return slices.Contains(vs, got)
	case backend.OpNotIn:
		vs, _ := f.Value.([]string)
		return !slices.Contains(vs, got)
	}
	return false
}

func format(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// compare orders timestamp columns chronologically and everything else
// lexically.
func compare(a, b string) int {
	ta, oka := backend.Row{"v": a}.Time("v")
	tb, okb := backend.Row{"v": b}.Time("v")
	if oka && okb {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}
