package postgrest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bondly/bondly/internal/backend"
)

// param is one query-string pair. Order is preserved and keys may repeat.
type param struct {
	key, value string
}

// encodeQuery renders q in PostgREST's horizontal filtering syntax.
func encodeQuery(q backend.Query) []param {
	var out []param
	for _, f := range q.Filters {
		out = append(out, param{f.Column, string(f.Op) + "." + encodeValue(f)})
	}
	if len(q.Or) > 0 {
		groups := make([]string, 0, len(q.Or))
		for _, g := range q.Or {
			groups = append(groups, encodeGroup(g))
		}
		out = append(out, param{"or", "(" + strings.Join(groups, ",") + ")"})
	}
	if q.Order != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		order := q.Order + "." + dir
		if q.Then != "" {
			order += "," + q.Then + "." + dir
		}
		out = append(out, param{"order", order})
	}
	if q.Limit > 0 {
		out = append(out, param{"limit", strconv.Itoa(q.Limit)})
	}
	return out
}

func encodeGroup(g []backend.Filter) string {
	parts := make([]string, 0, len(g))
	for _, f := range g {
		parts = append(parts, f.Column+"."+string(f.Op)+"."+encodeValue(f))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "and(" + strings.Join(parts, ",") + ")"
}

func encodeValue(f backend.Filter) string {
	if vs, ok := f.Value.([]string); ok {
		quoted := make([]string, len(vs))
		for i, v := range vs {
			quoted[i] = quote(v)
		}
		return "(" + strings.Join(quoted, ",") + ")"
	}
	return formatScalar(f.Value)
}

func formatScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case nil:
		return "null"
	}
	return fmt.Sprint(v)
}

// quote wraps list members that contain PostgREST reserved characters.
func quote(v string) string {
	if !strings.ContainsAny(v, `,()". `) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
