package backend

// Op is a filter operator.
type Op string

const (
	OpEq    Op = "eq"
	OpNeq   Op = "neq"
	OpGt    Op = "gt"
	OpGte   Op = "gte"
	OpIn    Op = "in"
	OpNotIn Op = "not.in"
)

// Filter is a single column predicate. For OpIn and OpNotIn Value is a []string.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

func Eq(col string, v any) Filter          { return Filter{Column: col, Op: OpEq, Value: v} }
func Neq(col string, v any) Filter         { return Filter{Column: col, Op: OpNeq, Value: v} }
func Gt(col string, v any) Filter          { return Filter{Column: col, Op: OpGt, Value: v} }
func Gte(col string, v any) Filter         { return Filter{Column: col, Op: OpGte, Value: v} }
func In(col string, vs []string) Filter    { return Filter{Column: col, Op: OpIn, Value: vs} }
func NotIn(col string, vs []string) Filter { return Filter{Column: col, Op: OpNotIn, Value: vs} }

// Query selects rows: all Filters must hold and, when Or is non-empty, at
// least one of its conjunctions must hold too.
type Query struct {
	Filters []Filter
	Or      [][]Filter
	Order   string
	Desc    bool
	Then    string
	Limit   int
}

// Where builds a query from conjunctive filters.
func Where(filters ...Filter) Query {
	return Query{Filters: filters}
}

// AnyOf adds a disjunction of conjunctions.
func (q Query) AnyOf(groups ...[]Filter) Query {
	q.Or = append(q.Or, groups...)
	return q
}

// OrderBy sets the sort column.
func (q Query) OrderBy(col string, desc bool) Query {
	q.Order = col
	q.Desc = desc
	return q
}

// ThenBy sets a tiebreak column sorted in the same direction as Order.
func (q Query) ThenBy(col string) Query {
	q.Then = col
	return q
}

// WithLimit caps the number of rows returned.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

// All returns the filters as a conjunction, for building Or groups.
func All(filters ...Filter) []Filter {
	return filters
}
