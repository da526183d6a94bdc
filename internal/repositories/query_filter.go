package repositories

import "strings"

// queryFilter accumulates parameterized WHERE clauses. Values are always
// bound through placeholders, never interpolated into the SQL text, and the
// same accumulated set is shared by a page query and its COUNT query so the
// two can never disagree.
type queryFilter struct {
	conds []string
	args  []any
}

func (f *queryFilter) add(cond string, args ...any) {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
}

func (f *queryFilter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}
