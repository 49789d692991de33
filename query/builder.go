// Package query assembles the parameterized listing statements used by the
// store and food pages. Optional filters contribute predicate/argument pairs
// to an ordered list; the final SQL text is rendered once. User-supplied
// values are always bound parameters, never concatenated into the query.
// ORDER BY clauses come from fixed allow-lists, since column names cannot be
// parameter-bound.
package query

import (
	"fmt"
	"strings"
)

// Builder accumulates the parts of one SELECT statement.
type Builder struct {
	base    string
	preds   []string
	args    []interface{}
	groupBy string
	orderBy string
}

// New creates a builder around a base SELECT (joins included, no WHERE).
func New(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// Where appends a predicate. The condition uses one "?" per argument;
// placeholders are numbered for PostgreSQL when the statement is rendered.
// Predicates combine with AND in the order they were added.
func (b *Builder) Where(cond string, args ...interface{}) *Builder {
	b.preds = append(b.preds, cond)
	b.args = append(b.args, args...)
	return b
}

// GroupBy sets the GROUP BY clause.
func (b *Builder) GroupBy(clause string) *Builder {
	b.groupBy = clause
	return b
}

// Sort picks the ORDER BY clause for the requested sort key. Keys not in the
// allow-list fall back to the given clause, so arbitrary input never reaches
// the query text.
func (b *Builder) Sort(key string, allowed map[string]string, fallback string) *Builder {
	if clause, ok := allowed[key]; ok {
		b.orderBy = clause
	} else {
		b.orderBy = fallback
	}
	return b
}

// SQL renders the statement with $1..$n placeholders.
func (b *Builder) SQL() string {
	var sb strings.Builder
	sb.WriteString(b.base)

	if len(b.preds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(b.preds, " AND "))
	}
	if b.groupBy != "" {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(b.groupBy)
	}
	if b.orderBy != "" {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(b.orderBy)
	}

	sql := sb.String()

	// Number the placeholders left to right.
	n := 0
	var out strings.Builder
	for _, r := range sql {
		if r == '?' {
			n++
			out.WriteString(fmt.Sprintf("$%d", n))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Args returns the bound arguments in placeholder order.
func (b *Builder) Args() []interface{} {
	return b.args
}
