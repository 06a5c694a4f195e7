// Package listquery builds paged SELECT and COUNT statements for the repositories.
//
// Conditions are written with ? placeholders and renumbered to $n when the
// statement is rendered, so callers never track argument positions.
package listquery

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

const (
	// DefaultLimit applies when a caller passes a non-positive limit.
	DefaultLimit = 50
	// MaxLimit caps any page size.
	MaxLimit = 200
)

type condition struct {
	expr string
	args []any
}

// Query is a single-table list query. The zero value is not usable; call New.
type Query struct {
	table   string
	columns []string
	conds   []condition
	orderBy []string
	limit   int
	offset  int
}

// New starts a query over table selecting cols. Column entries are emitted verbatim
// so expressions such as "to_char(check_in, 'YYYY-MM-DD') AS check_in" are allowed.
func New(table string, cols ...string) *Query {
	return &Query{table: table, columns: cols, limit: DefaultLimit}
}

// Where adds an AND condition. Each ? in expr consumes one arg.
func (q *Query) Where(expr string, args ...any) *Query {
	q.conds = append(q.conds, condition{expr: expr, args: args})
	return q
}

// WhereEq adds "column = ?".
func (q *Query) WhereEq(column string, v any) *Query {
	return q.Where(pgx.Identifier{column}.Sanitize()+" = ?", v)
}

// OrderBy appends an ORDER BY term such as "created_at DESC".
func (q *Query) OrderBy(term string) *Query {
	q.orderBy = append(q.orderBy, term)
	return q
}

// Page sets LIMIT/OFFSET after Clamp.
func (q *Query) Page(limit, offset int) *Query {
	q.limit, q.offset = Clamp(limit, offset)
	return q
}

// Clamp bounds limit to [1, MaxLimit] (DefaultLimit when non-positive) and offset to ≥ 0.
func Clamp(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return limit, max(offset, 0)
}

// Select renders the paged SELECT.
func (q *Query) Select() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(pgx.Identifier{q.table}.Sanitize())
	args := q.writeWhere(&b)
	if len(q.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(q.orderBy, ", "))
	}
	args = append(args, q.limit, q.offset)
	b.WriteString(" LIMIT $" + strconv.Itoa(len(args)-1))
	b.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	return b.String(), args
}

// Count renders SELECT count(*) with the same conditions and no paging.
func (q *Query) Count() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT count(*) FROM ")
	b.WriteString(pgx.Identifier{q.table}.Sanitize())
	args := q.writeWhere(&b)
	return b.String(), args
}

func (q *Query) writeWhere(b *strings.Builder) []any {
	if len(q.conds) == 0 {
		return nil
	}
	args := make([]any, 0, len(q.conds))
	b.WriteString(" WHERE ")
	for i, c := range q.conds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString("(")
		args = renumber(b, c, args)
		b.WriteString(")")
	}
	return args
}

// renumber writes c.expr replacing each ? with the next $n and appends its args.
func renumber(b *strings.Builder, c condition, args []any) []any {
	used := 0
	for _, r := range c.expr {
		if r == '?' && used < len(c.args) {
			args = append(args, c.args[used])
			used++
			b.WriteString("$" + strconv.Itoa(len(args)))
			continue
		}
		b.WriteRune(r)
	}
	return args
}
