package query

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
)

// Statement is a parsed catalog query.
type Statement struct {
	Table string
	Where []Condition
	Limit int
}

// Condition is one equality test of a WHERE clause.
type Condition struct {
	Field string
	Value string
}

var (
	selectRe = regexp.MustCompile(`(?is)^SELECT\s+\*\s+FROM\s+([a-zA-Z_][a-zA-Z0-9_]*)(?:\s+WHERE\s+(.+?))?(?:\s+LIMIT\s+(\d+))?$`)
	condRe   = regexp.MustCompile(`(?is)^([a-zA-Z_]+)\s*=\s*('(?:[^']|'')*'|-?\d+)$`)
	andRe    = regexp.MustCompile(`(?i)\s+AND\s+`)
)

// Parse parses simple queries over the catalog:
// "SELECT * FROM books"
// "SELECT * FROM books WHERE author = 'Frank Herbert'"
// "SELECT * FROM books WHERE author = 'Frank Herbert' AND year = 1965 LIMIT 10"
// Only author (quoted string) and year (integer) may be filtered on.
func Parse(s string) (*Statement, error) {
	orig := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
	if orig == "" {
		return nil, errors.New("empty query")
	}

	matches := selectRe.FindStringSubmatch(orig)
	if matches == nil {
		return nil, errors.New("syntax: expected SELECT * FROM books [WHERE <field> = <value> [AND ...]] [LIMIT <n>]")
	}
	if !strings.EqualFold(matches[1], "books") {
		return nil, errors.New("unknown table " + strconv.Quote(matches[1]))
	}

	stmt := &Statement{
		Table: "books",
		Limit: -1,
	}

	if matches[2] != "" {
		for _, part := range splitAnd(matches[2]) {
			cond, err := parseCondition(part)
			if err != nil {
				return nil, err
			}
			stmt.Where = append(stmt.Where, cond)
		}
	}

	if matches[3] != "" {
		limitVal, err := strconv.Atoi(matches[3])
		if err != nil || limitVal < 0 {
			return nil, errors.New("invalid LIMIT value")
		}
		stmt.Limit = limitVal
	}

	return stmt, nil
}

// splitAnd splits a WHERE clause on AND keywords outside quoted strings.
func splitAnd(where string) []string {
	var parts []string
	start := 0
	for _, loc := range andRe.FindAllStringIndex(where, -1) {
		if strings.Count(where[:loc[0]], "'")%2 == 1 {
			continue
		}
		parts = append(parts, where[start:loc[0]])
		start = loc[1]
	}
	return append(parts, where[start:])
}

func parseCondition(s string) (Condition, error) {
	m := condRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Condition{}, errors.New("syntax: invalid condition " + strconv.Quote(strings.TrimSpace(s)))
	}
	field := strings.ToLower(m[1])
	raw := m[2]
	quoted := strings.HasPrefix(raw, "'")

	switch field {
	case common.FieldAuthor:
		if !quoted {
			return Condition{}, errors.New("author must be a quoted string")
		}
		return Condition{Field: field, Value: strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")}, nil
	case common.FieldYear:
		if quoted {
			return Condition{}, errors.New("year must be an integer")
		}
		if _, err := strconv.Atoi(raw); err != nil {
			return Condition{}, errors.New("invalid year " + strconv.Quote(raw))
		}
		return Condition{Field: field, Value: raw}, nil
	default:
		return Condition{}, errors.New("only WHERE author and year are supported")
	}
}

// Filter converts the WHERE clause to a catalog filter. A repeated field
// keeps its last value. Year values were range-checked by Parse.
func (stmt *Statement) Filter() core.Filter {
	var f core.Filter
	for _, c := range stmt.Where {
		switch c.Field {
		case common.FieldAuthor:
			f = f.And(core.ByAuthor(c.Value))
		case common.FieldYear:
			y, _ := strconv.Atoi(c.Value)
			f = f.And(core.ByYear(y))
		}
	}
	return f
}

// Apply applies the LIMIT to an already filtered result.
func (stmt *Statement) Apply(books []common.Book) []common.Book {
	if stmt.Limit >= 0 && len(books) > stmt.Limit {
		return books[:stmt.Limit]
	}
	return books
}
