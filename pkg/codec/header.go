package codec

import (
	"strings"

	"github.com/PapproxNP/books/pkg/common"
)

// Column names written by older, localized exports of the catalog.
var headerAliases = map[string]string{
	"назва":                 common.FieldTitle,
	"назва книги":           common.FieldTitle,
	"автор":                 common.FieldAuthor,
	"рік видання":           common.FieldYear,
	"жанр":                  common.FieldGenre,
	"кількість примірників": common.FieldCopies,
}

// columns maps each schema field to its column position in a file.
type columns map[string]int

func parseHeader(row []string, line int) (columns, error) {
	cols := make(columns, len(common.Fields))
	for i, raw := range row {
		name := normalizeHeader(raw, i == 0)
		field, ok := fieldFor(name)
		if !ok {
			return nil, formatErr(line, nil, "unknown column %q", raw)
		}
		if _, dup := cols[field]; dup {
			return nil, formatErr(line, nil, "duplicate column %q", raw)
		}
		cols[field] = i
	}
	for _, f := range common.Fields {
		if _, ok := cols[f]; !ok {
			return nil, formatErr(line, nil, "missing column %q", f)
		}
	}
	return cols, nil
}

func normalizeHeader(s string, first bool) string {
	if first {
		s = strings.TrimPrefix(s, "\ufeff")
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func fieldFor(name string) (string, bool) {
	for _, f := range common.Fields {
		if name == f {
			return f, true
		}
	}
	f, ok := headerAliases[name]
	return f, ok
}
