package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
)

func TestParseSelect(t *testing.T) {
	tests := []struct {
		sql   string
		limit int
		where int
		err   bool
	}{
		{"SELECT * FROM books", -1, 0, false},
		{"select * from BOOKS", -1, 0, false},
		{"SELECT * FROM books;", -1, 0, false},
		{"  SELECT * FROM books  ", -1, 0, false},
		{"SELECT * FROM books LIMIT 10", 10, 0, false},
		{"SELECT * FROM books WHERE year = 1965", -1, 1, false},
		{"SELECT * FROM books WHERE author = 'Frank Herbert' AND year = 1965 LIMIT 5", 5, 2, false},
		{"SELECT * FROM books WHERE author = 'Tom and Jerry'", -1, 1, false},
		{"SELECT * FROM books WHERE genre = 'Poetry'", 0, 0, true},
		{"SELECT * FROM books WHERE author = Frank", 0, 0, true},
		{"SELECT * FROM books WHERE year = '1965'", 0, 0, true},
		{"SELECT * FROM books WHERE year = 99999999999999999999", 0, 0, true},
		{"SELECT * FROM books WHERE author = 'X' AND year = -99999999999999999999", 0, 0, true},
		{"SELECT * FROM users", 0, 0, true},
		{"SELECT * FROM ", 0, 0, true},
		{"SELECT title FROM books", 0, 0, true},
		{"DELETE FROM books", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		stmt, err := Parse(tt.sql)
		if tt.err {
			assert.Error(t, err, "Parse(%q)", tt.sql)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.sql)
		assert.Equal(t, "books", stmt.Table)
		assert.Equal(t, tt.limit, stmt.Limit, "Parse(%q) limit", tt.sql)
		assert.Len(t, stmt.Where, tt.where, "Parse(%q) where", tt.sql)
	}
}

func TestQuotedAuthor(t *testing.T) {
	stmt, err := Parse("SELECT * FROM books WHERE author = 'Flannery O''Connor' AND year = 1952")
	require.NoError(t, err)
	assert.Equal(t, []Condition{
		{Field: "author", Value: "Flannery O'Connor"},
		{Field: "year", Value: "1952"},
	}, stmt.Where)
}

func TestFilterAndApply(t *testing.T) {
	cat := core.New(
		common.Book{Title: "Dune", Author: "Frank Herbert", Year: common.KnownYear(1965)},
		common.Book{Title: "Dune Messiah", Author: "Frank Herbert", Year: common.KnownYear(1969)},
		common.Book{Title: "Solaris", Author: "Stanislaw Lem", Year: common.KnownYear(1961)},
		common.Book{Title: "Whipping Star", Author: "Frank Herbert", Year: common.KnownYear(1970)},
	)

	stmt, err := Parse("SELECT * FROM books WHERE author = 'Frank Herbert' LIMIT 2")
	require.NoError(t, err)
	got := stmt.Apply(cat.Search(stmt.Filter()))
	require.Len(t, got, 2)
	assert.Equal(t, "Dune", got[0].Title)
	assert.Equal(t, "Dune Messiah", got[1].Title)

	stmt, err = Parse("SELECT * FROM books WHERE author = 'Frank Herbert' AND year = 1970")
	require.NoError(t, err)
	got = stmt.Apply(cat.Search(stmt.Filter()))
	require.Len(t, got, 1)
	assert.Equal(t, "Whipping Star", got[0].Title)

	stmt, err = Parse("SELECT * FROM books")
	require.NoError(t, err)
	assert.Equal(t, cat.All(), stmt.Apply(cat.Search(stmt.Filter())))
}

func TestOutOfRangeYearIsRejected(t *testing.T) {
	cat := core.New(
		common.Book{Title: "Dune", Author: "Frank Herbert", Year: common.KnownYear(1965)},
		common.Book{Title: "Solaris", Author: "Stanislaw Lem", Year: common.KnownYear(1961)},
	)

	stmt, err := Parse("SELECT * FROM books WHERE year = 99999999999999999999")
	require.Error(t, err)
	assert.Nil(t, stmt)
	assert.Contains(t, err.Error(), "invalid year")

	stmt, err = Parse("SELECT * FROM books WHERE year = 1961")
	require.NoError(t, err)
	require.NotNil(t, stmt.Filter().Year)
	assert.Len(t, cat.Search(stmt.Filter()), 1)
}
