package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Schema field names, in persisted column order.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
	FieldGenre  = "genre"
	FieldCopies = "copies"
)

// Fields is the fixed catalog schema.
var Fields = []string{FieldTitle, FieldAuthor, FieldYear, FieldGenre, FieldCopies}

// Year is a publication year that may be unknown.
type Year struct {
	value int
	known bool
}

// UnknownYear is the absent-year marker.
var UnknownYear = Year{}

func KnownYear(y int) Year {
	return Year{value: y, known: true}
}

func (y Year) Value() (int, bool) {
	return y.value, y.known
}

func (y Year) Known() bool {
	return y.known
}

// String returns the decimal year, or "" for an unknown year.
func (y Year) String() string {
	if !y.known {
		return ""
	}
	return strconv.Itoa(y.value)
}

// ParseYear coerces s to a Year. The bool reports whether s held a number;
// a blank field is a valid unknown year. Surrounding spaces are dropped and
// integral floats such as "1999.0" are accepted, so the stored year is the
// canonical integer: " 1999" and "1999.0" are written back as "1999".
func ParseYear(s string) (Year, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownYear, true
	}
	n, ok := parseWhole(s)
	if !ok {
		return UnknownYear, false
	}
	return KnownYear(n), true
}

// ParseCopies coerces s to a copy count, falling back to 0 for
// non-numeric or negative input.
func ParseCopies(s string) (int, bool) {
	n, ok := parseWhole(strings.TrimSpace(s))
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// parseWhole accepts decimal integers and integral floats such as "1999.0".
func parseWhole(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// Book is one catalog entry.
type Book struct {
	Title  string
	Author string
	Year   Year
	Genre  string
	Copies int
}

// Row returns the book's fields as text in schema order.
// NormalizeText folds CRLF line breaks to LF, the form a delimited file
// reads back.
func NormalizeText(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Normalized returns b with NormalizeText applied to its text fields.
func (b Book) Normalized() Book {
	b.Title = NormalizeText(b.Title)
	b.Author = NormalizeText(b.Author)
	b.Genre = NormalizeText(b.Genre)
	return b
}

func (b Book) Row() []string {
	return []string{b.Title, b.Author, b.Year.String(), b.Genre, strconv.Itoa(b.Copies)}
}

func (b Book) String() string {
	return fmt.Sprintf("Book{Title: %q, Author: %q, Year: %q, Genre: %q, Copies: %d}",
		b.Title, b.Author, b.Year.String(), b.Genre, b.Copies)
}
