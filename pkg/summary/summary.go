// Package summary computes read-only views over a catalog snapshot: the
// total copy count and the genre and year distributions handed to charts.
package summary

import (
	"strconv"

	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core/memory"
)

const tallyDegree = 16

// Source is the read contract the views need. core.Catalog satisfies it.
type Source interface {
	All() []common.Book
}

// Point is one labelled value of an ordered series.
type Point struct {
	Label string
	Value int
}

func TotalCopies(src Source) int {
	total := 0
	for _, b := range src.All() {
		total += b.Copies
	}
	return total
}

// GenreCounts counts records per genre. The empty genre is a key like any other.
func GenreCounts(src Source) map[string]int {
	return genreTally(src).Map()
}

// CopiesByYear sums copies per known year. Records with an unknown year
// are left out; use TotalCopies for the overall figure.
func CopiesByYear(src Source) map[int]int {
	return yearTally(src).Map()
}

// GenreSeries is GenreCounts ordered by genre name.
func GenreSeries(src Source) []Point {
	t := genreTally(src)
	out := make([]Point, 0, t.Count())
	t.Iterator(func(genre string, n int) bool {
		out = append(out, Point{Label: genre, Value: n})
		return true
	})
	return out
}

// YearSeries is CopiesByYear ordered by year.
func YearSeries(src Source) []Point {
	t := yearTally(src)
	out := make([]Point, 0, t.Count())
	t.Iterator(func(year int, n int) bool {
		out = append(out, Point{Label: strconv.Itoa(year), Value: n})
		return true
	})
	return out
}

func genreTally(src Source) *memory.Tally[string] {
	t := memory.NewTally[string](tallyDegree)
	for _, b := range src.All() {
		t.Add(b.Genre, 1)
	}
	return t
}

func yearTally(src Source) *memory.Tally[int] {
	t := memory.NewTally[int](tallyDegree)
	for _, b := range src.All() {
		if y, ok := b.Year.Value(); ok {
			t.Add(y, b.Copies)
		}
	}
	return t
}
