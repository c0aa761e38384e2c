package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
	"github.com/PapproxNP/books/pkg/summary"
)

func fixture() core.Catalog {
	return core.New(
		common.Book{Title: "Dune", Genre: "Fiction", Year: common.KnownYear(1965), Copies: 2},
		common.Book{Title: "Solaris", Genre: "Fiction", Year: common.KnownYear(1961), Copies: 1},
		common.Book{Title: "Kobzar", Genre: "Poetry", Year: common.KnownYear(1840), Copies: 3},
		common.Book{Title: "Notes", Genre: "", Year: common.UnknownYear, Copies: 5},
		common.Book{Title: "Dune Messiah", Genre: "Fiction", Year: common.KnownYear(1965), Copies: 4},
	)
}

func TestTotalCopies(t *testing.T) {
	assert.Equal(t, 15, summary.TotalCopies(fixture()))
	assert.Zero(t, summary.TotalCopies(core.New()))
}

func TestTotalCopiesAfterInsert(t *testing.T) {
	c := fixture()
	r := common.Book{Title: "New", Copies: 6}
	assert.Equal(t, summary.TotalCopies(c)+r.Copies, summary.TotalCopies(c.Insert(r)))
}

func TestGenreCountsPartitionCatalog(t *testing.T) {
	c := fixture()
	counts := summary.GenreCounts(c)

	assert.Equal(t, map[string]int{"Fiction": 3, "Poetry": 1, "": 1}, counts)
	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, c.Len(), sum)
}

func TestGenreCountsThreeRows(t *testing.T) {
	c := core.New(
		common.Book{Title: "a", Genre: "Fiction"},
		common.Book{Title: "b", Genre: "Fiction"},
		common.Book{Title: "c", Genre: "Poetry"},
	)
	assert.Equal(t, map[string]int{"Fiction": 2, "Poetry": 1}, summary.GenreCounts(c))
}

func TestCopiesByYearExcludesUnknownYears(t *testing.T) {
	assert.Equal(t, map[int]int{1840: 3, 1961: 1, 1965: 6}, summary.CopiesByYear(fixture()))
	assert.Empty(t, summary.CopiesByYear(core.New()))
}

func TestSeriesAreOrdered(t *testing.T) {
	c := fixture()

	assert.Equal(t, []summary.Point{
		{Label: "", Value: 1},
		{Label: "Fiction", Value: 3},
		{Label: "Poetry", Value: 1},
	}, summary.GenreSeries(c))

	assert.Equal(t, []summary.Point{
		{Label: "1840", Value: 3},
		{Label: "1961", Value: 1},
		{Label: "1965", Value: 6},
	}, summary.YearSeries(c))
}
