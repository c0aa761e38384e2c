package chart

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
	"github.com/PapproxNP/books/pkg/summary"
)

const (
	booksSheet  = "Books"
	genresSheet = "Genres"
	yearsSheet  = "Years"
)

// WriteReport saves an XLSX workbook for cat: the book table, the genre
// distribution with a pie chart and copies per year with a column chart.
func WriteReport(path string, cat core.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", booksSheet); err != nil {
		return err
	}
	if err := writeBooks(f, cat.All()); err != nil {
		return err
	}

	genres := summary.GenreSeries(cat)
	for i := range genres {
		genres[i].Label = label(genres[i])
	}
	if err := writeSeries(f, genresSheet, "Genre", "Books", genres); err != nil {
		return err
	}
	if err := addChart(f, genresSheet, excelize.Pie, "Genre distribution", len(genres)); err != nil {
		return err
	}

	years := summary.YearSeries(cat)
	if err := writeSeries(f, yearsSheet, "Year", "Copies", years); err != nil {
		return err
	}
	if err := addChart(f, yearsSheet, excelize.Col, "Copies by year", len(years)); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func writeBooks(f *excelize.File, books []common.Book) error {
	header := make([]any, len(common.Fields))
	for i, name := range common.Fields {
		header[i] = name
	}
	if err := f.SetSheetRow(booksSheet, "A1", &header); err != nil {
		return err
	}
	for i, b := range books {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		var year any = ""
		if y, ok := b.Year.Value(); ok {
			year = y
		}
		row := []any{b.Title, b.Author, year, b.Genre, b.Copies}
		if err := f.SetSheetRow(booksSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSeries(f *excelize.File, sheet, labelHeader, valueHeader string, points []summary.Point) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{labelHeader, valueHeader}); err != nil {
		return err
	}
	for i, p := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{p.Label, p.Value}); err != nil {
			return err
		}
	}
	return nil
}

// addChart places a chart over the n data rows of sheet. Empty series are
// left without a chart.
func addChart(f *excelize.File, sheet string, kind excelize.ChartType, title string, n int) error {
	if n == 0 {
		return nil
	}
	last := n + 1
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: kind,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, last),
		}},
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "right"},
		PlotArea: excelize.ChartPlotArea{
			ShowPercent: kind == excelize.Pie,
			ShowVal:     kind != excelize.Pie,
		},
	})
}
