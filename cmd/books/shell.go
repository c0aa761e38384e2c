package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PapproxNP/books/pkg/chart"
	"github.com/PapproxNP/books/pkg/codec"
	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/config"
	"github.com/PapproxNP/books/pkg/core"
	"github.com/PapproxNP/books/pkg/display"
	"github.com/PapproxNP/books/pkg/query"
	"github.com/PapproxNP/books/pkg/session"
	"github.com/PapproxNP/books/pkg/summary"
)

const Prompt = ">>> "

type shell struct {
	sess    *session.Session
	cfg     *config.Config
	scanner *bufio.Scanner
	out     io.Writer
}

func newShell(sess *session.Session, cfg *config.Config, in io.Reader, out io.Writer) *shell {
	return &shell{
		sess:    sess,
		cfg:     cfg,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (sh *shell) run() {
	sh.printMenu()
	for {
		fmt.Fprint(sh.out, Prompt)
		if !sh.scanner.Scan() {
			fmt.Fprintln(sh.out)
			return
		}
		cmd := strings.ToLower(strings.TrimSpace(sh.scanner.Text()))
		if cmd == "" {
			continue
		}

		switch cmd {
		case "l", "load":
			sh.load(sh.ask("File name", sh.cfg.Catalog.DefaultFile))
		case "p", "print":
			sh.handlePrint()
		case "a", "add":
			sh.handleAdd()
		case "d", "del", "delete":
			sh.handleDelete()
		case "s", "save":
			sh.save(sh.ask("File name", sh.cfg.Catalog.DefaultFile))
		case "f", "find":
			sh.handleFind()
		case "sql":
			sh.handleSQL()
		case "t", "total":
			fmt.Fprintf(sh.out, "Total copies: %d\n", summary.TotalCopies(sh.sess.Catalog()))
		case "v", "genres":
			sh.handleGenres()
		case "y", "years":
			sh.handleYears()
		case "r", "report":
			sh.handleReport()
		case "x", "export":
			sh.save(sh.cfg.Storage.SnapshotPath)
		case "i", "import":
			sh.load(sh.cfg.Storage.SnapshotPath)
		case "c", "clear":
			sh.handleClear()
		case "stats":
			sh.handleStats()
		case "h", "help":
			sh.printMenu()
		case "q", "quit", "exit":
			fmt.Fprintln(sh.out, "Bye!")
			return
		default:
			fmt.Fprintf(sh.out, "Unknown command: '%s'. Type 'h' for help.\n", cmd)
		}
	}
}

// ask prints label and reads one line. An empty answer yields def.
func (sh *shell) ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(sh.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(sh.out, "%s: ", label)
	}
	if !sh.scanner.Scan() {
		return def
	}
	answer := strings.TrimSpace(sh.scanner.Text())
	if answer == "" {
		return def
	}
	return answer
}

func (sh *shell) load(path string) {
	if err := sh.sess.Load(path); err != nil {
		sh.printFileError(path, err)
		return
	}
	fmt.Fprintf(sh.out, "Loaded %d records from %s\n", sh.sess.Catalog().Len(), path)
}

func (sh *shell) save(path string) {
	if err := sh.sess.Save(path); err != nil {
		sh.printFileError(path, err)
		return
	}
	fmt.Fprintf(sh.out, "Saved %d records to %s\n", sh.sess.Catalog().Len(), path)
}

func (sh *shell) printFileError(path string, err error) {
	var fe *codec.FormatError
	switch {
	case errors.As(err, &fe):
		fmt.Fprintf(sh.out, "Malformed file \"%s\": %v\n", path, fe)
	case errors.Is(err, codec.ErrIO):
		fmt.Fprintf(sh.out, "Can't open file \"%s\"!\n", path)
	default:
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) handlePrint() {
	fmt.Fprintln(sh.out, display.Table(sh.sess.Catalog().All(), sh.cfg.Display.MaxRows))
}

func (sh *shell) handleAdd() {
	title := sh.ask("Title", "")
	if title == "" {
		fmt.Fprintln(sh.out, "Error: title is required")
		return
	}
	b := common.Book{
		Title:  title,
		Author: sh.ask("Author", ""),
	}

	year, ok := common.ParseYear(sh.ask("Year (Enter if unknown)", ""))
	if !ok {
		fmt.Fprintln(sh.out, "Year is not a number, stored as unknown")
	}
	b.Year = year
	b.Genre = sh.ask("Genre", "")

	copies, ok := common.ParseCopies(sh.ask("Copies", "1"))
	if !ok {
		fmt.Fprintln(sh.out, "Copies is not a number, stored as 0")
	}
	b.Copies = copies

	sh.sess.Add(b)
	fmt.Fprintf(sh.out, "Added \"%s\"\n", b.Title)
}

func (sh *shell) handleDelete() {
	title := sh.ask("Title", "")
	if title == "" {
		fmt.Fprintln(sh.out, "Error: title is required")
		return
	}
	removed := sh.sess.Delete(title)
	if removed == 0 {
		fmt.Fprintln(sh.out, "Book not found!")
		return
	}
	fmt.Fprintf(sh.out, "Deleted %d record(s)\n", removed)
}

func (sh *shell) handleFind() {
	var f core.Filter
	if author := sh.ask("Author (Enter to skip)", ""); author != "" {
		f = f.And(core.ByAuthor(author))
	}
	if raw := sh.ask("Year (Enter to skip)", ""); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(sh.out, "Error: year must be an integer")
			return
		}
		f = f.And(core.ByYear(year))
	}
	sh.printResults(sh.sess.Search(f))
}

func (sh *shell) handleSQL() {
	stmt, err := query.Parse(sh.ask("Query", ""))
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	sh.printResults(stmt.Apply(sh.sess.Search(stmt.Filter())))
}

func (sh *shell) printResults(books []common.Book) {
	if len(books) == 0 {
		fmt.Fprintln(sh.out, "Book not found!")
		return
	}
	fmt.Fprintf(sh.out, "Found %d records:\n", len(books))
	fmt.Fprintln(sh.out, display.Table(books, sh.cfg.Display.MaxRows))
}

func (sh *shell) handleGenres() {
	points := summary.GenreSeries(sh.sess.Catalog())
	opts := chart.BarOptions{Width: sh.cfg.Display.BarWidth, Percent: true}
	if err := chart.Bars(sh.out, "Genre distribution", points, opts); err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) handleYears() {
	points := summary.YearSeries(sh.sess.Catalog())
	opts := chart.BarOptions{Width: sh.cfg.Display.BarWidth}
	if err := chart.Bars(sh.out, "Copies by year", points, opts); err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) handleReport() {
	path := sh.ask("Report file", sh.cfg.Report.Path)
	if err := chart.WriteReport(path, sh.sess.Catalog()); err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Report written to %s\n", path)
}

func (sh *shell) handleClear() {
	path := sh.cfg.Storage.SnapshotPath
	if answer := sh.ask("Clear snapshot "+path+"? (y/N)", ""); !strings.EqualFold(answer, "y") {
		fmt.Fprintln(sh.out, "Cancelled")
		return
	}
	if err := sh.sess.Clear(path); err != nil {
		sh.printFileError(path, err)
		return
	}
	fmt.Fprintf(sh.out, "Cleared %s\n", path)
}

func (sh *shell) handleStats() {
	st := sh.sess.Stats()
	fmt.Fprintf(sh.out, "Session %s\n", sh.sess.ID)
	fmt.Fprintf(sh.out, "  records:  %d\n", sh.sess.Catalog().Len())
	fmt.Fprintf(sh.out, "  loads:    %d  saves: %d  failures: %d\n", st.Loads, st.Saves, st.Failures)
	fmt.Fprintf(sh.out, "  inserts:  %d  deletes: %d  searches: %d\n", st.Inserts, st.Deletes, st.Searches)
	fmt.Fprintf(sh.out, "  hit rate: %.2f\n", st.GetHitRatio())
}

func (sh *shell) printMenu() {
	fmt.Fprintln(sh.out, `
 ====== MENU ==================================
  l | load catalog from file (.csv or .db)
  p | print catalog
  a | add book
  d | delete book(s) by title
  s | save catalog to file (.csv or .db)
  f | search by author and/or year
  sql | query: SELECT * FROM books WHERE ...
  t | total number of copies
  v | genre distribution
  y | copies by year
  r | write xlsx report with charts
  x | export snapshot database
  i | import snapshot database
  c | clear snapshot database
  stats | session statistics
  h | help
  q | exit
 ==============================================`)
}
