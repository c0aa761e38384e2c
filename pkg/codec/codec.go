// Package codec reads and writes the catalog as a delimited text table: a
// header row naming the five schema fields, then one row per book.
package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
	"github.com/PapproxNP/books/pkg/logging"
)

type Codec struct {
	comma  rune
	logger *slog.Logger
}

type Option func(*Codec)

// WithDelimiter sets the field separator. The default is a comma.
func WithDelimiter(r rune) Option {
	return func(c *Codec) {
		c.comma = r
	}
}

// WithLogger sets where coercion warnings go.
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(opts ...Option) *Codec {
	c := &Codec{
		comma:  ',',
		logger: logging.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the catalog stored at path.
func (c *Codec) Load(path string) (core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Catalog{}, ioErr("open", path, err)
	}
	defer f.Close()

	cat, err := c.Decode(f)
	if err != nil {
		return core.Catalog{}, err
	}
	c.logger.Debug("catalog loaded", "path", path, "records", cat.Len())
	return cat, nil
}

// Save writes cat to path, replacing any existing file.
func (c *Codec) Save(cat core.Catalog, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErr("close", path, cerr)
		}
	}()

	if err := c.Encode(f, cat); err != nil {
		return err
	}
	c.logger.Debug("catalog saved", "path", path, "records", cat.Len())
	return nil
}

// Decode parses a table. Header and row-shape problems fail with a
// *FormatError; a non-numeric year or copies value is replaced by the
// unknown year or 0 and logged as a warning.
func (c *Codec) Decode(r io.Reader) (core.Catalog, error) {
	cr := csv.NewReader(r)
	cr.Comma = c.comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return core.Catalog{}, formatErr(0, nil, "missing header row")
	}
	if err != nil {
		return core.Catalog{}, readErr(err)
	}
	headerLine, _ := cr.FieldPos(0)
	cols, err := parseHeader(header, headerLine)
	if err != nil {
		return core.Catalog{}, err
	}

	var books []common.Book
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return core.Catalog{}, readErr(err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != len(header) {
			return core.Catalog{}, formatErr(line, nil, "expected %d columns, got %d", len(header), len(row))
		}
		b, err := c.decodeRow(row, cols, line)
		if err != nil {
			return core.Catalog{}, err
		}
		books = append(books, b)
	}
	return core.New(books...), nil
}

func (c *Codec) decodeRow(row []string, cols columns, line int) (common.Book, error) {
	b := common.Book{
		Title:  row[cols[common.FieldTitle]],
		Author: row[cols[common.FieldAuthor]],
		Genre:  row[cols[common.FieldGenre]],
	}
	if strings.TrimSpace(b.Title) == "" {
		return common.Book{}, formatErr(line, nil, "empty title")
	}

	rawYear := row[cols[common.FieldYear]]
	year, ok := common.ParseYear(rawYear)
	if !ok {
		c.warnCoerced(line, common.FieldYear, rawYear)
	}
	b.Year = year

	rawCopies := row[cols[common.FieldCopies]]
	copies, ok := common.ParseCopies(rawCopies)
	if !ok {
		c.warnCoerced(line, common.FieldCopies, rawCopies)
	}
	b.Copies = copies

	return b, nil
}

func (c *Codec) warnCoerced(line int, field, value string) {
	c.logger.Warn("non-numeric field replaced by default",
		"line", line,
		"field", field,
		"value", value,
	)
}

// Encode writes the header and every record in catalog order.
func (c *Codec) Encode(w io.Writer, cat core.Catalog) error {
	cw := csv.NewWriter(w)
	cw.Comma = c.comma

	if err := cw.Write(common.Fields); err != nil {
		return fmt.Errorf("%w: write header: %w", ErrIO, err)
	}
	for _, b := range cat.All() {
		if err := cw.Write(b.Row()); err != nil {
			return fmt.Errorf("%w: write row: %w", ErrIO, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrIO, err)
	}
	return nil
}

func readErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return formatErr(pe.Line, err, "%v", pe.Err)
	}
	return fmt.Errorf("%w: read: %w", ErrIO, err)
}
