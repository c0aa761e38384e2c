package storage

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/PapproxNP/books/pkg/codec"
	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
)

// ErrBackend wraps failures reported by a storage engine.
var ErrBackend = errors.New("storage backend failure")

// Backend persists a whole catalog snapshot.
type Backend interface {
	LoadAll() ([]common.Book, error)
	SaveAll(books []common.Book) error
	Truncate() error
	Close() error
}

// Open picks a backend for path by extension: SQLite for .db, .sqlite and
// .sqlite3, the delimited text codec for everything else.
func Open(path string, c *codec.Codec) (Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteBackend(path)
	default:
		return NewCSVBackend(path, c), nil
	}
}

// CSVBackend stores the catalog as a delimited text file.
type CSVBackend struct {
	path  string
	codec *codec.Codec
}

func NewCSVBackend(path string, c *codec.Codec) *CSVBackend {
	if c == nil {
		c = codec.New()
	}
	return &CSVBackend{path: path, codec: c}
}

func (b *CSVBackend) LoadAll() ([]common.Book, error) {
	cat, err := b.codec.Load(b.path)
	if err != nil {
		return nil, err
	}
	return cat.All(), nil
}

func (b *CSVBackend) SaveAll(books []common.Book) error {
	return b.codec.Save(core.New(books...), b.path)
}

// Truncate rewrites the file with a header and no rows.
func (b *CSVBackend) Truncate() error {
	return b.codec.Save(core.New(), b.path)
}

func (b *CSVBackend) Close() error {
	return nil
}
