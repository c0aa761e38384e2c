// Package session owns the current catalog of one interactive session.
// Every command reads the catalog held here and stores back the value the
// catalog operation returns; there is no process-wide catalog.
package session

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/PapproxNP/books/pkg/codec"
	"github.com/PapproxNP/books/pkg/common"
	"github.com/PapproxNP/books/pkg/core"
	"github.com/PapproxNP/books/pkg/logging"
	"github.com/PapproxNP/books/pkg/monitor"
	"github.com/PapproxNP/books/pkg/storage"
)

type Session struct {
	ID      string
	catalog core.Catalog
	codec   *codec.Codec
	stats   *monitor.SessionStats
	logger  *slog.Logger
}

type Option func(*Session)

func WithCodec(c *codec.Codec) Option {
	return func(s *Session) {
		if c != nil {
			s.codec = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog starts the session from an existing catalog instead of an empty one.
func WithCatalog(c core.Catalog) Option {
	return func(s *Session) {
		s.catalog = c
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		codec:  codec.New(),
		stats:  monitor.NewSessionStats(),
		logger: logging.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.ID)
	return s
}

func (s *Session) Catalog() core.Catalog {
	return s.catalog
}

// Load replaces the catalog with the one stored at path. On error the
// current catalog is kept.
func (s *Session) Load(path string) error {
	// SQLite would create a missing database file and report an empty catalog.
	if _, err := os.Stat(path); err != nil {
		return s.fail("load", path, fmt.Errorf("%w: %w", codec.ErrIO, err))
	}
	b, err := storage.Open(path, s.codec)
	if err != nil {
		return s.fail("load", path, err)
	}
	defer b.Close()

	books, err := b.LoadAll()
	if err != nil {
		return s.fail("load", path, err)
	}
	s.catalog = core.New(books...)
	s.stats.RecordLoad()
	s.logger.Info("catalog loaded", "path", path, "records", s.catalog.Len())
	return nil
}

// Save writes the current catalog to path.
func (s *Session) Save(path string) error {
	b, err := storage.Open(path, s.codec)
	if err != nil {
		return s.fail("save", path, err)
	}
	defer b.Close()

	if err := b.SaveAll(s.catalog.All()); err != nil {
		return s.fail("save", path, err)
	}
	s.stats.RecordSave()
	s.logger.Info("catalog saved", "path", path, "records", s.catalog.Len())
	return nil
}

// Clear empties the stored catalog at path. The in-memory catalog is left
// as is.
func (s *Session) Clear(path string) error {
	b, err := storage.Open(path, s.codec)
	if err != nil {
		return s.fail("clear", path, err)
	}
	defer b.Close()

	if err := b.Truncate(); err != nil {
		return s.fail("clear", path, err)
	}
	s.logger.Info("stored catalog cleared", "path", path)
	return nil
}

func (s *Session) Add(b common.Book) {
	s.catalog = s.catalog.Insert(b)
	s.stats.RecordInsert()
	s.logger.Debug("book added", "title", b.Title)
}

// Delete removes every book titled title and returns how many went.
func (s *Session) Delete(title string) int {
	next, removed := s.catalog.Delete(title)
	s.catalog = next
	s.stats.RecordDelete(removed)
	s.logger.Debug("delete", "title", title, "removed", removed)
	return removed
}

func (s *Session) Search(f core.Filter) []common.Book {
	found := s.catalog.Search(f)
	s.stats.RecordSearch()
	if len(found) == 0 {
		s.stats.RecordMiss()
	}
	s.logger.Debug("search", "matches", len(found))
	return found
}

func (s *Session) Stats() monitor.Snapshot {
	return s.stats.Snapshot()
}

func (s *Session) fail(op, path string, err error) error {
	s.stats.RecordFailure()
	s.logger.Error(op+" failed", "path", path, "err", err)
	return err
}
