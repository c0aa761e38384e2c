package storage

import (
	"database/sql"
	"fmt"

	"github.com/PapproxNP/books/pkg/common"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps the catalog snapshot in a single table. The
// position column preserves catalog order.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrBackend, path, err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS books (
		position INTEGER PRIMARY KEY,
		title    TEXT NOT NULL,
		author   TEXT NOT NULL,
		year     INTEGER,
		genre    TEXT NOT NULL,
		copies   INTEGER NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init table: %w", ErrBackend, err)
	}

	return &SQLiteBackend{db: db}, nil
}

// SaveAll replaces the stored snapshot in one transaction.
func (s *SQLiteBackend) SaveAll(books []common.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrBackend, err)
	}

	if _, err := tx.Exec("DELETE FROM books"); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: clear: %w", ErrBackend, err)
	}

	stmt, err := tx.Prepare("INSERT INTO books (position, title, author, year, genre, copies) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: prepare: %w", ErrBackend, err)
	}
	defer stmt.Close()

	for i, b := range books {
		var year sql.NullInt64
		if y, ok := b.Year.Value(); ok {
			year = sql.NullInt64{Int64: int64(y), Valid: true}
		}
		if _, err := stmt.Exec(i, b.Title, b.Author, year, b.Genre, b.Copies); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: insert %q: %w", ErrBackend, b.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrBackend, err)
	}
	return nil
}

func (s *SQLiteBackend) LoadAll() ([]common.Book, error) {
	rows, err := s.db.Query("SELECT title, author, year, genre, copies FROM books ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: query: %w", ErrBackend, err)
	}
	defer rows.Close()

	var books []common.Book
	for rows.Next() {
		var (
			b    common.Book
			year sql.NullInt64
		)
		if err := rows.Scan(&b.Title, &b.Author, &year, &b.Genre, &b.Copies); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", ErrBackend, err)
		}
		if year.Valid {
			b.Year = common.KnownYear(int(year.Int64))
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", ErrBackend, err)
	}
	return books, nil
}

func (s *SQLiteBackend) Truncate() error {
	if _, err := s.db.Exec("DELETE FROM books"); err != nil {
		return fmt.Errorf("%w: truncate: %w", ErrBackend, err)
	}
	return nil
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
