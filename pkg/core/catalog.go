package core

import (
	"slices"

	"github.com/PapproxNP/books/pkg/common"
)

// Filter narrows a Search. Nil fields do not filter.
type Filter struct {
	Author *string
	Year   *int
}

// ByAuthor returns a filter on an exact author match.
func ByAuthor(author string) Filter {
	author = common.NormalizeText(author)
	return Filter{Author: &author}
}

// ByYear returns a filter on an exact (known) year match.
func ByYear(year int) Filter {
	return Filter{Year: &year}
}

// And combines two filters; fields set in o take precedence.
func (f Filter) And(o Filter) Filter {
	if o.Author != nil {
		f.Author = o.Author
	}
	if o.Year != nil {
		f.Year = o.Year
	}
	return f
}

func (f Filter) Match(b common.Book) bool {
	if f.Author != nil && b.Author != *f.Author {
		return false
	}
	if f.Year != nil {
		y, ok := b.Year.Value()
		if !ok || y != *f.Year {
			return false
		}
	}
	return true
}

// Catalog is an ordered, immutable collection of books. Operations return
// a new Catalog and never touch the receiver's backing array, so older
// values stay valid after an Insert or Delete. Text fields are stored with
// LF line breaks (see common.NormalizeText).
type Catalog struct {
	books []common.Book
}

func New(books ...common.Book) Catalog {
	out := make([]common.Book, len(books))
	for i, b := range books {
		out[i] = b.Normalized()
	}
	return Catalog{books: out}
}

func (c Catalog) Len() int {
	return len(c.books)
}

// All returns a copy of the records in catalog order.
func (c Catalog) All() []common.Book {
	out := make([]common.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Insert appends b as the last record.
func (c Catalog) Insert(b common.Book) Catalog {
	books := make([]common.Book, len(c.books), len(c.books)+1)
	copy(books, c.books)
	return Catalog{books: append(books, b.Normalized())}
}

// Delete removes every record titled exactly title and reports how many
// were removed. Zero means nothing matched and c is returned as is.
func (c Catalog) Delete(title string) (Catalog, int) {
	title = common.NormalizeText(title)
	if !c.Contains(title) {
		return c, 0
	}
	kept := make([]common.Book, 0, len(c.books))
	for _, b := range c.books {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	return Catalog{books: kept}, len(c.books) - len(kept)
}

func (c Catalog) Contains(title string) bool {
	title = common.NormalizeText(title)
	return slices.ContainsFunc(c.books, func(b common.Book) bool {
		return b.Title == title
	})
}

// Search returns the records matching f in catalog order. Author and year
// filters apply together when both are set.
func (c Catalog) Search(f Filter) []common.Book {
	out := make([]common.Book, 0)
	for _, b := range c.books {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}
