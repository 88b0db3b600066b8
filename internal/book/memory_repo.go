package book

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// MemoryRepo keeps books in insertion order for the lifetime of the
// process. It is not safe for concurrent use.
type MemoryRepo struct {
	books  []Book
	lastID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Count returns the number of stored books.
func (r *MemoryRepo) Count() int {
	return len(r.books)
}

func (r *MemoryRepo) GetAll(_ context.Context) ([]Book, error) {
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) GetByISBN(_ context.Context, isbn string) (Book, bool, error) {
	if isBlank(isbn) {
		return Book{}, false, errEmptyISBN()
	}
	i := r.indexByISBN(isbn)
	if i < 0 {
		return Book{}, false, nil
	}
	return r.books[i], true, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int) (Book, bool, error) {
	i := r.indexByID(id)
	if i < 0 {
		return Book{}, false, nil
	}
	return r.books[i], true, nil
}

// Add stores a copy of book under the next ID and writes that ID back to
// the caller's value.
func (r *MemoryRepo) Add(_ context.Context, book *Book) (Book, error) {
	if book == nil {
		return Book{}, errNilBook()
	}
	if isBlank(book.ISBN) {
		return Book{}, errEmptyISBN()
	}
	if r.indexByISBN(book.ISBN) >= 0 {
		return Book{}, fmt.Errorf("%w: isbn %s", ErrConflict, book.ISBN)
	}

	r.lastID++
	book.ID = r.lastID
	r.books = append(r.books, *book)
	return *book, nil
}

// Update overwrites title, author and year of the book with the same ISBN.
func (r *MemoryRepo) Update(_ context.Context, book *Book) (bool, error) {
	if book == nil {
		return false, errNilBook()
	}
	if isBlank(book.ISBN) {
		return false, errEmptyISBN()
	}
	i := r.indexByISBN(book.ISBN)
	if i < 0 {
		return false, fmt.Errorf("%w: isbn %s", ErrNotFound, book.ISBN)
	}

	existing := &r.books[i]
	existing.Title = book.Title
	existing.Author = book.Author
	existing.Year = book.Year
	return true, nil
}

// UpdateISBN changes the ISBN of the book with the given ID in place.
func (r *MemoryRepo) UpdateISBN(_ context.Context, id int, isbn string) (bool, error) {
	if isBlank(isbn) {
		return false, errEmptyISBN()
	}
	i := r.indexByID(id)
	if i < 0 {
		return false, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if r.books[i].ISBN == isbn {
		return true, nil
	}
	if r.indexByISBN(isbn) >= 0 {
		return false, fmt.Errorf("%w: isbn %s", ErrConflict, isbn)
	}

	r.books[i].ISBN = isbn
	return true, nil
}

func (r *MemoryRepo) DeleteByISBN(_ context.Context, isbn string) (bool, error) {
	if isBlank(isbn) {
		return false, errEmptyISBN()
	}
	i := r.indexByISBN(isbn)
	if i < 0 {
		return false, fmt.Errorf("%w: isbn %s", ErrNotFound, isbn)
	}
	r.books = slices.Delete(r.books, i, i+1)
	return true, nil
}

func (r *MemoryRepo) DeleteByID(_ context.Context, id int) (bool, error) {
	i := r.indexByID(id)
	if i < 0 {
		return false, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	r.books = slices.Delete(r.books, i, i+1)
	return true, nil
}

func (r *MemoryRepo) indexByISBN(isbn string) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ISBN == isbn })
}

func (r *MemoryRepo) indexByID(id int) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func errNilBook() error {
	return fmt.Errorf("%w: book cannot be nil", ErrInvalidArgument)
}

func errEmptyISBN() error {
	return fmt.Errorf("%w: ISBN cannot be empty", ErrInvalidArgument)
}
