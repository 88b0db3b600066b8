package book

import (
	"context"
)

// Service checks ISBN format and field rules before mutations reach the
// repository. Reads are passed through unchanged.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAllBooks returns every book in insertion order.
func (s *Service) GetAllBooks(ctx context.Context) ([]Book, error) {
	return s.repo.GetAll(ctx)
}

// GetBookByISBN returns a book by its ISBN.
func (s *Service) GetBookByISBN(ctx context.Context, isbn string) (Book, bool, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// GetBookByID returns a book by its ID.
func (s *Service) GetBookByID(ctx context.Context, id int) (Book, bool, error) {
	return s.repo.GetByID(ctx, id)
}

// AddBook validates book and stores it. The returned book carries its ID.
func (s *Service) AddBook(ctx context.Context, book *Book) (Book, error) {
	if book == nil {
		return Book{}, errNilBook()
	}
	if err := checkRecord(*book); err != nil {
		return Book{}, err
	}
	return s.repo.Add(ctx, book)
}

// UpdateBook validates book and overwrites the stored book with the same ISBN.
func (s *Service) UpdateBook(ctx context.Context, book *Book) (bool, error) {
	if book == nil {
		return false, errNilBook()
	}
	if err := checkRecord(*book); err != nil {
		return false, err
	}
	return s.repo.Update(ctx, book)
}

// ChangeBookISBN moves the book with the given ID to a new ISBN.
func (s *Service) ChangeBookISBN(ctx context.Context, id int, isbn string) (bool, error) {
	if !ValidISBN(isbn) {
		return false, ErrInvalidISBN
	}
	return s.repo.UpdateISBN(ctx, id, isbn)
}

func (s *Service) DeleteBookByISBN(ctx context.Context, isbn string) (bool, error) {
	if !ValidISBN(isbn) {
		return false, ErrInvalidISBN
	}
	return s.repo.DeleteByISBN(ctx, isbn)
}

func (s *Service) DeleteBookByID(ctx context.Context, id int) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}

// checkRecord reports a bad ISBN as ErrInvalidISBN ahead of the other
// field rules.
func checkRecord(b Book) error {
	if !ValidISBN(b.ISBN) {
		return ErrInvalidISBN
	}
	return Validate(b)
}
