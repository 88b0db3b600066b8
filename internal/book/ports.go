package book

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookcatalog/internal/book Repository

// Repository defines the contract for book storage. Lookups report a miss
// with ok=false; mutations report a miss with ErrNotFound.
type Repository interface {
	GetAll(ctx context.Context) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, bool, error)
	GetByID(ctx context.Context, id int) (Book, bool, error)
	Add(ctx context.Context, book *Book) (Book, error)
	Update(ctx context.Context, book *Book) (bool, error)
	UpdateISBN(ctx context.Context, id int, isbn string) (bool, error)
	DeleteByISBN(ctx context.Context, isbn string) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
