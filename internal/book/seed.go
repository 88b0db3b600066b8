package book

import (
	"context"
	"fmt"
)

// SeedData returns example books to pre-populate the catalog.
func SeedData() []Book {
	return []Book{
		{
			Title:  "The Go Programming Language",
			Author: "Alan A. A. Donovan",
			ISBN:   "978-0-13-419044-0",
			Year:   2015,
		},
		{
			Title:  "Introducing Go",
			Author: "Caleb Doxsey",
			ISBN:   "978-1-4919-4195-9",
			Year:   2016,
		},
		{
			Title:  "Concurrency in Go",
			Author: "Katherine Cox-Buday",
			ISBN:   "978-1-4919-4119-5",
			Year:   2017,
		},
		{
			Title:  "Go in Practice",
			Author: "Matt Butcher",
			ISBN:   "978-1-63343-007-5",
			Year:   2016,
		},
	}
}

// Seed adds books through the service and returns how many were stored.
// It stops at the first error.
func Seed(ctx context.Context, s *Service, books []Book) (int, error) {
	for i := range books {
		b := books[i]
		if _, err := s.AddBook(ctx, &b); err != nil {
			return i, fmt.Errorf("seed %q: %w", b.ISBN, err)
		}
	}
	return len(books), nil
}
