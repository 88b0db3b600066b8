package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(isbn string) *Book {
	return &Book{Title: "Test Book", Author: "Test Author", ISBN: isbn, Year: 2020}
}

func TestMemoryRepo_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids", func(t *testing.T) {
		repo := NewMemoryRepo()
		isbns := []string{"978-3-16-148410-0", "978-3-16-148410-1", "978-3-16-148410-2"}
		for i, isbn := range isbns {
			added, err := repo.Add(ctx, testBook(isbn))
			require.NoError(t, err)
			assert.Equal(t, i+1, added.ID)
		}
	})

	t.Run("writes id back to caller", func(t *testing.T) {
		repo := NewMemoryRepo()
		b := testBook("978-3-16-148410-0")
		_, err := repo.Add(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, 1, b.ID)
	})

	t.Run("duplicate isbn conflicts", func(t *testing.T) {
		repo := NewMemoryRepo()
		added, err := repo.Add(ctx, testBook("978-3-16-148410-0"))
		require.NoError(t, err)
		assert.Equal(t, 1, added.ID)

		_, err = repo.Add(ctx, testBook("978-3-16-148410-0"))
		assert.ErrorIs(t, err, ErrConflict)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("nil book", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.Add(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 0, repo.Count())
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.Add(ctx, testBook("978-3-16-148410-0"))
		require.NoError(t, err)
		_, err = repo.Add(ctx, testBook("978-3-16-148410-1"))
		require.NoError(t, err)

		ok, err := repo.DeleteByID(ctx, 2)
		require.NoError(t, err)
		require.True(t, ok)

		added, err := repo.Add(ctx, testBook("978-3-16-148410-2"))
		require.NoError(t, err)
		assert.Equal(t, 3, added.ID)
	})
}

func TestMemoryRepo_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, _ = repo.Add(ctx, testBook("978-3-16-148410-2"))
	_, _ = repo.Add(ctx, testBook("978-3-16-148410-1"))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "978-3-16-148410-2", all[0].ISBN)
	assert.Equal(t, "978-3-16-148410-1", all[1].ISBN)

	all[0].Title = "changed"
	again, _ := repo.GetAll(ctx)
	assert.Equal(t, "Test Book", again[0].Title)
}

func TestMemoryRepo_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	_, err := repo.Add(ctx, testBook("978-3-16-148410-0"))
	require.NoError(t, err)

	t.Run("by isbn", func(t *testing.T) {
		b, ok, err := repo.GetByISBN(ctx, "978-3-16-148410-0")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, b.ID)
	})

	t.Run("by isbn miss", func(t *testing.T) {
		_, ok, err := repo.GetByISBN(ctx, "978-3-16-148410-9")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("by isbn blank", func(t *testing.T) {
		for _, isbn := range []string{"", "   "} {
			_, _, err := repo.GetByISBN(ctx, isbn)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}
	})

	t.Run("by id", func(t *testing.T) {
		b, ok, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "978-3-16-148410-0", b.ISBN)
	})

	t.Run("by id miss", func(t *testing.T) {
		_, ok, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields but not id", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.Add(ctx, testBook("978-3-16-148410-0"))
		require.NoError(t, err)

		ok, err := repo.Update(ctx, &Book{ID: 99, Title: "Updated Title", Author: "Updated Author", ISBN: "978-3-16-148410-0", Year: 2021})
		require.NoError(t, err)
		assert.True(t, ok)

		b, found, _ := repo.GetByISBN(ctx, "978-3-16-148410-0")
		require.True(t, found)
		assert.Equal(t, Book{ID: 1, Title: "Updated Title", Author: "Updated Author", ISBN: "978-3-16-148410-0", Year: 2021}, b)
	})

	t.Run("missing isbn", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.Add(ctx, testBook("978-3-16-148410-0"))
		require.NoError(t, err)

		ok, err := repo.Update(ctx, testBook("978-3-16-148410-5"))
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrNotFound)

		all, _ := repo.GetAll(ctx)
		assert.Equal(t, []Book{{ID: 1, Title: "Test Book", Author: "Test Author", ISBN: "978-3-16-148410-0", Year: 2020}}, all)
	})

	t.Run("nil book", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.Update(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestMemoryRepo_UpdateISBN(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	_, _ = repo.Add(ctx, testBook("978-3-16-148410-0"))
	_, _ = repo.Add(ctx, testBook("978-3-16-148410-1"))

	tests := []struct {
		name    string
		id      int
		isbn    string
		wantErr error
	}{
		{"blank isbn", 1, " ", ErrInvalidArgument},
		{"missing id", 7, "978-3-16-148410-7", ErrNotFound},
		{"taken by another book", 1, "978-3-16-148410-1", ErrConflict},
		{"unchanged", 1, "978-3-16-148410-0", nil},
		{"new isbn", 1, "978-3-16-148410-5", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := repo.UpdateISBN(ctx, tt.id, tt.isbn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.True(t, ok)
			b, found, _ := repo.GetByID(ctx, tt.id)
			require.True(t, found)
			assert.Equal(t, tt.isbn, b.ISBN)
		})
	}

	second, _, _ := repo.GetByID(ctx, 2)
	assert.Equal(t, "978-3-16-148410-1", second.ISBN)
}

func TestMemoryRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("by id twice", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, _ = repo.Add(ctx, testBook("978-3-16-148410-0"))

		ok, err := repo.DeleteByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		_, found, _ := repo.GetByID(ctx, 1)
		assert.False(t, found)

		ok, err = repo.DeleteByID(ctx, 1)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("by isbn twice", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, _ = repo.Add(ctx, testBook("978-3-16-148410-0"))
		_, _ = repo.Add(ctx, testBook("978-3-16-148410-1"))

		ok, err := repo.DeleteByISBN(ctx, "978-3-16-148410-0")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, repo.Count())

		_, err = repo.DeleteByISBN(ctx, "978-3-16-148410-0")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("by isbn blank", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.DeleteByISBN(ctx, "")
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})
}
