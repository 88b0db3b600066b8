package book

import "strings"

// Book represents a catalog record.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title" validate:"required,max=100"`
	Author string `json:"author" validate:"required,max=100"`
	ISBN   string `json:"isbn" validate:"required,isbn"`
	Year   int    `json:"year" validate:"gt=0"`
}

// New builds a Book from user input and validates it. The ID is left for
// the repository to assign.
func New(title, author, isbn string, year int) (Book, error) {
	b := Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		ISBN:   strings.TrimSpace(isbn),
		Year:   year,
	}
	if err := Validate(b); err != nil {
		return Book{}, err
	}
	return b, nil
}
