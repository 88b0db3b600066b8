// Package console is the interactive terminal front end of the catalog.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"time"

	"bookcatalog/internal/book"

	"github.com/rs/zerolog"
)

var errInputClosed = errors.New("input closed")

// BookService is the part of book.Service the menu drives.
type BookService interface {
	GetAllBooks(ctx context.Context) ([]book.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (book.Book, bool, error)
	GetBookByID(ctx context.Context, id int) (book.Book, bool, error)
	AddBook(ctx context.Context, b *book.Book) (book.Book, error)
	UpdateBook(ctx context.Context, b *book.Book) (bool, error)
	ChangeBookISBN(ctx context.Context, id int, isbn string) (bool, error)
	DeleteBookByISBN(ctx context.Context, isbn string) (bool, error)
	DeleteBookByID(ctx context.Context, id int) (bool, error)
}

type Menu struct {
	svc BookService
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
	now func() time.Time
}

func NewMenu(svc BookService, in io.Reader, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
		now: time.Now,
	}
}

// Run shows the instructions and then the main menu until the user exits
// or input ends. Closed input is not an error.
func (m *Menu) Run(ctx context.Context) error {
	err := m.loop(ctx)
	if errors.Is(err, errInputClosed) {
		m.log.Info().Msg("input closed, leaving menu")
		return nil
	}
	return err
}

func (m *Menu) loop(ctx context.Context) error {
	if err := m.showInstructions(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=====================================")
		fmt.Fprintln(m.out, "       Library Management System     ")
		fmt.Fprintln(m.out, "=====================================")
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Please select an option:")
		fmt.Fprintln(m.out, "1. Add a new book")
		fmt.Fprintln(m.out, "2. Update an existing book by ISBN or Id")
		fmt.Fprintln(m.out, "3. Delete a book by ISBN or Id")
		fmt.Fprintln(m.out, "4. List all books")
		fmt.Fprintln(m.out, "5. View details of a specific book by ISBN or Id")
		fmt.Fprintln(m.out, "6. Exit")
		fmt.Fprintln(m.out)

		choice, err := m.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.section(ctx, "add", m.addBook)
		case "2":
			err = m.section(ctx, "update", m.updateBook)
		case "3":
			err = m.section(ctx, "delete", m.deleteBook)
		case "4":
			err = m.section(ctx, "list", m.listBooks)
		case "5":
			err = m.section(ctx, "view", m.viewBook)
		case "6":
			fmt.Fprintln(m.out, "Exiting the application. Thank You!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option, please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// section runs one menu entry, logging its duration and turning a panic
// into a message so the menu keeps running.
func (m *Menu) section(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			m.log.Error().
				Str("section", name).
				Interface("panic", rec).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, "An internal error occurred.")
			err = nil
		}
		m.log.Debug().
			Str("section", name).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("section finished")
	}()
	return fn(ctx)
}

// report logs the outcome of one catalog operation.
func (m *Menu) report(op string, err error, fields map[string]any) {
	ev := m.log.Info()
	if err != nil {
		ev = m.log.Warn().Str("kind", book.Kind(err)).Err(err)
	}
	ev.Str("op", op).Fields(fields).Msg("catalog operation")
}

func (m *Menu) printError(err error) {
	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *Menu) showInstructions() error {
	fmt.Fprintln(m.out, "=====================================")
	fmt.Fprintln(m.out, " Welcome to the Library Management System ")
	fmt.Fprintln(m.out, "=====================================")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Instructions:")
	fmt.Fprintln(m.out, "1. You can add, update, delete, list, and view books.")
	fmt.Fprintln(m.out, "2. Follow the prompts for each option to enter the required details.")
	fmt.Fprintln(m.out, "3. Make sure to enter valid data, especially for ISBN and Year.")
	fmt.Fprintln(m.out, "4. To exit, select the appropriate option from the main menu.")
	return m.waitForEnter("Press Enter to continue...")
}

func (m *Menu) addBook(ctx context.Context) error {
	for {
		m.heading("Add a New Book")

		title, err := m.promptNonEmpty("Enter Title: ")
		if err != nil {
			return err
		}
		author, err := m.promptNonEmpty("Enter Author: ")
		if err != nil {
			return err
		}
		isbn, err := m.promptISBN()
		if err != nil {
			return err
		}
		year, err := m.promptYear()
		if err != nil {
			return err
		}

		b, opErr := book.New(title, author, isbn, year)
		var added book.Book
		if opErr == nil {
			added, opErr = m.svc.AddBook(ctx, &b)
		}
		m.report("add", opErr, map[string]any{"isbn": isbn, "id": added.ID})

		if opErr != nil {
			m.printError(opErr)
		} else {
			fmt.Fprintln(m.out)
			fmt.Fprintf(m.out, "Book added successfully with the ID: %d\n", added.ID)
		}

		again, err := m.promptAnother()
		if err != nil || !again {
			return err
		}
	}
}

func (m *Menu) updateBook(ctx context.Context) error {
	for {
		m.heading("Update an Existing Book")

		current, found, err := m.findBook(ctx)
		if err != nil {
			return err
		}

		if !found {
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, "Book not found.")
		} else {
			fmt.Fprintln(m.out)
			fmt.Fprintf(m.out, "Current ISBN: %s\n", current.ISBN)

			isbn, err := m.promptISBN()
			if err != nil {
				return err
			}
			title, err := m.promptNonEmpty("Enter new Title: ")
			if err != nil {
				return err
			}
			author, err := m.promptNonEmpty("Enter new Author: ")
			if err != nil {
				return err
			}
			year, err := m.promptYear()
			if err != nil {
				return err
			}

			opErr := m.applyUpdate(ctx, current, isbn, title, author, year)
			m.report("update", opErr, map[string]any{"id": current.ID, "isbn": isbn})
			if opErr != nil {
				m.printError(opErr)
			} else {
				fmt.Fprintln(m.out)
				fmt.Fprintln(m.out, "Book updated successfully.")
			}
		}

		again, err := m.promptAnother()
		if err != nil || !again {
			return err
		}
	}
}

// applyUpdate validates the edited record first so that an ISBN change is
// never applied without the rest of the update.
func (m *Menu) applyUpdate(ctx context.Context, current book.Book, isbn, title, author string, year int) error {
	edited, err := book.New(title, author, isbn, year)
	if err != nil {
		return err
	}
	edited.ID = current.ID

	if edited.ISBN != current.ISBN {
		if _, err := m.svc.ChangeBookISBN(ctx, current.ID, edited.ISBN); err != nil {
			return err
		}
	}
	_, err = m.svc.UpdateBook(ctx, &edited)
	return err
}

func (m *Menu) deleteBook(ctx context.Context) error {
	for {
		m.heading("Delete a Book")

		b, found, err := m.findBook(ctx)
		if err != nil {
			return err
		}

		if !found {
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, "Book not found.")
		} else {
			ok, opErr := m.svc.DeleteBookByID(ctx, b.ID)
			m.report("delete", opErr, map[string]any{"id": b.ID, "isbn": b.ISBN})
			switch {
			case opErr != nil:
				m.printError(opErr)
			case ok:
				fmt.Fprintln(m.out)
				fmt.Fprintln(m.out, "Book deleted successfully.")
			default:
				fmt.Fprintln(m.out)
				fmt.Fprintln(m.out, "Book could not be deleted.")
			}
		}

		again, err := m.promptAnother()
		if err != nil || !again {
			return err
		}
	}
}

func (m *Menu) viewBook(ctx context.Context) error {
	for {
		m.heading("View Book Details")

		b, found, err := m.findBook(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		if found {
			fmt.Fprintf(m.out, "Title: %s\n", b.Title)
			fmt.Fprintf(m.out, "Author: %s\n", b.Author)
			fmt.Fprintf(m.out, "ISBN: %s\n", b.ISBN)
			fmt.Fprintf(m.out, "Year: %d\n", b.Year)
		} else {
			fmt.Fprintln(m.out, "Book not found.")
		}

		again, err := m.promptAnother()
		if err != nil || !again {
			return err
		}
	}
}

func (m *Menu) listBooks(ctx context.Context) error {
	m.heading("List of All Books")

	books, err := m.svc.GetAllBooks(ctx)
	m.report("list", err, map[string]any{"count": len(books)})
	switch {
	case err != nil:
		m.printError(err)
	case len(books) == 0:
		fmt.Fprintln(m.out, "No books available.")
	default:
		for _, b := range books {
			fmt.Fprintf(m.out, "ID: %d, Title: %s, Author: %s, ISBN: %s, Year: %d\n", b.ID, b.Title, b.Author, b.ISBN, b.Year)
		}
	}

	return m.waitForEnter("Press Enter to return to the main menu...")
}

// findBook asks for an ID or ISBN and looks the book up. Lookup failures
// are shown to the user and reported as not found; only input errors are
// returned.
func (m *Menu) findBook(ctx context.Context) (book.Book, bool, error) {
	fmt.Fprintln(m.out, "Would you like to search for the book by ID or ISBN?")
	fmt.Fprintln(m.out, "1. By ID")
	fmt.Fprintln(m.out, "2. By ISBN")

	choice, err := m.prompt("Enter your choice: ")
	if err != nil {
		return book.Book{}, false, err
	}

	var (
		b       book.Book
		found   bool
		findErr error
	)
	switch choice {
	case "1":
		s, err := m.promptNonEmpty("Enter Book ID: ")
		if err != nil {
			return book.Book{}, false, err
		}
		id, convErr := strconv.Atoi(s)
		if convErr != nil {
			return book.Book{}, false, nil
		}
		b, found, findErr = m.svc.GetBookByID(ctx, id)
	case "2":
		isbn, err := m.promptISBN()
		if err != nil {
			return book.Book{}, false, err
		}
		b, found, findErr = m.svc.GetBookByISBN(ctx, isbn)
	default:
		return book.Book{}, false, nil
	}

	if findErr != nil {
		m.report("find", findErr, nil)
		m.printError(findErr)
		return book.Book{}, false, nil
	}
	return b, found, nil
}
