package console

import (
	"fmt"
	"strconv"
	"strings"

	"bookcatalog/internal/book"
)

// readLine returns the next trimmed input line, or errInputClosed once
// input is exhausted.
func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptNonEmpty(label string) (string, error) {
	for {
		s, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(m.out, "Input cannot be empty. Please try again.")
	}
}

func (m *Menu) promptISBN() (string, error) {
	for {
		s, err := m.prompt("Enter ISBN (e.g., 978-3-16-148410-0): ")
		if err != nil {
			return "", err
		}
		if book.ValidISBN(s) {
			return s, nil
		}
		fmt.Fprintln(m.out, "Invalid ISBN format. Please enter a valid ISBN.")
	}
}

// promptYear accepts a 4-digit year no later than the current one.
func (m *Menu) promptYear() (int, error) {
	current := m.now().Year()
	for {
		s, err := m.prompt("Enter Year (e.g., 2000, 1995): ")
		if err != nil {
			return 0, err
		}
		year, convErr := strconv.Atoi(s)
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input. Please enter a valid year.")
			continue
		}
		if year >= 1000 && year <= current {
			return year, nil
		}
		fmt.Fprintf(m.out, "Invalid input. Please enter a valid 4-digit year not greater than %d.\n", current)
	}
}

func (m *Menu) promptAnother() (bool, error) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Do you want to perform another operation in this section? (Y/N)")
	s, err := m.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(s, "y"), nil
}

func (m *Menu) waitForEnter(label string) error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, label)
	_, err := m.readLine()
	return err
}

func (m *Menu) heading(title string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, title)
	fmt.Fprintln(m.out, strings.Repeat("=", len(title)))
	fmt.Fprintln(m.out)
}
