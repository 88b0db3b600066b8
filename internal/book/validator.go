package book

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	hyphenatedISBN = regexp.MustCompile(`^(97[89]-?)?\d{1,5}-\d{1,7}-\d{1,7}-\d{1,7}-\d{1,3}$`)
	compactISBN    = regexp.MustCompile(`^\d{10,13}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterValidation("isbn", validateISBN)
}

// ValidISBN reports whether isbn is in the hyphenated form, optionally
// with a 978/979 prefix, or the compact form of 10 to 13 digits.
func ValidISBN(isbn string) bool {
	return hyphenatedISBN.MatchString(isbn) || compactISBN.MatchString(isbn)
}

func validateISBN(fl validator.FieldLevel) bool {
	return ValidISBN(fl.Field().String())
}

// Validate checks the field rules of a book. It returns a *ValidationError
// listing every failing field, or nil.
func Validate(b Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "isbn":
			message = fmt.Sprintf("%s must match the ISBN format (e.g. 978-3-16-148410-0)", field)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		fields = append(fields, FieldError{Field: field, Message: message})
	}

	return &ValidationError{Message: "invalid book", Fields: fields}
}
