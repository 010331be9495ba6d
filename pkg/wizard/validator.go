package wizard

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrAnswerRequired   = errors.New("an answer is required for this question")
	ErrNameTooShort     = errors.New("name must be at least 2 characters long")
	ErrInvalidEmail     = errors.New("please provide a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrInvalidPhone     = errors.New("please provide a valid phone number")
	ErrLocationTooShort = errors.New("location must be at least 2 characters long")
	ErrCategoryTooShort = errors.New("category must be at least 2 characters long")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateField decides whether a normalized answer may be stored. Phone is
// the only optional field: an empty phone answer is accepted as a skip.
func ValidateField(field string, value string) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if field == FieldPhone {
			return nil
		}
		return ErrAnswerRequired
	}

	switch field {
	case FieldName:
		if len([]rune(trimmed)) < 2 {
			return ErrNameTooShort
		}
	case FieldEmail:
		if !emailRegex.MatchString(trimmed) {
			return ErrInvalidEmail
		}
	case FieldPassword:
		if len(value) < 6 {
			return ErrPasswordTooShort
		}
	case FieldPhone:
		if len(trimmed) < 10 {
			return ErrInvalidPhone
		}
	case FieldLocation:
		if len([]rune(trimmed)) < 2 {
			return ErrLocationTooShort
		}
	case FieldCategory:
		if len([]rune(trimmed)) < 2 {
			return ErrCategoryTooShort
		}
	}

	return nil
}
