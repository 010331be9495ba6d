package wizard

import (
	"errors"
	"testing"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
	}{
		{"valid name", FieldName, "Ravi Kumar", nil},
		{"single letter name", FieldName, "R", ErrNameTooShort},
		{"empty name", FieldName, "", ErrAnswerRequired},
		{"valid email", FieldEmail, "ravi@gmail.com", nil},
		{"email missing domain dot", FieldEmail, "ravi@gmail", ErrInvalidEmail},
		{"email missing at", FieldEmail, "ravi.gmail.com", ErrInvalidEmail},
		{"empty email", FieldEmail, "", ErrAnswerRequired},
		{"valid password", FieldPassword, "Secret1!", nil},
		{"short password", FieldPassword, "12345", ErrPasswordTooShort},
		{"empty password", FieldPassword, "", ErrAnswerRequired},
		{"empty phone is a skip", FieldPhone, "", nil},
		{"short phone", FieldPhone, "12345", ErrInvalidPhone},
		{"valid phone", FieldPhone, "98765 43210", nil},
		{"valid location", FieldLocation, "Mumbai", nil},
		{"short location", FieldLocation, "M", ErrLocationTooShort},
		{"valid category", FieldCategory, "Pottery", nil},
		{"short category", FieldCategory, "P", ErrCategoryTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.field, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateField(%s, %q) = %v, want %v", tt.field, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldRuneLength(t *testing.T) {
	// Two Devanagari runes are more than two bytes but still a valid name.
	if err := ValidateField(FieldName, "रा"); err != nil {
		t.Errorf("ValidateField(name, devanagari) = %v, want nil", err)
	}
}
