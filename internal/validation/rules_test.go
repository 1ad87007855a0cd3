package validation

import (
	"reflect"
	"testing"

	"github.com/hkbertoson/form-relay/internal/errs"
	"github.com/hkbertoson/form-relay/internal/payload"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		payload   payload.Payload
		wantValid bool
		wantErrs  errs.FieldErrors
	}{
		{
			name:      "absent payload",
			payload:   nil,
			wantValid: false,
			wantErrs:  errs.FieldErrors{"payload": "is empty"},
		},
		{
			name:      "all fields present",
			payload:   payload.Payload{"email": "a@b.com", "subject": "hi", "message": "hello"},
			wantValid: true,
			wantErrs:  errs.FieldErrors{},
		},
		{
			name:      "extra fields ignored",
			payload:   payload.Payload{"email": "a@b.com", "subject": "hi", "message": "hello", "name": "Ada"},
			wantValid: true,
			wantErrs:  errs.FieldErrors{},
		},
		{
			name:      "missing email",
			payload:   payload.Payload{"subject": "hi", "message": "hello"},
			wantValid: false,
			wantErrs:  errs.FieldErrors{"email": "is empty"},
		},
		{
			name:      "only unrelated fields",
			payload:   payload.Payload{"name": "Ada"},
			wantValid: false,
			wantErrs:  errs.FieldErrors{"email": "is empty", "subject": "is empty", "message": "is empty"},
		},
		{
			name:      "whitespace value built by hand",
			payload:   payload.Payload{"email": "a@b.com", "subject": "  ", "message": "hello"},
			wantValid: false,
			wantErrs:  errs.FieldErrors{"subject": "is empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.payload)
			if got.Valid != tt.wantValid {
				t.Errorf("expected valid=%v, got %v", tt.wantValid, got.Valid)
			}
			if !reflect.DeepEqual(got.Errors, tt.wantErrs) {
				t.Errorf("expected errors %v, got %v", tt.wantErrs, got.Errors)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last+tag@sub.example.org"}
	invalid := []string{"", "not-an-email", "a@", "@b.com", "a b@c.com"}

	for _, s := range valid {
		if !IsEmail(s) {
			t.Errorf("expected %q to be an email", s)
		}
	}
	for _, s := range invalid {
		if IsEmail(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
