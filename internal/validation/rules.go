package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hkbertoson/form-relay/internal/errs"
	"github.com/hkbertoson/form-relay/internal/payload"
)

// MessageEmpty is reported for a missing or blank field.
const MessageEmpty = "is empty"

// Rule checks one submitted field with a validator tag.
type Rule struct {
	// Field is the payload key the rule reads.
	Field string

	// Tag is a go-playground/validator tag applied to the trimmed value.
	Tag string

	// Message is recorded under Field when the tag fails.
	Message string
}

// Rules are applied in order. Edit this list to match the fields of
// your form; keys not listed here pass through unchecked.
var Rules = []Rule{
	{Field: "email", Tag: "required", Message: MessageEmpty},
	{Field: "subject", Tag: "required", Message: MessageEmpty},
	{Field: "message", Tag: "required", Message: MessageEmpty},
}

// Result is the outcome of Validate.
type Result struct {
	Valid  bool
	Errors errs.FieldErrors
}

var validate = validator.New()

// Validate applies Rules to p.
//
// A nil payload fails as a whole with a single `payload` entry.
func Validate(p payload.Payload) Result {
	if p == nil {
		return Result{
			Valid:  false,
			Errors: errs.FieldErrors{"payload": MessageEmpty},
		}
	}

	fieldErrors := errs.FieldErrors{}
	for _, rule := range Rules {
		value := strings.TrimSpace(p.Get(rule.Field))
		if err := validate.Var(value, rule.Tag); err != nil {
			fieldErrors[rule.Field] = rule.Message
		}
	}

	return Result{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	}
}

// IsEmail reports whether s is syntactically an email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
