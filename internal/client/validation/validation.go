// Package validation checks request payloads before they leave the client.
// Rules are expressed as validator/v10 struct tags; failures come back as
// Errors with field names humanised for display next to the form field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is one failed rule on one field. Field is the JSON name.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Errors is returned by Struct when at least one rule fails.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Checker lets a payload add cross-field rules that tags cannot express.
// It runs only when the tag rules pass.
type Checker interface {
	Check() Errors
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v. Non-struct values (nil bodies, raw bytes, maps) are
// accepted as is.
func Struct(v any) error {
	if !isStruct(v) {
		return nil
	}

	err := validate.Struct(v)
	if err == nil {
		if c, ok := v.(Checker); ok {
			if errs := c.Check(); len(errs) > 0 {
				return errs
			}
		}
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func isStruct(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		if reflect.ValueOf(v).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func message(fe validator.FieldError) string {
	name := HumanizeField(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s item(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s is out of range", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name)
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", name, HumanizeField(fe.Param()))
	case "e164":
		return name + " must be a phone number in international format"
	default:
		return name + " is invalid"
	}
}

// HumanizeField turns a JSON field name into a label:
// "documentNumber" and "document_number" both become "Document Number".
func HumanizeField(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}

	caser := cases.Title(language.English)
	return caser.String(strings.Join(strings.Fields(b.String()), " "))
}
