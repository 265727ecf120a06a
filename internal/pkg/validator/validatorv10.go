package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/juniorhq/junior/internal/pkg/strcase"
)

// passwordSpecials is the accepted special character set for passwords,
// matching the registration policy exactly.
const passwordSpecials = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

var rePhone = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case to match typical form field conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and
// the custom registration rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v10CustomValidation(validate, enTrans)

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
//
// Each field reports its first failing rule, so "is required" short-circuits
// length and content checks for that field, while all fields are evaluated.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			field := strcase.ToLowerSnake(fe.Field())
			if _, exists := errV10[field]; exists {
				continue
			}
			errV10[field] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

//nolint:errcheck,gosec,forcetypeassert // make linter silent
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) {
	stringRule := func(fn func(string) bool) validator.Func {
		return func(fl validator.FieldLevel) bool {
			p, ok := fl.Field().Interface().(string)
			if !ok {
				return false
			}
			return fn(p)
		}
	}

	translate := func(tag, message string) {
		validate.RegisterTranslation(tag, enTrans,
			func(ut ut.Translator) error {
				return ut.Add(tag, message, false)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, err := ut.T(fe.Tag(), fe.Field())
				if err != nil {
					slog.Warn("warning: error translating", "FieldError", fe, "error", err)
					return fe.(error).Error()
				}
				return t
			},
		)
	}

	// The source policy only requires an '@' somewhere in the address, not a
	// full RFC-compliant mailbox.
	validate.RegisterValidation("emailat", stringRule(func(s string) bool {
		return strings.Contains(s, "@")
	}))
	translate("emailat", "Please enter a valid email address")

	validate.RegisterValidation("hasupper", stringRule(func(s string) bool {
		return strings.ContainsFunc(s, unicode.IsUpper)
	}))
	translate("hasupper", "Password must contain at least one uppercase letter")

	validate.RegisterValidation("hasdigit", stringRule(func(s string) bool {
		return strings.ContainsFunc(s, unicode.IsDigit)
	}))
	translate("hasdigit", "Password must contain at least one number")

	validate.RegisterValidation("hasspecial", stringRule(func(s string) bool {
		return strings.ContainsAny(s, passwordSpecials)
	}))
	translate("hasspecial", "Password must contain at least one special character")

	// Optional phone numbers in loose international format.
	validate.RegisterValidation("intlphone", stringRule(func(s string) bool {
		return s == "" || rePhone.MatchString(s)
	}))
	translate("intlphone", "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
}
