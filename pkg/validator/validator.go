package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	playground "github.com/go-playground/validator/v10"
)

// Messages maps "field.tag" (json field name, validator tag) to the message
// reported for that failure. Entries keyed by the bare tag apply to every
// field.
type Messages map[string]string

var (
	once     sync.Once
	instance *playground.Validate

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
)

func validate() *playground.Validate {
	once.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		mustRegister(v, "username", func(fl playground.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "password_strength", func(fl playground.FieldLevel) bool {
			return passwordStrength(fl.Field().String())
		})
		mustRegister(v, "max_bytes", func(fl playground.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			return err == nil && len(fl.Field().String()) <= n
		})
		mustRegister(v, "year_since", func(fl playground.FieldLevel) bool {
			return yearSince(fl.Field().String(), fl.Param())
		})
		instance = v
	})
	return instance
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// passwordStrength requires at least one lowercase letter, one uppercase
// letter and one digit.
func passwordStrength(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// yearSince accepts a four digit year between param and the current year.
func yearSince(s, param string) bool {
	if !yearPattern.MatchString(s) {
		return false
	}
	year, _ := strconv.Atoi(s)
	from, err := strconv.Atoi(param)
	if err != nil {
		return false
	}
	return year >= from && year <= time.Now().Year()
}

// Struct validates v by its `validate` tags. Failures come back as
// ValidationErrors, in field order, with messages resolved from msgs.
func Struct(v any, msgs Messages) error {
	err := validate().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrValidationFailed, err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe, msgs),
		})
	}
	return out
}

func message(fe playground.FieldError, msgs Messages) string {
	if m, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	if m, ok := msgs[fe.Tag()]; ok {
		return m
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "max_bytes":
		return field + " must be at most " + fe.Param() + " bytes"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "eqfield":
		return field + " does not match"
	default:
		return field + " is invalid"
	}
}

// RegisterEnum adds a tag that accepts exactly one of values. Unlike oneof,
// values may contain spaces. Call it during package initialization, before
// any validation runs.
func RegisterEnum(tag string, values ...string) {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	mustRegister(validate(), tag, func(fl playground.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
}
