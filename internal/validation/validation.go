package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/2beens/gymlog/internal/reps"
)

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names, those are what clients send
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("reps", func(fl validator.FieldLevel) bool {
		return reps.Valid(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register reps validation: %s", err))
	}

	return v
}

// Struct validates s. Rule violations come back as field errors; the error
// return is reserved for misuse (non-struct input).
func Struct(s any) ([]FieldError, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("validate %T: %w", s, err)
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return fieldErrs, nil
}

// fieldPath drops the top level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "reps":
		return reps.ErrInvalidRepsFormat.Error()
	case "required":
		return "required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
