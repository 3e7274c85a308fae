package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "burritoapi/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report JSON field names so clients can map errors back to their payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Result is the outcome of validating an entity.
type Result struct {
	Errors []apperrors.FieldError
}

// OK reports whether validation passed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns nil on success or a *errors.ValidationError listing every field error.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &apperrors.ValidationError{Fields: r.Errors}
}

// ValidateBurrito checks rating ranges and price sign.
func ValidateBurrito(b *Burrito) Result {
	res := structResult(b)
	if b.Price != nil && b.Price.IsNegative() {
		res.Errors = append(res.Errors, apperrors.FieldError{Field: "price", Message: "must not be negative"})
	}
	return res
}

// ValidateUser checks the required profile fields. The password is not
// inspected: by the time a User is validated it only holds a hash.
func ValidateUser(u *User) Result {
	return structResult(u)
}

// ValidateStruct runs the struct's validate tags. Request DTOs use it through echo's Validator.
func ValidateStruct(s any) Result {
	return structResult(s)
}

func structResult(s any) Result {
	err := validate.Struct(s)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: []apperrors.FieldError{{Field: "", Message: err.Error()}}}
	}

	res := Result{Errors: make([]apperrors.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, apperrors.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return res
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
