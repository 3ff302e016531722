package auth

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	noroffEmailPattern = regexp.MustCompile(`^[\w\-.]+@(stud\.)?noroff\.no$`)
	usernamePattern    = regexp.MustCompile(`^\w{1,20}$`)
)

var customValidations = map[string]validator.Func{
	"noroffemail": func(fl validator.FieldLevel) bool {
		return noroffEmailPattern.MatchString(fl.Field().String())
	},
	"username": func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	},
}

// NewValidator returns a validator that knows the noroffemail and username tags.
// It panics if a tag cannot be registered.
func NewValidator() *validator.Validate {
	v, err := newValidator(customValidations)
	if err != nil {
		panic(err)
	}
	return v
}

func newValidator(validations map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New()
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return v, nil
}
