package domain

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^\w+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	return v
}

// failedTag returns the tag of the first failed rule, "" when valid.
// A missing field on any property wins over format rules on the others.
func failedTag(s any) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "required"
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return "required"
		}
	}
	return verrs[0].Tag()
}

// check maps any failed rule to a single code.
func check(s any, code *CodeError) error {
	if failedTag(s) != "" {
		return code
	}
	return nil
}
