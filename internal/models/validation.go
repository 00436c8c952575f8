package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/motomeet/mm/internal/apperr"
)

// Validate is the shared validator for service-level checks. It reads
// the same binding tags gin uses, so a DTO carries one set of rules.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

const minModelYear = 1960

func validHandle(fl validator.FieldLevel) bool {
	return handlePattern.MatchString(fl.Field().String())
}

// validModelYear accepts [1960, current_year+1] so next-year models can
// be registered before release.
func validModelYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	return year >= minModelYear && year <= time.Now().Year()+1
}

// FieldViolation describes one failed constraint in a validation error.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// AsValidationError turns a validator failure into the taxonomy's
// validation error, enumerating every violated field rather than just
// the first.
func AsValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldViolation{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return apperr.Validation("invalid request payload", details)
	}
	return apperr.BadRequest(err.Error())
}

// RegisterCustomValidators installs the custom rules on both the shared
// validator and gin's binding validator.
func RegisterCustomValidators() error {
	engines := []*validator.Validate{Validate}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engines = append(engines, v)
	}
	for _, v := range engines {
		if err := v.RegisterValidation("handle", validHandle); err != nil {
			return err
		}
		if err := v.RegisterValidation("modelyear", validModelYear); err != nil {
			return err
		}
	}
	return nil
}
