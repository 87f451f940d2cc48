// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the domain tags registered:
// bloodgroup, donationstatus, blogstatus, role and userstatus.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(v, "bloodgroup", func(fl validator.FieldLevel) bool {
		return entity.IsValidBloodGroup(fl.Field().String())
	})
	mustRegister(v, "donationstatus", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseDonationStatus(fl.Field().String())

		return ok
	})
	mustRegister(v, "blogstatus", func(fl validator.FieldLevel) bool {
		return entity.BlogStatus(strings.ToLower(fl.Field().String())).IsValid()
	})
	mustRegister(v, "role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	mustRegister(v, "userstatus", func(fl validator.FieldLevel) bool {
		return entity.UserStatus(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// Describe renders validation failures as "field: rule" pairs for error details.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}
