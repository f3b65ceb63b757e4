// Package validation holds the field rules a user must satisfy:
// name 3-20 characters after trimming, syntactically valid email,
// strictly positive age. Values are never mutated here; callers trim
// before validating and persist the trimmed value.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
)

// Validator checks user fields against their constraints.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateCreate checks all fields required for user creation.
// Fields are checked in declaration order (name, email, age) and the
// first failing field wins.
func (v *Validator) ValidateCreate(params model.CreateUserParams) *model.ValidationError {
	return v.structError(v.validate.Struct(params))
}

// ValidateUpdate checks only the fields supplied in a partial update.
// Absent fields are exempt from validation.
func (v *Validator) ValidateUpdate(params model.UpdateUserParams) *model.ValidationError {
	return v.structError(v.validate.Struct(params))
}

// Name checks a single name value after trimming.
func (v *Validator) Name(value string) *model.ValidationError {
	return v.varError("name", v.validate.Var(strings.TrimSpace(value), "required,min=3,max=20"))
}

// Email checks a single email value after trimming.
func (v *Validator) Email(value string) *model.ValidationError {
	return v.varError("email", v.validate.Var(strings.TrimSpace(value), "required,email"))
}

// Age checks a single age value.
func (v *Validator) Age(value int) *model.ValidationError {
	return v.varError("age", v.validate.Var(value, "required,gt=0"))
}

func (v *Validator) structError(err error) *model.ValidationError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return model.NewValidationError("", "invalid input")
	}

	field := strings.ToLower(verrs[0].Field())
	return model.NewValidationError(field, "%s", message(field, verrs[0].Tag(), verrs[0].Param()))
}

func (v *Validator) varError(field string, err error) *model.ValidationError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return model.NewValidationError(field, "%s is invalid", field)
	}

	return model.NewValidationError(field, "%s", message(field, verrs[0].Tag(), verrs[0].Param()))
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "gt":
		return fmt.Sprintf("%s must be a positive number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
