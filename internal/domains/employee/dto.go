package employee

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// EmployeeRequest carries the raw field set for both Create and Update.
// The same shape is accepted as an HTML form post (legacy routes) and as JSON.
type EmployeeRequest struct {
	Name     string   `form:"name" json:"name"`
	Email    string   `form:"email" json:"email"`
	MobileNo string   `form:"mobile_no" json:"mobile_no"`
	Skills   []string `form:"skills[]" json:"skills"`
}

// Normalized returns a copy with surrounding whitespace trimmed from every
// field and the email lower-cased. Validation must run on the normalized
// field set - otherwise whitespace-only input satisfies the required rules
// and an empty value reaches the store.
func (r EmployeeRequest) Normalized() EmployeeRequest {
	var skills []string
	if len(r.Skills) > 0 {
		skills = make([]string, 0, len(r.Skills))
		for _, skill := range r.Skills {
			skills = append(skills, strings.TrimSpace(skill))
		}
	}

	return EmployeeRequest{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		MobileNo: strings.TrimSpace(r.MobileNo),
		Skills:   skills,
	}
}

// Validate checks required fields, formats and lengths. Pure - no store access.
// Email uniqueness is checked separately in the service layer because it needs
// the repository (and, on update, the id being updated).
func (r EmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be at most 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(1, 255).Error("email must be at most 255 characters"),
		),
		validation.Field(&r.MobileNo,
			validation.Required.Error("mobile_no is required"),
			validation.Length(1, 20).Error("mobile_no must be at most 20 characters"),
		),
		validation.Field(&r.Skills,
			validation.Required.Error("at least one skill is required"),
			validation.Each(validation.Required.Error("skill tokens cannot be empty")),
		),
	)
}

// FieldErrors flattens an ozzo validation result into field -> message,
// the shape the form template and the JSON API both render.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	return fields
}
