// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	customValidation "github.com/allisson/employee-api/internal/validation"
)

// CreateEmployeeRequest contains the parameters for creating an employee.
type CreateEmployeeRequest struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Position  string     `json:"position"`
	HiredAt   *time.Time `json:"hired_at,omitempty"`
	Status    string     `json:"status,omitempty"`
}

// Validate checks if the create employee request is valid.
func (r *CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Position,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Status,
			validation.By(validateStatus),
		),
	)
}

// UpdateEmployeeRequest contains the parameters for updating an employee.
type UpdateEmployeeRequest struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Position  string     `json:"position"`
	HiredAt   *time.Time `json:"hired_at,omitempty"`
	Status    string     `json:"status"`
}

// Validate checks if the update employee request is valid.
func (r *UpdateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Position,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Status,
			validation.Required,
			validation.By(validateStatus),
		),
	)
}

// validateStatus accepts an empty status (defaults to active on create) or a
// known employment status.
func validateStatus(value interface{}) error {
	status, ok := value.(string)
	if !ok {
		return validation.NewError("validation_status_type", "must be a string")
	}
	if status == "" {
		return nil
	}
	if !employeeDomain.Status(status).IsValid() {
		return validation.NewError("validation_status_unknown", "must be one of active, absent, quit")
	}
	return nil
}
