// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	customValidation "github.com/allisson/employee-api/internal/validation"
)

// RegisterRequest contains the parameters for registering a new user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Validate checks if the register request is valid.
func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Role,
			validation.By(validateRole),
		),
	)
}

// validateRole accepts an empty role (defaults to staff) or a known role name.
func validateRole(value interface{}) error {
	role, ok := value.(string)
	if !ok {
		return validation.NewError("validation_role_type", "must be a string")
	}
	if role == "" {
		return nil
	}
	if !authDomain.Role(role).IsValid() {
		return validation.NewError("validation_role_unknown", "must be either admin or staff")
	}
	return nil
}

// LoginRequest contains the parameters for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}
