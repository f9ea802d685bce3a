package domain

import (
	"github.com/allisson/employee-api/internal/errors"
)

// Employee management errors.
var (
	// ErrEmployeeNotFound indicates an employee with the specified ID was not found.
	ErrEmployeeNotFound = errors.Wrap(errors.ErrNotFound, "employee not found")

	// ErrInvalidStatus indicates an unknown employment status value.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid employment status")
)
