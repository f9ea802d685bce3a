// Package domain defines the core entities and errors for employee management.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the employment status of an employee.
type Status string

// Employment statuses.
const (
	StatusActive Status = "active"
	StatusAbsent Status = "absent"
	StatusQuit   Status = "quit"
)

// IsValid reports whether the status is a known employment status.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusAbsent, StatusQuit:
		return true
	}
	return false
}

// Employee represents a company employee record.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Position  string    `json:"position"`
	HiredAt   time.Time `json:"hired_at"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
