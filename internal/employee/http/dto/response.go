// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
)

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Position  string    `json:"position"`
	HiredAt   time.Time `json:"hired_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapEmployeeToResponse converts a domain employee to an API response.
func MapEmployeeToResponse(employee *employeeDomain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID.String(),
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Position:  employee.Position,
		HiredAt:   employee.HiredAt,
		Status:    string(employee.Status),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// ListEmployeesResponse represents a paginated list of employees in API responses.
type ListEmployeesResponse struct {
	Data []EmployeeResponse `json:"data"`
}

// MapEmployeesToListResponse converts a slice of domain employees to a list API response.
func MapEmployeesToListResponse(employees []*employeeDomain.Employee) ListEmployeesResponse {
	employeeResponses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		employeeResponses = append(employeeResponses, MapEmployeeToResponse(employee))
	}
	return ListEmployeesResponse{
		Data: employeeResponses,
	}
}
