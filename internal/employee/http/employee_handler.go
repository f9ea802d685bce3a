// Package http provides HTTP handlers for employee management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	"github.com/allisson/employee-api/internal/employee/http/dto"
	employeeUseCase "github.com/allisson/employee-api/internal/employee/usecase"
	"github.com/allisson/employee-api/internal/httputil"
	customValidation "github.com/allisson/employee-api/internal/validation"
)

// EmployeeHandler handles HTTP requests for employee operations.
// It coordinates employee management with the EmployeeUseCase.
type EmployeeHandler struct {
	employeeUseCase employeeUseCase.EmployeeUseCase
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler with required dependencies.
func NewEmployeeHandler(useCase employeeUseCase.EmployeeUseCase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: useCase,
		logger:          logger,
	}
}

// CreateHandler creates a new employee.
// POST /v1/employees - Requires authentication.
// Returns 201 Created with the employee.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEmployeeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := employeeUseCase.CreateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Status:    employeeDomain.Status(req.Status),
	}
	if req.HiredAt != nil {
		input.HiredAt = *req.HiredAt
	}

	employee, err := h.employeeUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEmployeeToResponse(employee))
}

// GetHandler retrieves an employee by ID.
// GET /v1/employees/:id - Requires authentication.
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	employeeID, ok := h.parseEmployeeID(c)
	if !ok {
		return
	}

	employee, err := h.employeeUseCase.Get(c.Request.Context(), employeeID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// ListHandler lists employees, newest first, with pagination.
// GET /v1/employees - Requires authentication.
// Optional query parameters: status (filter by employment status),
// q (substring search on name and position).
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	ctx := c.Request.Context()

	var employees []*employeeDomain.Employee
	switch {
	case c.Query("status") != "":
		employees, err = h.employeeUseCase.ListByStatus(ctx, employeeDomain.Status(c.Query("status")), offset, limit)
	case c.Query("q") != "":
		employees, err = h.employeeUseCase.Search(ctx, c.Query("q"), offset, limit)
	default:
		employees, err = h.employeeUseCase.List(ctx, offset, limit)
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeesToListResponse(employees))
}

// UpdateHandler replaces an employee's mutable fields.
// PUT /v1/employees/:id - Requires admin role.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	employeeID, ok := h.parseEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := employeeUseCase.UpdateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Status:    employeeDomain.Status(req.Status),
	}
	if req.HiredAt != nil {
		input.HiredAt = *req.HiredAt
	}

	employee, err := h.employeeUseCase.Update(c.Request.Context(), employeeID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// DeleteHandler removes an employee.
// DELETE /v1/employees/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *EmployeeHandler) DeleteHandler(c *gin.Context) {
	employeeID, ok := h.parseEmployeeID(c)
	if !ok {
		return
	}

	if err := h.employeeUseCase.Delete(c.Request.Context(), employeeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseEmployeeID extracts and validates the id path parameter.
func (h *EmployeeHandler) parseEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid id format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return employeeID, true
}
