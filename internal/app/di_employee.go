package app

import (
	"fmt"

	employeeHTTP "github.com/allisson/employee-api/internal/employee/http"
	employeeRepository "github.com/allisson/employee-api/internal/employee/repository"
	employeeUsecase "github.com/allisson/employee-api/internal/employee/usecase"
)

// employeeComponents holds the lazily initialized employee module dependencies.
type employeeComponents struct {
	repo    employeeUsecase.EmployeeRepository
	useCase employeeUsecase.EmployeeUseCase
	handler *employeeHTTP.EmployeeHandler
}

// EmployeeUseCase returns the employee use case with all its dependencies wired.
func (c *Container) EmployeeUseCase() (employeeUsecase.EmployeeUseCase, error) {
	if err := c.initEmployee(); err != nil {
		return nil, err
	}
	return c.employee.useCase, nil
}

// EmployeeHandler returns the HTTP handler for employee endpoints.
func (c *Container) EmployeeHandler() (*employeeHTTP.EmployeeHandler, error) {
	if err := c.initEmployee(); err != nil {
		return nil, err
	}
	return c.employee.handler, nil
}

// initEmployee wires the employee module: driver-specific repository, use case
// (with optional metrics decoration) and HTTP handler.
func (c *Container) initEmployee() error {
	c.employeeInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["employee"] = err
			return
		}

		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["employee"] = err
			return
		}

		var repo employeeUsecase.EmployeeRepository
		switch c.config.DBDriver {
		case "postgres":
			repo = employeeRepository.NewPostgreSQLEmployeeRepository(db)
		case "mysql":
			repo = employeeRepository.NewMySQLEmployeeRepository(db)
		default:
			c.initErrors["employee"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
			return
		}

		employeeUC := employeeUsecase.NewEmployeeUseCase(repo, txManager)

		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["employee"] = err
				return
			}
			employeeUC = employeeUsecase.NewEmployeeUseCaseWithMetrics(employeeUC, businessMetrics)
		}

		c.employee = employeeComponents{
			repo:    repo,
			useCase: employeeUC,
			handler: employeeHTTP.NewEmployeeHandler(employeeUC, c.Logger()),
		}
	})
	if storedErr, exists := c.initErrors["employee"]; exists {
		return storedErr
	}
	return nil
}
