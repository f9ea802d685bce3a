package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	employeeUseCase "github.com/allisson/employee-api/internal/employee/usecase"
)

// seedEmployeeData returns the sample employees inserted by the seed command.
func seedEmployeeData() []employeeUseCase.CreateEmployeeInput {
	hired := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	return []employeeUseCase.CreateEmployeeInput{
		{FirstName: "Jean", LastName: "Dupont", Position: "Full Stack Developer", HiredAt: hired(2023, 1, 15), Status: employeeDomain.StatusActive},
		{FirstName: "Marie", LastName: "Martin", Position: "UX/UI Designer", HiredAt: hired(2023, 3, 20), Status: employeeDomain.StatusActive},
		{FirstName: "Pierre", LastName: "Durand", Position: "Project Manager", HiredAt: hired(2022, 11, 10), Status: employeeDomain.StatusActive},
		{FirstName: "Sophie", LastName: "Leroy", Position: "Backend Developer", HiredAt: hired(2023, 5, 8), Status: employeeDomain.StatusAbsent},
		{FirstName: "Thomas", LastName: "Moreau", Position: "Business Analyst", HiredAt: hired(2022, 9, 12), Status: employeeDomain.StatusQuit},
		{FirstName: "Emma", LastName: "Petit", Position: "DevOps Engineer", HiredAt: hired(2023, 7, 3), Status: employeeDomain.StatusActive},
		{FirstName: "Lucas", LastName: "Roux", Position: "Frontend Developer", HiredAt: hired(2023, 2, 14), Status: employeeDomain.StatusActive},
		{FirstName: "Camille", LastName: "Fournier", Position: "Product Owner", HiredAt: hired(2022, 12, 5), Status: employeeDomain.StatusActive},
	}
}

// RunSeedEmployees inserts a fixed set of sample employees for local
// development and manual API testing. Each insert failure is reported and
// skipped so a partial seed still leaves usable data.
//
// Requirements: Database must be migrated and accessible.
func RunSeedEmployees(
	ctx context.Context,
	employeeUC employeeUseCase.EmployeeUseCase,
	logger *slog.Logger,
	writer io.Writer,
) error {
	logger.Info("seeding sample employees")

	var created, failed int
	for _, input := range seedEmployeeData() {
		employee, err := employeeUC.Create(ctx, input)
		if err != nil {
			failed++
			logger.Error("failed to create sample employee",
				slog.String("first_name", input.FirstName),
				slog.String("last_name", input.LastName),
				slog.Any("error", err),
			)
			_, _ = fmt.Fprintf(writer, "Failed: %s %s (%v)\n", input.FirstName, input.LastName, err)
			continue
		}
		created++
		_, _ = fmt.Fprintf(writer, "Created: %s - %s\n", employee.FullName(), employee.Position)
	}

	_, _ = fmt.Fprintf(writer, "\nSeed completed: %d created, %d failed\n", created, failed)

	logger.Info("seed completed",
		slog.Int("created", created),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return fmt.Errorf("seed finished with %d failure(s)", failed)
	}
	return nil
}
