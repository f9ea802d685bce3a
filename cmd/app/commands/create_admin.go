package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
)

// RunCreateAdmin registers a bootstrap user with the admin role. Outputs the
// created user's ID and email in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdmin(
	ctx context.Context,
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
	writer io.Writer,
	email string,
	password string,
	format string,
) error {
	logger.Info("creating admin user", slog.String("email", email))

	user, err := authUC.Register(ctx, authUseCase.RegisterInput{
		Email:    email,
		Password: password,
		Role:     authDomain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if format == "json" {
		outputCreateAdminJSON(writer, user)
	} else {
		outputCreateAdminText(writer, user)
	}

	logger.Info("admin user created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}

// outputCreateAdminText outputs the result in human-readable text format.
func outputCreateAdminText(writer io.Writer, user *authDomain.User) {
	_, _ = fmt.Fprintln(writer, "Admin user created successfully")
	_, _ = fmt.Fprintf(writer, "ID:    %s\n", user.ID)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
}

// outputCreateAdminJSON outputs the result in JSON format for machine consumption.
func outputCreateAdminJSON(writer io.Writer, user *authDomain.User) {
	result := map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
