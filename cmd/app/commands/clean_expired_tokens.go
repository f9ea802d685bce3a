package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
)

// RunCleanExpiredTokens purges revoked tokens whose expiry has passed and
// reports how many rows were removed. Supports both text and JSON output
// formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredTokens(
	ctx context.Context,
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	logger.Info("cleaning expired revoked tokens")

	count, err := authUC.CleanExpiredTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to clean expired tokens: %w", err)
	}

	if format == "json" {
		outputCleanExpiredJSON(writer, count)
	} else {
		outputCleanExpiredText(writer, count)
	}

	logger.Info("cleanup completed", slog.Int64("count", count))

	return nil
}

// outputCleanExpiredText outputs the result in human-readable text format.
func outputCleanExpiredText(writer io.Writer, count int64) {
	_, _ = fmt.Fprintf(writer, "Successfully deleted %d expired token(s)\n", count)
}

// outputCleanExpiredJSON outputs the result in JSON format for machine consumption.
func outputCleanExpiredJSON(writer io.Writer, count int64) {
	result := map[string]interface{}{
		"count": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
