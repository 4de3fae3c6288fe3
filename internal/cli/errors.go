package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"fintrack/internal/core"
)

// fail prints a user-facing message for err and picks the exit status.
// Validation problems are usage errors; everything else is a plain failure.
func fail(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, core.ErrAuthenticationFailed):
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
	case errors.Is(err, core.ErrSessionExpired):
		fmt.Fprintln(os.Stderr, "Your session has expired. Run 'fintrack login' to sign in again.")
	case errors.Is(err, core.ErrNotFound):
		fmt.Fprintf(os.Stderr, "Not found: %v\n", err)
	case errors.Is(err, core.ErrValidationFailed):
		fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
		return subcommands.ExitUsageError
	case errors.Is(err, core.ErrNetworkFailure):
		fmt.Fprintf(os.Stderr, "Could not reach the server: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}
