package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sevenuz/cake/types"
	"github.com/spf13/viper"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// userMessage turns the typed errors of the store into short messages.
func userMessage(err error) string {
	var existence *types.ExistenceError
	var parse *types.ParseError
	var state *types.StateError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if len(errs) > 1 {
			return fmt.Sprintf("Error: %d failures:\n%v", len(errs), err)
		}
	}
	switch {
	case errors.As(err, &existence):
		return "Error: " + existence.Error()
	case errors.As(err, &parse):
		return fmt.Sprintf("Error: cannot read %s: %s", parse.Source, parse.Message)
	case errors.As(err, &state):
		return "Error: " + state.Error()
	default:
		return "Error: " + err.Error()
	}
}
