package model

import (
	"fmt"
	"strings"
)

// BakeStatus describes where a lasagna stands relative to its expected
// oven time. It is derived purely from the remaining oven minutes:
//
//	remaining > 0  → baking
//	remaining == 0 → done
//	remaining < 0  → overdone
type BakeStatus string

const (
	// StatusBaking indicates the lasagna still needs time in the oven.
	StatusBaking BakeStatus = "baking"

	// StatusDone indicates the lasagna has been in the oven for exactly
	// the expected time.
	StatusDone BakeStatus = "done"

	// StatusOverdone indicates the lasagna has exceeded its expected oven
	// time. The remaining minutes are negative in this case.
	StatusOverdone BakeStatus = "overdone"
)

// String returns the string representation of BakeStatus.
// This method satisfies the fmt.Stringer interface.
func (s BakeStatus) String() string {
	return string(s)
}

// IsValid checks whether the BakeStatus value is one of the
// predefined valid states.
func (s BakeStatus) IsValid() bool {
	switch s {
	case StatusBaking, StatusDone, StatusOverdone:
		return true
	default:
		return false
	}
}

// ParseBakeStatus converts a string to a BakeStatus.
// Returns an error if the string does not match any valid status.
func ParseBakeStatus(s string) (BakeStatus, error) {
	status := BakeStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid bake status: %q (valid: baking, done, overdone)", s)
	}
	return status, nil
}

// BakeStatusFor maps remaining oven minutes to a BakeStatus.
func BakeStatusFor(remainingMinutes int) BakeStatus {
	switch {
	case remainingMinutes > 0:
		return StatusBaking
	case remainingMinutes == 0:
		return StatusDone
	default:
		return StatusOverdone
	}
}

// Report is a snapshot of every timing estimate for one lasagna.
// All values are in minutes.
type Report struct {
	// Layers is the number of layers the lasagna is built from.
	Layers int `json:"layers"`

	// TimePerLayer is the preparation time spent on each layer.
	TimePerLayer int `json:"timePerLayer"`

	// PreparationMinutes is Layers * TimePerLayer.
	PreparationMinutes int `json:"preparationMinutes"`

	// OvenMinutes is the expected total oven time.
	OvenMinutes int `json:"ovenMinutes"`

	// MinutesInOven is how long the lasagna has been baking so far.
	MinutesInOven int `json:"minutesInOven"`

	// RemainingMinutes is OvenMinutes - MinutesInOven. May be negative.
	RemainingMinutes int `json:"remainingMinutes"`

	// ElapsedMinutes is PreparationMinutes + MinutesInOven.
	ElapsedMinutes int `json:"elapsedMinutes"`

	// Status summarizes RemainingMinutes.
	Status BakeStatus `json:"status"`
}

// String returns a one-line summary of the report.
// Format: "3 layers: 6 prep + 20/40 oven = 26 elapsed (20 remaining, baking)"
func (r Report) String() string {
	return fmt.Sprintf("%d layers: %d prep + %d/%d oven = %d elapsed (%d remaining, %s)",
		r.Layers, r.PreparationMinutes, r.MinutesInOven, r.OvenMinutes,
		r.ElapsedMinutes, r.RemainingMinutes, r.Status)
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates a positional argument or flag value
	// could not be parsed as an integer.
	ExitInvalidArgument ExitCode = 2

	// ExitConfigNotFound indicates an explicitly requested config file
	// does not exist.
	ExitConfigNotFound ExitCode = 3

	// ExitInvalidConfig indicates the config file could not be parsed
	// or failed validation.
	ExitInvalidConfig ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
