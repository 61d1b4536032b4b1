// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0   // All sweeps passed.
	ExitErrorGeneric  = 1   // Unclassified failure.
	ExitErrorAccuracy = 3   // A kernel exceeded its ulp limit.
	ExitErrorConfig   = 4   // Invalid flags or environment.
	ExitErrorCanceled = 130 // Interrupted (SIGINT).
)

// ConfigError reports invalid user configuration such as an unknown backend
// or a non-positive sample count.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A ConfigError holding the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// AccuracyError reports a kernel whose worst observed error on a backend
// exceeded the allowed number of ulps.
type AccuracyError struct {
	// Function is the kernel name, for example "exp" or "cdiv".
	Function string
	// Backend is the name of the backend the sweep ran on.
	Backend string
	// ObservedULP is the largest error seen during the sweep.
	ObservedULP float64
	// Limit is the configured bound.
	Limit float64
}

func (e AccuracyError) Error() string {
	return fmt.Sprintf("%s on %s: max error %.3g ulp exceeds limit %.3g", e.Function, e.Backend, e.ObservedULP, e.Limit)
}

// WrapError wraps err with a formatted context message. The result can be
// inspected with errors.Is and errors.As.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps err to a process exit code. Wrapped errors are classified by
// the first typed error in the chain.
func ExitCode(err error) int {
	var cfg ConfigError
	var acc AccuracyError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfg):
		return ExitErrorConfig
	case errors.As(err, &acc):
		return ExitErrorAccuracy
	default:
		return ExitErrorGeneric
	}
}
