// Package errs provides standardized error types for the vendor dashboard.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// Handlers classify failures with errors.Is against the sentinels, so a
// repository can say "order abc not found" while the HTTP layer still maps
// it to a 404.
package errs
