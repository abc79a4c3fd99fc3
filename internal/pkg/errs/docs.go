// Package errs provides standardized error types for the order pipeline.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when an object with the same identity is already persisted
//   - InvariantViolationError: For broken aggregate invariants
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The taxonomy maps directly onto how failures propagate: validation and
// not-found errors surface synchronously to API callers and are never enqueued;
// already-exists errors signal idempotent no-ops to message consumers; invariant
// violations are dead-lettered immediately without retries. Everything else is
// treated as a transient infrastructure failure and retried by queue policy.
package errs
