// Package errors provides structured errors for the advancement service.
//
// Errors carry a Code, a message, an optional wrapped cause, and optional
// metadata. Wrapping preserves the code of the innermost structured error so
// a repository-level NotFound stays a NotFound at the service boundary.
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid mark count: %d", marks)
//
// Wrapping:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
package errors
