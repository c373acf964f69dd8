// Package types holds the shared error taxonomy for motionkit.
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// text:
//
//	if kind, ok := types.KindOf(err); ok && kind == types.ErrKindInvalid {
//	    // caller passed a nil plan, nil target or empty name
//	}
//
// Sentinels match wrapped copies with errors.Is:
//
//	errors.Is(err, types.ErrEmptyName)
//
// This package has no dependencies beyond the standard library.
package types
