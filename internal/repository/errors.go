package repository

import "errors"

// ErrForeignKeyViolation is returned when a delete is rejected by a
// referential-integrity constraint (e.g., category still has products).
var ErrForeignKeyViolation = errors.New("foreign key violation")
