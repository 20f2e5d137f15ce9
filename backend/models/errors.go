package models

import "errors"

// The two fatal error kinds. Everything else the engine degrades around:
// missing companion columns become empty fields, unparseable dates are
// skipped, empty secondary sheets become empty lists.
var (
	// ErrStudentNotFound means the key matched no row in the Students sheet.
	ErrStudentNotFound = errors.New("student not found")

	// ErrKeyColumnMissing means no header resolved to roll/admission/id.
	// Fatal only for the Students sheet; secondary sheets degrade to empty.
	ErrKeyColumnMissing = errors.New("key column missing")
)
