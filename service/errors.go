package service

import "errors"

// Sentinel errors shared across services. Controllers map these onto HTTP
// statuses; wrap them with fmt.Errorf("...: %w", Err...) to add detail.
var (
	// ErrValidation marks missing or invalid user input. The operation is
	// not attempted.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a rename/delete target that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a target filename that already exists when
	// overwrite was not requested.
	ErrConflict = errors.New("already exists")

	// ErrCollaborator marks a failure of an external collaborator
	// (spreadsheet, image hosting, mail). No partial local state change
	// accompanies it.
	ErrCollaborator = errors.New("collaborator error")
)
