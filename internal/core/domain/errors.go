package domain

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrUserNameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is the single rejection for every refresh/logout
	// precondition failure. It never says which check failed.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")

	ErrDepartmentNotFound = errors.New("department not found")
	ErrDoctorNotFound     = errors.New("doctor not found in this department")
	ErrOperationNotFound  = errors.New("operation not found for this doctor")
)

// OwnershipError rejects a mutation on a record the caller does not own.
// It maps to 403 but carries a resource-specific message.
type OwnershipError struct {
	Resource string
}

func (e *OwnershipError) Error() string {
	return "Only the owner of this " + e.Resource + " or an admin can modify it"
}

// Is lets errors.Is(err, ErrForbidden) match ownership failures too.
func (e *OwnershipError) Is(target error) bool {
	return target == ErrForbidden
}

// ValidationError carries a human readable reason and matches ErrValidation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
