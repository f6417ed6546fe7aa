package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// references a row that does not exist (foreign key violation).
	// Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a transaction fails to commit
	// or an operation inside it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrSurgeryNotFound  = fmt.Errorf("%w: surgery", ErrNotFound)
	ErrTierListNotFound = fmt.Errorf("%w: tier list", ErrNotFound)
	ErrPartnerNotFound  = fmt.Errorf("%w: partner", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)
	ErrBuyNotFound      = fmt.Errorf("%w: buy", ErrNotFound)
	ErrEmailNotFound    = fmt.Errorf("%w: email", ErrNotFound)

	// ErrUsernameExists indicates that a user with the given username
	// already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
