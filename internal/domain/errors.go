package domain

import "errors"

// Common validation errors shared by the entity constructors.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 64 characters long")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	ErrEmptySurgeryName        = errors.New("surgery name cannot be empty")
	ErrEmptySurgeryDescription = errors.New("surgery description cannot be empty")
	ErrEmptyTierName           = errors.New("tier name cannot be empty")
	ErrMissingSurgeryRef       = errors.New("surgery reference cannot be empty")
	ErrEmptyCompanyName        = errors.New("company name cannot be empty")
	ErrEmptyFullName           = errors.New("customer full name cannot be empty")
	ErrEmptyContactEmail       = errors.New("customer contact email cannot be empty")
	ErrMissingCustomerRef      = errors.New("customer reference cannot be empty")
	ErrMissingTierListRef      = errors.New("tier list reference cannot be empty")
	ErrEmptyRecipient          = errors.New("email recipient cannot be empty")
	ErrEmptySubject            = errors.New("email subject cannot be empty")
)
