package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmptyIdentifier    = errors.New("username or email is required")
	ErrNoProfileFields    = errors.New("at least one field must be provided for update")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrEmptyOAuthName     = errors.New("name is required")
	ErrEmptyListingName   = errors.New("listing name is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrEmptyAddress       = errors.New("address is required")
	ErrInvalidListingType = errors.New("type must be either 'sale' or 'rent'")
	ErrInvalidRoomCount   = errors.New("bedrooms and bathrooms must be at least 1")
	ErrInvalidPrice       = errors.New("regular price must be positive")
	ErrInvalidDiscount    = errors.New("discount price cannot exceed regular price")
	ErrInvalidImageCount  = errors.New("listing must have between 1 and 6 images")
	ErrEmptyImageURL      = errors.New("image URL cannot be empty")
)
