package validators

import "errors"

var (
	ErrEmailRequired         = errors.New("email is required")
	ErrEmailDomainNotAllowed = errors.New("email must be from an approved campus domain")
	ErrNameTooShort          = errors.New("name must be at least 2 characters")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrBioTooLong            = errors.New("bio must be at most 500 characters")
	ErrWeakPassword          = errors.New("password must be at least 8 characters and contain a letter and a digit")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrTermsNotAccepted      = errors.New("terms of service must be accepted")
	ErrInvalidOTP            = errors.New("code must be 6 digits")
	ErrPictureTooLarge       = errors.New("picture must be at most 5 MB")
	ErrUnsupportedPicture    = errors.New("picture must be a jpeg, png, or webp image")
	ErrEmptyPicture          = errors.New("picture is empty")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
)
