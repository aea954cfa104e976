package types

import "errors"

var (
	ErrBloodGroupNotFound = errors.New("blood group not found")
	ErrBloodGroupExists   = errors.New("blood group already exists")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")

	ErrOfferNotFound       = errors.New("donation offer not found")
	ErrRequestNotFound     = errors.New("donation request not found")
	ErrMatchNotFound       = errors.New("donation match not found")
	ErrOfferAlreadyMatched = errors.New("donation offer already matched")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
