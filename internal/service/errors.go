package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields (name, email, password, project name, ...).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidEmail is returned when the signup email does not conform to
	// email syntax.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort is returned when the signup password is shorter
	// than the required minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two causes are deliberately indistinguishable so that
	// login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidAPIKey covers both a missing and an unknown API key, for the
	// same non-enumeration reason as ErrInvalidCredentials.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrInvalidProjectID is returned when a path parameter is not a
	// well-formed project identifier, before any store access.
	ErrInvalidProjectID = errors.New("invalid project id")

	// ErrInvalidStatus is returned when a patch carries a status outside
	// {active, archived}, before any store access.
	ErrInvalidStatus = errors.New("invalid project status")

	// ErrEmptyText is returned by analyze when the input is empty after
	// trimming.
	ErrEmptyText = errors.New("text required")
)
