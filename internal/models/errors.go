package models

import "errors"

// Sentinel errors surfaced by the service layer. Controllers match them with
// errors.Is and translate them into the inline form messages the views show.
var (
	// ErrEmailTaken reports a registration attempt with an email that is
	// already present (case-insensitive).
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields reports a form submitted with a required field blank.
	ErrMissingFields = errors.New("all fields are required")
)

// User-facing messages rendered inline on the forms.
const (
	MsgAllFieldsRequired  = "All fields are required."
	MsgEmailTaken         = "Email already registered."
	MsgRegistrationFailed = "Registration failed."
	MsgInvalidCredentials = "Invalid credentials."
	MsgEmailPasswordReq   = "Email and password required."
	MsgInvalidNumbers     = "Please enter valid numbers."
	MsgServerError        = "Server error."
)
