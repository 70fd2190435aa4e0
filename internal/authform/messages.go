package authform

import (
	"errors"
	"fmt"

	"github.com/clipsmart/clipsmart-web/params"
)

const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgConfirmRequired  = "Please confirm your password"
	MsgPasswordMismatch = "Passwords do not match"
	MsgFullNameRequired = "Full name is required"

	MsgPasswordNoDigit = "Password must contain at least one digit"
	MsgPasswordNoUpper = "Password must contain at least one uppercase letter"
	MsgPasswordNoLower = "Password must contain at least one lowercase letter"

	MsgWelcomeBack    = "Welcome back!"
	MsgAccountCreated = "Account created successfully!"
	MsgAuthFailed     = "Authentication failed"
)

var MsgPasswordTooShort = fmt.Sprintf("Password must be at least %d characters long", params.PasswordMinLength)

var (
	ErrFormNotFound = errors.New("auth form not found")
	ErrFormClosed   = errors.New("auth form closed")
)

type publicMessager interface {
	PublicMessage() string
}

// FailureMessage returns the message a failed submit shows to the user.
func FailureMessage(err error) string {
	var pm publicMessager
	if errors.As(err, &pm) {
		if msg := pm.PublicMessage(); msg != "" {
			return msg
		}
	}
	return MsgAuthFailed
}
