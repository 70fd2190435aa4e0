package authform

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/clipsmart/clipsmart-web/params"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type passwordRule struct {
	ok      func(string) bool
	message string
}

func containsRune(pred func(rune) bool) func(string) bool {
	return func(s string) bool {
		for _, r := range s {
			if pred(r) {
				return true
			}
		}
		return false
	}
}

// checked in order, the first failure wins
var passwordRules = []passwordRule{
	{func(s string) bool { return utf8.RuneCountInString(s) >= params.PasswordMinLength }, MsgPasswordTooShort},
	{containsRune(unicode.IsDigit), MsgPasswordNoDigit},
	{containsRune(unicode.IsUpper), MsgPasswordNoUpper},
	{containsRune(unicode.IsLower), MsgPasswordNoLower},
}

func validateEmail(email string) string {
	if email == "" {
		return MsgEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

func validatePassword(password string, strong bool) string {
	if password == "" {
		return MsgPasswordRequired
	}
	if !strong {
		return ""
	}
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			return rule.message
		}
	}
	return ""
}

func validateConfirmPassword(password, confirm string) string {
	if confirm == "" {
		return MsgConfirmRequired
	}
	if confirm != password {
		return MsgPasswordMismatch
	}
	return ""
}

func validateFullName(fullName string) string {
	if fullName == "" {
		return MsgFullNameRequired
	}
	return ""
}

// Validate checks the fields used by mode and returns one message per invalid field.
func Validate(mode Mode, values Values) Errors {
	def := mode.def()
	errs := make(Errors)
	for _, field := range def.fields {
		var msg string
		switch field {
		case FieldEmail:
			msg = validateEmail(values[FieldEmail])
		case FieldPassword:
			msg = validatePassword(values[FieldPassword], def.strongPassword)
		case FieldConfirmPassword:
			msg = validateConfirmPassword(values[FieldPassword], values[FieldConfirmPassword])
		case FieldFullName:
			msg = validateFullName(values[FieldFullName])
		}
		if msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
