package render

import (
	"strings"
	"unicode"

	"github.com/clipsmart/clipsmart-web/internal/notify"
)

var templateFuncs = map[string]any{
	"maskEmail":  maskEmail,
	"initials":   initials,
	"stars":      stars,
	"toastClass": toastClass,
	"isActive":   func(index, current int) bool { return index == current },
	"fieldError": fieldError,
	"fieldValue": fieldValue,
}

func maskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	user := parts[0]
	domainParts := strings.SplitN(parts[1], ".", 2)
	if len(domainParts) != 2 {
		return email
	}

	domain, tld := domainParts[0], domainParts[1]
	maskPart := func(s string) string {
		if len(s) <= 1 {
			return s
		} else if len(s) == 2 {
			return string(s[0]) + "*"
		}
		return string(s[0]) + strings.Repeat("*", len(s)-2) + string(s[len(s)-1])
	}
	return maskPart(user) + "@" + maskPart(domain) + "." + tld
}

// initials builds the avatar letters from a display name.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

func stars(n int) []struct{} {
	if n < 0 {
		n = 0
	}
	return make([]struct{}, n)
}

func toastClass(kind notify.Kind) string {
	switch kind {
	case notify.KindSuccess:
		return "toast toast-success"
	case notify.KindError:
		return "toast toast-error"
	default:
		return "toast toast-info"
	}
}

func fieldError(errs map[string]string, field string) string {
	if errs == nil {
		return ""
	}
	return errs[field]
}

func fieldValue(values map[string]string, field string) string {
	if values == nil {
		return ""
	}
	return values[field]
}
