package utils

import "unicode"

// ValidPhone reports whether phone is exactly 11 digits.
func ValidPhone(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidPassword enforces the registration password policy: at least 8
// characters with an uppercase letter, a digit and a symbol.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasDigit && hasSymbol
}
