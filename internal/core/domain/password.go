package domain

import "unicode/utf8"

const MinPasswordLength = 6

// PasswordRequirements is shown to clients whose password is rejected.
const PasswordRequirements = "password must be at least 6 characters and contain an uppercase letter, a lowercase letter, a digit and a symbol"

// IsStrongPassword reports whether p meets the account password policy.
// Letter and digit classes are ASCII; any other character is a symbol.
func IsStrongPassword(p string) bool {
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
