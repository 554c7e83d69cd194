package teller

import "strings"

// identifierDigits is the fixed width of a normalized identifier (CPF).
const identifierDigits = 11

// NormalizeIdentifier strips every non-digit character and left-pads the
// result with zeros to 11 digits. Normalizing an already-normalized
// identifier returns it unchanged.
func NormalizeIdentifier(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) >= identifierDigits {
		return digits
	}
	return strings.Repeat("0", identifierDigits-len(digits)) + digits
}

// Resolve matches credentials against the records and returns the position
// of the first record whose identifier and password match exactly. The
// password comparison is case-sensitive. Resolve is read-only.
func Resolve(records []Account, identifierRaw, passwordRaw string) (int, error) {
	identifier := NormalizeIdentifier(identifierRaw)
	password := strings.TrimSpace(passwordRaw)
	for i := range records {
		if records[i].Identifier == identifier && records[i].Password == password {
			return i, nil
		}
	}
	return -1, ErrBadCredentials
}
