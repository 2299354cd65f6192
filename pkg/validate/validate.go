package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	nonDigit  = regexp.MustCompile(`\D`)
)

// SanitizeString strips characters commonly used in injection payloads
func SanitizeString(input string) string {
	s := strings.TrimSpace(input)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = regexp.MustCompile(`(?i)javascript:`).ReplaceAllString(s, "")
	s = regexp.MustCompile(`(?i)on\w+=`).ReplaceAllString(s, "")
	return s
}

// IsValidEmail reports whether email looks like a deliverable address
func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsValidPhone reports whether phone is a valid Indian mobile number
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(nonDigit.ReplaceAllString(phone, ""))
}

// IsValidPincode reports whether pincode is a 6-digit Indian postal code
func IsValidPincode(pincode string) bool {
	return pincodeRe.MatchString(strings.TrimSpace(pincode))
}

// PasswordStrength classifies a password
type PasswordStrength string

const (
	PasswordWeak   PasswordStrength = "weak"
	PasswordMedium PasswordStrength = "medium"
	PasswordStrong PasswordStrength = "strong"
)

// PasswordResult carries the outcome of password validation
type PasswordResult struct {
	Valid    bool
	Strength PasswordStrength
	Message  string
}

// ValidatePassword enforces minimum length and character class variety
func ValidatePassword(password string) PasswordResult {
	if len(password) < 8 {
		return PasswordResult{
			Valid:    false,
			Strength: PasswordWeak,
			Message:  "Password must be at least 8 characters long",
		}
	}

	strength := 1 // length requirement already met
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0 {
		strength++
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 {
		strength++
	}
	if strings.IndexFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 {
		strength++
	}
	if strings.IndexFunc(password, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9')
	}) >= 0 {
		strength++
	}

	switch {
	case strength < 3:
		return PasswordResult{
			Valid:    false,
			Strength: PasswordWeak,
			Message:  "Password is too weak. Use uppercase, lowercase, numbers, and special characters",
		}
	case strength == 3:
		return PasswordResult{
			Valid:    true,
			Strength: PasswordMedium,
			Message:  "Password strength: Medium",
		}
	default:
		return PasswordResult{
			Valid:    true,
			Strength: PasswordStrong,
			Message:  "Password strength: Strong",
		}
	}
}
