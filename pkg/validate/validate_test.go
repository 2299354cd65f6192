package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ravi@example.com"))
	assert.True(t, IsValidEmail("  ravi@example.com  "))
	assert.False(t, IsValidEmail("ravi@example"))
	assert.False(t, IsValidEmail("ravi example@foo.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.False(t, IsValidPhone("+91 98765-43210")) // country code makes it 12 digits
	assert.False(t, IsValidPhone("1234567890"))      // must start 6-9
	assert.False(t, IsValidPhone("98765"))
}

func TestIsValidPhone_StripsFormatting(t *testing.T) {
	assert.True(t, IsValidPhone("98765 43210"))
	assert.True(t, IsValidPhone("98765-43210"))
}

func TestIsValidPincode(t *testing.T) {
	assert.True(t, IsValidPincode("560001"))
	assert.False(t, IsValidPincode("5600"))
	assert.False(t, IsValidPincode("56000a"))
}

func TestValidatePassword(t *testing.T) {
	short := ValidatePassword("abc")
	assert.False(t, short.Valid)
	assert.Equal(t, PasswordWeak, short.Strength)

	weak := ValidatePassword("aaaaaaaa")
	assert.False(t, weak.Valid)

	medium := ValidatePassword("abcdefgH")
	assert.True(t, medium.Valid)
	assert.Equal(t, PasswordMedium, medium.Strength)

	strong := ValidatePassword("abcdefG1!")
	assert.True(t, strong.Valid)
	assert.Equal(t, PasswordStrong, strong.Strength)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "alert(1)", SanitizeString("javascript:alert(1)"))
}
