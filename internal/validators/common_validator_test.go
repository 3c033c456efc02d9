package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type whatsappFixture struct {
	Number string `validate:"whatsapp"`
}

func TestWhatsAppRule(t *testing.T) {
	valid := []string{
		"081234567890",     // 12 digits
		"+6281234567890",   // 14 chars with plus
		"+628123456789012", // 16 chars
	}
	for _, number := range valid {
		errs := ValidateStruct(&whatsappFixture{Number: number})
		assert.Empty(t, errs, "expected %q to be valid", number)
	}

	invalid := []string{
		"+62812345",          // too short
		"08123456789",        // 11 chars
		"+62812345678901234", // 17 chars
		"08123456789a ",      // non-digits
	}
	for _, number := range invalid {
		errs := ValidateStruct(&whatsappFixture{Number: number})
		assert.NotEmpty(t, errs, "expected %q to be rejected", number)
	}

	// Empty passes; required is a separate rule
	assert.Empty(t, ValidateStruct(&whatsappFixture{}))
}

type pinFixture struct {
	PIN string `validate:"pin"`
}

func TestPINRule(t *testing.T) {
	assert.Empty(t, ValidateStruct(&pinFixture{PIN: "123456"}))
	assert.Empty(t, ValidateStruct(&pinFixture{PIN: "000000"}))

	for _, pin := range []string{"12345", "1234567", "12a456", "12 456"} {
		errs := ValidateStruct(&pinFixture{PIN: pin})
		assert.NotEmpty(t, errs, "expected %q to be rejected", pin)
	}
}

type uuidFixture struct {
	ID string `validate:"required,uuid_field"`
}

func TestUUIDRule(t *testing.T) {
	assert.Empty(t, ValidateStruct(&uuidFixture{ID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}))

	errs := ValidateStruct(&uuidFixture{ID: "not-a-uuid"})
	require.Len(t, errs, 1)
	assert.Equal(t, "uuid_field", errs[0].Tag)
}

type numericFixture struct {
	Value string `validate:"numeric_string"`
}

func TestNumericStringRule(t *testing.T) {
	for _, v := range []string{"2015", "1500000.50", "-3"} {
		assert.Empty(t, ValidateStruct(&numericFixture{Value: v}), "expected %q to be valid", v)
	}
	for _, v := range []string{"abc", "20O5", "1,500", "15.000.000"} {
		assert.NotEmpty(t, ValidateStruct(&numericFixture{Value: v}), "expected %q to be rejected", v)
	}
}

type walletFixture struct {
	Address string `validate:"wallet_address"`
}

func TestWalletAddressRule(t *testing.T) {
	assert.Empty(t, ValidateStruct(&walletFixture{Address: "7EYnhQoR9YM3N7UoaKRoA44Uy8JeaZV3qyouov87awMs"}))
	assert.NotEmpty(t, ValidateStruct(&walletFixture{Address: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb3"}))
	assert.NotEmpty(t, ValidateStruct(&walletFixture{Address: "short"}))
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	type fixture struct {
		Email string `validate:"required,email"`
		PIN   string `validate:"required,pin"`
	}

	errs := ValidateStruct(&fixture{Email: "bad", PIN: "12"})
	require.Len(t, errs, 2)

	details := errs.Details()
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "pIN")
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "Invalid email format"},
		{Field: "pin", Message: "PIN must be exactly 6 digits"},
	}
	assert.Equal(t, "email: Invalid email format; pin: PIN must be exactly 6 digits", errs.Error())
}
