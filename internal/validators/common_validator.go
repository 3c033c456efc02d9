package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("uuid_field", validateUUIDField)
	validate.RegisterValidation("whatsapp", validateWhatsApp)
	validate.RegisterValidation("pin", validatePIN)
	validate.RegisterValidation("numeric_string", validateNumericString)
	validate.RegisterValidation("wallet_address", validateWalletAddress)
	validate.RegisterValidation("plate_number", validatePlateNumber)
	validate.RegisterValidation("score_value", validateScoreValue)
}

// Common validation errors
var (
	ErrInvalidUUID        = errors.New("invalid UUID format")
	ErrInvalidWhatsApp    = errors.New("invalid WhatsApp number")
	ErrInvalidPIN         = errors.New("PIN must be exactly 6 digits")
	ErrInvalidNumeric     = errors.New("value is not numeric")
	ErrInvalidWallet      = errors.New("invalid wallet address")
	ErrInvalidPlateNumber = errors.New("invalid plate number format")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into the field->message map the response
// envelope carries.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		if _, exists := details[err.Field]; !exists {
			details[err.Field] = err.Message
		}
	}
	return details
}

// ValidateStruct runs the rule table against s and collects every violation.
// It never stops at the first failure: the client must see all corrections
// needed in one round trip.
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   "request",
				Tag:     "invalid",
				Message: err.Error(),
			})
			return validationErrors
		}
		for _, fe := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fieldPath(fe),
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
				Message: getErrorMessage(fe),
			})
		}
	}

	return validationErrors
}

// fieldPath strips the top-level struct name so errors read
// "vehicleData.tahun" instead of "InspectionCreateRequest.VehicleData.Tahun".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = lowerFirst(p)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Preserve index suffixes like "Catatan[2]"
	return strings.ToLower(s[:1]) + s[1:]
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "uuid", "uuid_field":
		return "Invalid UUID format"
	case "whatsapp":
		return "WhatsApp number must be 12 to 16 characters"
	case "pin":
		return "PIN must be exactly 6 digits"
	case "numeric", "numeric_string":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	case "wallet_address":
		return "Invalid wallet address"
	case "plate_number":
		return "Invalid plate number format"
	case "score_value":
		return fmt.Sprintf("%s must be a score between 0 and 10", fe.Field())
	case "dive":
		return fmt.Sprintf("Invalid element in %s", fe.Field())
	default:
		return fmt.Sprintf("Validation failed for %s", fe.Field())
	}
}

// Custom validation functions
func validateUUIDField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func validateWhatsApp(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	if number == "" {
		return true
	}

	if len(number) < 12 || len(number) > 16 {
		return false
	}

	waRegex := regexp.MustCompile(`^\+?[0-9]+$`)
	return waRegex.MatchString(number)
}

func validatePIN(fl validator.FieldLevel) bool {
	pin := fl.Field().String()
	if pin == "" {
		return true
	}

	pinRegex := regexp.MustCompile(`^[0-9]{6}$`)
	return pinRegex.MatchString(pin)
}

func validateNumericString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	numRegex := regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	return numRegex.MatchString(value)
}

func validateWalletAddress(fl validator.FieldLevel) bool {
	address := fl.Field().String()
	if address == "" {
		return true
	}

	// Base58, Solana addresses are 32-44 characters
	walletRegex := regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	return walletRegex.MatchString(address)
}

func validatePlateNumber(fl validator.FieldLevel) bool {
	plate := fl.Field().String()
	if plate == "" {
		return true
	}

	plateRegex := regexp.MustCompile(`^[A-Z]{1,2}\s?[0-9]{1,4}\s?[A-Z]{0,3}$`)
	return plateRegex.MatchString(strings.ToUpper(plate))
}

func validateScoreValue(fl validator.FieldLevel) bool {
	score := fl.Field().Int()
	return score >= 0 && score <= 10
}

// Helper functions for common validations
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
