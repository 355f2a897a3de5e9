package utils

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"
)

// CountryCode is the default region used to parse local phone numbers.
var CountryCode = "TZ"

var (
	validate     *validator.Validate
	validateOnce sync.Once
	whitespaceRe = regexp.MustCompile(`\s+`)
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct runs the `validate` tags of input and maps failures to a *ValidationError.
func ValidateStruct(input interface{}) error {
	err := getValidator().Struct(input)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return &ValidationError{Fields: ProcessValidationErrors(ve)}
	}
	return err
}

func ProcessValidationErrors(err error) map[string]string {
	errorResponse := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errorResponse
	}
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}

func NewId() string {
	return uuid.NewString()
}

// ShortRef returns the last four characters of id, used for human readable order numbers.
func ShortRef(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

// Slugify lower-cases name and joins whitespace runs with '-'.
func Slugify(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err
	}
	if !libphonenumber.IsValidNumber(p) {
		return errors.New("phone number is not valid")
	}
	return nil
}

// NormalizePhoneNumber formats phoneNumber as E.164 when it is a valid number, otherwise it is returned trimmed.
func NormalizePhoneNumber(phoneNumber string) string {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return phoneNumber
	}
	p, err := libphonenumber.Parse(phoneNumber, CountryCode)
	if err != nil || !libphonenumber.IsValidNumber(p) {
		return phoneNumber
	}
	return libphonenumber.Format(p, libphonenumber.E164)
}
