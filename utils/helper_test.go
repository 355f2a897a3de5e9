package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Burger King Tz":      "burger-king-tz",
		"  Zanzibar  Coffee ": "zanzibar-coffee",
		"Single":              "single",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, Slugify(in), in)
	}
}

func TestShortRef(t *testing.T) {
	assert.Equal(t, "cdef", ShortRef("abcdef"))
	assert.Equal(t, "ab", ShortRef("ab"))
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+16502530000", NormalizePhoneNumber("+1 650-253-0000"))
	// not a valid number: kept as typed
	assert.Equal(t, "555-0101", NormalizePhoneNumber(" 555-0101 "))
	assert.Equal(t, "", NormalizePhoneNumber(""))
}

func TestValidateStruct_MapsFieldTags(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	require.NoError(t, ValidateStruct(input{Name: "ok"}))

	err := ValidateStruct(input{Email: "not-an-email"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "required", ve.Fields["Name"])
	assert.Equal(t, "email", ve.Fields["Email"])
	assert.Contains(t, ve.Error(), "Name:required")
}
