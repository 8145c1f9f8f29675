package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("a@x.com"))
	assert.True(t, Email("first.last+tag@example.co.uk"))
	assert.False(t, Email(""))
	assert.False(t, Email("no-at-sign"))
	assert.False(t, Email("spaces in@x.com"))
}

func TestDisplayName(t *testing.T) {
	assert.True(t, DisplayName("Ann"))
	assert.False(t, DisplayName("A"))
	assert.False(t, DisplayName(""))
}

func TestCharacterClasses(t *testing.T) {
	assert.True(t, HasUpper("abcD"))
	assert.False(t, HasUpper("abcÉ"))
	assert.False(t, HasUpper(""))
	assert.True(t, HasDigit("abc7"))
	assert.False(t, HasDigit("abc١"))
}

func TestMessage(t *testing.T) {
	type req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"email"`
	}
	v := validator.New()
	registerCommon(v)

	err := v.Struct(req{Email: "a@x.com"})
	require.Error(t, err)
	assert.Equal(t, "Name is required", Message(err))

	err = v.Struct(req{Name: "Ann", Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "Email failed 'email'", Message(err))

	var syntax map[string]any
	err = json.Unmarshal([]byte("{"), &syntax)
	assert.Equal(t, "Invalid request body", Message(err))

	assert.Equal(t, "", Message(nil))
}
