package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		want     error
	}{
		{"short", ErrPasswordTooShort},
		{"Sh0rt", ErrPasswordTooShort},
		{"alllowercase1", ErrPasswordNoUppercase},
		{"NoDigitsHere", ErrPasswordNoDigit},
		{"GoodPass1", nil},
		{"ÄÖÜpass99", ErrPasswordNoUppercase},
		{"passwordÉ1", ErrPasswordNoUppercase},
		{"Password١", ErrPasswordNoDigit},
		{"Ab1😀😀😀", nil},
		{"Ab1😀😀", ErrPasswordTooShort},
		{"GoodPass1" + strings.Repeat("x", 63), nil},
		{"GoodPass1" + strings.Repeat("x", 64), ErrPasswordTooLong},
		{"short" + strings.Repeat("ä", 40), ErrPasswordNoUppercase},
	}
	for _, tc := range tests {
		t.Run(tc.password, func(t *testing.T) {
			err := CheckPassword(tc.password)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.want, err)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}

func TestCheckName(t *testing.T) {
	assert.Equal(t, ErrNameTooShort, checkName("A"))
	assert.NoError(t, checkName("Al"))
	assert.NoError(t, checkName(strings.Repeat("é", 100)))
	assert.Equal(t, ErrNameTooLong, checkName(strings.Repeat("x", 101)))
}
