package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/finance-tracker-api/config"
)

func TestRender_AllTemplates(t *testing.T) {
	cfg := &config.Config{CompanyName: "Ledger", AppURL: "https://app.example.com"}
	for _, name := range []string{Welcome, LoginNotification, LogoutAll, AccountDeactivated} {
		t.Run(name, func(t *testing.T) {
			data := ToMap(NewBaseEmailData(cfg, name, "Ann", "ann@example.com",
				WithTime(time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)),
				WithIP("203.0.113.7"),
			))
			subject, text, html, err := Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.NotContains(t, subject, "\n")
			assert.Contains(t, text, "ann@example.com")
			assert.Contains(t, html, "ann@example.com")
		})
	}
}

func TestRender_DefaultsWhenDataMissing(t *testing.T) {
	subject, text, _, err := Render(Welcome, map[string]any{"Email": "x@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Finance Tracker", subject)
	assert.Contains(t, text, "Hi there")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("universal", nil)
	assert.Error(t, err)
}

func TestNewData(t *testing.T) {
	data := NewData(nil, LoginNotification, "Ann", "ann@example.com", WithUserAgent("curl/8"))
	assert.Equal(t, LoginNotification, data["Type"])
	assert.Equal(t, "curl/8", data["UserAgent"])
}
