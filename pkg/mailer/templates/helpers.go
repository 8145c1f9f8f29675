package templates

import (
	"strings"
	"time"

	"github.com/oksasatya/finance-tracker-api/config"
)

// Option pattern
type Option func(*EmailData)

func WithIP(ip string) Option        { return func(d *EmailData) { d.IP = strings.TrimSpace(ip) } }
func WithUserAgent(ua string) Option { return func(d *EmailData) { d.UserAgent = ua } }
func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04 MST") }
}

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:  name,
		Email: email,
		Type:  typ,
	}
	if cfg != nil {
		d.CompanyName = cfg.CompanyName
		d.CompanyAddress = cfg.CompanyAddress
		d.AppName = cfg.AppName
		d.LogoURL = cfg.LogoURL
		d.SupportURL = cfg.SupportURL
		d.PrivacyURL = cfg.PrivacyURL
		d.AppURL = cfg.AppURL
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewData builds the job payload for template typ.
func NewData(cfg *config.Config, typ, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, typ, name, email, opts...))
}
