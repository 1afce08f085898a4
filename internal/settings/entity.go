package settings

import "time"

// Settings is the single per-user configuration record.
type Settings struct {
	CustomLogo                  string     `json:"customLogo,omitempty"`
	AsaasURL                    string     `json:"asaasUrl"`
	UserName                    string     `json:"userName"`
	PrimaryColor                string     `json:"primaryColor"`
	AccentColor                 string     `json:"accentColor"`
	SplashScreenBackgroundColor string     `json:"splashScreenBackgroundColor"`
	PrivacyModeEnabled          bool       `json:"privacyModeEnabled"`
	GoogleCalendarConnected     bool       `json:"googleCalendarConnected"`
	GoogleCalendarLastSync      *time.Time `json:"googleCalendarLastSync,omitempty"`
}

const (
	DefaultPrimaryColor = "#f8fafc"
	DefaultAccentColor  = "#1e293b"
	DefaultSplashColor  = "#111827"
	DefaultAsaasURL     = "https://www.asaas.com/login"
)

func Default() Settings {
	return Settings{
		AsaasURL:                    DefaultAsaasURL,
		PrimaryColor:                DefaultPrimaryColor,
		AccentColor:                 DefaultAccentColor,
		SplashScreenBackgroundColor: DefaultSplashColor,
	}
}

// Patch carries the fields of a partial settings update; nil means unchanged.
type Patch struct {
	CustomLogo                  *string    `json:"customLogo"`
	AsaasURL                    *string    `json:"asaasUrl"`
	UserName                    *string    `json:"userName"`
	PrimaryColor                *string    `json:"primaryColor"`
	AccentColor                 *string    `json:"accentColor"`
	SplashScreenBackgroundColor *string    `json:"splashScreenBackgroundColor"`
	PrivacyModeEnabled          *bool      `json:"privacyModeEnabled"`
	GoogleCalendarConnected     *bool      `json:"googleCalendarConnected"`
	GoogleCalendarLastSync      *time.Time `json:"googleCalendarLastSync"`
}

// Apply merges the set fields of the patch over s, shallowly.
func (p Patch) Apply(s Settings) Settings {
	if p.CustomLogo != nil {
		s.CustomLogo = *p.CustomLogo
	}
	if p.AsaasURL != nil {
		s.AsaasURL = *p.AsaasURL
	}
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.PrimaryColor != nil {
		s.PrimaryColor = *p.PrimaryColor
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	if p.SplashScreenBackgroundColor != nil {
		s.SplashScreenBackgroundColor = *p.SplashScreenBackgroundColor
	}
	if p.PrivacyModeEnabled != nil {
		s.PrivacyModeEnabled = *p.PrivacyModeEnabled
	}
	if p.GoogleCalendarConnected != nil {
		s.GoogleCalendarConnected = *p.GoogleCalendarConnected
	}
	if p.GoogleCalendarLastSync != nil {
		s.GoogleCalendarLastSync = p.GoogleCalendarLastSync
	}
	return s
}
