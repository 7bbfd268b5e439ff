package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyIconSize         = "icon_size"
	KeyHoverThresholdMS = "hover_threshold_ms"
	KeyHideOnLaunch     = "hide_on_launch"
	KeyLastPage         = "last_page"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultIconSize     = 72
	DefaultHideOnLaunch = true
)

// Bounds for user-adjustable values
const (
	MinIconSize         = 48
	MaxIconSize         = 160
	MinHoverThresholdMS = 300
	MaxHoverThresholdMS = 5000
)

// Settings manages user preferences stored by Fyne
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetIconSize returns the tile icon size in pixels
func (s *Settings) GetIconSize() int {
	value := s.app.Preferences().Int(KeyIconSize)
	if value <= 0 {
		s.SetIconSize(DefaultIconSize)
		return DefaultIconSize
	}
	return value
}

// SetIconSize sets the tile icon size, clamped to the supported range
func (s *Settings) SetIconSize(size int) {
	if size < MinIconSize {
		size = MinIconSize
	}
	if size > MaxIconSize {
		size = MaxIconSize
	}
	s.app.Preferences().SetInt(KeyIconSize, size)
}

// GetHoverThresholdMS returns the user's long-hover override in
// milliseconds, or fallback when none is set
func (s *Settings) GetHoverThresholdMS(fallback int) int {
	value := s.app.Preferences().Int(KeyHoverThresholdMS)
	if value <= 0 {
		return fallback
	}
	return value
}

// SetHoverThresholdMS stores a long-hover override, clamped to the
// supported range. Zero clears the override.
func (s *Settings) SetHoverThresholdMS(ms int) {
	if ms == 0 {
		s.app.Preferences().RemoveValue(KeyHoverThresholdMS)
		return
	}
	if ms < MinHoverThresholdMS {
		ms = MinHoverThresholdMS
	}
	if ms > MaxHoverThresholdMS {
		ms = MaxHoverThresholdMS
	}
	s.app.Preferences().SetInt(KeyHoverThresholdMS, ms)
}

// GetHideOnLaunch returns whether the window hides after launching an app
func (s *Settings) GetHideOnLaunch() bool {
	return s.app.Preferences().BoolWithFallback(KeyHideOnLaunch, DefaultHideOnLaunch)
}

// SetHideOnLaunch sets whether the window hides after launching an app
func (s *Settings) SetHideOnLaunch(hide bool) {
	s.app.Preferences().SetBool(KeyHideOnLaunch, hide)
}

// GetLastPage returns the page shown when the launcher was last closed
func (s *Settings) GetLastPage() int {
	return s.app.Preferences().IntWithFallback(KeyLastPage, 0)
}

// SetLastPage remembers the page currently shown
func (s *Settings) SetLastPage(page int) {
	if page < 0 {
		page = 0
	}
	s.app.Preferences().SetInt(KeyLastPage, page)
}
