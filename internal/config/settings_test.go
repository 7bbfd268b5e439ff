package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Language option %s missing", key)
		}
	}
}

func TestIconSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetIconSize(); size != DefaultIconSize {
		t.Errorf("Expected default icon size %d, got %d", DefaultIconSize, size)
	}

	settings.SetIconSize(96)
	if size := settings.GetIconSize(); size != 96 {
		t.Errorf("Expected icon size 96, got %d", size)
	}

	// Test boundary values
	settings.SetIconSize(10)
	if settings.GetIconSize() != MinIconSize {
		t.Errorf("Icon size should be clamped to minimum %d", MinIconSize)
	}

	settings.SetIconSize(1000)
	if settings.GetIconSize() != MaxIconSize {
		t.Errorf("Icon size should be clamped to maximum %d", MaxIconSize)
	}
}

func TestHoverThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if ms := settings.GetHoverThresholdMS(1500); ms != 1500 {
		t.Errorf("Expected fallback 1500 without override, got %d", ms)
	}

	settings.SetHoverThresholdMS(800)
	if ms := settings.GetHoverThresholdMS(1500); ms != 800 {
		t.Errorf("Expected override 800, got %d", ms)
	}

	settings.SetHoverThresholdMS(50)
	if ms := settings.GetHoverThresholdMS(1500); ms != MinHoverThresholdMS {
		t.Errorf("Expected clamp to %d, got %d", MinHoverThresholdMS, ms)
	}

	settings.SetHoverThresholdMS(60000)
	if ms := settings.GetHoverThresholdMS(1500); ms != MaxHoverThresholdMS {
		t.Errorf("Expected clamp to %d, got %d", MaxHoverThresholdMS, ms)
	}

	settings.SetHoverThresholdMS(0)
	if ms := settings.GetHoverThresholdMS(1500); ms != 1500 {
		t.Errorf("Expected override cleared, got %d", ms)
	}
}

func TestHideOnLaunch(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHideOnLaunch() != DefaultHideOnLaunch {
		t.Errorf("Expected default hide-on-launch %v", DefaultHideOnLaunch)
	}

	settings.SetHideOnLaunch(false)
	if settings.GetHideOnLaunch() {
		t.Error("Expected hide-on-launch to be disabled")
	}
}

func TestLastPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if page := settings.GetLastPage(); page != 0 {
		t.Errorf("Expected last page 0, got %d", page)
	}

	settings.SetLastPage(3)
	if page := settings.GetLastPage(); page != 3 {
		t.Errorf("Expected last page 3, got %d", page)
	}

	settings.SetLastPage(-2)
	if page := settings.GetLastPage(); page != 0 {
		t.Errorf("Expected negative page clamped to 0, got %d", page)
	}
}
