package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/launchgrid/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// default long-hover threshold from the process configuration
	defaultThresholdMS int

	// UI components
	iconSizeSlider  *widget.Slider
	iconSizeLabel   *widget.Label
	thresholdEntry  *widget.Entry
	hideOnLaunch    *widget.Check
	languageSelect  *widget.Select
	languageByLabel map[string]string

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// new values have been stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, defaultThresholdMS int, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:           settings,
		localization:       localization,
		window:             window,
		defaultThresholdMS: defaultThresholdMS,
		onSaved:            onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.iconSizeLabel = widget.NewLabel("")
	sd.iconSizeSlider = widget.NewSlider(config.MinIconSize, config.MaxIconSize)
	sd.iconSizeSlider.Step = 8
	sd.iconSizeSlider.OnChanged = func(v float64) {
		sd.iconSizeLabel.SetText(strconv.Itoa(int(v)))
	}
	iconSizeRow := container.NewBorder(nil, nil, nil, sd.iconSizeLabel, sd.iconSizeSlider)

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(strconv.Itoa(config.MinHoverThresholdMS) + "-" + strconv.Itoa(config.MaxHoverThresholdMS))

	sd.hideOnLaunch = widget.NewCheck(sd.localization.GetText(KeyHideOnLaunch), nil)

	// Language selection shows display names, stores codes
	sd.languageByLabel = make(map[string]string)
	languageLabels := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		languageLabels = append(languageLabels, label)
	}
	sort.Strings(languageLabels)
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyGridSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyIconSize)+":"),
		iconSizeRow,

		widget.NewLabel(sd.localization.GetText(KeyHoverThreshold)+":"),
		sd.thresholdEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		sd.hideOnLaunch,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.iconSizeSlider.SetValue(float64(sd.settings.GetIconSize()))
	sd.iconSizeLabel.SetText(strconv.Itoa(sd.settings.GetIconSize()))
	sd.thresholdEntry.SetText(strconv.Itoa(sd.settings.GetHoverThresholdMS(sd.defaultThresholdMS)))
	sd.hideOnLaunch.SetChecked(sd.settings.GetHideOnLaunch())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetIconSize(int(sd.iconSizeSlider.Value))

	if ms, err := strconv.Atoi(sd.thresholdEntry.Text); err == nil {
		if ms == sd.defaultThresholdMS {
			sd.settings.SetHoverThresholdMS(0)
		} else {
			sd.settings.SetHoverThresholdMS(ms)
		}
	}

	sd.settings.SetHideOnLaunch(sd.hideOnLaunch.Checked)

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
