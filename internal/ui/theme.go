package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LaunchpadTheme is a dark, low-chrome theme for the icon grid
type LaunchpadTheme struct{}

// NewLaunchpadTheme creates a new launcher theme
func NewLaunchpadTheme() fyne.Theme {
	return &LaunchpadTheme{}
}

// Color returns theme colors
func (t *LaunchpadTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 28, G: 30, B: 38, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 238, G: 238, B: 242, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 48, G: 52, B: 64, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 90, G: 160, B: 255, A: 255}
	case theme.ColorNameHover:
		return color.RGBA{R: 255, G: 255, B: 255, A: 28}
	case theme.ColorNameFocus:
		return color.RGBA{R: 90, G: 160, B: 255, A: 90}
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 83, B: 75, A: 255}
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.RGBA{R: 40, G: 43, B: 54, A: 250}
	}

	// the grid is always dark, whatever the system variant
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *LaunchpadTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LaunchpadTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *LaunchpadTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// tileHighlight is drawn behind a tile under a dragged icon
var tileHighlight = color.RGBA{R: 255, G: 255, B: 255, A: 40}

// folderBackground fills folder tiles
var folderBackground = color.RGBA{R: 255, G: 255, B: 255, A: 30}
