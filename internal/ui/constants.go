package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrev     = "‹"
	IconNext     = "›"
	IconDotOn    = "●"
	IconDotOff   = "○"
	IconSearch   = "🔍"
	IconRefresh  = "⟳"
)

// Tile sizing
const (
	TileLabelHeight float32 = 18
	TilePadding     float32 = 6
	TileCornerRad   float32 = 12
	FolderPreview           = 4 // item icons drawn inside a folder tile
	MaxLabelRunes           = 14
)

// Folder popup sizing
const (
	FolderPopupWidth  float32 = 420
	FolderPopupHeight float32 = 360
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)

// Window defaults
const (
	DefaultWindowWidth  float32 = 980
	DefaultWindowHeight float32 = 720
)

// Drag opacity for the tile being moved
const (
	DraggedTileAlpha uint8 = 90
)
