package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "←"
	IconChevron  = "›"
)

// Layout sizing (tiles / pages)
const (
	TileWidth       float32 = 200
	TileHeight      float32 = 160
	TileImageHeight float32 = 110

	DetailImageWidth  float32 = 360
	DetailImageHeight float32 = 240

	// Columns used by phones in portrait orientation
	MobileColumns = 2
)

// Window sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 320
)
