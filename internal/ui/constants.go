package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	SummaryFormat = "%d / %d seen · %d caught · %d missing"
	VisibleFormat = "%d shown"
)

// Layout sizing (EntryRow / header)
const (
	CheckColumnWidth float32 = 64
	IDColumnWidth    float32 = 56
	IconColumnWidth  float32 = 44
	IconSize         float32 = 40

	RowMinWidth  float32 = 420
	RowMinHeight float32 = 44
)

// Window and dialog sizing
const (
	WindowWidth          float32 = 800
	WindowHeight         float32 = 600
	WindowMinWidth       float32 = 450
	WindowMinHeight      float32 = 300
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
