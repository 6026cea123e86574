package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Checklist colors
var (
	colorLightBlue = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	colorNavy      = color.RGBA{R: 16, G: 42, B: 67, A: 255}
	colorCaught    = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	colorLink      = color.RGBA{R: 13, G: 71, B: 161, A: 255}
)

// CompactTheme is the checklist theme: a light blue window with reduced
// padding so more rows fit on screen
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameSuccess:
		return colorCaught
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		if dark {
			return colorLightBlue
		}
		return colorLink
	case theme.ColorNameHyperlink:
		if dark {
			return colorLightBlue
		}
		return colorLink
	case theme.ColorNameBackground:
		if dark {
			return colorNavy
		}
		return colorLightBlue
	case theme.ColorNameHeaderBackground:
		if dark {
			return color.RGBA{R: 10, G: 30, B: 50, A: 255}
		}
		return color.RGBA{R: 150, G: 196, B: 214, A: 255}
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
