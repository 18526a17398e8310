package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AtlasTheme matches the chrome to the plot: a dark slate background with
// the same blue accent the spectrum charts use.
type AtlasTheme struct{}

var _ fyne.Theme = (*AtlasTheme)(nil)

var accentBlue = color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}

func (m AtlasTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if variant == theme.VariantLight {
		switch name {
		case theme.ColorNamePrimary, theme.ColorNameButton:
			return color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
		case theme.ColorNameHover:
			return color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff}
		case theme.ColorNameSelection:
			return color.NRGBA{R: 0xbb, G: 0xde, B: 0xfb, A: 0xff}
		}
		return theme.DefaultTheme().Color(name, variant)
	}

	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x16, G: 0x16, B: 0x1a, A: 0xff} // Slate, a touch lighter than the plot
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return accentBlue
	case theme.ColorNameHover:
		return color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0x90, G: 0xca, B: 0xf9, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xdd, G: 0xdd, B: 0xe2, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x24, G: 0x24, B: 0x2a, A: 0xff}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x1e, G: 0x5a, B: 0x96, A: 0xff}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (m AtlasTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m AtlasTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m AtlasTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
