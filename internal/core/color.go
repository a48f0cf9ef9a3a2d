package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// accentColors is the rotation used for per-object colors.
var accentColors = []Color{ColorCyan, ColorYellow, ColorMagenta, ColorGreen, ColorOrange, ColorRed, ColorBlue}

// AccentColor returns a distinct color for the i-th object in a scene.
func AccentColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return accentColors[i%len(accentColors)]
}
