package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the runner and its HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorGold
	ColorPink
	ColorPurple
	ColorTeal
	ColorSky
	ColorLime
	ColorSlate
)

// String returns the palette name, used in config files and debug output.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorGray:    "gray",
	ColorOrange:  "orange",
	ColorGold:    "gold",
	ColorPink:    "pink",
	ColorPurple:  "purple",
	ColorTeal:    "teal",
	ColorSky:     "sky",
	ColorLime:    "lime",
	ColorSlate:   "slate",
}
