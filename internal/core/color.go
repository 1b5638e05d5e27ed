package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGold
	ColorSilver
	ColorNavy
	ColorSteelBlue
	ColorLightGray
	ColorSkyBlue
	ColorSlateGray
	ColorLightBlue
	ColorSpace // near-black backdrop
	ColorBlack
)

// String returns the color name used in config files and logs.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "default"
}

var colorNames = map[Color]string{
	ColorDefault:   "default",
	ColorRed:       "red",
	ColorGreen:     "green",
	ColorYellow:    "yellow",
	ColorBlue:      "blue",
	ColorWhite:     "white",
	ColorGold:      "gold",
	ColorSilver:    "silver",
	ColorNavy:      "navy",
	ColorSteelBlue: "steelblue",
	ColorLightGray: "lightgray",
	ColorSkyBlue:   "skyblue",
	ColorSlateGray: "slategray",
	ColorLightBlue: "lightblue",
	ColorSpace:     "space",
	ColorBlack:     "black",
}

// ParseColor looks up a color by name. The second result is false for
// unknown names.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}

// UnmarshalText lets colors be written by name in YAML config files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return &UnknownColorError{Name: string(text)}
	}
	*c = parsed
	return nil
}

// MarshalText writes the color name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnknownColorError is returned when a color name is not in the palette.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return "core: unknown color " + `"` + e.Name + `"`
}
