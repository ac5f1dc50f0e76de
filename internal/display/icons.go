package display

// glyphs maps provider condition icon codes to single display glyphs. The
// wearable renders plain text, so conditions are reduced to one rune each.
var glyphs = map[string]string{
	"01d": "☀",
	"01n": "🌙",
	"02d": "⛅",
	"02n": "⛅",
	"03d": "☁",
	"03n": "☁",
	"04d": "☁",
	"04n": "☁",
	"09d": "🌧",
	"09n": "🌧",
	"10d": "🌦",
	"10n": "🌧",
	"11d": "⛈",
	"11n": "⛈",
	"13d": "❄",
	"13n": "❄",
	"50d": "🌫",
	"50n": "🌫",
}

const defaultGlyph = "🌡"

// Glyph returns the display glyph for a provider icon code, falling back to a
// neutral glyph for unmapped codes.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return defaultGlyph
}
