package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrGlyph is wrapped by every malformed glyph error
var ErrGlyph = errors.New("invalid glyph")

//go:embed splash_font.toml
var defaultSplashFont []byte

// maxGlyphWidth is the number of columns a uint16 row can hold
const maxGlyphWidth = 16

// SplashFont is a fixed-size bitmap font for large block digits
// Each row is MSB-first: bit 15 is column 0
type SplashFont struct {
	Width    int
	Height   int
	glyphs   map[rune][]uint16
	fallback []uint16
}

type splashFontFile struct {
	Width  int                 `toml:"width"`
	Height int                 `toml:"height"`
	Glyphs map[string][]string `toml:"glyphs"`
}

// DefaultSplashFont parses the embedded font
func DefaultSplashFont() (*SplashFont, error) {
	return ParseSplashFont(defaultSplashFont)
}

// LoadSplashFont reads a font file
func LoadSplashFont(path string) (*SplashFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("splash font: %w", err)
	}
	f, err := ParseSplashFont(data)
	if err != nil {
		return nil, fmt.Errorf("splash font %s: %w", path, err)
	}
	return f, nil
}

// ParseSplashFont decodes TOML font data
func ParseSplashFont(data []byte) (*SplashFont, error) {
	var file splashFontFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if file.Width <= 0 || file.Width > maxGlyphWidth || file.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrGlyph, file.Width, file.Height)
	}
	if len(file.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: font has no glyphs", ErrGlyph)
	}

	f := &SplashFont{
		Width:  file.Width,
		Height: file.Height,
		glyphs: make(map[rune][]uint16, len(file.Glyphs)),
	}

	for key, rows := range file.Glyphs {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: key %q is not a single character", ErrGlyph, key)
		}
		bitmap, err := f.parseRows(rows)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", key, err)
		}
		f.glyphs[r[0]] = bitmap
	}

	if fb, ok := f.glyphs['?']; ok {
		f.fallback = fb
	} else {
		f.fallback = make([]uint16, f.Height)
	}
	return f, nil
}

func (f *SplashFont) parseRows(rows []string) ([]uint16, error) {
	if len(rows) != f.Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrGlyph, len(rows), f.Height)
	}
	bitmap := make([]uint16, f.Height)
	for y, row := range rows {
		if len(row) != f.Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrGlyph, y, len(row), f.Width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				bitmap[y] |= 1 << (15 - x)
			case '.':
			default:
				return nil, fmt.Errorf("%w: row %d column %d: unexpected %q", ErrGlyph, y, x, row[x])
			}
		}
	}
	return bitmap, nil
}

// Glyph returns the bitmap for r, or the fallback glyph when r is missing
func (f *SplashFont) Glyph(r rune) []uint16 {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.fallback
}

// Has reports whether r has its own glyph
func (f *SplashFont) Has(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Set reports whether the cell at column x, row y of glyph is filled
func Set(glyph []uint16, x, y int) bool {
	if y < 0 || y >= len(glyph) || x < 0 || x >= maxGlyphWidth {
		return false
	}
	return glyph[y]&(1<<(15-x)) != 0
}

// TextWidth returns the cell width of s drawn with spacing between glyphs
func (f *SplashFont) TextWidth(s string, spacing int) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*f.Width + (n-1)*spacing
}
