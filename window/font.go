package window

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadScoreFace returns the face for the score and the game-over title
// An empty path uses Go Regular; any other path must be a readable TTF/OTF
func LoadScoreFace(path string, size float64) (text.Face, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("window: read font: %w", err)
		}
		data = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: parse font %q: %w", path, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// smallFace is the bitmap face for HUD and button labels
func smallFace() text.Face {
	return text.NewGoXFace(bitmapfont.Face)
}
