package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the parsed typefaces shared by every page.
type Fonts struct {
	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

var (
	fontsOnce sync.Once
	fonts     *Fonts
)

// LoadFonts parses the embedded Go fonts once.
func LoadFonts() *Fonts {
	fontsOnce.Do(func() {
		fonts = &Fonts{
			Regular: loadFace("Go Regular", goregular.TTF),
			Bold:    loadFace("Go Bold", gobold.TTF),
		}
	})
	return fonts
}

func loadFace(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Fatalf("Failed to load font '%s': %v", name, err)
	}
	log.Printf("[Font] %s (embedded)", name)
	return src
}

// Face returns a face of the given logical size scaled to device pixels.
func (f *Fonts) Face(bold bool, size, dpr float64) *text.GoTextFace {
	src := f.Regular
	if bold {
		src = f.Bold
	}
	return &text.GoTextFace{Source: src, Size: size * dpr}
}
