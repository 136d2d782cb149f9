package wordcloud

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/artem13815/jobstats/pkg/wordfreq"
)

// Renderer turns a frequency map into an encoded image.
type Renderer interface {
	Name() string
	Render(ctx context.Context, freq wordfreq.FrequencyMap) ([]byte, error)
}

type Options struct {
	Width    int
	Height   int
	MaxWords int
	// FontPath points to a TTF file. Go Regular is used when empty; it has
	// no Hangul glyphs, so Korean deployments should set a CJK font.
	FontPath string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.MaxWords <= 0 {
		o.MaxWords = 100
	}
	return o
}

// New returns the renderer registered under name ("cloud" or "simple").
func New(name string, opts Options) (Renderer, error) {
	switch name {
	case "", NameCloud:
		return NewCloudRenderer(opts)
	case NameSimple:
		return NewSimpleRenderer(opts)
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.RGBA{R: 0x17, G: 0x17, B: 0x17, A: 0xff},
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func loadFont(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}
