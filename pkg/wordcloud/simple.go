package wordcloud

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/artem13815/jobstats/pkg/wordfreq"
)

const NameSimple = "simple"

const (
	simpleMinSize = 12.0
	simpleMaxSize = 64.0
	simpleMargin  = 10
)

// SimpleRenderer draws words left to right in rows, biggest first. The
// layout is deterministic, which keeps cached and fresh images identical.
type SimpleRenderer struct {
	opts Options
	font *truetype.Font
}

func NewSimpleRenderer(opts Options) (*SimpleRenderer, error) {
	opts = opts.withDefaults()
	data, err := loadFont(opts.FontPath)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &SimpleRenderer{opts: opts, font: f}, nil
}

func (r *SimpleRenderer) Name() string { return NameSimple }

func (r *SimpleRenderer) Render(ctx context.Context, freq wordfreq.FrequencyMap) ([]byte, error) {
	if len(freq) == 0 {
		return nil, errors.New("nothing to render")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	top := freq.Top(r.opts.MaxWords)
	maxCount := top[0].Count
	x, y, lineHeight := simpleMargin, simpleMargin, 0
	for i, wc := range top {
		word := strings.TrimSpace(wc.Word)
		if word == "" {
			continue
		}
		size := simpleMinSize + (simpleMaxSize-simpleMinSize)*float64(wc.Count)/float64(maxCount)
		face := truetype.NewFace(r.font, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		d := &font.Drawer{Dst: img, Src: image.NewUniform(palette[i%len(palette)]), Face: face}
		advance := d.MeasureString(word).Ceil()
		height := face.Metrics().Height.Ceil()
		if x+advance > r.opts.Width-simpleMargin && x > simpleMargin {
			x = simpleMargin
			y += lineHeight
			lineHeight = 0
		}
		if y+height > r.opts.Height-simpleMargin {
			_ = face.Close()
			break
		}
		d.Dot = fixed.P(x, y+face.Metrics().Ascent.Ceil())
		d.DrawString(word)
		_ = face.Close()

		x += advance + simpleMargin
		if height > lineHeight {
			lineHeight = height
		}
	}
	return encodePNG(img)
}
