package wordcloud

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/psykhi/wordclouds"

	"github.com/artem13815/jobstats/pkg/wordfreq"
)

const NameCloud = "cloud"

// CloudRenderer lays words out on a spiral with psykhi/wordclouds.
type CloudRenderer struct {
	opts     Options
	fontPath string
	tempFont bool
}

func NewCloudRenderer(opts Options) (*CloudRenderer, error) {
	opts = opts.withDefaults()
	r := &CloudRenderer{opts: opts, fontPath: opts.FontPath}
	if r.fontPath != "" {
		if _, err := os.Stat(r.fontPath); err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
		return r, nil
	}
	// wordclouds loads fonts by path only
	data, err := loadFont("")
	if err != nil {
		return nil, err
	}
	f, err := os.CreateTemp("", "jobstats-font-*.ttf")
	if err != nil {
		return nil, fmt.Errorf("create font file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write font file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	r.fontPath, r.tempFont = f.Name(), true
	return r, nil
}

func (r *CloudRenderer) Name() string { return NameCloud }

func (r *CloudRenderer) Render(ctx context.Context, freq wordfreq.FrequencyMap) (img []byte, err error) {
	if len(freq) == 0 {
		return nil, errors.New("nothing to render")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words := freq.Limit(r.opts.MaxWords)

	// the library panics on font errors
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("wordcloud: %v", p)
		}
	}()
	wc := wordclouds.NewWordcloud(map[string]int(words),
		wordclouds.FontFile(r.fontPath),
		wordclouds.Width(r.opts.Width),
		wordclouds.Height(r.opts.Height),
		wordclouds.FontMinSize(12),
		wordclouds.FontMaxSize(maxFontSize(r.opts.Height)),
		wordclouds.Colors(palette),
		wordclouds.BackgroundColor(color.White),
		wordclouds.RandomPlacement(false),
	)
	return encodePNG(wc.Draw())
}

// Close removes the bundled font copy, if one was written.
func (r *CloudRenderer) Close() error {
	if !r.tempFont {
		return nil
	}
	return os.Remove(r.fontPath)
}

func maxFontSize(height int) int {
	size := height / 6
	if size < 24 {
		size = 24
	}
	return size
}
