package engine

import (
	"encoding/json"
	"fmt"

	"github.com/figurate/figurate/backend-go/internal/figure"
)

// Defaults used when a caller leaves render options zero-valued.
const (
	DefaultPadding = 0.5
	DefaultWidth   = 640
	DefaultHeight  = 480
)

// Options selects the visual mode, the math-space viewport padding and the
// pixel box of the output document.
type Options struct {
	Mode    figure.Mode
	Padding float64
	Width   int
	Height  int
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = figure.ModeSolver
	}
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// ParseFigure decodes a figure from JSON.
func ParseFigure(data []byte) (*figure.Figure, error) {
	var f figure.Figure
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode figure: %w", err)
	}
	return &f, nil
}

// RenderSVG is the one-call path from a figure to an SVG document. The
// skipped list reports objects dropped as unresolvable.
func RenderSVG(f *figure.Figure, opts Options) (string, []Skipped) {
	opts = opts.withDefaults()
	d, skipped := Render(f, opts.Mode, opts.Padding)
	return SVGString(d, opts.Width, opts.Height), skipped
}
