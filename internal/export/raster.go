package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/figurate/figurate/backend-go/internal/engine"
)

// supersample is the oversampling factor for rasterization; the result is
// downscaled to the requested size for cheap antialiasing.
const supersample = 2

// rasterizePNG rasterizes an SVG document into a width×height PNG. The
// drawing is fitted into the target box uniformly scaled and centered, the
// same "contain" behavior a browser applies to the inline SVG.
func rasterizePNG(svg string, width, height int, out io.Writer) error {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}

	w, h := width*supersample, height*supersample
	vb := engine.Rect{
		X:      icon.ViewBox.X,
		Y:      icon.ViewBox.Y,
		Width:  icon.ViewBox.W,
		Height: icon.ViewBox.H,
	}
	fit := engine.FitTransform(vb, float64(w), float64(h))
	tx, ty := fit.TransformPoint(vb.X, vb.Y)
	icon.SetTarget(tx, ty, vb.Width*fit[0], vb.Height*fit[0])

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	return png.Encode(out, small)
}
