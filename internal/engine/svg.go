package engine

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteSVG serializes a drawing into an inline-embeddable SVG document sized
// to a width×height pixel box. The viewBox carries device coordinates; the
// default preserveAspectRatio (xMidYMid meet) supplies the aspect-preserving
// contain fit.
func WriteSVG(w io.Writer, d *Drawing, width, height int) error {
	vb := d.ViewBox
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s">`+"\n",
		width, height, ftoa(vb.X), ftoa(vb.Y), ftoa(vb.Width), ftoa(vb.Height))
	if err != nil {
		return err
	}

	for _, el := range d.Elements {
		if err := writeElement(w, el); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</svg>\n")
	return err
}

// SVGString renders a drawing to an SVG document string.
func SVGString(d *Drawing, width, height int) string {
	var sb strings.Builder
	WriteSVG(&sb, d, width, height)
	return sb.String()
}

func writeElement(w io.Writer, el Element) error {
	var err error
	switch e := el.(type) {
	case Line:
		_, err = fmt.Fprintf(w,
			`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			ftoa(e.X1), ftoa(e.Y1), ftoa(e.X2), ftoa(e.Y2), e.Stroke, ftoa(e.Width))

	case Circle:
		_, err = fmt.Fprintf(w,
			`<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			ftoa(e.CX), ftoa(e.CY), ftoa(e.R), e.Fill, e.Stroke, ftoa(e.Width))

	case Polygon:
		var pts strings.Builder
		for i, p := range e.Points {
			if i > 0 {
				pts.WriteByte(' ')
			}
			pts.WriteString(ftoa(p.X))
			pts.WriteByte(',')
			pts.WriteString(ftoa(p.Y))
		}
		stroke := e.Stroke
		if e.Width == 0 {
			stroke = "none"
		}
		_, err = fmt.Fprintf(w,
			`<polygon points="%s" fill="%s"%s stroke="%s" stroke-width="%s"/>`+"\n",
			pts.String(), e.Fill, fillOpacityAttr(e.FillOpacity), stroke, ftoa(e.Width))

	case Sector:
		sweep := 0
		if e.Sweep {
			sweep = 1
		}
		_, err = fmt.Fprintf(w,
			`<path d="M %s %s L %s %s A %s %s 0 0 %d %s %s Z" fill="%s"%s stroke="%s" stroke-width="%s"/>`+"\n",
			ftoa(e.VX), ftoa(e.VY), ftoa(e.SX), ftoa(e.SY),
			ftoa(e.R), ftoa(e.R), sweep, ftoa(e.EX), ftoa(e.EY),
			e.Fill, fillOpacityAttr(e.FillOpacity), e.Stroke, ftoa(e.Width))

	case Text:
		_, err = fmt.Fprintf(w,
			`<text x="%s" y="%s" font-size="%s" font-family="sans-serif" text-anchor="%s" fill="%s">%s</text>`+"\n",
			ftoa(e.X), ftoa(e.Y), ftoa(e.Size), e.Anchor, e.Color, escapeText(e.Content))
	}
	return err
}

// ftoa formats a coordinate with enough precision for sub-pixel accuracy at
// typical figure scales, without the noise of full float64 output.
func ftoa(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		// Normalize the negative zero the vertical flip produces.
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func fillOpacityAttr(o float64) string {
	if o <= 0 || o >= 1 {
		return ""
	}
	return ` fill-opacity="` + ftoa(o) + `"`
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
