package engine

import (
	"math"

	"github.com/figurate/figurate/backend-go/internal/figure"
)

// Drawing sizes are in device units (the padded, y-flipped viewport), so all
// of these are math-space magnitudes. Pixel scaling happens in the drawing
// surface's viewport fit.
const (
	pointRadius    = 0.09
	angleArcRadius = 0.8
	arrowLength    = 0.38
	arrowHalfWidth = 0.14
	labelOffset    = 0.2
	labelFontSize  = 0.5
	strokeWidth    = 0.06
	gridWidth      = 0.02
	axisWidth      = 0.045
)

// Element is one drawable primitive. The set is closed; the SVG writer and
// any other back-end switch over it exhaustively.
type Element interface {
	isElement()
}

// Line is a straight stroke between two device points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
}

// Circle is a circle outline or filled disc. Fill is "none" for outlines.
type Circle struct {
	CX, CY, R    float64
	Stroke, Fill string
	Width        float64
}

// Polygon is a closed path through device points, filled and stroked.
// FillOpacity 0 means fully opaque.
type Polygon struct {
	Points       []Point
	Stroke, Fill string
	FillOpacity  float64
	Width        float64
}

// Sector is a filled arc sector: vertex, arc start, arc end, radius. Sweep is
// the SVG sweep flag for the minor arc between the two rays.
type Sector struct {
	VX, VY       float64
	SX, SY       float64
	EX, EY       float64
	R            float64
	Sweep        bool
	Stroke, Fill string
	FillOpacity  float64
	Width        float64
}

// Text is a label glyph anchored at a device point.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Color   string
	Anchor  string
}

func (Line) isElement()    {}
func (Circle) isElement()  {}
func (Polygon) isElement() {}
func (Sector) isElement()  {}
func (Text) isElement()    {}

// Drawing is the rendered figure: a device-space camera box plus primitives
// in painter's order (back to front).
type Drawing struct {
	ViewBox  Rect
	ShowGrid bool
	Theme    Theme
	Elements []Element
}

// Render resolves the figure and renders it for the given mode. The second
// return value lists the objects that were dropped as unresolvable; an empty
// figure and a fully unresolvable one produce the same drawing.
func Render(f *figure.Figure, mode figure.Mode, pad float64) (*Drawing, []Skipped) {
	res := Resolve(f)
	m := NewMapper(f.Viewport, pad)
	theme := ThemeFor(mode)

	d := &Drawing{
		ViewBox: m.ViewBox(),
		// Vectors get a coordinate reference frame; other figures are
		// self-contained.
		ShowGrid: f.HasKind(figure.KindVector),
		Theme:    theme,
	}

	if d.ShowGrid {
		d.Elements = append(d.Elements, gridElements(f.Viewport, pad, m, theme)...)
	}

	for _, obj := range res.Objects {
		d.Elements = append(d.Elements, objectElements(obj, m, theme)...)
	}

	return d, res.Skipped
}

// gridElements emits integer-spaced grid lines plus the two axes across the
// padded viewport.
func gridElements(vp figure.Viewport, pad float64, m Mapper, theme Theme) []Element {
	x0, x1 := vp.XMin-pad, vp.XMax+pad
	y0, y1 := vp.YMin-pad, vp.YMax+pad

	var elems []Element
	for x := math.Ceil(x0); x <= x1; x++ {
		ax, ay := m.ToDevice(x, y0)
		bx, by := m.ToDevice(x, y1)
		w := gridWidth
		if x == 0 {
			w = axisWidth
		}
		elems = append(elems, Line{X1: ax, Y1: ay, X2: bx, Y2: by, Stroke: theme.Grid, Width: w})
	}
	for y := math.Ceil(y0); y <= y1; y++ {
		ax, ay := m.ToDevice(x0, y)
		bx, by := m.ToDevice(x1, y)
		w := gridWidth
		if y == 0 {
			w = axisWidth
		}
		elems = append(elems, Line{X1: ax, Y1: ay, X2: bx, Y2: by, Stroke: theme.Grid, Width: w})
	}
	return elems
}

// objectElements turns one resolved object into its primitives plus an
// optional label.
func objectElements(obj ResolvedObject, m Mapper, theme Theme) []Element {
	var elems []Element

	label := func(x, y float64, anchor string) {
		if obj.Label == "" {
			return
		}
		elems = append(elems, Text{
			X:       x,
			Y:       y,
			Content: SanitizeLabel(obj.Label),
			Size:    labelFontSize,
			Color:   theme.Stroke,
			Anchor:  anchor,
		})
	}

	switch g := obj.Geometry.(type) {
	case PointGeometry:
		x, y := m.ToDevice(g.At.X, g.At.Y)
		elems = append(elems, Circle{
			CX: x, CY: y, R: pointRadius,
			Fill:   theme.Stroke,
			Stroke: "#ffffff",
			Width:  gridWidth,
		})
		label(x+labelOffset, y-labelOffset, "start")

	case SegmentGeometry:
		x1, y1 := m.ToDevice(g.From.X, g.From.Y)
		x2, y2 := m.ToDevice(g.To.X, g.To.Y)
		elems = append(elems, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: theme.Stroke, Width: strokeWidth})
		label((x1+x2)/2, (y1+y2)/2-labelOffset, "middle")

	case VectorGeometry:
		x1, y1 := m.ToDevice(g.Tail.X, g.Tail.Y)
		x2, y2 := m.ToDevice(g.Tip.X, g.Tip.Y)
		elems = append(elems, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: theme.Stroke, Width: strokeWidth})
		if head, ok := arrowhead(x1, y1, x2, y2, theme.Stroke); ok {
			elems = append(elems, head)
		}
		label((x1+x2)/2, (y1+y2)/2-labelOffset, "middle")

	case CircleGeometry:
		x, y := m.ToDevice(g.Center.X, g.Center.Y)
		elems = append(elems, Circle{
			CX: x, CY: y, R: m.MapDistance(g.Radius),
			Fill:   "none",
			Stroke: theme.Stroke,
			Width:  strokeWidth,
		})
		label(x+labelOffset, y-labelOffset, "start")

	case PolygonGeometry:
		pts := make([]Point, len(g.Vertices))
		for i, v := range g.Vertices {
			x, y := m.ToDevice(v.X, v.Y)
			pts[i] = Point{x, y}
		}
		elems = append(elems, Polygon{Points: pts, Stroke: theme.Stroke, Fill: theme.Fill, FillOpacity: fillOpacity, Width: strokeWidth})
		if len(pts) > 0 {
			label(pts[0].X+labelOffset, pts[0].Y-labelOffset, "start")
		}

	case AngleGeometry:
		vx, vy := m.ToDevice(g.Vertex.X, g.Vertex.Y)
		sx, sy := m.ToDevice(
			g.Vertex.X+angleArcRadius*math.Cos(g.Start),
			g.Vertex.Y+angleArcRadius*math.Sin(g.Start),
		)
		ex, ey := m.ToDevice(
			g.Vertex.X+angleArcRadius*math.Cos(g.Start+g.Delta),
			g.Vertex.Y+angleArcRadius*math.Sin(g.Start+g.Delta),
		)
		elems = append(elems, Sector{
			VX: vx, VY: vy,
			SX: sx, SY: sy,
			EX: ex, EY: ey,
			R: m.MapDistance(angleArcRadius),
			// Positive math-space sweep is clockwise once y is flipped,
			// which is the SVG positive-angle direction.
			Sweep:       g.Delta > 0,
			Stroke:      theme.Stroke,
			Fill:        theme.Fill,
			FillOpacity: fillOpacity,
			Width:       strokeWidth,
		})
		mid := g.Start + g.Delta/2
		lx, ly := m.ToDevice(
			g.Vertex.X+(angleArcRadius+labelOffset*2)*math.Cos(mid),
			g.Vertex.Y+(angleArcRadius+labelOffset*2)*math.Sin(mid),
		)
		label(lx, ly, "middle")
	}

	return elems
}

// arrowhead builds the filled triangle at the tip of a vector, oriented along
// the segment direction. Degenerate (zero-length) vectors get no head.
func arrowhead(x1, y1, x2, y2 float64, color string) (Polygon, bool) {
	dx, dy := x2-x1, y2-y1
	n := math.Hypot(dx, dy)
	if n == 0 {
		return Polygon{}, false
	}
	ux, uy := dx/n, dy/n
	bx, by := x2-ux*arrowLength, y2-uy*arrowLength
	px, py := -uy, ux

	return Polygon{
		Points: []Point{
			{x2, y2},
			{bx + px*arrowHalfWidth, by + py*arrowHalfWidth},
			{bx - px*arrowHalfWidth, by - py*arrowHalfWidth},
		},
		Stroke: color,
		Fill:   color,
		Width:  0,
	}, true
}
