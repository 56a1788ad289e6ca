package engine

import "github.com/figurate/figurate/backend-go/internal/figure"

// BoardElement is one resolved object in the flat form the interactive
// graphing surface consumes. The surface owns pan/zoom, grid and styling, so
// only resolved coordinates and sanitized labels cross this boundary.
//
// Coords varies per kind: [x,y] for points, [x1,y1,x2,y2] for segments,
// lines and vectors, [cx,cy] for circles (with Radius set), flattened
// vertices for polygons, and [vx,vy] for angles (with Angles set to the
// start bearing and signed sweep, in radians).
type BoardElement struct {
	ID     string      `json:"id"`
	Kind   figure.Kind `json:"kind"`
	Coords []float64   `json:"coords"`
	Radius float64     `json:"radius,omitempty"`
	Angles []float64   `json:"angles,omitempty"`
	Label  string      `json:"label,omitempty"`
}

// BoardElements resolves the figure and flattens it for the interactive
// graphing back-end. Unresolvable objects are dropped, same as in drawing
// output.
func BoardElements(f *figure.Figure) []BoardElement {
	res := Resolve(f)

	elems := make([]BoardElement, 0, len(res.Objects))
	for _, obj := range res.Objects {
		el := BoardElement{
			ID:    obj.ID,
			Kind:  obj.Kind,
			Label: SanitizeLabel(obj.Label),
		}

		switch g := obj.Geometry.(type) {
		case PointGeometry:
			el.Coords = []float64{g.At.X, g.At.Y}
		case SegmentGeometry:
			el.Coords = []float64{g.From.X, g.From.Y, g.To.X, g.To.Y}
		case VectorGeometry:
			el.Coords = []float64{g.Tail.X, g.Tail.Y, g.Tip.X, g.Tip.Y}
		case CircleGeometry:
			el.Coords = []float64{g.Center.X, g.Center.Y}
			el.Radius = g.Radius
		case PolygonGeometry:
			el.Coords = make([]float64, 0, len(g.Vertices)*2)
			for _, v := range g.Vertices {
				el.Coords = append(el.Coords, v.X, v.Y)
			}
		case AngleGeometry:
			el.Coords = []float64{g.Vertex.X, g.Vertex.Y}
			el.Angles = []float64{g.Start, g.Delta}
		}

		elems = append(elems, el)
	}
	return elems
}
