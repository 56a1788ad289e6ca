package figure

// NewSampleFigure builds the built-in demo figure: a labeled triangle with a
// marked interior angle, a circle through two of its vertices, and a vector
// (which switches the coordinate grid on).
func NewSampleFigure() *Figure {
	return &Figure{
		Viewport: Viewport{XMin: -1, XMax: 7, YMin: -1, YMax: 6},
		Objects: []Object{
			{ID: "A", Kind: KindPoint, Coords: []float64{0, 0}, Label: "A"},
			{ID: "B", Kind: KindPoint, Coords: []float64{5, 0}, Label: "B"},
			{ID: "C", Kind: KindPoint, Coords: []float64{2, 4}, Label: "C"},
			{ID: "tri", Kind: KindPolygon, Parents: []string{"A", "B", "C"}},
			{ID: "alpha", Kind: KindAngle, Parents: []string{"B", "A", "C"}, Label: "\\alpha"},
			{ID: "circ", Kind: KindCircle, Parents: []string{"A", "B"}},
			{ID: "v", Kind: KindVector, Coords: []float64{1, 1, 4, 3}, Label: "\\vec{v}"},
		},
	}
}
