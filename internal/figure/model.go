package figure

// Kind discriminates the geometric object types a figure may contain.
type Kind string

const (
	KindPoint   Kind = "point"
	KindSegment Kind = "segment"
	KindLine    Kind = "line"
	KindVector  Kind = "vector"
	KindCircle  Kind = "circle"
	KindPolygon Kind = "polygon"
	KindAngle   Kind = "angle"
)

// Mode selects the visual theme of a rendered figure. The four modes match the
// surfaces of the host application that display figures.
type Mode string

const (
	ModeSolver  Mode = "solver"
	ModeExam    Mode = "exam"
	ModeDrill   Mode = "drill"
	ModeConcept Mode = "concept"
)

// Viewport is the math-space camera box of a figure (y up, unbounded).
type Viewport struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// Object is one entry of a figure. Coordinates are interpreted per kind; when
// they are absent or insufficient, Parents names the objects the geometry is
// derived from. Radius applies to circles given as a single center parent.
type Object struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Coords  []float64 `json:"coords,omitempty"`
	Parents []string  `json:"parents,omitempty"`
	Label   string    `json:"label,omitempty"`
	Radius  float64   `json:"radius,omitempty"`
}

// Figure is the full scene description handed to the renderer: a viewport plus
// an ordered object list. Order is draw order only; later objects paint over
// earlier ones. A Figure is plain data and is never mutated after creation.
type Figure struct {
	Viewport Viewport `json:"viewport"`
	Objects  []Object `json:"objects"`
}

// HasKind reports whether any object in the figure has the given kind.
func (f *Figure) HasKind(k Kind) bool {
	for _, obj := range f.Objects {
		if obj.Kind == k {
			return true
		}
	}
	return false
}
