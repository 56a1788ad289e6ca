package engine

import (
	"math"

	"github.com/figurate/figurate/backend-go/internal/figure"
)

// Point is a concrete math-space coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ResolvedGeometry is the concrete geometry computed for one figure object.
// It is a closed set: exactly one implementation per object kind, so the
// renderer can switch over it exhaustively.
type ResolvedGeometry interface {
	isGeometry()
}

type PointGeometry struct {
	At Point
}

type SegmentGeometry struct {
	From Point
	To   Point
}

type VectorGeometry struct {
	Tail Point
	Tip  Point
}

type CircleGeometry struct {
	Center Point
	Radius float64
}

type PolygonGeometry struct {
	Vertices []Point
}

// AngleGeometry is a fixed-radius arc sector at Vertex. Start is the bearing
// of the first ray; Delta is the signed minor-arc sweep to the second ray,
// normalized into (-pi, pi].
type AngleGeometry struct {
	Vertex Point
	Start  float64
	Delta  float64
}

func (PointGeometry) isGeometry()   {}
func (SegmentGeometry) isGeometry() {}
func (VectorGeometry) isGeometry()  {}
func (CircleGeometry) isGeometry()  {}
func (PolygonGeometry) isGeometry() {}
func (AngleGeometry) isGeometry()   {}

// ResolvedObject pairs an object's identity and label with its geometry.
type ResolvedObject struct {
	ID       string
	Kind     figure.Kind
	Label    string
	Geometry ResolvedGeometry
}

// Skipped records an object that could not be resolved and the reason why.
// Skipped objects are omitted from the drawing; whether the reasons are
// surfaced (logged) is the caller's choice.
type Skipped struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Resolution is the outcome of resolving a figure: the drawable objects in
// original draw order, plus everything that was dropped.
type Resolution struct {
	Objects []ResolvedObject
	Skipped []Skipped
}

// Resolve computes concrete geometry for every object in the figure. It is a
// pure function: the figure is not mutated and equal inputs yield equal
// output. Objects whose inputs are missing or whose parent rule is not
// satisfied land in Skipped instead of aborting the pass.
func Resolve(f *figure.Figure) Resolution {
	byID := make(map[string]figure.Object, len(f.Objects))
	for _, obj := range f.Objects {
		byID[obj.ID] = obj
	}

	var res Resolution
	for _, obj := range f.Objects {
		geom, reason := resolveObject(obj, byID)
		if geom == nil {
			res.Skipped = append(res.Skipped, Skipped{ID: obj.ID, Reason: reason})
			continue
		}
		res.Objects = append(res.Objects, ResolvedObject{
			ID:       obj.ID,
			Kind:     obj.Kind,
			Label:    obj.Label,
			Geometry: geom,
		})
	}
	return res
}

// resolveObject applies the kind-specific derivation rules. It returns a nil
// geometry plus a reason when the object is unresolvable.
func resolveObject(obj figure.Object, byID map[string]figure.Object) (ResolvedGeometry, string) {
	switch obj.Kind {
	case figure.KindPoint:
		if len(obj.Coords) < 2 {
			return nil, "point needs 2 coordinates"
		}
		return PointGeometry{At: Point{obj.Coords[0], obj.Coords[1]}}, ""

	case figure.KindSegment, figure.KindLine:
		if len(obj.Coords) >= 4 {
			return SegmentGeometry{
				From: Point{obj.Coords[0], obj.Coords[1]},
				To:   Point{obj.Coords[2], obj.Coords[3]},
			}, ""
		}
		if len(obj.Parents) != 2 {
			return nil, "segment needs 4 coordinates or 2 point parents"
		}
		a, ok := parentPoint(byID, obj.Parents[0])
		if !ok {
			return nil, "parent " + obj.Parents[0] + " is not a resolvable point"
		}
		b, ok := parentPoint(byID, obj.Parents[1])
		if !ok {
			return nil, "parent " + obj.Parents[1] + " is not a resolvable point"
		}
		return SegmentGeometry{From: a, To: b}, ""

	case figure.KindVector:
		if len(obj.Coords) >= 4 {
			return VectorGeometry{
				Tail: Point{obj.Coords[0], obj.Coords[1]},
				Tip:  Point{obj.Coords[2], obj.Coords[3]},
			}, ""
		}
		if len(obj.Coords) >= 2 {
			// Free vector: anchored at the origin.
			return VectorGeometry{Tip: Point{obj.Coords[0], obj.Coords[1]}}, ""
		}
		return nil, "vector needs 2 or 4 coordinates"

	case figure.KindCircle:
		if len(obj.Parents) == 2 {
			center, ok := parentPoint(byID, obj.Parents[0])
			if !ok {
				return nil, "parent " + obj.Parents[0] + " is not a resolvable point"
			}
			rim, ok := parentPoint(byID, obj.Parents[1])
			if !ok {
				return nil, "parent " + obj.Parents[1] + " is not a resolvable point"
			}
			return CircleGeometry{
				Center: center,
				Radius: math.Hypot(rim.X-center.X, rim.Y-center.Y),
			}, ""
		}
		if len(obj.Parents) == 1 && obj.Radius > 0 {
			center, ok := parentPoint(byID, obj.Parents[0])
			if !ok {
				return nil, "parent " + obj.Parents[0] + " is not a resolvable point"
			}
			return CircleGeometry{Center: center, Radius: obj.Radius}, ""
		}
		return nil, "circle needs 2 point parents, or 1 center parent plus a radius"

	case figure.KindPolygon:
		if len(obj.Parents) < 3 {
			return nil, "polygon needs at least 3 point parents"
		}
		verts := make([]Point, 0, len(obj.Parents))
		for _, pid := range obj.Parents {
			p, ok := parentPoint(byID, pid)
			if !ok {
				return nil, "parent " + pid + " is not a resolvable point"
			}
			verts = append(verts, p)
		}
		return PolygonGeometry{Vertices: verts}, ""

	case figure.KindAngle:
		if len(obj.Parents) != 3 {
			return nil, "angle needs 3 point parents (ray, vertex, ray)"
		}
		r1, ok := parentPoint(byID, obj.Parents[0])
		if !ok {
			return nil, "parent " + obj.Parents[0] + " is not a resolvable point"
		}
		v, ok := parentPoint(byID, obj.Parents[1])
		if !ok {
			return nil, "parent " + obj.Parents[1] + " is not a resolvable point"
		}
		r2, ok := parentPoint(byID, obj.Parents[2])
		if !ok {
			return nil, "parent " + obj.Parents[2] + " is not a resolvable point"
		}
		start := math.Atan2(r1.Y-v.Y, r1.X-v.X)
		end := math.Atan2(r2.Y-v.Y, r2.X-v.X)
		return AngleGeometry{
			Vertex: v,
			Start:  start,
			Delta:  minorArcDelta(end - start),
		}, ""

	default:
		return nil, "unknown kind " + string(obj.Kind)
	}
}

// parentPoint dereferences a parent id to a concrete point. Only point
// objects with explicit coordinates qualify; anything else (dangling id,
// wrong kind, missing coordinates) fails the lookup.
func parentPoint(byID map[string]figure.Object, id string) (Point, bool) {
	obj, ok := byID[id]
	if !ok || obj.Kind != figure.KindPoint || len(obj.Coords) < 2 {
		return Point{}, false
	}
	return Point{obj.Coords[0], obj.Coords[1]}, true
}

// minorArcDelta normalizes an angular difference into (-pi, pi], i.e. the
// signed sweep of the minor arc.
func minorArcDelta(d float64) float64 {
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
