package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/figurate/figurate/backend-go/internal/figure"
)

func triangleFigure() *figure.Figure {
	return &figure.Figure{
		Viewport: figure.Viewport{XMin: -1, XMax: 5, YMin: -1, YMax: 5},
		Objects: []figure.Object{
			{ID: "A", Kind: figure.KindPoint, Coords: []float64{0, 0}},
			{ID: "B", Kind: figure.KindPoint, Coords: []float64{4, 0}},
			{ID: "C", Kind: figure.KindPoint, Coords: []float64{0, 3}},
		},
	}
}

func resolveOne(t *testing.T, f *figure.Figure, id string) ResolvedGeometry {
	t.Helper()
	res := Resolve(f)
	for _, obj := range res.Objects {
		if obj.ID == id {
			return obj.Geometry
		}
	}
	t.Fatalf("object %q did not resolve; skipped: %+v", id, res.Skipped)
	return nil
}

func TestResolveSegmentFromParents(t *testing.T) {
	f := triangleFigure()
	f.Objects = append(f.Objects, figure.Object{ID: "s", Kind: figure.KindSegment, Parents: []string{"A", "B"}})

	got := resolveOne(t, f, "s")
	want := SegmentGeometry{From: Point{0, 0}, To: Point{4, 0}}
	if got != want {
		t.Errorf("segment = %+v, want %+v", got, want)
	}
}

func TestResolveCircleFromTwoPoints(t *testing.T) {
	f := &figure.Figure{
		Objects: []figure.Object{
			{ID: "O", Kind: figure.KindPoint, Coords: []float64{0, 0}},
			{ID: "P", Kind: figure.KindPoint, Coords: []float64{3, 0}},
			{ID: "c", Kind: figure.KindCircle, Parents: []string{"O", "P"}},
		},
	}

	got := resolveOne(t, f, "c").(CircleGeometry)
	if got.Radius != 3.0 {
		t.Errorf("radius = %v, want 3.0", got.Radius)
	}
	if got.Center != (Point{0, 0}) {
		t.Errorf("center = %+v, want origin", got.Center)
	}
}

func TestResolveCircleFromCenterAndRadius(t *testing.T) {
	f := triangleFigure()
	f.Objects = append(f.Objects, figure.Object{ID: "c", Kind: figure.KindCircle, Parents: []string{"C"}, Radius: 1.5})

	got := resolveOne(t, f, "c").(CircleGeometry)
	if got.Radius != 1.5 || got.Center != (Point{0, 3}) {
		t.Errorf("circle = %+v", got)
	}
}

func TestResolveVector(t *testing.T) {
	f := &figure.Figure{
		Objects: []figure.Object{
			{ID: "free", Kind: figure.KindVector, Coords: []float64{2, 1}},
			{ID: "bound", Kind: figure.KindVector, Coords: []float64{1, 1, 3, 4}},
		},
	}

	free := resolveOne(t, f, "free").(VectorGeometry)
	if free.Tail != (Point{0, 0}) || free.Tip != (Point{2, 1}) {
		t.Errorf("free vector = %+v, want origin anchor", free)
	}

	bound := resolveOne(t, f, "bound").(VectorGeometry)
	if bound.Tail != (Point{1, 1}) || bound.Tip != (Point{3, 4}) {
		t.Errorf("bound vector = %+v", bound)
	}
}

func TestResolveDanglingParentDropped(t *testing.T) {
	f := triangleFigure()
	f.Objects = append(f.Objects,
		figure.Object{ID: "bad", Kind: figure.KindLine, Parents: []string{"A", "missing"}},
		figure.Object{ID: "ok", Kind: figure.KindSegment, Parents: []string{"A", "B"}},
	)

	res := Resolve(f)
	for _, obj := range res.Objects {
		if obj.ID == "bad" {
			t.Error("object with dangling parent resolved")
		}
	}
	// The rest of the scene still resolves: 3 points + the good segment.
	if len(res.Objects) != 4 {
		t.Errorf("resolved %d objects, want 4", len(res.Objects))
	}
	if len(res.Skipped) != 1 || res.Skipped[0].ID != "bad" {
		t.Errorf("skipped = %+v, want only the dangling object", res.Skipped)
	}
}

func TestResolvePolygonKeepsParentOrder(t *testing.T) {
	f := triangleFigure()
	f.Objects = append(f.Objects,
		figure.Object{ID: "abc", Kind: figure.KindPolygon, Parents: []string{"A", "B", "C"}},
		figure.Object{ID: "acb", Kind: figure.KindPolygon, Parents: []string{"A", "C", "B"}},
	)

	abc := resolveOne(t, f, "abc").(PolygonGeometry)
	want := []Point{{0, 0}, {4, 0}, {0, 3}}
	if !reflect.DeepEqual(abc.Vertices, want) {
		t.Errorf("vertices = %+v, want %+v", abc.Vertices, want)
	}

	acb := resolveOne(t, f, "acb").(PolygonGeometry)
	if reflect.DeepEqual(abc.Vertices, acb.Vertices) {
		t.Error("different parent orderings produced identical vertex order")
	}
}

func TestResolvePolygonTooFewParents(t *testing.T) {
	f := triangleFigure()
	f.Objects = append(f.Objects, figure.Object{ID: "p", Kind: figure.KindPolygon, Parents: []string{"A", "B"}})

	res := Resolve(f)
	if len(res.Skipped) != 1 || res.Skipped[0].ID != "p" {
		t.Errorf("skipped = %+v, want the degenerate polygon", res.Skipped)
	}
}

func TestResolveAngleBearings(t *testing.T) {
	f := &figure.Figure{
		Objects: []figure.Object{
			{ID: "R1", Kind: figure.KindPoint, Coords: []float64{1, 0}},
			{ID: "V", Kind: figure.KindPoint, Coords: []float64{0, 0}},
			{ID: "R2", Kind: figure.KindPoint, Coords: []float64{0, 1}},
			{ID: "a", Kind: figure.KindAngle, Parents: []string{"R1", "V", "R2"}},
		},
	}

	got := resolveOne(t, f, "a").(AngleGeometry)
	if got.Vertex != (Point{0, 0}) {
		t.Errorf("vertex = %+v", got.Vertex)
	}
	if math.Abs(got.Start) > 1e-12 {
		t.Errorf("start bearing = %v, want 0", got.Start)
	}
	if math.Abs(got.Delta-math.Pi/2) > 1e-12 {
		t.Errorf("delta = %v, want pi/2", got.Delta)
	}
}

func TestResolveAngleMinorArc(t *testing.T) {
	// Rays at bearings 3pi/4 and -3pi/4: the short way around crosses pi,
	// giving a sweep of pi/2, not 3pi/2.
	f := &figure.Figure{
		Objects: []figure.Object{
			{ID: "R1", Kind: figure.KindPoint, Coords: []float64{-1, 1}},
			{ID: "V", Kind: figure.KindPoint, Coords: []float64{0, 0}},
			{ID: "R2", Kind: figure.KindPoint, Coords: []float64{-1, -1}},
			{ID: "a", Kind: figure.KindAngle, Parents: []string{"R1", "V", "R2"}},
		},
	}

	got := resolveOne(t, f, "a").(AngleGeometry)
	if math.Abs(got.Delta) > math.Pi+1e-12 {
		t.Errorf("delta = %v, not a minor arc", got.Delta)
	}
	if math.Abs(math.Abs(got.Delta)-math.Pi/2) > 1e-12 {
		t.Errorf("|delta| = %v, want pi/2", math.Abs(got.Delta))
	}
}

func TestResolveDeterministic(t *testing.T) {
	f := figure.NewSampleFigure()

	first := Resolve(f)
	second := Resolve(f)
	if !reflect.DeepEqual(first, second) {
		t.Error("resolving the same figure twice produced different output")
	}
}

func TestResolveSampleFigureComplete(t *testing.T) {
	res := Resolve(figure.NewSampleFigure())
	if len(res.Skipped) != 0 {
		t.Errorf("sample figure has unresolvable objects: %+v", res.Skipped)
	}
}
