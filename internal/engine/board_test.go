package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/figurate/figurate/backend-go/internal/figure"
)

func TestBoardElements(t *testing.T) {
	f := &figure.Figure{
		Viewport: figure.Viewport{XMin: -1, XMax: 5, YMin: -1, YMax: 5},
		Objects: []figure.Object{
			{ID: "A", Kind: figure.KindPoint, Coords: []float64{0, 0}, Label: `\alpha`},
			{ID: "B", Kind: figure.KindPoint, Coords: []float64{4, 0}},
			{ID: "s", Kind: figure.KindSegment, Parents: []string{"A", "B"}},
			{ID: "c", Kind: figure.KindCircle, Parents: []string{"A", "B"}},
			{ID: "bad", Kind: figure.KindLine, Parents: []string{"A", "missing"}},
		},
	}

	elems := BoardElements(f)
	if len(elems) != 4 {
		t.Fatalf("got %d elements, want 4 (dangling line dropped)", len(elems))
	}

	byID := map[string]BoardElement{}
	for _, el := range elems {
		byID[el.ID] = el
	}

	if byID["A"].Label != "α" {
		t.Errorf("label = %q, want sanitized α", byID["A"].Label)
	}
	if !reflect.DeepEqual(byID["s"].Coords, []float64{0, 0, 4, 0}) {
		t.Errorf("segment coords = %v", byID["s"].Coords)
	}
	if byID["c"].Radius != 4 {
		t.Errorf("circle radius = %v, want 4", byID["c"].Radius)
	}
	if _, ok := byID["bad"]; ok {
		t.Error("dangling line made it into the board payload")
	}
}

func TestBoardElementsAngle(t *testing.T) {
	f := &figure.Figure{
		Objects: []figure.Object{
			{ID: "R1", Kind: figure.KindPoint, Coords: []float64{1, 0}},
			{ID: "V", Kind: figure.KindPoint, Coords: []float64{0, 0}},
			{ID: "R2", Kind: figure.KindPoint, Coords: []float64{0, 1}},
			{ID: "a", Kind: figure.KindAngle, Parents: []string{"R1", "V", "R2"}},
		},
	}

	for _, el := range BoardElements(f) {
		if el.ID != "a" {
			continue
		}
		if !reflect.DeepEqual(el.Coords, []float64{0, 0}) {
			t.Errorf("angle coords = %v, want vertex", el.Coords)
		}
		if len(el.Angles) != 2 || math.Abs(el.Angles[1]-math.Pi/2) > 1e-12 {
			t.Errorf("angle bearings = %v", el.Angles)
		}
		return
	}
	t.Fatal("angle element missing from board payload")
}
