package figure

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHasKind(t *testing.T) {
	f := NewSampleFigure()
	if !f.HasKind(KindVector) {
		t.Error("sample figure should contain a vector")
	}
	if f.HasKind(KindLine) {
		t.Error("sample figure should not contain a line")
	}
}

func TestFigureJSONRoundTrip(t *testing.T) {
	f := NewSampleFigure()

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}

	var back Figure
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*f, back) {
		t.Error("figure changed across JSON round trip")
	}
}

func TestSampleFigureIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, obj := range NewSampleFigure().Objects {
		if seen[obj.ID] {
			t.Errorf("duplicate id %q", obj.ID)
		}
		seen[obj.ID] = true
	}
}
