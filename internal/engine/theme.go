package engine

import "github.com/figurate/figurate/backend-go/internal/figure"

// fillOpacity keeps filled shapes translucent so grid lines and overlapping
// objects stay visible underneath.
const fillOpacity = 0.15

// Theme is the color pair applied uniformly to every object in a drawing,
// plus the grid color used when the coordinate grid is shown. Fill is drawn
// at fillOpacity.
type Theme struct {
	Stroke string `json:"stroke"`
	Fill   string `json:"fill"`
	Grid   string `json:"grid"`
}

// ThemeFor maps a visual mode to its theme. Same mode, same colors; unknown
// modes fall back to the solver theme.
func ThemeFor(mode figure.Mode) Theme {
	switch mode {
	case figure.ModeExam:
		// Print-friendly: near-black strokes.
		return Theme{Stroke: "#334155", Fill: "#334155", Grid: "#e2e8f0"}
	case figure.ModeDrill:
		return Theme{Stroke: "#ea580c", Fill: "#ea580c", Grid: "#fde8d7"}
	case figure.ModeConcept:
		return Theme{Stroke: "#0d9488", Fill: "#0d9488", Grid: "#d6f0ee"}
	default:
		return Theme{Stroke: "#2563eb", Fill: "#2563eb", Grid: "#dde7fb"}
	}
}
