package engine

import "testing"

func TestSanitizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`\alpha + \theta`, "α + θ"},
		{`\vec{v}_1`, "v1"},
		{`$AB$`, "AB"},
		{`\overline{AB}`, "AB"},
		{`\angle ABC`, "∠ ABC"},
		{`a \cdot b`, "a · b"},
		{`90\degree`, "90°"},
		{`x_{12}`, "x12"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, c := range cases {
		if got := SanitizeLabel(c.in); got != c.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
