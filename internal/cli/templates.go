package cli

import (
	"github.com/tikzgo/tikzgo/pkg/errors"
)

// Template is a built-in starter figure for the new command.
type Template struct {
	Name        string
	Description string
	Body        string
}

// templates are the built-in starters, in menu order.
var templates = []Template{
	{
		Name:        "blank",
		Description: "Empty picture",
		Body:        "% Draw here\n",
	},
	{
		Name:        "grid",
		Description: "Help-line grid",
		Body: "\\draw[help lines, gray!40] (0, 0) grid (5, 5);\n" +
			"\\draw[thick] (0, 0) rectangle (5, 5);\n",
	},
	{
		Name:        "axes",
		Description: "Coordinate axes with labels",
		Body: "\\draw[->, thick] (-3, 0) to (3, 0);\n" +
			"\\draw[->, thick] (0, -3) to (0, 3);\n" +
			"\\node[below right] at (3, 0) {$x$};\n" +
			"\\node[above left] at (0, 3) {$y$};\n",
	},
	{
		Name:        "circle",
		Description: "Unit circle with center mark",
		Body: "\\draw[thick, Blue] (0, 0) circle (2cm);\n" +
			"\\node[fill=black, circle, inner sep=1pt] at (0, 0) {};\n" +
			"\\node[below] at (0, -0.2) {$O$};\n",
	},
	{
		Name:        "plot",
		Description: "Coordinate plot with smooth curve",
		Body: "\\draw[->] (0, 0) to (6, 0);\n" +
			"\\draw[->] (0, 0) to (0, 4);\n" +
			"\\draw[Red, thick] plot[smooth] coordinates {(0, 0) (1, 1.5) (2, 2.2) (3, 2.6) (4, 2.9) (5, 3)};\n",
	},
}

// templateByName looks up a built-in template.
func templateByName(name string) (Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, errors.New(errors.ErrCodeInvalidTemplate, "unknown template %q", name)
}

// templateNames lists the built-in template names for help text and
// completion.
func templateNames() []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}
