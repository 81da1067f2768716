package dot

import (
	"strings"
	"testing"

	"github.com/tikzgo/tikzgo/pkg/errors"
	"github.com/tikzgo/tikzgo/pkg/tikz"
)

// Trimmed Graphviz -Tjson output for "digraph { a -> b }".
const sampleLayout = `{
  "name": "%3",
  "bb": "0,0,54,108",
  "objects": [
    {"_gvid": 0, "name": "a", "label": "\\N", "pos": "27,90"},
    {"_gvid": 1, "name": "b", "label": "B node", "pos": "27,18"}
  ],
  "edges": [
    {"_gvid": 0, "tail": 0, "head": 1, "pos": "e,27,36.1 27,71.7 27,64.11 27,54.96 27,46.48"}
  ]
}`

func TestFromLayout(t *testing.T) {
	pic, err := fromLayout([]byte(sampleLayout), Options{})
	if err != nil {
		t.Fatalf("fromLayout: %v", err)
	}

	code := pic.Code()
	// 27pt and 90pt convert to 0.95cm and 3.17cm.
	for _, want := range []string{
		"\\node[draw, circle] at (0.95, 3.17) {a};",
		"\\node[draw, circle] at (0.95, 0.63) {B node};",
		"\\draw (0.95, 3.17) to (0.95, 0.63);",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("missing %q in:\n%s", want, code)
		}
	}
}

func TestFromLayoutOptions(t *testing.T) {
	pic, err := fromLayout([]byte(sampleLayout), Options{
		NodeOptions: "fill=blue!20",
		EdgeOptions: "->, thick",
	})
	if err != nil {
		t.Fatalf("fromLayout: %v", err)
	}
	code := pic.Code()
	if !strings.Contains(code, "\\node[fill=blue!20]") {
		t.Errorf("node options not applied:\n%s", code)
	}
	if !strings.Contains(code, "\\draw[->, thick]") {
		t.Errorf("edge options not applied:\n%s", code)
	}
}

func TestFromLayoutScale(t *testing.T) {
	// Scale 2 doubles the converted coordinates.
	pic, err := fromLayout([]byte(sampleLayout), Options{Scale: 2})
	if err != nil {
		t.Fatalf("fromLayout: %v", err)
	}
	if !strings.Contains(pic.Code(), "at (1.9, 6.35)") {
		t.Errorf("scale not applied:\n%s", pic.Code())
	}
}

func TestFromLayoutSkipsSubgraphs(t *testing.T) {
	layout := `{
      "objects": [
        {"_gvid": 0, "name": "cluster_0"},
        {"_gvid": 1, "name": "a", "label": "\\N", "pos": "10,10"}
      ],
      "edges": []
    }`
	pic, err := fromLayout([]byte(layout), Options{})
	if err != nil {
		t.Fatalf("fromLayout: %v", err)
	}
	if got := strings.Count(pic.Code(), "\\node"); got != 1 {
		t.Errorf("node count = %d, want 1", got)
	}
}

func TestFromLayoutUnknownEdgeEndpoint(t *testing.T) {
	layout := `{
      "objects": [{"_gvid": 0, "name": "a", "pos": "0,0"}],
      "edges": [{"tail": 0, "head": 7}]
    }`
	_, err := fromLayout([]byte(layout), Options{})
	if !errors.Is(err, errors.ErrCodeInvalidDOT) {
		t.Errorf("err = %v, want INVALID_DOT code", err)
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		pos     string
		want    tikz.Point
		wantErr bool
	}{
		{pos: "54.5,90.25", want: tikz.Point{X: 54.5, Y: 90.25}},
		{pos: "0,0", want: tikz.Point{}},
		{pos: "54.5", wantErr: true},
		{pos: "a,b", wantErr: true},
		{pos: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parsePos(tt.pos)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePos(%q): expected error", tt.pos)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePos(%q): %v", tt.pos, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePos(%q) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
