// Package dot converts Graphviz DOT graphs into TikZ pictures.
//
// Graphviz computes the layout; this package maps the resulting node
// positions and edges onto TikZ nodes and lines:
//
//	pic, err := dot.ToPicture(ctx, "digraph { a -> b }", dot.Options{})
//	fmt.Print(pic.Code())
package dot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tikzgo/tikzgo/pkg/errors"
	"github.com/tikzgo/tikzgo/pkg/tikz"
)

// pointsPerUnit converts Graphviz points (72 per inch) to TikZ
// centimeters.
const pointsPerUnit = 28.3465

// Options configures the DOT to TikZ conversion.
type Options struct {
	// NodeOptions is the TikZ style applied to every node.
	// Empty means "draw, circle".
	NodeOptions string

	// EdgeOptions is the TikZ style applied to every edge.
	EdgeOptions string

	// Scale multiplies all layouted coordinates. Zero means 1.
	Scale float64
}

// Layout runs the Graphviz layout engine on DOT source and returns the
// positioned graph as Graphviz JSON.
func Layout(ctx context.Context, src string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDOT, err, "parse DOT source")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format("json"), &buf); err != nil {
		return nil, fmt.Errorf("layout graph: %w", err)
	}
	return buf.Bytes(), nil
}

// ToPicture lays out DOT source with Graphviz and builds a TikZ picture
// from the result.
func ToPicture(ctx context.Context, src string, opts Options) (*tikz.Picture, error) {
	data, err := Layout(ctx, src)
	if err != nil {
		return nil, err
	}
	return fromLayout(data, opts)
}

// Graphviz JSON output types. Subgraphs appear in objects without a pos
// attribute and are skipped.
type layoutGraph struct {
	Objects []layoutNode `json:"objects"`
	Edges   []layoutEdge `json:"edges"`
}

type layoutNode struct {
	GVID  int    `json:"_gvid"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Pos   string `json:"pos"`
}

type layoutEdge struct {
	Tail int `json:"tail"`
	Head int `json:"head"`
}

func fromLayout(data []byte, opts Options) (*tikz.Picture, error) {
	var g layoutGraph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	nodeOpts := opts.NodeOptions
	if nodeOpts == "" {
		nodeOpts = "draw, circle"
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	pic := tikz.NewPicture()
	positions := make(map[int]tikz.Point, len(g.Objects))

	for _, obj := range g.Objects {
		if obj.Pos == "" {
			continue
		}
		p, err := parsePos(obj.Pos)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", obj.Name, err)
		}
		p = p.Scale(scale / pointsPerUnit)
		p = tikz.Point{X: round(p.X), Y: round(p.Y)}
		positions[obj.GVID] = p
		pic.Draw(tikz.NewNode(p, nodeOpts, nodeLabel(obj)))
	}

	for _, e := range g.Edges {
		from, okFrom := positions[e.Tail]
		to, okTo := positions[e.Head]
		if !okFrom || !okTo {
			return nil, errors.New(errors.ErrCodeInvalidDOT, "edge references unknown node %d -> %d", e.Tail, e.Head)
		}
		pic.Draw(tikz.NewLine(from, to, opts.EdgeOptions))
	}
	return pic, nil
}

// nodeLabel picks the display text for a node. Graphviz reports the
// default label as "\N", meaning the node name.
func nodeLabel(n layoutNode) string {
	if n.Label == "" || n.Label == "\\N" {
		return n.Name
	}
	return n.Label
}

// parsePos parses a Graphviz position attribute like "54.5,90.25".
func parsePos(pos string) (tikz.Point, error) {
	parts := strings.Split(pos, ",")
	if len(parts) != 2 {
		return tikz.Point{}, fmt.Errorf("malformed position %q", pos)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return tikz.Point{}, fmt.Errorf("malformed position %q", pos)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return tikz.Point{}, fmt.Errorf("malformed position %q", pos)
	}
	return tikz.Point{X: x, Y: y}, nil
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}
