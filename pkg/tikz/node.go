package tikz

// Node places text at a position. The text is emitted verbatim, so it may
// contain LaTeX markup such as $x^2$.
type Node struct {
	Position Point
	Options  string
	Text     string
}

// NewNode creates a text node with free-form style options.
func NewNode(position Point, options, text string) *Node {
	return &Node{Position: position, Options: options, Text: text}
}

// Shift translates the node position by (dx, dy).
func (n *Node) Shift(dx, dy float64) {
	n.Position = n.Position.Add(Point{X: dx, Y: dy})
}

// Scale multiplies the node position by k, scaling about the origin.
// The text itself is not scaled.
func (n *Node) Scale(k float64) {
	n.Position = n.Position.Scale(k)
}

func (n *Node) Code() string {
	return "\\node" + brackets(n.Options) + " at " + n.Position.String() +
		" {" + n.Text + "};"
}

var _ Drawable = (*Node)(nil)
