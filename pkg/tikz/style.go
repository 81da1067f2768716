package tikz

// Style is a named tikzset style definition.
type Style struct {
	Name  string
	Rules string
}

// NewStyle creates a style with the given name and tikzset rules.
func NewStyle(name, rules string) *Style {
	return &Style{Name: name, Rules: rules}
}

// Code renders the tikzset declaration for this style.
func (s *Style) Code() string {
	return "\\tikzset{" + s.Name + "/.style={" + s.Rules + "}}\n"
}
