package tikz

import "strings"

// codeMarker is the single substitution point in the document template.
const codeMarker = "{{TIKZ_CODE}}"

// documentTemplate is the standalone LaTeX document wrapped around generated
// picture code. The libraries loaded here cover the full drawable catalog,
// including 3D pictures and pgfplots output.
const documentTemplate = `\documentclass[margin=0.25cm]{standalone}
\usepackage{tikz}
\usepackage{tkz-euclide}
\usetikzlibrary{arrows.meta, calc, intersections, decorations.pathreplacing}
\usepackage{pgfplots}
\pgfplotsset{compat=1.16}
\usetikzlibrary{3d}
\begin{document}
{{TIKZ_CODE}}
\end{document}
`

// Document embeds the picture's generated code verbatim into the standalone
// document template and returns the full LaTeX source.
func Document(p *Picture) string {
	return strings.Replace(documentTemplate, codeMarker, p.Code(), 1)
}

// DocumentFromCode embeds already-generated TikZ code verbatim into the
// standalone document template. Used when the code comes from a file rather
// than a Picture.
func DocumentFromCode(code string) string {
	return strings.Replace(documentTemplate, codeMarker, code, 1)
}
