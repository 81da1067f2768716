// Package tikz builds TikZ drawing code through typed drawing objects.
//
// The package is a code generator: it models points, shapes, and picture
// environments as Go values and renders them into TikZ/LaTeX source text.
// It never parses or validates TikZ syntax, it only emits it.
//
// # Drawing objects
//
// Every drawing object implements [Drawable] by rendering itself into a
// single line of TikZ code. Shapes keep their defining coordinates mutable;
// derived geometry (center, compass points, width, height) is computed on
// every read from the current coordinates, so no stale values can survive a
// mutation.
//
//	rect := tikz.NewRectangle(tikz.XY(2, 2), tikz.XY(3, 4), "Blue")
//	rect.Shift(1, 1)
//	fmt.Println(rect.Code())  // \draw[Blue] (3, 3) rectangle (4, 5);
//
// # Pictures
//
// A [Picture] collects drawables in insertion order and renders the full
// tikzpicture environment, including preamble fragments (styles, centering,
// 3D view directives) and their matching closing fragments:
//
//	pic := tikz.NewPicture(tikz.Centered())
//	pic.Draw(rect)
//	fmt.Println(pic.Code())
//
// Compilation of the generated code to PDF and PNG previews lives in
// package compile.
package tikz
