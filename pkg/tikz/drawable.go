package tikz

// Drawable is any object that renders itself into a fragment of TikZ code
// for embedding in a picture environment.
type Drawable interface {
	// Code returns the TikZ source for this object, without trailing newline.
	Code() string
}
