package tikz

// fragments is an insertion-ordered key → code-fragment map.
// Setting an existing key overwrites the value in place, keeping the key's
// original position. Used for picture preambles and postambles, where the
// preamble iterates forward and the postamble iterates in reverse so nested
// begin/end pairs close in the right order.
type fragments struct {
	keys []string
	vals map[string]string
}

func newFragments() *fragments {
	return &fragments{vals: map[string]string{}}
}

// set inserts or overwrites the fragment for key.
func (f *fragments) set(key, code string) {
	if _, ok := f.vals[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.vals[key] = code
}

// ordered returns the fragments in insertion order.
func (f *fragments) ordered() []string {
	out := make([]string, len(f.keys))
	for i, k := range f.keys {
		out[i] = f.vals[k]
	}
	return out
}

// reversed returns the fragments in reverse insertion order.
func (f *fragments) reversed() []string {
	out := make([]string, len(f.keys))
	for i, k := range f.keys {
		out[len(f.keys)-1-i] = f.vals[k]
	}
	return out
}
