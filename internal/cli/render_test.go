package cli

import (
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to pdf", "", []string{"pdf"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "pdf,png,tex", []string{"pdf", "png", "tex"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid pdf", []string{"pdf"}, false},
		{"valid png", []string{"png"}, false},
		{"valid tex", []string{"tex"}, false},
		{"valid multiple", []string{"pdf", "png", "tex"}, false},
		{"invalid format", []string{"svg"}, true},
		{"mixed valid invalid", []string{"pdf", "bogus"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "figure.tikz", "figure"},
		{"strip format extension", "out.pdf", "figure.tikz", "out"},
		{"strip png extension", "preview.png", "figure.tikz", "preview"},
		{"keep unknown extension", "out.bin", "figure.tikz", "out.bin"},
		{"plain output", "result", "figure.tikz", "result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}
