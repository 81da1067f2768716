package compile

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Compiler turns a .tex file into a PDF. Implementations run an external
// document compiler; the pipeline never inspects its output beyond the
// process exit status.
type Compiler interface {
	// Compile compiles texPath, placing all outputs in outDir, and returns
	// the path of the produced PDF.
	Compile(ctx context.Context, texPath, outDir string) (string, error)
}

// Latexmk compiles documents by shelling out to latexmk.
// Requires a LaTeX distribution with latexmk on PATH
// (e.g. apt install latexmk texlive-pictures).
type Latexmk struct {
	// Quiet passes -quiet to silence latexmk's progress chatter.
	Quiet bool
}

// Compile runs latexmk on texPath and returns the PDF path, derived from the
// source path by extension replacement.
func (l Latexmk) Compile(ctx context.Context, texPath, outDir string) (string, error) {
	if _, err := exec.LookPath("latexmk"); err != nil {
		return "", fmt.Errorf("compiling requires latexmk. Install a LaTeX distribution with:\n  macOS:  brew install --cask mactex\n  Linux:  apt install latexmk texlive-pictures")
	}

	cmd := exec.CommandContext(ctx, "latexmk", l.args(texPath, outDir)...)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("latexmk: %v: %s", err, errBuf.String())
	}
	return PDFPath(texPath, outDir), nil
}

// args builds the latexmk argument list.
func (l Latexmk) args(texPath, outDir string) []string {
	args := []string{"-pdf", "-interaction=nonstopmode"}
	if l.Quiet {
		args = append(args, "-quiet")
	}
	if outDir != "" {
		args = append(args, "-output-directory="+outDir, "-aux-directory="+outDir)
	}
	return append(args, texPath)
}

// PDFPath returns the path where the compiled PDF for texPath lands: the
// source file name with its extension replaced, inside outDir (or alongside
// the source when outDir is empty).
func PDFPath(texPath, outDir string) string {
	base := filepath.Base(texPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
	if outDir == "" {
		outDir = filepath.Dir(texPath)
	}
	return filepath.Join(outDir, base)
}

var _ Compiler = Latexmk{}
