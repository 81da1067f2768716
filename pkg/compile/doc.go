// Package compile turns generated TikZ code into PDF and PNG artifacts.
//
// # Overview
//
// The pipeline is: embed picture code in the document template → write the
// .tex source into a per-picture working directory → run the external
// compiler → locate the PDF → rasterize → crop the preview.
//
// The external tools are modeled as injected collaborator interfaces so the
// pipeline is testable without LaTeX installed:
//   - [Compiler]: .tex path → .pdf path (production: [Latexmk])
//   - [Rasterizer]: .pdf path → page images (production: [Pdftoppm])
//
// Compiler output is never parsed; an external failure propagates as a
// wrapped exec error with no dedicated error kind, and nothing is retried.
//
// # Caching
//
// Compiled PDFs are cached by the SHA-256 of their full .tex source through
// pkg/cache, so repeated renders of an unchanged picture skip the external
// compiler entirely.
//
// # Working directories
//
// Every picture compiles inside a working directory named deterministically
// from the picture's instance ID. The directory is created on demand and
// removed only by an explicit [Workdir.Remove]; callers own the lifecycle.
package compile
