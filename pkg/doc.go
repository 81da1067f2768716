// Package pkg provides the core libraries for tikzgo figure generation.
//
// # Overview
//
// Tikzgo turns programmatic drawing commands into TikZ code and compiled
// figures. The pkg directory is organized into the following areas:
//
//  1. [tikz] - TikZ code generation (pictures, drawables, documents)
//  2. [dot] - Graphviz DOT graphs converted into TikZ pictures
//  3. [compile] - LaTeX compilation and PNG rasterization
//  4. [crop] - Whitespace detection and cropping of page images
//  5. [cache] - Compiled PDF caching (file and Redis backends)
//  6. [gallery] - Figure storage (file and MongoDB backends)
//  7. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	TikZ source or drawing commands
//	         ↓
//	tikz.Picture → tikz.Document (standalone LaTeX)
//	         ↓
//	compile.Renderer (latexmk → PDF, cached by source hash)
//	         ↓
//	pdftoppm → page image → crop.Image → PNG preview
package pkg
