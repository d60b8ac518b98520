// Package pkg provides the core libraries for fstkit finite-state transduction.
//
// # Overview
//
// fstkit models string-to-string mappings as finite-state transducers: labeled
// graphs whose arcs consume input symbols and emit output symbols. The pkg
// directory is organized into five main areas:
//
//  1. [fst] - The graph store and its structural algorithms
//  2. [io] - Textual serialization of graphs
//  3. [render] - DOT and SVG diagram generation
//  4. [cache] - Result caching backends (file, Redis, MongoDB)
//  5. [errors] - Coded errors shared by all packages
//
// # Architecture
//
// The typical data flow through fstkit:
//
//	Textual graph file
//	         ↓
//	    [io] package (parse into a graph)
//	         ↓
//	    [fst/transform] package (determinize, trim, relabel, ...)
//	         ↓
//	    [fst/transduce] package (run inputs through the graph)
//	         ↓
//	    Output string / trace / diagram
//
// # Quick Start
//
// Load a graph, determinize it, and transduce an input:
//
//	import (
//	    "github.com/fstkit/fstkit/pkg/fst/transduce"
//	    "github.com/fstkit/fstkit/pkg/fst/transform"
//	    "github.com/fstkit/fstkit/pkg/io"
//	)
//
//	// 1. Load the graph
//	f, _ := io.Import("digits.fst")
//
//	// 2. Determinize it
//	det, _ := transform.Determinize(f)
//
//	// 3. Run an input through it
//	output, _ := transduce.Fast(det, []string{"4", "2"})
//
// # Main Packages
//
// [fst] - The transducer graph: states with finality and finalizing strings,
// arcs with input/output symbol strings, label-based lookup, and the
// subsequentiality predicates that decide which engine may run a graph.
//
// [fst/transform] - Structural transformations that build new graphs: invert,
// reverse, trim, relabel, and the powerset determinization.
//
// [fst/transduce] - The two transduction engines (table-driven fast path and
// general backtracking search), step tracing, and graph composition.
//
// [io] - The textual graph format: parsing, serialization, and file import
// and export.
//
// [render] - Graphviz DOT generation and SVG rasterization.
//
// [cache] - Cache backends keyed on serialized graphs, used to memoize
// determinization results. File, Redis, MongoDB, and no-op implementations.
//
// [observability] - Optional instrumentation hooks for engine runs and cache
// operations.
//
// [errors] - Coded errors (NOT_SUBSEQUENTIAL, TRANSDUCTION_FAILURE, ...) that
// callers match with errors.Is.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/fst/...          # Specific package
//
// [fst]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/fst
// [fst/transform]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/fst/transform
// [fst/transduce]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/fst/transduce
// [io]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/io
// [render]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/render
// [cache]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/fstkit/fstkit/pkg/buildinfo
package pkg
