// Package fst provides the core finite-state transducer graph store.
//
// # Overview
//
// A finite-state transducer (FST) is a directed graph that encodes a mapping
// from input symbol strings to output symbol strings. Nodes are called
// states, edges are called arcs. Each arc carries an input string and an
// output string (either possibly empty); each final state carries a
// finalizing string that is appended to the output when a transduction
// terminates there. A symbol string is a []string slice of symbols, so
// symbols can be characters, digits, or whole words.
//
// The mapping defined by an FST is the set of paths from the initial state
// to a final state: the path's input is the concatenation of arc input
// strings, and its output is the concatenation of arc output strings plus
// the final state's finalizing string. An FST with no initial state encodes
// the empty mapping.
//
// # Basic Usage
//
// Create a graph with [New], add states with [FST.AddState] and arcs with
// [FST.AddArc]. Both return the assigned label, which is auto-generated
// when not supplied:
//
//	f := fst.New("digits")
//	start, _ := f.AddState(fst.State{Label: "start"})
//	done, _ := f.AddState(fst.State{Label: "done", Final: true})
//	f.SetInitial(start)
//	f.AddArc(fst.Arc{Src: start, Dst: done, In: []string{"5"}, Out: []string{"five"}})
//
// States and arcs are stored in dense integer-indexed arenas with owned
// per-state adjacency lists; the public API deals only in string labels.
// Lookups by unknown label fail with errors.ErrCodeInvalidLabel, and
// explicit label collisions fail with errors.ErrCodeDuplicateLabel.
//
// # Determinism Classes
//
// [FST.IsSubsequential] reports whether every arc carries exactly one input
// symbol and no state has two outgoing arcs on the same input symbol; such
// graphs support the fast table-driven transduction path.
// [FST.IsSequential] additionally requires all finalizing strings to be
// empty.
//
// # Related Packages
//
// The transform subpackage provides structural transformations (invert,
// reverse, trim, relabel, determinize); the transduce subpackage applies
// input strings to a graph. Package io handles the line-oriented textual
// format and package render exports node/edge diagrams.
//
// FST is not safe for concurrent use without external synchronization.
package fst
