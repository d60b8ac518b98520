// Package transform provides structural transformations over FST graphs.
//
// # Overview
//
// Every transformation operates on a snapshot: it takes an [fst.FST], leaves
// it untouched, and returns a freshly built graph. Nothing is shared between
// input and output, so a transformed graph can be mutated freely.
//
// The available transformations are:
//
//   - [Invert]: swap input and output strings on every arc, turning a
//     transducer for f into a transducer for f⁻¹. Finalizing strings stay
//     on the output side since there is no symmetric finalizing input.
//   - [Reverse]: flip the direction of every arc. This is a structural flip
//     only - reachability and finality semantics are not recomputed, and
//     callers must re-validate them afterward.
//   - [Trim]: delete every state that is not on some path from the initial
//     state to a final state, along with its incident arcs.
//   - [Relabel]: assign canonical consecutive integer labels. For
//     subsequential graphs the numbering is canonical: two structurally
//     identical graphs relabel to identical label sets.
//   - [Determinize]: powerset construction converting a transducer whose
//     arcs each carry one input symbol into an equivalent subsequential
//     one, or failing with errors.ErrCodeDeterminizationConflict when the
//     underlying mapping is genuinely ambiguous.
//
// # Traversal Bounds
//
// All traversals (trim's reachability sweeps, relabel's depth-first
// numbering, determinize's breadth-first powerset walk) use explicit
// worklists rather than native recursion, so call depth stays constant
// regardless of graph size.
package transform
