// Package transduce applies input symbol strings to FST graphs.
//
// # Overview
//
// Two algorithms are provided. [Fast] requires a subsequential graph and
// walks a precomputed (state, input symbol) transition table, one symbol at
// a time. [General] works on any graph: arcs may carry multi-symbol or
// empty input strings and states may have several arcs matching the same
// input prefix; it performs a depth-first backtracking search over an
// explicit frontier stack.
//
// Both fail with errors.ErrCodeTransductionFailure when the input has no
// accepting path. That is the expected "no mapping for this input" outcome,
// not a bug - callers branch on it with errors.IsSoft. Misuse errors
// (errors.ErrCodeNotSubsequential, errors.ErrCodeNoInitialState) are kept
// in a separate category.
//
// # Path Choice
//
// When several accepting paths exist, [General] returns the one found by
// LIFO exploration: at every choice point the most recently declared
// matching arc is tried first, and speculative output is discarded on
// backtrack. No shortest-path or lexicographically-least guarantee is made.
//
// # Tracing
//
// [FastSteps] and [GeneralSteps] additionally return the sequence of
// discrete [Step] events describing each arc taken, and [Trace] prints a
// transition-by-transition account to a writer. [Compose] chains several
// transducers, feeding each stage's output to the next.
package transduce
