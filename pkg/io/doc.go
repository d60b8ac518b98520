// Package io reads and writes the line-oriented textual FST format.
//
// # Format
//
// Comments run from # to the end of the line. Blank lines are ignored.
// The remaining lines are:
//
//	-> S                       set the initial state to S
//	S ->                       mark S final
//	S -> [o1 o2]               mark S final with finalizing string "o1 o2"
//	S                          declare an isolated state
//	descr S: some text         attach a description to S; indented lines
//	                           that follow are appended as continuations
//	S -> D [i1 i2 : o1 o2]     arc from S to D with the given input and
//	                           output strings
//	-> D [i : o]               arc from the most recently named source
//
// States are created on first mention, so graphs need no forward
// declarations. A malformed line fails with errors.ErrCodeParse naming the
// line number and content.
//
// # Round-Tripping
//
// [WriteText] prints a graph in this same format, so loading its output
// yields a graph with identical transduction behavior. Label identity is
// preserved for states; arc labels are reassigned on load.
package io
