// Package corpus reads, writes and generates test corpora for the compare
// harness.
//
// A corpus is a list of cases; a case is a list of items; an item is a list
// of codes. Codes are written either as their corpus numbers 0..3 or as
// names ("AC", "ad", ...):
//
//	[
//	  // two disjoint singles
//	  [[0], [3]],
//	  [["AC", "AD", "BC", "BD"], [1, 2],],   /* trailing commas are fine */
//	]
//
// Decode is lenient: it accepts HuJSON, that is JSON with // and /* */
// comments and trailing commas. Encode always writes canonical JSON with numeric codes, one
// case per line.
package corpus
