// Package recording loads accelerometer logger exports into memory.
//
// A logger export is a semicolon-delimited text file: a four line
// preamble, an optional column-header line, then one row per sample:
//
//	2025-03-14 16:32:16.000000;0.012;-0.981;0.034
//
// [Load] turns such a file into a [Recording]: four aligned sequences
// (relative time, x, y, z). Rows with a missing or non-numeric
// acceleration value are dropped from all four sequences together.
// Rows with an unparseable timestamp are dropped as well unless
// [WithKeepInvalidTime] is given, in which case their time is NaN.
//
// # Errors
//
// A missing or unreadable file yields a [*FileError]; a truncated
// preamble, a missing data section or fewer than four columns yield a
// [*ParseError]. Both match [ErrFile] / [ErrParse] with errors.Is.
package recording
