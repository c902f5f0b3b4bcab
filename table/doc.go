// Package table reads a delimited preference table into a preference.Table.
//
// Format (separator ';' by default):
//
//	X;Graphs;Flows;Codes
//	Ann;1;;2
//	Bob;;1;2
//
// The first row names the topics; its first cell is a label and ignored.
// Every following row starts with a student name, then one cell per topic:
// empty for "no preference" or a positive integer rank. Surrounding spaces
// are trimmed, blank lines are skipped and a leading UTF-8 BOM is tolerated.
//
// Every problem with the text itself is reported as a *FormatError carrying
// the 1-based line and column; errors.Is matches ErrInputFormat, and also
// the preference sentinel (ErrDuplicateName, ErrNonPositiveRank) when one
// applies.
package table
