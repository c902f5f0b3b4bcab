// Package report turns a solved assignment back into names and prints it.
//
// Summarize joins the Preference Table, the cost matrix the solver saw and
// the solver's Result into per-student lines plus aggregate unhappiness
// statistics (total, population mean and standard deviation, worst cost,
// rank histogram). Write renders a Summary as plain or lipgloss-styled text:
//
//	Assignment
//	Ann -> Graphs (rank 1)
//	Bob -> Flows (unranked)
//	Free topics: Codes
//	Total unhappiness: 3
//	Average unhappiness: 1.50 (std dev 0.50, worst 2)
//	Ranks received: 1×1 unranked×1
//
// A warning line is added when the average exceeds Options.WarnAbove: a high
// average means many students landed on topics they ranked low or not at all.
package report
