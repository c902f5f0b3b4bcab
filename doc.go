// Package topicassign assigns seminar topics to students so that the total
// "unhappiness" (the sum of the preference ranks students end up with) is as
// small as possible.
//
// 🚀 What is topicassign?
//
//	A small, dependency-light toolkit built around one problem, the
//	rectangular linear assignment problem:
//		• Preference tables: students × topics, each cell an optional rank
//		• Cost construction: stated rank → cost, blank cell → sentinel cost
//		• Solvers: Jonker–Volgenant style shortest augmenting path (dense),
//		  heap-driven Dijkstra variant, exhaustive oracle for small inputs
//		• Reporting: per-student listing, totals, spread and a warning when
//		  the average rank gets too high
//
// ✨ Guarantees
//
//   - Every student gets exactly one topic, every topic at most one student
//   - The returned assignment has minimum total cost
//   - Deterministic: identical input gives identical output (ties go to the
//     lowest topic index)
//   - Inputs are never mutated
//
// Packages:
//
//	matrix/          dense cost matrix + numeric validators
//	preference/      preference table model, rank checks, cost matrix builder
//	assignment/      Solve, Verify and the three algorithms
//	table/           delimited (CSV-like) table loader
//	report/          summary statistics and text output
//	cmd/topicassign  command line front end
//
// Quick example:
//
//	      T1  T2  T3
//	  A    1   2   3
//	  B    1   3   2
//	  C    3   1   2
//
//	optimum: A→T1, B→T3, C→T2, total unhappiness 1+2+1 = 4.
//
//	go install github.com/katalvlaran/topicassign/cmd/topicassign@latest
package topicassign
