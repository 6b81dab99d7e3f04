// Package poolcheck decides whether a sequence of items can be resolved
// against four capacity-bounded pools, and measures how far a fast bound
// estimator strays from the exact answer.
//
// 🚀 What is poolcheck?
//
//	Every item is a non-empty set of codes drawn from {AC, AD, BC, BD}. Each
//	code sits on one row pool (A or B) and one column pool (C or D):
//
//	          C     D
//	     A   AC    AD
//	     B   BC    BD
//
//	Resolving an item picks one of its minimal pool covers, so every code
//	has its row or its column consumed. A sequence is feasible when some
//	choice per item, in order, keeps every pool within its capacity.
//
// ✨ Packages:
//
//	pool/        codes, items, capacities, count states
//	catalog/     the fixed table of legal increments per item
//	exact/       exhaustive memoized search (the ground truth)
//	estimate/    linear-time pigeonhole estimator and the code-budget check
//	satcheck/    independent SAT oracle used for cross-checking
//	corpus/      lenient corpus reader, canonical writer, seeded generator
//	compare/     concurrent harness tallying estimator/exact agreement
//	config/      YAML run configuration
//	cmd/poolcheck compare, solve and generate commands
//
// Quick example:
//
//	poolcheck solve --caps 2,2,2,2 --witness AC BD
//	poolcheck generate -n 5000 --seed 7 -o cases.json
//	poolcheck compare cases.json --metrics-textfile poolcheck.prom
package poolcheck
