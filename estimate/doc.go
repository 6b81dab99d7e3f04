// Package estimate provides fast feasibility estimators that answer without
// search.
//
// Bounds (the default strategy) makes one linear pass over the items keeping
// four code counters, how many items so far include each code, and four
// saturating pool-usage counters. After every item it evaluates a fixed battery
// of pigeonhole inequalities:
//
//	usage[p]                      > cap[p]
//	codes[x]                      > cap[row(x)] + cap[col(x)]
//	codes[x] + codes[y] − usage[s] > cap of the three pools the star {x,y} touches
//	Σ codes − Σ usage              > Σ cap
//
// where a star is two codes sharing pool s. Every inequality is a necessary
// condition: when Bounds reports infeasible the exact solver does too. The
// converse does not hold, which is the gap the compare harness measures.
//
// Budget is the cruder "total number of codes ≤ budget" check (46 by
// default, the sum of the default capacities). It carries no guarantee in
// either direction.
package estimate
