package estimate

import (
	"fmt"

	"github.com/katalvlaran/poolcheck/catalog"
	"github.com/katalvlaran/poolcheck/pool"
)

// Bound names the inequality family that rejected a sequence.
type Bound uint8

const (
	// BoundNone means no inequality fired.
	BoundNone Bound = iota
	// BoundPoolUsage is usage[p] > cap[p]. Usage saturates at capacity, so
	// this family guards the counters and does not fire on its own.
	BoundPoolUsage
	// BoundCode is codes[x] > cap[row(x)] + cap[col(x)].
	BoundCode
	// BoundStar is codes[x] + codes[y] − usage[shared] > star capacity.
	BoundStar
	// BoundTotal is Σ codes − Σ usage > Σ cap.
	BoundTotal
	// BoundCapacity means the capacities themselves are invalid; no item
	// was examined.
	BoundCapacity
)

var boundNames = [...]string{"none", "pool-usage", "code", "star", "total", "capacity"}

func (b Bound) String() string {
	if int(b) < len(boundNames) {
		return boundNames[b]
	}

	return "bound?"
}

// Report explains a Bounds verdict.
type Report struct {
	// Feasible is the estimator verdict.
	Feasible bool
	// FailedAt is the index of the item after which a bound fired, or -1.
	// It is also -1 when the capacities are invalid (BoundCapacity).
	FailedAt int
	// Bound is the inequality family that fired.
	Bound Bound
	// Detail names the specific inequality, e.g. "AC".
	Detail string
}

// star is two codes sharing one pool; others are the two pools on the
// opposite axis.
type star struct {
	x, y   pool.Code
	shared pool.Pool
	others [2]pool.Pool
}

var stars = [4]star{
	{x: pool.AC, y: pool.AD, shared: pool.RowA, others: [2]pool.Pool{pool.ColC, pool.ColD}},
	{x: pool.BC, y: pool.BD, shared: pool.RowB, others: [2]pool.Pool{pool.ColC, pool.ColD}},
	{x: pool.AC, y: pool.BC, shared: pool.ColC, others: [2]pool.Pool{pool.RowA, pool.RowB}},
	{x: pool.AD, y: pool.BD, shared: pool.ColD, others: [2]pool.Pool{pool.RowA, pool.RowB}},
}

// counters is the running state of one pass.
type counters struct {
	caps  pool.Capacities
	usage [pool.NumPools]int
	codes [pool.NumCodes]int
}

// bump raises usage[p] by one, saturating at the pool capacity.
func (k *counters) bump(p pool.Pool) {
	if k.usage[p] < k.caps[p] {
		k.usage[p]++
	}
}

// observe folds one item into the counters.
//
// Usage rule by shape:
//   - Single    → the code's row.
//   - SharedRow → the shared row.
//   - SharedCol → the shared column.
//   - Diagonal  → both rows.
//   - Triple    → the row and column of the code opposite the absent one.
//   - Full      → all four pools.
//
// Every item that can resolve with fewer units than it has codes bumps each
// pool such a resolution may use; that keeps the star and total bounds
// necessary. The extra bumps for Single and Diagonal only loosen them.
func (k *counters) observe(it pool.Item) {
	codes := it.Codes()
	for _, c := range codes {
		k.codes[c]++
	}

	switch catalog.ShapeOf(it) {
	case catalog.Single:
		k.bump(codes[0].Row())
	case catalog.SharedRow:
		k.bump(codes[0].Row())
	case catalog.SharedCol:
		k.bump(codes[0].Col())
	case catalog.Diagonal:
		k.bump(codes[0].Row())
		k.bump(codes[1].Row())
	case catalog.Triple:
		missing, _ := catalog.Missing(it)
		o := catalog.Opposite(missing)
		k.bump(o.Row())
		k.bump(o.Col())
	case catalog.Full:
		k.bump(pool.RowA)
		k.bump(pool.RowB)
		k.bump(pool.ColC)
		k.bump(pool.ColD)
	}
}

// violated evaluates the battery in a fixed order and returns the first
// bound that fires.
func (k *counters) violated() (Bound, string) {
	var p pool.Pool
	for p = 0; p < pool.NumPools; p++ {
		if k.usage[p] > k.caps[p] {
			return BoundPoolUsage, p.String()
		}
	}

	var c pool.Code
	for c = 0; c < pool.NumCodes; c++ {
		if k.codes[c] > k.caps[c.Row()]+k.caps[c.Col()] {
			return BoundCode, c.String()
		}
	}

	for _, s := range stars {
		lhs := k.codes[s.x] + k.codes[s.y] - k.usage[s.shared]
		rhs := k.caps[s.shared] + k.caps[s.others[0]] + k.caps[s.others[1]]
		if lhs > rhs {
			return BoundStar, fmt.Sprintf("%s+%s", s.x, s.y)
		}
	}

	var totalCodes, totalUsage int
	for c = 0; c < pool.NumCodes; c++ {
		totalCodes += k.codes[c]
	}
	for p = 0; p < pool.NumPools; p++ {
		totalUsage += k.usage[p]
	}
	if totalCodes-totalUsage > k.caps.Total() {
		return BoundTotal, "all"
	}

	return BoundNone, ""
}

// Explain runs the Bounds estimator and reports where it stopped.
//
// Complexity: O(n) time, O(1) space.
func Explain(items []pool.Item, caps pool.Capacities) Report {
	if err := caps.Validate(); err != nil {
		return Report{Feasible: false, FailedAt: -1, Bound: BoundCapacity, Detail: err.Error()}
	}

	k := counters{caps: caps}
	for i, it := range items {
		k.observe(it)
		if b, detail := k.violated(); b != BoundNone {
			return Report{Feasible: false, FailedAt: i, Bound: b, Detail: detail}
		}
	}

	return Report{Feasible: true, FailedAt: -1, Bound: BoundNone}
}

// Estimate is the boolean form of Explain.
func Estimate(items []pool.Item, caps pool.Capacities) bool {
	return Explain(items, caps).Feasible
}
