package corpus

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/poolcheck/pool"
)

// defaultGenSeed replaces a zero GenConfig.Seed.
const defaultGenSeed int64 = 1

// GenConfig drives Generate.
type GenConfig struct {
	// Cases is the number of cases to produce.
	Cases int
	// MinLen and MaxLen bound the number of items per case, inclusive.
	MinLen, MaxLen int
	// Seed selects the stream; 0 means a fixed default.
	Seed int64
	// WideBias is the probability that an item is drawn from the
	// multi-code masks only. 0 draws all fifteen masks uniformly.
	WideBias float64
}

// DefaultGenConfig returns 1000 cases of 8 to 40 items, uniform masks.
func DefaultGenConfig() GenConfig {
	return GenConfig{Cases: 1000, MinLen: 8, MaxLen: 40}
}

func (g GenConfig) validate() error {
	switch {
	case g.Cases < 0:
		return fmt.Errorf("Cases=%d: %w", g.Cases, ErrBadGenConfig)
	case g.MinLen < 0 || g.MaxLen < g.MinLen:
		return fmt.Errorf("length range [%d,%d]: %w", g.MinLen, g.MaxLen, ErrBadGenConfig)
	case g.WideBias < 0 || g.WideBias > 1:
		return fmt.Errorf("WideBias=%g: %w", g.WideBias, ErrBadGenConfig)
	}

	return nil
}

// wideMasks are the items holding two or more codes.
var wideMasks = []pool.Item{0x3, 0x5, 0x6, 0x7, 0x9, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF}

// Generate produces a deterministic random corpus. Case i is drawn from its
// own stream derived from (Seed, i), so cases do not depend on Cases or on
// each other.
func Generate(cfg GenConfig) ([]Case, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultGenSeed
	}

	out := make([]Case, cfg.Cases)
	for i := range out {
		r := rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
		n := cfg.MinLen + r.Intn(cfg.MaxLen-cfg.MinLen+1)
		c := make(Case, n)
		for j := range c {
			if cfg.WideBias > 0 && r.Float64() < cfg.WideBias {
				c[j] = wideMasks[r.Intn(len(wideMasks))]
				continue
			}
			c[j] = pool.Item(1 + r.Intn(pool.NumItemMasks-1))
		}
		out[i] = c
	}

	return out, nil
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
