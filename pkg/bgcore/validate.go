package bgcore

import "github.com/yourusername/bgcore/internal/boardpack"

// Validate checks the invariants spec.md §8 requires to hold after every
// successful operation and returns a *CorruptedState describing the first
// one it finds broken, or nil. It is an assertion surface, not part of the
// normal play path: callers with GameOptions.UnsafeSkipValidate set may
// still invoke it explicitly (e.g. in tests or between training episodes)
// to catch a corrupted state early.
func (g *Game) Validate() error {
	for _, side := range [2]Side{P0, P1} {
		if g.b.totalCheckers(side) != 15 {
			return &CorruptedState{Reason: "side does not hold exactly 15 checkers"}
		}
		for bucket := 0; bucket < boardpack.NumBuckets; bucket++ {
			if g.b.count(side, bucket) > boardpack.MaxCount {
				return &CorruptedState{Reason: "nibble count exceeds 15"}
			}
		}
	}
	for phys := 1; phys <= 24; phys++ {
		if g.b.count(P0, phys) > 0 && g.b.count(P1, phys) > 0 {
			return &CorruptedState{Reason: "both sides hold checkers on the same point"}
		}
	}
	if g.terminated && g.reward == 0 {
		return &CorruptedState{Reason: "game_terminated with zero reward"}
	}
	if g.match.IsCrawford && g.cube.Enabled {
		return &CorruptedState{Reason: "is_crawford holds but the cube is enabled"}
	}
	if g.match.IsPostCrawford && !g.cube.Enabled {
		return &CorruptedState{Reason: "is_post_crawford holds but the cube is disabled"}
	}
	return nil
}
