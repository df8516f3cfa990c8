package bgcore

import "github.com/yourusername/bgcore/internal/boardpack"

// board holds the packed checker counts for both sides. Storage is
// physical: point indices 1..24 always mean the same physical point for
// both sides, P0 travels 1→24→off and P1 travels 24→1→off (spec.md §3).
// Every accessor outside the move executor should go through the
// canonical view instead of touching physical indices directly.
type board struct {
	words [2]boardpack.Word
}

// count reads the physical bucket count for side.
func (b *board) count(side Side, bucket int) uint8 {
	return b.words[side].Get(bucket)
}

// incr increments the physical bucket count for side.
func (b *board) incr(side Side, bucket int) {
	b.words[side].Incr(bucket)
}

// decr decrements the physical bucket count for side.
func (b *board) decr(side Side, bucket int) {
	b.words[side].Decr(bucket)
}

// canonicalToPhysical converts a canonical point (1..24, as seen by side)
// to its physical point index. P0's canonical view equals physical; P1's
// is mirrored (spec.md §3: canonical[i] = physical[25-i]).
func canonicalToPhysical(side Side, canonical int) int {
	if side == P0 {
		return canonical
	}
	return 25 - canonical
}

// physicalToCanonical is the inverse of canonicalToPhysical.
func physicalToCanonical(side Side, physical int) int {
	if side == P0 {
		return physical
	}
	return 25 - physical
}

// view returns the signed checker count at canonical point i (1..24) from
// mover's perspective: positive = mover's checkers, negative = opponent's.
// Physical point indices are a single shared address space (both sides'
// words index the same absolute board point), so the opponent's occupancy
// at canonical point i is read from the same physical index as mover's,
// never reconverted through the opponent's own canonical numbering.
func (b *board) view(mover Side, i int) int {
	phys := canonicalToPhysical(mover, i)
	if n := b.count(mover, phys); n > 0 {
		return int(n)
	}
	if n := b.count(mover.Other(), phys); n > 0 {
		return -int(n)
	}
	return 0
}

// setStartingPosition resets the board to the standard backgammon layout:
// 2 checkers on each side's canonical point 1, 5 on canonical 12, 3 on
// canonical 17, 5 on canonical 19. Storage is physical (spec.md §3), so
// each canonical starting point must be converted through
// canonicalToPhysical per side rather than written at the same raw bucket
// for both — P0's and P1's starting points are mirror images of each
// other in physical space, not identical.
func (b *board) setStartingPosition() {
	*b = board{}
	for _, side := range [2]Side{P0, P1} {
		b.words[side].Set(canonicalToPhysical(side, 1), 2)
		b.words[side].Set(canonicalToPhysical(side, 12), 5)
		b.words[side].Set(canonicalToPhysical(side, 17), 3)
		b.words[side].Set(canonicalToPhysical(side, 19), 5)
	}
}

// homeLo and homeHi bound the canonical home board: since canonical moves
// increase toward bear-off past point 24 (spec.md §3's "P0 travels
// 1→24→off"), the six points nearest the off bucket are 19..24, not 1..6 —
// confirmed by spec.md §8's worked over-bear example, where checkers on
// canonical 20 and 23 are both already home and 20 (farther from off) is
// the one that must be borne off first. The "points 1..6 (canonical)"
// phrasing elsewhere in the source spec refers to the ace-to-six *local*
// home-board numbering (local = 25 - canonical), not the same 1..24 index
// the move executor uses.
const (
	homeLo = 19
	homeHi = 24
)

// allCheckersHome reports whether every one of side's 15 checkers lies in
// the home board (canonical 19..24) or off (the bear-off precondition,
// spec.md §4.2).
func (b *board) allCheckersHome(side Side) bool {
	if b.count(side, boardpack.BucketBar) > 0 {
		return false
	}
	for canonical := 1; canonical < homeLo; canonical++ {
		if b.count(side, canonicalToPhysical(side, canonical)) > 0 {
			return false
		}
	}
	return true
}

// rearmostHomeCanonical returns the lowest-numbered occupied canonical
// point in the home board (19..24) — the checker farthest from off, which
// over-bear rules require to be cleared first — or 0 if the home board
// holds no checkers.
func (b *board) rearmostHomeCanonical(side Side) int {
	for canonical := homeLo; canonical <= homeHi; canonical++ {
		if b.count(side, canonicalToPhysical(side, canonical)) > 0 {
			return canonical
		}
	}
	return 0
}

// totalCheckers sums every bucket for side; used by the invariant checker.
func (b *board) totalCheckers(side Side) int {
	return b.words[side].Sum()
}

// boardsEqual reports whether two boards hold identical packed words.
func boardsEqual(a, b board) bool {
	return boardpack.Equal(a.words[P0], b.words[P0]) && boardpack.Equal(a.words[P1], b.words[P1])
}
