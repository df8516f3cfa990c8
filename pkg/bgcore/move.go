package bgcore

import "github.com/yourusername/bgcore/internal/boardpack"

// isBlocked reports whether the opponent holds a made point (2+ checkers)
// at canonical point c from side's point of view. Physical indexing is a
// shared absolute address space, so the opponent's occupancy is read from
// the same physical index side would use for its own checker there.
func (b *board) isBlocked(side Side, canonical int) bool {
	phys := canonicalToPhysical(side, canonical)
	return b.count(side.Other(), phys) >= 2
}

// canBearOff reports whether side may bear a checker off from canonical
// point src using die d, given side already has every checker home and
// src+d > 24 (spec.md §4.2's over-bear rule). Exact bear-off needs src+d
// == 25 (die matches the checker's local home-point number, 25-src,
// exactly); anything further overshoots and is legal only as an over-bear
// from the rearmost occupied home point (spec.md §8 scenario 7).
func (b *board) canBearOff(side Side, src, d int) bool {
	if b.count(side, canonicalToPhysical(side, src)) == 0 {
		return false
	}
	if src+d == 25 {
		return true
	}
	return src == b.rearmostHomeCanonical(side)
}

// applyMove applies a single source-destination move for side using die d
// on the packed board only (spec.md §4.2). src is LocBar (enter from the
// bar) or a canonical point 1..24; the caller is responsible for only
// invoking this on legal moves — applyMove does not itself check blocked
// points or bear-off eligibility. Hits are handled; termination is the
// caller's concern (see Game.applyMove).
func (b *board) applyMove(side Side, src, d int) {
	if src == LocBar {
		b.decr(side, boardpack.BucketBar)
		b.enter(side, d)
		return
	}
	destCanonical := src + d
	phys := canonicalToPhysical(side, src)
	b.decr(side, phys)
	if destCanonical > 24 {
		b.incr(side, boardpack.BucketOff)
	} else {
		b.enter(side, destCanonical)
	}
}

// enter places one of side's checkers at canonical point c, hitting a lone
// opponent blot there if present.
func (b *board) enter(side Side, c int) {
	phys := canonicalToPhysical(side, c)
	opp := side.Other()
	if b.count(opp, phys) == 1 {
		b.decr(opp, phys)
		b.incr(opp, boardpack.BucketBar)
	}
	b.incr(side, phys)
}

// applyMove is the Game-level move executor: it mutates the real board and
// latches termination + reward the moment side's 15th checker bears off.
func (g *Game) applyMove(side Side, src, d int) {
	g.b.applyMove(side, src, d)
	if g.b.count(side, boardpack.BucketOff) == 15 {
		g.terminated = true
		g.reward = g.computeGameReward(side)
	}
}
