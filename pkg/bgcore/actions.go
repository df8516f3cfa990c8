package bgcore

import "github.com/yourusername/bgcore/internal/boardpack"

// legalSourcesForDie enumerates every source location from which side may
// play die d on the current board: LocBar if entry is required and open,
// or any occupied canonical point whose move (ordinary or bear-off) is
// legal (spec.md §4.2, §4.3 step 1). Bar priority is enforced here: if
// side has a checker on the bar, every other point is ignored.
func (b *board) legalSourcesForDie(side Side, d int) []int {
	if b.count(side, boardpack.BucketBar) > 0 {
		if b.isBlocked(side, d) {
			return nil
		}
		return []int{LocBar}
	}

	allHome := b.allCheckersHome(side)
	var out []int
	for src := 24; src >= 1; src-- {
		if b.count(side, canonicalToPhysical(side, src)) == 0 {
			continue
		}
		dest := src + d
		if dest <= 24 {
			if !b.isBlocked(side, dest) {
				out = append(out, src)
			}
		} else if allHome && b.canBearOff(side, src, d) {
			out = append(out, src)
		}
	}
	return out
}

// plySeq is one maximal-length chain of sources consuming a repeated die
// value, used for doubles lookahead.
type plySeq struct {
	srcs []int
}

// enumerateMaximalRepeated performs the depth-bounded recursive search
// spec.md §4.3 describes for doubles: explore every legal source at each
// ply, speculatively applying the move to a board copy (cheap — packed
// boards are two machine words) and backtracking by simply discarding the
// copy. Returns every sequence that achieves the maximum ply count
// reachable within maxPlies, deduplicated by resulting board.
func enumerateMaximalRepeated(b board, side Side, d int, maxPlies int) []plySeq {
	best := -1
	var results []plySeq
	var boards []board

	var rec func(cur board, path []int)
	rec = func(cur board, path []int) {
		depth := len(path)
		srcs := cur.legalSourcesForDie(side, d)
		if depth == maxPlies || len(srcs) == 0 {
			if depth < best {
				return
			}
			if depth > best {
				best = depth
				results = results[:0]
				boards = boards[:0]
			}
			for _, eb := range boards {
				if boardsEqual(eb, cur) {
					return
				}
			}
			results = append(results, plySeq{srcs: append([]int(nil), path...)})
			boards = append(boards, cur)
			return
		}
		for _, s := range srcs {
			next := cur
			next.applyMove(side, s, d)
			rec(next, append(append([]int(nil), path...), s))
		}
	}
	rec(b, nil)
	return results
}

// legalDoubleActions returns the legal joint actions for a doubles turn,
// searching maxPlies ahead (4 at turn start, 2 for the second joint
// action) and slicing each maximal sequence into the next joint action's
// pair of sources (spec.md §4.3). Each pair is canonicalized by
// descending source order since, unlike non-doubles, the two identical
// die values carry no "high/low" distinction of their own.
func legalDoubleActions(b board, side Side, d, maxPlies int) []int {
	seqs := enumerateMaximalRepeated(b, side, d, maxPlies)

	type pair struct{ a, b int }
	seen := map[pair]bool{}
	var codes []int

	for _, s := range seqs {
		var first, second int
		switch len(s.srcs) {
		case 0:
			first, second = LocPass, LocPass
		case 1:
			first, second = s.srcs[0], LocPass
		default:
			first, second = s.srcs[0], s.srcs[1]
		}
		if first != LocPass && second != LocPass && first < second {
			first, second = second, first
		}
		p := pair{first, second}
		if seen[p] {
			continue
		}
		seen[p] = true
		codes = append(codes, EncodeAction(first, second))
	}
	return codes
}

// legalNonDoubleActions returns the legal joint actions for a non-double
// roll, trying both die orderings (spec.md §4.3 step, "both orderings are
// tried ... so that moves legal only one way are not missed") and
// labelling loc_high as whichever source consumed the numerically higher
// die, loc_low the lower, regardless of which ply order produced it.
func legalNonDoubleActions(b board, side Side, high, low int) []int {
	type cand struct {
		locHigh, locLow int
		board           board
	}
	var cands []cand
	maxDice := 0

	record := func(locHigh, locLow int, result board, diceUsed int) {
		if diceUsed > maxDice {
			maxDice = diceUsed
		}
		cands = append(cands, cand{locHigh, locLow, result})
	}

	tryOrder := func(dieFirst, dieSecond int, firstIsHigh bool) {
		srcs1 := b.legalSourcesForDie(side, dieFirst)
		for _, s1 := range srcs1 {
			b1 := b
			b1.applyMove(side, s1, dieFirst)

			srcs2 := b1.legalSourcesForDie(side, dieSecond)
			if len(srcs2) == 0 {
				if firstIsHigh {
					record(s1, LocPass, b1, 1)
				} else {
					record(LocPass, s1, b1, 1)
				}
				continue
			}
			for _, s2 := range srcs2 {
				b2 := b1
				b2.applyMove(side, s2, dieSecond)
				if firstIsHigh {
					record(s1, s2, b2, 2)
				} else {
					record(s2, s1, b2, 2)
				}
			}
		}
	}

	tryOrder(high, low, true)
	tryOrder(low, high, false)

	if len(cands) == 0 {
		return []int{EncodeAction(LocPass, LocPass)}
	}

	// Maximum dice usage: drop anything short of the best achieved.
	filtered := cands[:0]
	for _, c := range cands {
		diceUsed := 2
		if c.locHigh == LocPass || c.locLow == LocPass {
			diceUsed = 1
		}
		if diceUsed == maxDice {
			filtered = append(filtered, c)
		}
	}
	cands = filtered

	// Higher-die preference: if only one die can be played at all, it must
	// be the higher one when that's achievable from anywhere — but if the
	// higher die cannot be played from any source, the lower die remains
	// forced (there is no legal alternative, and legal_actions must never
	// go empty while the game isn't terminated; spec.md §8 property 6).
	if maxDice == 1 {
		anyHigh := false
		for _, c := range cands {
			if c.locLow == LocPass {
				anyHigh = true
				break
			}
		}
		if anyHigh {
			onlyHigh := cands[:0]
			for _, c := range cands {
				if c.locLow == LocPass {
					onlyHigh = append(onlyHigh, c)
				}
			}
			cands = onlyHigh
		}
	}

	type pair struct{ a, b int }
	seen := map[pair]bool{}
	var codes []int
	for _, c := range cands {
		key := pair{c.locHigh, c.locLow}
		if seen[key] {
			continue
		}
		seen[key] = true
		codes = append(codes, EncodeAction(c.locHigh, c.locLow))
	}
	return codes
}

// checkerActions computes the legal checker-play actions for the current
// position and dice without touching the cache (spec.md §4.3).
func (g *Game) checkerActions() []int {
	if g.dice.IsDouble() {
		maxPlies := g.remainingActions * 2
		return legalDoubleActions(g.b, g.current, g.dice.High, maxPlies)
	}
	return legalNonDoubleActions(g.b, g.current, g.dice.High, g.dice.Low)
}

// LegalActions returns the legal-action set for the current phase,
// reading the memoised cache when valid and populating it otherwise
// (spec.md §4.3, §5). The cube-phase action sets are the two fixed
// sentinel pairs; checker-play is the generator above; chance nodes have
// no player-chosen actions.
func (g *Game) LegalActions() []int {
	if g.cache.valid {
		return g.cache.actions
	}

	var actions []int
	switch g.phase {
	case PhaseCubeDecision:
		actions = []int{ActionNoDouble, ActionDouble}
	case PhaseCubeResponse:
		actions = []int{ActionTake, ActionPass}
	case PhaseCheckerPlay:
		actions = g.checkerActions()
	case PhaseChance:
		actions = nil
	}

	g.cache.actions = append(g.cache.actions[:0], actions...)
	g.cache.valid = true
	return g.cache.actions
}

// isLegalAction reports whether code is a member of the current legal set.
func (g *Game) isLegalAction(code int) bool {
	for _, a := range g.LegalActions() {
		if a == code {
			return true
		}
	}
	return false
}
