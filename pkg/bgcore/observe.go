package bgcore

import (
	"math"

	"github.com/yourusername/bgcore/internal/boardpack"
	"gonum.org/v1/gonum/floats"
)

// Tier selects how much of the channel list is emitted: minimal is a
// prefix of full, which is a prefix of biased (spec.md §4.5's hierarchy
// property).
type Tier int

const (
	TierMinimal Tier = iota
	TierFull
	TierBiased
)

// Layout selects how the channel list is laid out in the output buffer.
type Layout int

const (
	Layout3D Layout = iota
	LayoutFlat
	LayoutHybrid
)

// ObsVariant names one of the nine {tier} x {layout} observation variants.
type ObsVariant struct {
	Tier   Tier
	Layout Layout
}

// boardWidth is the spatial width used by the 3D and hybrid layouts: my
// bar, canonical points 1..24, opponent bar (spec.md §4.5).
const boardWidth = 26

// boardChannelFunc computes one spatial channel's value at width position
// pos (1..boardWidth).
type boardChannelFunc func(g *Game, pos int) float64

// globalChannelFunc computes one scalar (non-spatial) channel's value.
type globalChannelFunc func(g *Game) float64

// channel is either a spatial board channel or a global scalar channel.
type channel struct {
	board  boardChannelFunc
	global globalChannelFunc
}

func (c channel) isBoard() bool { return c.board != nil }

// boardCountAt reads the raw (unsigned) checker count sideForChannel holds
// at spatial position pos, from the current player's (g.current) point of
// view: pos 1 is always the mover's own bar (zero for the opponent's
// channel, since the opponent can never hold checkers there), pos 26 is
// always the opponent's bar, and pos 2..25 map to canonical points 1..24
// read through the shared physical address space (spec.md §3).
func (g *Game) boardCountAt(sideForChannel Side, pos int) uint8 {
	mover := g.current
	switch pos {
	case 1:
		if sideForChannel == mover {
			return g.b.count(mover, boardpack.BucketBar)
		}
		return 0
	case boardWidth:
		if sideForChannel != mover {
			return g.b.count(mover.Other(), boardpack.BucketBar)
		}
		return 0
	default:
		canonical := pos - 1
		phys := canonicalToPhysical(mover, canonical)
		return g.b.count(sideForChannel, phys)
	}
}

func indicatorChannel(isMover bool, k int) channel {
	return channel{board: func(g *Game, pos int) float64 {
		side := g.current
		if !isMover {
			side = side.Other()
		}
		if int(g.boardCountAt(side, pos)) >= k {
			return 1
		}
		return 0
	}}
}

func globalChannel(fn globalChannelFunc) channel { return channel{global: fn} }

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// effectiveMoveCount is the one-hot target for the move-count block: the
// number of currently playable joint actions this turn, 0 at chance nodes
// or when totally blocked (spec.md §4.5).
func effectiveMoveCount(g *Game) int {
	if g.phase != PhaseCheckerPlay {
		return 0
	}
	actions := g.LegalActions()
	if len(actions) == 1 && actions[0] == EncodeAction(LocPass, LocPass) {
		return 0
	}
	n := len(actions)
	if n > 4 {
		n = 4
	}
	return n
}

func normalizeAway(m MatchState, s Side) float64 {
	if m.MatchLength == 0 {
		return 0
	}
	return float64(m.Away(s)) / 25
}

// pipCount is the standard pip count for side: 25 pips per checker still on
// the bar plus, for every occupied point, count * pips-remaining-to-off in
// side's own direction of travel (physicalToCanonical(side, ...), not the
// observing mover's frame, since pip count is a per-side physical quantity).
func (g *Game) pipCount(side Side) int {
	total := int(g.b.count(side, boardpack.BucketBar)) * 25
	for phys := 1; phys <= 24; phys++ {
		cnt := g.b.count(side, phys)
		if cnt == 0 {
			continue
		}
		ownCanonical := physicalToCanonical(side, phys)
		total += int(cnt) * (25 - ownCanonical)
	}
	return total
}

// maxPip bounds pipCount (all 15 checkers on the bar) for normalization.
const maxPip = 15 * 25

// hasContact reports whether mover's and the opponent's checkers can still
// meet: true unless mover's rearmost checker has already passed every
// opponent checker in the direction of travel, or either side has nothing
// left on the board.
func (g *Game) hasContact() bool {
	mover := g.current
	if g.b.count(mover, boardpack.BucketBar) > 0 || g.b.count(mover.Other(), boardpack.BucketBar) > 0 {
		return true
	}
	moverLow := 0
	for c := 1; c <= 24; c++ {
		if g.b.count(mover, canonicalToPhysical(mover, c)) > 0 {
			moverLow = c
			break
		}
	}
	oppHigh := 0
	for c := 24; c >= 1; c-- {
		if g.b.count(mover.Other(), canonicalToPhysical(mover, c)) > 0 {
			oppHigh = c
			break
		}
	}
	if moverLow == 0 || oppHigh == 0 {
		return false
	}
	return moverLow <= oppHigh
}

// stragglerCount sums checkers a side still has deep in unfriendly
// territory: for mover, canonical 1..6 (deep in the opponent's home) plus
// the bar; for the opponent, the mirror zone (mover-canonical 19..24, deep
// in mover's home) plus the opponent's bar.
func (g *Game) stragglerCount(forMover bool) int {
	mover := g.current
	side := mover
	lo, hi := 1, 6
	if !forMover {
		side = mover.Other()
		lo, hi = homeLo, homeHi
	}
	n := int(g.b.count(side, boardpack.BucketBar))
	for c := lo; c <= hi; c++ {
		n += int(g.b.count(side, canonicalToPhysical(mover, c)))
	}
	return n
}

// homeCount sums checkers a side already holds in its own home board:
// mover-canonical 19..24 for mover, mover-canonical 1..6 (the opponent's
// own home, expressed in mover's frame) for the opponent.
func (g *Game) homeCount(forMover bool) int {
	mover := g.current
	side := mover
	lo, hi := homeLo, homeHi
	if !forMover {
		side = mover.Other()
		lo, hi = 1, 6
	}
	n := 0
	for c := lo; c <= hi; c++ {
		n += int(g.b.count(side, canonicalToPhysical(mover, c)))
	}
	return n
}

// anchorZone returns the canonical range (in mover's frame) where side
// would hold a strategic anchor: deep in the opponent's home board.
func anchorZone(mover, side Side) (lo, hi int) {
	if side == mover {
		return 1, 6
	}
	return homeLo, homeHi
}

// primeLengthOnAnchor returns the length of the contiguous run of made
// points (2+ checkers) side holds starting at canonical anchor point c and
// extending in side's own direction of travel, 0 if c isn't made.
func (g *Game) primeLengthOnAnchor(side Side, anchor int) int {
	mover := g.current
	step := 1
	if side != mover {
		step = -1
	}
	length := 0
	for p := anchor; p >= 1 && p <= 24; p += step {
		if g.b.count(side, canonicalToPhysical(mover, p)) >= 2 {
			length++
		} else {
			break
		}
	}
	return length
}

// anchorCount counts made points side holds within its own anchor zone.
func (g *Game) anchorCount(side Side) int {
	mover := g.current
	lo, hi := anchorZone(mover, side)
	n := 0
	for p := lo; p <= hi; p++ {
		if g.b.count(side, canonicalToPhysical(mover, p)) >= 2 {
			n++
		}
	}
	return n
}

// blotCount counts side's points (anywhere on the board) holding exactly
// one checker.
func (g *Game) blotCount(side Side) int {
	mover := g.current
	n := 0
	for p := 1; p <= 24; p++ {
		if g.b.count(side, canonicalToPhysical(mover, p)) == 1 {
			n++
		}
	}
	return n
}

// builderZone returns the six-point staging area just short of side's own
// home board, in mover's frame.
func builderZone(mover, side Side) (lo, hi int) {
	if side == mover {
		return homeLo - 6, homeLo - 1
	}
	return 7, 12
}

// builderCount sums side's checkers sitting in direct-shot range of
// completing a home-board point.
func (g *Game) builderCount(side Side) int {
	mover := g.current
	lo, hi := builderZone(mover, side)
	n := 0
	for p := lo; p <= hi; p++ {
		n += int(g.b.count(side, canonicalToPhysical(mover, p)))
	}
	return n
}

// channelList builds the full, tier-ordered channel list once: the 12
// per-point threshold indicators (spatial) first, then every global scalar
// in minimal/full/biased order, so that a tier's channels are always a
// prefix of the next tier's (spec.md §4.5's hierarchy property).
func channelList() []channel {
	var cs []channel

	// Minimal: board threshold indicators (12, spatial).
	for _, isMover := range [2]bool{true, false} {
		for k := 1; k <= 6; k++ {
			cs = append(cs, indicatorChannel(isMover, k))
		}
	}

	// Minimal: dice one-hots (12, global).
	for slot := 0; slot < 2; slot++ {
		for v := 1; v <= 6; v++ {
			v := v
			slot := slot
			cs = append(cs, globalChannel(func(g *Game) float64 {
				die := g.dice.High
				if slot == 1 {
					die = g.dice.Low
				}
				return boolF(die == v)
			}))
		}
	}

	// Minimal: move-count one-hot (4, global).
	for n := 1; n <= 4; n++ {
		n := n
		cs = append(cs, globalChannel(func(g *Game) float64 {
			return boolF(effectiveMoveCount(g) == n)
		}))
	}

	// Minimal: off-count scalars (2, global).
	cs = append(cs, globalChannel(func(g *Game) float64 {
		return float64(g.b.count(g.current, boardpack.BucketOff)) / 15
	}))
	cs = append(cs, globalChannel(func(g *Game) float64 {
		return float64(g.b.count(g.current.Other(), boardpack.BucketOff)) / 15
	}))

	// Minimal: cube/match block (12, global): phase one-hot (3), log2 cube
	// value, I-own-cube, cube-centred, may-double, money-play, my-away,
	// opp-away, is-Crawford, is-post-Crawford.
	for _, ph := range [3]Phase{PhaseCubeDecision, PhaseCubeResponse, PhaseCheckerPlay} {
		ph := ph
		cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.phase == ph) }))
	}
	cs = append(cs, globalChannel(func(g *Game) float64 { return math.Log2(float64(g.cube.Value)) / 6 }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.cube.Owner == CubeOwner(g.current)) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.cube.Owner == CubeCentered) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.mayDouble(g.current)) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.match.MatchLength == 0) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return normalizeAway(g.match, g.current) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return normalizeAway(g.match, g.current.Other()) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.match.IsCrawford) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.match.IsPostCrawford) }))

	// Full additions (9, global).
	cs = append(cs, globalChannel(func(g *Game) float64 { return float64(g.dice.High+g.dice.Low) / 36 }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return math.Abs(float64(g.dice.High-g.dice.Low)) / 5 }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return float64(g.pipCount(g.current)) / maxPip }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return float64(g.pipCount(g.current.Other())) / maxPip }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return boolF(g.hasContact()) }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return float64(g.stragglerCount(true)) / 15 }))
	cs = append(cs, globalChannel(func(g *Game) float64 { return float64(g.stragglerCount(false)) / 15 }))
	cs = append(cs, globalChannel(func(g *Game) float64 {
		return float64(15-int(g.b.count(g.current, boardpack.BucketOff))-g.homeCount(true)) / 15
	}))
	cs = append(cs, globalChannel(func(g *Game) float64 {
		return float64(15-int(g.b.count(g.current.Other(), boardpack.BucketOff))-g.homeCount(false)) / 15
	}))

	// Biased additions (18, global): mover's block then the opponent's.
	for _, isMover := range [2]bool{true, false} {
		isMover := isMover
		for slot := 0; slot < 6; slot++ {
			slot := slot
			cs = append(cs, globalChannel(func(g *Game) float64 {
				side := g.current
				if !isMover {
					side = side.Other()
				}
				lo, _ := anchorZone(g.current, side)
				return float64(g.primeLengthOnAnchor(side, lo+slot))
			}))
		}
		cs = append(cs, globalChannel(func(g *Game) float64 {
			side := g.current
			if !isMover {
				side = side.Other()
			}
			return float64(g.anchorCount(side))
		}))
		cs = append(cs, globalChannel(func(g *Game) float64 {
			side := g.current
			if !isMover {
				side = side.Other()
			}
			return float64(g.blotCount(side))
		}))
		cs = append(cs, globalChannel(func(g *Game) float64 {
			side := g.current
			if !isMover {
				side = side.Other()
			}
			return float64(g.builderCount(side))
		}))
	}

	return cs
}

var allChannels = channelList()

// tierChannelCount returns how many leading channels of allChannels belong
// to tier.
func tierChannelCount(t Tier) int {
	const (
		board       = 12
		diceBlock   = 12
		moveCount   = 4
		offScalars  = 2
		cubeMatch   = 12
		fullAdd     = 9
		biasedAdd   = 18
	)
	minimal := board + diceBlock + moveCount + offScalars + cubeMatch
	switch t {
	case TierMinimal:
		return minimal
	case TierFull:
		return minimal + fullAdd
	default:
		return minimal + fullAdd + biasedAdd
	}
}

func boardChannelCount() int {
	n := 0
	for _, c := range allChannels {
		if c.isBoard() {
			n++
		}
	}
	return n
}

// ObsDims returns the total number of float64 values variant produces
// (spec.md §6's required obs_dims query).
func (g *Game) ObsDims(v ObsVariant) int {
	cBoard := boardChannelCount()
	n := tierChannelCount(v.Tier)
	cGlobal := n - cBoard
	switch v.Layout {
	case Layout3D:
		return n * boardWidth
	case LayoutFlat:
		return cBoard*24 + cGlobal
	default: // LayoutHybrid
		return cBoard*boardWidth + cGlobal
	}
}

// Observe3D emits the C x 1 x boardWidth tensor (row-major, board channels
// first) for tier.
func (g *Game) Observe3D(tier Tier) []float64 {
	n := tierChannelCount(tier)
	out := make([]float64, 0, n*boardWidth)
	for _, c := range allChannels[:n] {
		if c.isBoard() {
			for pos := 1; pos <= boardWidth; pos++ {
				out = append(out, c.board(g, pos))
			}
		} else {
			v := c.global(g)
			row := make([]float64, boardWidth)
			floats.AddConst(v, row)
			out = append(out, row...)
		}
	}
	return out
}

// ObserveFlat emits the board-local features unrolled over the 24 playing
// points only (no bar slots), followed by every global feature once.
func (g *Game) ObserveFlat(tier Tier) []float64 {
	n := tierChannelCount(tier)
	var board, global []float64
	for _, c := range allChannels[:n] {
		if c.isBoard() {
			for pos := 2; pos <= 25; pos++ {
				board = append(board, c.board(g, pos))
			}
		} else {
			global = append(global, c.global(g))
		}
	}
	return append(board, global...)
}

// ObserveHybrid emits the board features (including bar slots) and global
// features as two separate slices.
func (g *Game) ObserveHybrid(tier Tier) (board, global []float64) {
	n := tierChannelCount(tier)
	for _, c := range allChannels[:n] {
		if c.isBoard() {
			for pos := 1; pos <= boardWidth; pos++ {
				board = append(board, c.board(g, pos))
			}
		} else {
			global = append(global, c.global(g))
		}
	}
	return board, global
}
