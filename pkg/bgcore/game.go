// Package bgcore implements the packed board state, legal-action
// generator, and cube/match turn state machine for a backgammon rules
// engine driving an external MCTS/RL agent.
package bgcore

// actionCache memoises the current legal-action set. It is an owned,
// reused buffer: invalidated (valid cleared, buffer left allocated) by any
// operation that can change legality, and populated lazily by the next
// call into the generator (spec.md §3, §5).
type actionCache struct {
	actions []int
	valid   bool
}

func (c *actionCache) invalidate() {
	c.valid = false
}

// Game is the full mutable state of one backgammon game: board, dice,
// current player, phase, cube, match context, history, and the memoised
// legal-action set. A Game is single-threaded; concurrent access from
// multiple goroutines is the caller's responsibility (spec.md §5).
type Game struct {
	b board

	dice             Dice
	remainingActions int
	current          Side
	phase            Phase
	cube             CubeState
	match            MatchState
	history          []int
	cache            actionCache
	terminated       bool
	reward           float64
	opts             GameOptions
}

// NewGame creates a game at a chance node with checkers in the standard
// starting layout.
func NewGame(opts GameOptions) *Game {
	g := &Game{opts: opts}
	g.Reset()
	return g
}

// Reset reinitializes the game in place to the standard starting position
// at a chance node, avoiding reallocation (spec.md §3).
func (g *Game) Reset() {
	g.b.setStartingPosition()
	g.dice = Dice{}
	g.remainingActions = 0
	g.current = g.opts.FirstPlayer
	g.phase = PhaseChance
	g.cube = CubeState{Value: 1, Owner: CubeCentered, Enabled: true}
	g.match = MatchState{}
	g.history = g.history[:0]
	g.cache.actions = g.cache.actions[:0]
	g.cache.invalidate()
	g.terminated = false
	g.reward = 0
}

// InitMatchGame configures match-play context: away distances, Crawford /
// post-Crawford flags, and the cube (spec.md §6). myScore/oppScore are the
// scores of the side on roll and its opponent; matchLength is the target
// score. Post-Crawford is inferred when either side is exactly 1-away and
// isCrawford is false. Jacoby is disabled (match play only; money games
// enable it explicitly via SetJacoby). The cube resets to 1/centred and is
// disabled iff Crawford.
func (g *Game) InitMatchGame(myScore, oppScore, matchLength int, isCrawford bool) {
	g.match.MatchLength = matchLength
	if g.current == P0 {
		g.match.Score = [2]int{myScore, oppScore}
	} else {
		g.match.Score = [2]int{oppScore, myScore}
	}
	g.match.IsCrawford = isCrawford
	g.match.IsPostCrawford = !isCrawford &&
		(g.match.Away(P0) == 1 || g.match.Away(P1) == 1)
	g.match.JacobyEnabled = false

	g.cube.Value = 1
	g.cube.Owner = CubeCentered
	g.cube.Enabled = !isCrawford

	g.cache.invalidate()
}

// SetJacoby enables or disables the Jacoby rule. Money games only;
// calling this after InitMatchGame has no rules effect since match play
// never honors Jacoby, but the flag is still recorded.
func (g *Game) SetJacoby(enabled bool) {
	g.match.JacobyEnabled = enabled
}

// Clone performs a deep copy with a fresh action buffer and cleared cache
// flag, so search-tree nodes never alias the same buffer (spec.md §5).
func (g *Game) Clone() *Game {
	clone := *g
	clone.history = append([]int(nil), g.history...)
	clone.cache = actionCache{}
	return &clone
}

// CurrentPlayer returns the side on roll.
func (g *Game) CurrentPlayer() Side { return g.current }

// IsChanceNode reports whether the game is awaiting a dice roll.
func (g *Game) IsChanceNode() bool { return g.phase == PhaseChance }

// GameTerminated reports whether the game has ended.
func (g *Game) GameTerminated() bool { return g.terminated }

// Winner returns the side that won, valid only once GameTerminated is true.
func (g *Game) Winner() Side {
	if g.reward >= 0 {
		return P0
	}
	return P1
}

// Reward returns the terminal reward, signed +1 for a P0 win and -1 for a
// P1 win, scaled by margin and cube value (spec.md §4.4). Zero before
// termination.
func (g *Game) Reward() float64 { return g.reward }

// Phase returns the current turn-machine phase.
func (g *Game) Phase() Phase { return g.phase }

// Dice returns the current roll.
func (g *Game) Dice() Dice { return g.dice }

// RemainingActions returns the number of joint actions still to be taken
// this turn (0, 1, or 2).
func (g *Game) RemainingActions() int { return g.remainingActions }

// Cube returns the current cube state.
func (g *Game) Cube() CubeState { return g.cube }

// Match returns the current match state.
func (g *Game) Match() MatchState { return g.match }

// History returns the append-only list of prior action codes.
func (g *Game) History() []int { return g.history }

// At returns the canonical, perspective-signed checker count at point i
// (1..24) from the current player's point of view: positive for the
// current player's checkers, negative for the opponent's.
func (g *Game) At(i int) int { return g.b.view(g.current, i) }

// mayDouble reports whether the side about to move may propose a double:
// the cube must be enabled, Crawford must not be active, and the cube
// must be centred or owned by that side (spec.md §4.4).
func (g *Game) mayDouble(side Side) bool {
	if !g.cube.Enabled || g.match.IsCrawford {
		return false
	}
	return g.cube.Owner == CubeCentered || int(g.cube.Owner) == int(side)
}
