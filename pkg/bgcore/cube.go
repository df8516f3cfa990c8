package bgcore

import "github.com/yourusername/bgcore/internal/boardpack"

// signed returns magnitude for a P0 winner and -magnitude for a P1 winner
// (spec.md §4.4: "sign = +1 if P0 won, -1 if P1 won").
func signed(winner Side, magnitude float64) float64 {
	if winner == P0 {
		return magnitude
	}
	return -magnitude
}

// ApplyAction dispatches a player-chosen action code according to the
// current phase (spec.md §4.4). CHANCE never accepts apply_action.
func (g *Game) ApplyAction(code int) error {
	switch g.phase {
	case PhaseCubeDecision:
		return g.applyCubeDecision(code)
	case PhaseCubeResponse:
		return g.applyCubeResponse(code)
	case PhaseCheckerPlay:
		return g.applyCheckerPlay(code)
	default:
		return &PhaseError{Op: "apply_action", Phase: g.phase}
	}
}

// applyCubeDecision handles NO_DOUBLE/DOUBLE at a CUBE_DECISION node. The
// cube value itself does not change here; DOUBLE only hands the decision
// to the opponent.
func (g *Game) applyCubeDecision(code int) error {
	if !g.opts.UnsafeSkipValidate && code != ActionNoDouble && code != ActionDouble {
		return &IllegalAction{Code: code}
	}
	g.history = append(g.history, code)
	if code == ActionDouble {
		g.current = g.current.Other()
		g.phase = PhaseCubeResponse
	} else {
		g.phase = PhaseChance
	}
	g.cache.invalidate()
	return nil
}

// applyCubeResponse handles TAKE/PASS at a CUBE_RESPONSE node. PASS scores
// the game immediately at the current cube value with no margin; TAKE
// doubles the cube, transfers ownership to the taker, and returns the turn
// to the doubler to roll.
func (g *Game) applyCubeResponse(code int) error {
	if !g.opts.UnsafeSkipValidate && code != ActionTake && code != ActionPass {
		return &IllegalAction{Code: code}
	}
	g.history = append(g.history, code)
	switch code {
	case ActionPass:
		doubler := g.current.Other()
		g.terminated = true
		g.reward = signed(doubler, float64(g.cube.Value))
	case ActionTake:
		g.cube.Owner = CubeOwner(g.current)
		g.cube.Value *= 2
		g.current = g.current.Other()
		g.phase = PhaseChance
	}
	g.cache.invalidate()
	return nil
}

// applyCheckerPlay validates code against the legal-action set (unless
// UnsafeSkipValidate opts out for throughput), plays each half-move that
// isn't a pass through the move executor, and advances remaining_actions,
// switching turns once it reaches zero (spec.md §4.3, §4.4).
func (g *Game) applyCheckerPlay(code int) error {
	if !g.opts.UnsafeSkipValidate && !g.isLegalAction(code) {
		return &IllegalAction{Code: code}
	}

	locHigh, locLow := DecodeAction(code)
	dieHigh, dieLow := g.dice.High, g.dice.Low
	if g.dice.IsDouble() {
		dieLow = dieHigh
	}

	if locHigh != LocPass {
		g.applyMove(g.current, locHigh, dieHigh)
	}
	if !g.terminated && locLow != LocPass {
		g.applyMove(g.current, locLow, dieLow)
	}

	g.history = append(g.history, code)
	g.remainingActions--
	g.cache.invalidate()

	if !g.terminated && g.remainingActions == 0 {
		g.switchTurn()
	}
	return nil
}

// ApplyChance consumes a chance outcome index (1..21) selecting an entry of
// DiceOutcomes, sets the dice and remaining_actions, and moves the phase to
// CHECKER_PLAY. Only legal at a chance node (spec.md §4.4).
func (g *Game) ApplyChance(outcomeIndex int) error {
	if g.phase != PhaseChance {
		return &PhaseError{Op: "apply_chance", Phase: g.phase}
	}
	if outcomeIndex < 1 || outcomeIndex > len(DiceOutcomes) {
		return &InvalidOutcome{Index: outcomeIndex}
	}
	o := DiceOutcomes[outcomeIndex-1]
	g.dice = Dice{High: o.High, Low: o.Low}
	if o.High == o.Low {
		g.remainingActions = 2
	} else {
		g.remainingActions = 1
	}
	g.phase = PhaseCheckerPlay
	g.cache.invalidate()
	return nil
}

// SampleChance draws an outcome index from the chance distribution and
// applies it, looping while the game is still at a chance node (spec.md
// §4.4's deterministic RL stepper helper).
func (g *Game) SampleChance(rng RNG) error {
	for g.phase == PhaseChance {
		if err := g.ApplyChance(sampleOutcomeIndex(rng)); err != nil {
			return err
		}
	}
	return nil
}

// Step applies a player-chosen action and then samples chance until the
// game reaches a deterministic (non-chance) state.
func (g *Game) Step(code int, rng RNG) error {
	if err := g.ApplyAction(code); err != nil {
		return err
	}
	return g.SampleChance(rng)
}

// switchTurn swaps the current player, clears dice, invalidates the
// action cache, and picks the next phase: CUBE_DECISION if the side about
// to move may propose a double, else CHANCE (spec.md §4.4).
func (g *Game) switchTurn() {
	g.current = g.current.Other()
	g.dice = Dice{}
	g.remainingActions = 0
	g.cache.invalidate()
	if g.mayDouble(g.current) {
		g.phase = PhaseCubeDecision
	} else {
		g.phase = PhaseChance
	}
}

// computeGameReward scores a just-finished game for winner, whose 15th
// checker has already been bored off (spec.md §4.4). The margin is 1 for a
// normal win, 2 for a gammon (loser bore off nothing), or 3 for a
// backgammon (gammon and the loser still has a checker on the bar or in
// the winner's home board, canonical 19..24 from the winner's view). Jacoby
// (money play only) clamps the margin to 1 whenever the cube is still at its
// starting value.
func (g *Game) computeGameReward(winner Side) float64 {
	loser := winner.Other()
	m := 1
	if g.b.count(loser, boardpack.BucketOff) == 0 {
		m = 2
		if g.b.count(loser, boardpack.BucketBar) > 0 {
			m = 3
		} else {
			for c := homeLo; c <= homeHi; c++ {
				if g.b.count(loser, canonicalToPhysical(winner, c)) > 0 {
					m = 3
					break
				}
			}
		}
	}
	if g.match.JacobyEnabled && g.match.MatchLength == 0 && g.cube.Value == 1 {
		m = 1
	}
	return signed(winner, float64(m*g.cube.Value))
}
