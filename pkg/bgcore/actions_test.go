package bgcore

import (
	"testing"

	"github.com/yourusername/bgcore/internal/boardpack"
)

func TestBarPriorityForcesEntryWhenPossible(t *testing.T) {
	var b board
	b.incr(P0, boardpack.BucketBar)
	// Give P0 a few other checkers that would otherwise have moves.
	b.incr(P0, canonicalToPhysical(P0, 10))
	b.incr(P0, canonicalToPhysical(P0, 15))

	codes := legalNonDoubleActions(b, P0, 4, 2)
	for _, code := range codes {
		locHigh, locLow := DecodeAction(code)
		if locHigh != LocBar && locLow != LocBar && locHigh != LocPass && locLow != LocPass {
			t.Fatalf("expected every source to be the bar while a checker waits there, got high=%d low=%d", locHigh, locLow)
		}
	}
}

func TestBarPriorityNoEntryWhenBlocked(t *testing.T) {
	var b board
	b.incr(P0, boardpack.BucketBar)
	// Block every entry point for die 4 and die 2.
	entry4 := canonicalToPhysical(P0, 4)
	entry2 := canonicalToPhysical(P0, 2)
	b.incr(P1, entry4)
	b.incr(P1, entry4)
	b.incr(P1, entry2)
	b.incr(P1, entry2)

	codes := legalNonDoubleActions(b, P0, 4, 2)
	if len(codes) != 1 {
		t.Fatalf("expected exactly the pass action, got %v", codes)
	}
	if codes[0] != EncodeAction(LocPass, LocPass) {
		t.Fatalf("expected pass action when bar entry is fully blocked, got code %d", codes[0])
	}
}

func TestHigherDiePreferenceWhenOnlyOneDiePlayable(t *testing.T) {
	var b board
	// A single checker than can play either die 5 or die 3 from its
	// starting point, but whichever it plays first, the other die would
	// then land on the same blocked point (6+3==4+5==9), so only one die
	// can ever be used.
	b.incr(P0, canonicalToPhysical(P0, 1))
	blocked := canonicalToPhysical(P0, 9)
	b.incr(P1, blocked)
	b.incr(P1, blocked)

	codes := legalNonDoubleActions(b, P0, 5, 3)
	if len(codes) != 1 {
		t.Fatalf("expected exactly one surviving action, got %v", codes)
	}
	locHigh, locLow := DecodeAction(codes[0])
	if locLow != LocPass || locHigh != 1 {
		t.Fatalf("expected the higher die (5) to be forced from point 1, got high=%d low=%d", locHigh, locLow)
	}
}

func TestLowerDieForcedWhenHigherUnplayableAnywhere(t *testing.T) {
	var b board
	// A single checker that can only ever play the low die (3); the high
	// die (5) is blocked outright. The lower die must remain forced, not
	// discarded, since there is no higher-die alternative anywhere.
	b.incr(P0, canonicalToPhysical(P0, 1))
	blockedHigh := canonicalToPhysical(P0, 6) // 1+5, direct
	b.incr(P1, blockedHigh)
	b.incr(P1, blockedHigh)
	blockedContinuation := canonicalToPhysical(P0, 9) // 4+5, after playing the low die first
	b.incr(P1, blockedContinuation)
	b.incr(P1, blockedContinuation)

	codes := legalNonDoubleActions(b, P0, 5, 3)
	if len(codes) != 1 {
		t.Fatalf("expected exactly one surviving action, got %v", codes)
	}
	locHigh, locLow := DecodeAction(codes[0])
	if locHigh != LocPass || locLow != 1 {
		t.Fatalf("expected the only-playable low die to remain forced, got high=%d low=%d", locHigh, locLow)
	}
}

func TestMaximumDiceUsageDropsOneDieActions(t *testing.T) {
	// Standard starting position: both dice should always be playable in
	// some order, so no one-die action should survive in the legal set.
	var b board
	b.setStartingPosition()
	codes := legalNonDoubleActions(b, P0, 6, 5)
	for _, code := range codes {
		locHigh, locLow := DecodeAction(code)
		if locHigh == LocPass || locLow == LocPass {
			t.Fatalf("expected only two-die actions when both dice are playable, got high=%d low=%d", locHigh, locLow)
		}
	}
}

func TestLegalActionsCachesUntilInvalidated(t *testing.T) {
	g := NewGame(DefaultOptions())
	_ = g.ApplyChance(1)
	first := g.LegalActions()
	if !g.cache.valid {
		t.Fatalf("expected cache to be populated after LegalActions")
	}
	second := g.LegalActions()
	if len(first) != len(second) {
		t.Fatalf("expected the same cached slice length across calls")
	}
	_ = g.ApplyAction(first[0])
	if g.cache.valid {
		t.Fatalf("expected cache invalidated after ApplyAction")
	}
}

func TestCubeDecisionAndResponseActionSets(t *testing.T) {
	g := NewGame(DefaultOptions())
	g.InitMatchGame(0, 0, 7, false)
	g.phase = PhaseCubeDecision
	g.cache.invalidate()
	actions := g.LegalActions()
	if len(actions) != 2 || actions[0] != ActionNoDouble || actions[1] != ActionDouble {
		t.Fatalf("unexpected CUBE_DECISION action set: %v", actions)
	}

	g.phase = PhaseCubeResponse
	g.cache.invalidate()
	actions = g.LegalActions()
	if len(actions) != 2 || actions[0] != ActionTake || actions[1] != ActionPass {
		t.Fatalf("unexpected CUBE_RESPONSE action set: %v", actions)
	}
}
