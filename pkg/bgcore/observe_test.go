package bgcore

import "testing"

func TestObservationHierarchyIsPrefixed(t *testing.T) {
	g := NewGame(DefaultOptions())
	_ = g.ApplyChance(1)

	minimal := g.Observe3D(TierMinimal)
	full := g.Observe3D(TierFull)
	biased := g.Observe3D(TierBiased)

	if len(minimal) >= len(full) {
		t.Fatalf("expected minimal shorter than full: %d vs %d", len(minimal), len(full))
	}
	for i, v := range minimal {
		if full[i] != v {
			t.Fatalf("full diverges from minimal at index %d: %v vs %v", i, full[i], v)
		}
	}
	if len(full) >= len(biased) {
		t.Fatalf("expected full shorter than biased: %d vs %d", len(full), len(biased))
	}
	for i, v := range full {
		if biased[i] != v {
			t.Fatalf("biased diverges from full at index %d: %v vs %v", i, biased[i], v)
		}
	}
}

func TestLayoutsAgreeOnGlobalFeatures(t *testing.T) {
	g := NewGame(DefaultOptions())
	_ = g.ApplyChance(5)

	for _, tier := range [3]Tier{TierMinimal, TierFull, TierBiased} {
		_, hybridGlobal := g.ObserveHybrid(tier)
		flat := g.ObserveFlat(tier)
		cBoard := boardChannelCount()
		flatGlobal := flat[cBoard*24:]

		if len(flatGlobal) != len(hybridGlobal) {
			t.Fatalf("tier %d: global length mismatch flat=%d hybrid=%d", tier, len(flatGlobal), len(hybridGlobal))
		}
		for i := range flatGlobal {
			if flatGlobal[i] != hybridGlobal[i] {
				t.Fatalf("tier %d: global feature %d mismatch flat=%v hybrid=%v", tier, i, flatGlobal[i], hybridGlobal[i])
			}
		}

		// The 3D layout broadcasts each global scalar across the full
		// boardWidth; any column beyond the board-channel rows must
		// reproduce the same global values.
		obs3D := g.Observe3D(tier)
		boardRows := cBoard * boardWidth
		for gi := 0; gi < len(hybridGlobal); gi++ {
			row := obs3D[boardRows+gi*boardWidth : boardRows+(gi+1)*boardWidth]
			for _, v := range row {
				if v != hybridGlobal[gi] {
					t.Fatalf("tier %d: 3D global channel %d not uniformly broadcast: %v vs %v", tier, gi, v, hybridGlobal[gi])
				}
			}
		}
	}
}

func TestObsDimsMatchesActualOutputLength(t *testing.T) {
	g := NewGame(DefaultOptions())
	_ = g.ApplyChance(1)

	for _, tier := range [3]Tier{TierMinimal, TierFull, TierBiased} {
		if got, want := len(g.Observe3D(tier)), g.ObsDims(ObsVariant{Tier: tier, Layout: Layout3D}); got != want {
			t.Fatalf("tier %d layout 3D: ObsDims=%d, actual=%d", tier, want, got)
		}
		if got, want := len(g.ObserveFlat(tier)), g.ObsDims(ObsVariant{Tier: tier, Layout: LayoutFlat}); got != want {
			t.Fatalf("tier %d layout flat: ObsDims=%d, actual=%d", tier, want, got)
		}
		board, global := g.ObserveHybrid(tier)
		if got, want := len(board)+len(global), g.ObsDims(ObsVariant{Tier: tier, Layout: LayoutHybrid}); got != want {
			t.Fatalf("tier %d layout hybrid: ObsDims=%d, actual=%d", tier, want, got)
		}
	}
}

func TestDiceOneHotChannelsReflectRolledDice(t *testing.T) {
	g := NewGame(DefaultOptions())
	if err := g.ApplyChance(1); err != nil {
		t.Fatalf("apply_chance: %v", err)
	}
	minimal := g.Observe3D(TierMinimal)

	// Board block occupies the first 12 channels (12*boardWidth values);
	// the dice block is the next 12 channels, one-hot per slot.
	diceStart := 12 * boardWidth
	highOneHot := minimal[diceStart : diceStart+6*boardWidth]
	lowOneHot := minimal[diceStart+6*boardWidth : diceStart+12*boardWidth]

	for v := 1; v <= 6; v++ {
		want := 0.0
		if v == g.dice.High {
			want = 1.0
		}
		if got := highOneHot[(v-1)*boardWidth]; got != want {
			t.Fatalf("high-die one-hot for value %d = %v, want %v", v, got, want)
		}
	}
	for v := 1; v <= 6; v++ {
		want := 0.0
		if v == g.dice.Low {
			want = 1.0
		}
		if got := lowOneHot[(v-1)*boardWidth]; got != want {
			t.Fatalf("low-die one-hot for value %d = %v, want %v", v, got, want)
		}
	}
}

func TestOffCountScalarsTrackBearOff(t *testing.T) {
	g := NewGame(DefaultOptions())
	g.b = boardWithHomeCheckers(P0, map[int]int{24: 1})
	g.current = P0
	g.applyMove(P0, 24, 1)

	flat := g.ObserveFlat(TierMinimal)
	cBoard := boardChannelCount()
	// Global layout within minimal: dice(12) + moveCount(4) + off(2) + cubeMatch(12).
	offStart := cBoard*24 + 12 + 4
	moverOff := flat[offStart]
	oppOff := flat[offStart+1]

	if moverOff <= 0 {
		t.Fatalf("expected a nonzero mover off-count scalar after bearing off, got %v", moverOff)
	}
	if oppOff != 0 {
		t.Fatalf("expected zero opponent off-count scalar, got %v", oppOff)
	}
}

func TestObsDimsDistinctAcrossAllNineVariants(t *testing.T) {
	g := NewGame(DefaultOptions())
	seen := map[int]bool{}
	for _, tier := range [3]Tier{TierMinimal, TierFull, TierBiased} {
		for _, layout := range [3]Layout{Layout3D, LayoutFlat, LayoutHybrid} {
			d := g.ObsDims(ObsVariant{Tier: tier, Layout: layout})
			if d <= 0 {
				t.Fatalf("tier=%d layout=%d: non-positive dims %d", tier, layout, d)
			}
			seen[d] = true
		}
	}
	if len(seen) < 5 {
		t.Fatalf("expected meaningfully distinct dimensions across variants, got only %d distinct values", len(seen))
	}
}
