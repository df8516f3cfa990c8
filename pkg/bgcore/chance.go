package bgcore

// DiceOutcome is one entry of the fixed chance-node distribution.
type DiceOutcome struct {
	High, Low int
	Prob      float64
}

// DiceOutcomes is the canonical, fixed ordering of the 21 chance outcomes:
// the 15 unordered non-double pairs (each 2/36) followed by the 6 doubles
// (each 1/36). outcome_index i (1-based) selects DiceOutcomes[i-1]. The
// mapping is part of the external contract (spec.md §6) and must not
// change once published.
var DiceOutcomes = buildDiceOutcomes()

func buildDiceOutcomes() [21]DiceOutcome {
	var out [21]DiceOutcome
	i := 0
	for high := 2; high <= 6; high++ {
		for low := 1; low < high; low++ {
			out[i] = DiceOutcome{High: high, Low: low, Prob: 2.0 / 36.0}
			i++
		}
	}
	for v := 1; v <= 6; v++ {
		out[i] = DiceOutcome{High: v, Low: v, Prob: 1.0 / 36.0}
		i++
	}
	return out
}

// RNG is the single external dependency the engine needs from its caller: a
// uniform-random uint32 source (spec.md §1).
type RNG interface {
	Uint32() uint32
}

// sampleOutcomeIndex draws an outcome index in 1..21 from the chance
// distribution using a single uniform draw, via a cumulative-weight scan
// over the 36-way dice space (15*2 + 6*1 = 36 equally likely physical
// rolls, folded into the 21 unordered outcomes).
func sampleOutcomeIndex(rng RNG) int {
	const space = 36
	r := int(rng.Uint32() % space)
	cum := 0
	for i, o := range DiceOutcomes {
		weight := int(o.Prob * space)
		cum += weight
		if r < cum {
			return i + 1
		}
	}
	return len(DiceOutcomes) // unreachable given weights sum to 36
}
