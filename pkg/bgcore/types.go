package bgcore

// Side identifies one of the two players.
type Side uint8

const (
	P0 Side = 0
	P1 Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

// Phase is one of the four turn-machine states described in spec.md §3.
type Phase uint8

const (
	PhaseChance Phase = iota
	PhaseCubeDecision
	PhaseCubeResponse
	PhaseCheckerPlay
)

func (p Phase) String() string {
	switch p {
	case PhaseChance:
		return "CHANCE"
	case PhaseCubeDecision:
		return "CUBE_DECISION"
	case PhaseCubeResponse:
		return "CUBE_RESPONSE"
	case PhaseCheckerPlay:
		return "CHECKER_PLAY"
	default:
		return "UNKNOWN"
	}
}

// Dice holds the current roll. High >= Low; both zero means a pending
// chance node.
type Dice struct {
	High int
	Low  int
}

// IsDouble reports whether the roll is a double.
func (d Dice) IsDouble() bool {
	return d.High == d.Low && d.High != 0
}

// IsPending reports whether no dice have been rolled yet.
func (d Dice) IsPending() bool {
	return d.High == 0 && d.Low == 0
}

// Location codes used by checker-play action encoding (spec.md §4.3).
const (
	LocBar  = 0
	LocPass = 25
)

// Cube-phase sentinel action codes. These sit outside the 1..676 checker
// action range reserved by spec.md §4.3.
const (
	ActionNoDouble = 1000 + iota
	ActionDouble
	ActionTake
	ActionPass
)

// MinCheckerAction and MaxCheckerAction bound the checker-action code range.
const (
	MinCheckerAction = 1
	MaxCheckerAction = 25*26 + 25 + 1 // 676
)

// EncodeAction packs a joint two-die action into its code (spec.md §4.3).
func EncodeAction(locHigh, locLow int) int {
	return locHigh*26 + locLow + 1
}

// DecodeAction unpacks a joint action code into (locHigh, locLow).
func DecodeAction(code int) (locHigh, locLow int) {
	code--
	return code / 26, code % 26
}

// CubeValues enumerates the values the doubling cube may take.
var CubeValues = [7]int{1, 2, 4, 8, 16, 32, 64}

// CubeOwner identifies who, if anyone, owns the cube.
type CubeOwner int8

const (
	CubeCentered CubeOwner = -1
	CubeOwnerP0  CubeOwner = 0
	CubeOwnerP1  CubeOwner = 1
)

// CubeState is the doubling cube's value, owner, and availability.
type CubeState struct {
	Value   int
	Owner   CubeOwner
	Enabled bool
}

// MatchState holds match-play context. MatchLength == 0 means a money game.
type MatchState struct {
	MatchLength    int
	Score          [2]int
	IsCrawford     bool
	IsPostCrawford bool
	JacobyEnabled  bool
}

// Away returns the target-minus-score distance for side s. Only meaningful
// in match play (MatchLength != 0).
func (m MatchState) Away(s Side) int {
	return m.MatchLength - m.Score[s]
}

// GameOptions configures a Game at construction time (spec.md §6). The zero
// value is the safe default: P0 moves first, and every action is validated.
type GameOptions struct {
	// FirstPlayer is the side on roll when the game begins. Defaults to P0.
	FirstPlayer Side
	// UnsafeSkipValidate, when true, skips re-validating an action code
	// against the cached legal-action set before applying it — an explicit
	// opt-in for trusted callers that want the throughput and are willing
	// to risk leaving the state inconsistent on an illegal code (spec.md
	// §7/§9). The zero value (false) keeps the safe validate-before-mutate
	// path.
	UnsafeSkipValidate bool
}

// DefaultOptions returns the zero-value GameOptions (P0 first, strict
// validation enabled). Provided for callers who prefer an explicit
// constructor over a bare struct literal.
func DefaultOptions() GameOptions {
	return GameOptions{}
}
