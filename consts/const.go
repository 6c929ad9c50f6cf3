package consts

// Phase is the stage a Durak round is in. Values double as the
// one-hot index in the observation encoding.
type Phase int

const (
	PhaseChance Phase = iota
	PhaseAttack
	PhaseDefense
	PhaseAdditional
)

var Phases = map[Phase]string{
	PhaseChance:     "CHANCE",
	PhaseAttack:     "ATTACK",
	PhaseDefense:    "DEFENSE",
	PhaseAdditional: "ADDITIONAL",
}

func (p Phase) String() string {
	return Phases[p]
}

const (
	NumPlayers     = 2
	NumCards       = 36
	CardsPerPlayer = 6
)

// Pseudo player ids returned by State.CurrentPlayer, matching the
// OpenSpiel id convention so harnesses can switch on them directly.
const (
	PlayerChance   = -1
	PlayerTerminal = -4
)

// Actions 0..35 play the card with that id; the rest are the protocol
// actions. The numbering is a wire contract and must not change.
const (
	ActionTakeCards     = NumCards
	ActionFinishAttack  = NumCards + 1
	ActionFinishDefense = NumCards + 2
	NumActions          = NumCards + 3
)

var ActionNames = map[int]string{
	ActionTakeCards:     "TAKE_CARDS",
	ActionFinishAttack:  "FINISH_ATTACK",
	ActionFinishDefense: "FINISH_DEFENSE",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsGameOver              = NewErr(1, false, "Game is over. ")
	ErrorsIllegalAction         = NewErr(1, false, "Action is not legal in this state. ")
	ErrorsChanceOutcomeInvalid  = NewErr(1, false, "Chance outcome invalid. ")
	ErrorsDeckOrderInvalid      = NewErr(1, true, "Deck order invalid. ")
	ErrorsObserverParamsInvalid = NewErr(1, true, "Observation parameters not supported. ")
	ErrorsReplayActionInvalid   = NewErr(1, true, "Replay history contains an invalid action. ")
)
