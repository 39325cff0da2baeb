package entity

type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomePlayerAWins
	OutcomePlayerBWins
	OutcomeDraw
)

// OutcomeFor - maps a winning player to the matching outcome.
func OutcomeFor(winner Player) Outcome {
	switch winner {
	case PlayerA:
		return OutcomePlayerAWins
	case PlayerB:
		return OutcomePlayerBWins
	default:
		return OutcomeInProgress
	}
}

func (that Outcome) IsFinished() bool {
	return that != OutcomeInProgress
}

// Winner returns NoPlayer for a draw or an unfinished game.
func (that Outcome) Winner() Player {
	switch that {
	case OutcomePlayerAWins:
		return PlayerA
	case OutcomePlayerBWins:
		return PlayerB
	default:
		return NoPlayer
	}
}

// String returns the result line printed at the end of a game.
func (that Outcome) String() string {
	switch that {
	case OutcomePlayerAWins:
		return "Player A wins!"
	case OutcomePlayerBWins:
		return "Player B wins!"
	case OutcomeDraw:
		return "It's a draw!"
	default:
		return "Game in progress"
	}
}
