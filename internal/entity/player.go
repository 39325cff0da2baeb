package entity

// Player is the marker written into a claimed cell.
// Values must stay outside the sentinel range 1..9.
type Player int

const (
	NoPlayer Player = 0
	PlayerA  Player = 12
	PlayerB  Player = 14
)

// Name returns the single-letter label used on the board and in messages.
func (that Player) Name() string {
	switch that {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return ""
	}
}

// Opponent - returns the player who moves after this one, NoPlayer has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

func (that Player) IsValid() bool {
	return that == PlayerA || that == PlayerB
}
