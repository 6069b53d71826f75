package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when the side to move has a legal move and is not in check.
	StateRunning

	// StateCheck is when the King of the side to move is attacked.
	StateCheck

	// StateCheckmate is when the King of the side to move is attacked and no legal move remains.
	StateCheckmate

	// StateStalemate is when a side cannot move a piece and King is not in check.
	StateStalemate
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheck:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheck:
		return "StateCheck"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}
