package board

type Side uint8

const (
	SideUnknown Side = iota
	SideLight
	SideDark
)

func (s Side) String() string {
	switch s {
	case SideLight:
		return "Light"
	case SideDark:
		return "Dark"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideLight:
		return SideDark
	case SideDark:
		return SideLight
	default:
		return SideUnknown
	}
}
