package game

// Player identifies one of the two sides. First always moves on even move counts.
type Player int

const (
	First Player = iota
	Second
)

// Players lists both sides in turn order.
var Players = [...]Player{First, Second}

func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

func (p Player) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return "Unknown"
	}
}
