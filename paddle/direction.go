package paddle

// Direction is the held-key movement state of a paddle
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Sign returns the screen-space velocity sign; y grows downward
func (d Direction) Sign() float64 {
	switch d {
	case DirUp:
		return -1
	case DirDown:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}
