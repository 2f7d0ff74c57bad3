package game

type Outcome int

const (
	Ongoing Outcome = iota
	EvaderCaptured
	EvaderEscaped
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case EvaderCaptured:
		return "captured"
	case EvaderEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

// Status reports whether the game is over and why. Capture wins over escape
// when all three pieces share a cell.
func (b Board) Status() Outcome {
	if b.Pursuer == b.Evader {
		return EvaderCaptured
	}
	if b.Evader == b.Exit {
		return EvaderEscaped
	}
	return Ongoing
}
