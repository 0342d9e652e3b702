package entity

// AttackPhase is the current phase of the tail slash
type AttackPhase int

const (
	PhaseNone AttackPhase = iota
	PhaseWindup
	PhaseSlash
	PhaseRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseWindup:
		return "windup"
	case PhaseSlash:
		return "slash"
	case PhaseRecovery:
		return "recovery"
	default:
		return "unknown"
	}
}

// AttackTiming holds the frame length of each attack phase
type AttackTiming struct {
	Windup   int
	Slash    int
	Recovery int
}

// Total returns the full attack duration in frames
func (t AttackTiming) Total() int {
	return t.Windup + t.Slash + t.Recovery
}

// PhaseAt maps frames elapsed since the trigger to a phase.
// Elapsed values past the end stay in recovery; the caller ends the attack.
func (t AttackTiming) PhaseAt(elapsed int) AttackPhase {
	switch {
	case elapsed < t.Windup:
		return PhaseWindup
	case elapsed < t.Windup+t.Slash:
		return PhaseSlash
	default:
		return PhaseRecovery
	}
}

// Progress returns how far through its current phase the attack is, in [0, 1]
func (t AttackTiming) Progress(elapsed int) float64 {
	var start, length int
	switch t.PhaseAt(elapsed) {
	case PhaseWindup:
		start, length = 0, t.Windup
	case PhaseSlash:
		start, length = t.Windup, t.Slash
	default:
		start, length = t.Windup+t.Slash, t.Recovery
	}
	if length <= 0 {
		return 1
	}
	p := float64(elapsed-start) / float64(length)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
