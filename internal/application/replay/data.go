package replay

import "github.com/younwookim/mew/internal/domain/entity"

// FormatVersion is written into every saved replay
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	A  bool `json:"a,omitempty"`  // Attack
	RS bool `json:"rs,omitempty"` // Restart
	JP bool `json:"jp,omitempty"` // JumpPressed
	AP bool `json:"ap,omitempty"` // AttackPressed
	RP bool `json:"rp,omitempty"` // RestartPressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput packs one tick of input
func NewFrameInput(frame int, in entity.Input) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		A:  in.Attack,
		RS: in.Restart,
		JP: in.JumpPressed,
		AP: in.AttackPressed,
		RP: in.RestartPressed,
	}
}

// Input unpacks the frame back into simulation input
func (f FrameInput) Input() entity.Input {
	return entity.Input{
		Left:           f.L,
		Right:          f.R,
		Jump:           f.J,
		Attack:         f.A,
		Restart:        f.RS,
		JumpPressed:    f.JP,
		AttackPressed:  f.AP,
		RestartPressed: f.RP,
	}
}
