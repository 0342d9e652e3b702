package replay

import (
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/younwookim/mew/internal/domain/entity"
)

// ErrNoFrames is returned when saving a replay with nothing recorded
var ErrNoFrames = eris.New("no frames to save")

// Replayer hands recorded frames back out as world input, in order.
type Replayer struct {
	data ReplayData
	next int
}

func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads a recording written by SaveReplay
func LoadReplay(filename string) (*ReplayData, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open replay %s", filename)
	}

	var data ReplayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, eris.Wrapf(err, "failed to decode replay %s", filename)
	}

	return &data, nil
}

// SaveReplay writes replay data to a file as indented JSON
func SaveReplay(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to encode replay")
	}
	if err := os.WriteFile(filename, raw, 0o644); err != nil {
		return eris.Wrapf(err, "failed to write replay %s", filename)
	}

	return nil
}

// GetInput returns the next recorded input; ok is false once the recording is exhausted
func (r *Replayer) GetInput() (in entity.Input, ok bool) {
	if r.next >= len(r.data.Frames) {
		return entity.Input{}, false
	}
	in = r.data.Frames[r.next].Input()
	r.next++
	return in, true
}

// CurrentFrame is the number of frames handed out so far
func (r *Replayer) CurrentFrame() int { return r.next }

func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }
func (r *Replayer) Seed() int64 { return r.data.Seed }
func (r *Replayer) Stage() string { return r.data.Stage }

// Reset rewinds to the first frame
func (r *Replayer) Reset() { r.next = 0 }

// NewIdleReplay builds a recording of frames ticks with no keys held
func NewIdleReplay(frames int, seed int64, stage string) ReplayData {
	idle := make([]FrameInput, frames)
	for i := range idle {
		idle[i].F = i
	}
	return ReplayData{
		Version:   FormatVersion,
		Seed:      seed,
		Stage:     stage,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    idle,
	}
}
