package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/mew/internal/application/replay"
	"github.com/younwookim/mew/internal/domain/entity"
)

// framesPerMinute sizes the initial frame buffer
const framesPerMinute = 60 * 60

// Recorder collects the input of every stepped tick together with the
// world seed, which is all a replay needs to reproduce a session.
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, framesPerMinute),
		},
	}
}

// RecordFrame appends input as the next frame; frame numbers are dense from 0
func (r *Recorder) RecordFrame(input entity.Input) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), input))
}

// Save writes everything recorded so far. It can be called repeatedly.
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

func (r *Recorder) Stop() { r.stopped = true }
func (r *Recorder) IsRecording() bool { return !r.stopped }
func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

// GetData returns the recording; the frame slice is shared, not copied
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename names a recording after the local wall clock
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
