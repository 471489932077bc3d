package music

import "github.com/charmbracelet/log"

// LogOutput is an Output that records playback transitions in the log.
// It stands in wherever no audio device is wired up.
type LogOutput struct {
	logger  *log.Logger
	current string
	volume  float64
	paused  bool
}

// NewLogOutput creates a LogOutput
func NewLogOutput(logger *log.Logger) *LogOutput {
	return &LogOutput{logger: logger.WithPrefix("audio")}
}

// Play records the start of a track
func (o *LogOutput) Play(path string, volume float64) error {
	o.current = path
	o.volume = volume
	o.paused = false
	o.logger.Debug("Play", "path", path, "volume", volume)
	return nil
}

// Pause records a pause
func (o *LogOutput) Pause() {
	o.paused = true
	o.logger.Debug("Pause", "path", o.current)
}

// Resume records a resume
func (o *LogOutput) Resume() {
	o.paused = false
	o.logger.Debug("Resume", "path", o.current)
}

// SetVolume records a volume change
func (o *LogOutput) SetVolume(volume float64) {
	o.volume = volume
	o.logger.Debug("Set volume", "volume", volume)
}

// Current returns the track last started
func (o *LogOutput) Current() string {
	return o.current
}
