// Package music controls the background-music playlist: which track plays,
// skipping, pausing, muting and volume. Producing sound is left to an Output.
package music

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultVolume is the volume used at startup and when unmuting from zero
const DefaultVolume = 0.5

// SupportedFormats are the file extensions Scan picks up
var SupportedFormats = []string{".ogg", ".mp3", ".wav"}

// ErrNoTracks is returned when playing from an empty playlist
var ErrNoTracks = errors.New("no music tracks")

// Output produces sound for the playlist
type Output interface {
	Play(path string, volume float64) error
	Pause()
	Resume()
	SetVolume(volume float64)
}

// Scan lists the supported music files directly inside dir, sorted by name.
// A missing directory is an empty playlist, not an error.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading music dir %s: %w", dir, err)
	}

	var tracks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.Contains(SupportedFormats, ext) {
			tracks = append(tracks, filepath.Join(dir, entry.Name()))
		}
	}
	return tracks, nil
}

// Options configures a Playlist
type Options struct {
	Shuffle bool
	Volume  float64
}

// Playlist cycles through tracks. It is driven from the UI goroutine.
type Playlist struct {
	out     Output
	rng     *rand.Rand
	logger  *log.Logger
	shuffle bool

	tracks []string
	index  int

	volume         float64
	previousVolume float64
	muted          bool
	paused         bool
	playing        bool
}

// NewPlaylist creates a playlist over tracks, shuffled when opts.Shuffle is set
func NewPlaylist(tracks []string, out Output, rng *rand.Rand, logger *log.Logger, opts Options) *Playlist {
	p := &Playlist{
		out:            out,
		rng:            rng,
		logger:         logger.WithPrefix("music"),
		shuffle:        opts.Shuffle,
		tracks:         slices.Clone(tracks),
		volume:         clamp(opts.Volume),
		previousVolume: DefaultVolume,
	}
	if p.volume == 0 {
		p.muted = true
	}
	if p.shuffle {
		p.shuffleTracks()
	}
	return p
}

// Play starts the current track
func (p *Playlist) Play() error {
	if len(p.tracks) == 0 {
		return ErrNoTracks
	}
	track := p.tracks[p.index]
	if err := p.out.Play(track, p.effectiveVolume()); err != nil {
		return fmt.Errorf("playing %s: %w", track, err)
	}
	p.playing = true
	p.paused = false
	p.logger.Info("Now playing", "title", p.Title())
	return nil
}

// Next skips forward. Running off the end reshuffles and starts over.
func (p *Playlist) Next() error {
	if len(p.tracks) == 0 {
		return ErrNoTracks
	}
	p.index++
	if p.index >= len(p.tracks) {
		if p.shuffle {
			p.shuffleTracks()
		}
		p.index = 0
	}
	return p.Play()
}

// Previous skips back, wrapping to the last track
func (p *Playlist) Previous() error {
	if len(p.tracks) == 0 {
		return ErrNoTracks
	}
	p.index--
	if p.index < 0 {
		p.index = len(p.tracks) - 1
	}
	return p.Play()
}

// TogglePause pauses or resumes playback and reports whether it is now paused
func (p *Playlist) TogglePause() bool {
	if !p.playing {
		return p.paused
	}
	if p.paused {
		p.out.Resume()
		p.logger.Info("Music resumed")
	} else {
		p.out.Pause()
		p.logger.Info("Music paused")
	}
	p.paused = !p.paused
	return p.paused
}

// ToggleMute mutes, remembering the volume, or restores it
func (p *Playlist) ToggleMute() {
	if p.muted {
		restored := p.previousVolume
		if restored <= 0 {
			restored = DefaultVolume
		}
		p.volume = restored
		p.muted = false
		p.logger.Info("Music unmuted", "volume", p.volume)
	} else {
		p.previousVolume = p.volume
		p.volume = 0
		p.muted = true
		p.logger.Info("Music muted")
	}
	p.out.SetVolume(p.volume)
}

// SetVolume sets the volume, clamped to [0,1]. Zero mutes.
func (p *Playlist) SetVolume(v float64) {
	p.volume = clamp(v)
	if p.volume == 0 {
		p.muted = true
	} else {
		p.muted = false
		p.previousVolume = p.volume
	}
	p.out.SetVolume(p.volume)
}

// Volume returns the current volume in [0,1]
func (p *Playlist) Volume() float64 {
	return p.volume
}

// Muted reports whether the playlist is muted
func (p *Playlist) Muted() bool {
	return p.muted
}

// Paused reports whether playback is paused
func (p *Playlist) Paused() bool {
	return p.paused
}

// Title returns the current track's file name without its extension
func (p *Playlist) Title() string {
	if len(p.tracks) == 0 {
		return ""
	}
	base := filepath.Base(p.tracks[p.index])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Tracks returns the tracks in play order
func (p *Playlist) Tracks() []string {
	return slices.Clone(p.tracks)
}

// Len returns the number of tracks
func (p *Playlist) Len() int {
	return len(p.tracks)
}

func (p *Playlist) effectiveVolume() float64 {
	if p.muted {
		return 0
	}
	return p.volume
}

func (p *Playlist) shuffleTracks() {
	if p.rng == nil {
		rand.Shuffle(len(p.tracks), p.swap)
		return
	}
	p.rng.Shuffle(len(p.tracks), p.swap)
}

func (p *Playlist) swap(i, j int) {
	p.tracks[i], p.tracks[j] = p.tracks[j], p.tracks[i]
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}
