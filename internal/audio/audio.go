package audio

import (
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const SampleRate = beep.SampleRate(44100)

// Cue is a short feedback sound.
type Cue int

const (
	CueSuccess Cue = iota
	CueError
	CueReveal
)

// Player plays feedback cues and an optional looping soundtrack. A Player
// whose device failed to open stays silent.
type Player struct {
	ctrl     *beep.Ctrl
	file     *os.File
	track    beep.StreamSeekCloser
	initDone bool
	muted    bool
}

// NewPlayer opens the output device. On failure it logs and returns a
// silent player.
func NewPlayer() *Player {
	p := &Player{}
	bufferSize := SampleRate.N(time.Second / 20)
	if err := speaker.Init(SampleRate, bufferSize); err != nil {
		log.Printf("audio: sound disabled: %v", err)
		return p
	}
	p.initDone = true
	return p
}

// Enabled reports whether sound can be heard right now.
func (p *Player) Enabled() bool { return p.initDone && !p.muted }

// ToggleMute flips mute and returns the new muted state.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	if p.initDone && p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = p.muted
		speaker.Unlock()
	}
	return p.muted
}

// Play queues a cue.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	speaker.Play(CueStreamer(c))
}

// CueStreamer renders a cue as a finite stream.
func CueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueSuccess:
		return beep.Seq(
			Tone(SampleRate, 660, 90*time.Millisecond, 0.2),
			Tone(SampleRate, 880, 140*time.Millisecond, 0.2),
		)
	case CueError:
		return beep.Seq(
			Tone(SampleRate, 330, 120*time.Millisecond, 0.2),
			Tone(SampleRate, 220, 180*time.Millisecond, 0.2),
		)
	default:
		return Tone(SampleRate, 1320, 40*time.Millisecond, 0.05)
	}
}

// Tone is a sine wave at freq Hz lasting d, with a linear fade-out so it
// doesn't click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := gain * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// PlaySoundtrack loops a wav, mp3 or flac file quietly under the page.
func (p *Player) PlaySoundtrack(path string) error {
	if !p.initDone {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported soundtrack type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}
	quiet := &effects.Volume{Streamer: s, Base: 2, Volume: -2}
	ctrl := &beep.Ctrl{Streamer: quiet, Paused: p.muted}

	p.Close()
	p.file = f
	p.track = streamer
	p.ctrl = ctrl
	speaker.Play(ctrl)
	return nil
}

// Close stops the soundtrack and releases its file.
func (p *Player) Close() {
	if p.initDone && p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Streamer = nil
		speaker.Unlock()
	}
	p.ctrl = nil
	if p.track != nil {
		_ = p.track.Close()
		p.track = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
}
