package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	n, peak := drain(Tone(SampleRate, 440, 100*time.Millisecond, 0.5))
	if want := SampleRate.N(100 * time.Millisecond); n != want {
		t.Fatalf("tone samples = %d, want %d", n, want)
	}
	if peak > 0.5 {
		t.Fatalf("tone peak = %v, want <= gain 0.5", peak)
	}
	if peak == 0 {
		t.Fatal("tone is silent")
	}
}

func TestCuesAreFinite(t *testing.T) {
	for _, c := range []Cue{CueSuccess, CueError, CueReveal} {
		n, _ := drain(CueStreamer(c))
		if n == 0 || n > SampleRate.N(time.Second) {
			t.Fatalf("cue %d has %d samples", c, n)
		}
	}
}

func TestSilentPlayerIgnoresCalls(t *testing.T) {
	p := &Player{}
	if p.Enabled() {
		t.Fatal("player without a device should not be enabled")
	}
	p.Play(CueSuccess)
	if !p.ToggleMute() {
		t.Fatal("ToggleMute() should report muted")
	}
	if err := p.PlaySoundtrack("missing.ogg"); err != nil {
		t.Fatalf("PlaySoundtrack() on silent player error = %v", err)
	}
	p.Close()
}
