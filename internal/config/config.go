package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Particle network
	ParticleCount      = 60 // few particles for a discreet look
	ConnectionDistance = 150
	MoveSpeed          = 0.5
	RadiusMin          = 1
	RadiusSpan         = 2
	LineWidth          = 0.5

	// Contact form
	WebhookURL      = "https://n8n.matheusgodoy.pro/webhook/mg-contato"
	SuccessDuration = 8 * time.Second
	ErrorDuration   = 5 * time.Second

	RevealThreshold = 0.1
)

// Palette is the default particle palette.
var Palette = []string{"#008FBB", "#EA4B71", "#475569"}

// Config holds everything that can be tuned from config.json.
type Config struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Title        string `json:"title"`

	ParticleCount      int      `json:"particle_count"`
	ConnectionDistance float64  `json:"connection_distance"`
	MoveSpeed          float64  `json:"move_speed"`
	RadiusMin          float64  `json:"radius_min"`
	RadiusSpan         float64  `json:"radius_span"`
	LineWidth          float64  `json:"line_width"`
	Palette            []string `json:"palette"`

	WebhookURL      string   `json:"webhook_url"`
	RequestTimeout  Duration `json:"request_timeout"`
	SuccessDuration Duration `json:"success_duration"`
	ErrorDuration   Duration `json:"error_duration"`

	RevealThreshold float64 `json:"reveal_threshold"`

	Sound      bool   `json:"sound"`
	Soundtrack string `json:"soundtrack"`
}

// Default returns the built-in configuration. It is also used whenever
// no config file exists.
func Default() *Config {
	return &Config{
		WindowWidth:        WindowWidth,
		WindowHeight:       WindowHeight,
		Title:              "Particle Network - Tab: next field, Enter: send, Esc: quit",
		ParticleCount:      ParticleCount,
		ConnectionDistance: ConnectionDistance,
		MoveSpeed:          MoveSpeed,
		RadiusMin:          RadiusMin,
		RadiusSpan:         RadiusSpan,
		LineWidth:          LineWidth,
		Palette:            append([]string(nil), Palette...),
		WebhookURL:         WebhookURL,
		SuccessDuration:    Duration(SuccessDuration),
		ErrorDuration:      Duration(ErrorDuration),
		RevealThreshold:    RevealThreshold,
	}
}

// Load reads a config file on top of the defaults. A missing file is not
// an error; a malformed one is.
func Load(filename string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

// Validate rejects values the renderer or the form cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.ParticleCount < 0:
		return fmt.Errorf("particle_count must not be negative, got %d", c.ParticleCount)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("connection_distance must be positive, got %v", c.ConnectionDistance)
	case c.RadiusMin <= 0 || c.RadiusSpan < 0:
		return fmt.Errorf("radius range [%v, %v) is invalid", c.RadiusMin, c.RadiusMin+c.RadiusSpan)
	case c.RevealThreshold < 0 || c.RevealThreshold > 1:
		return fmt.Errorf("reveal_threshold must be within [0, 1], got %v", c.RevealThreshold)
	case len(c.Palette) == 0:
		return fmt.Errorf("palette is empty")
	case c.WebhookURL == "":
		return fmt.Errorf("webhook_url is empty")
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors parses the palette.
func (c *Config) Colors() ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(c.Palette))
	for _, s := range c.Palette {
		clr, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, clr)
	}
	return out, nil
}

// ParseHex parses "#RRGGBB" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Duration is a time.Duration that reads and writes as "8s" in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"8s\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
