package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ParticleCount != ParticleCount {
		t.Fatalf("ParticleCount = %d, want %d", cfg.ParticleCount, ParticleCount)
	}
	if time.Duration(cfg.SuccessDuration) != 8*time.Second {
		t.Fatalf("SuccessDuration = %v, want 8s", time.Duration(cfg.SuccessDuration))
	}
	if time.Duration(cfg.ErrorDuration) != 5*time.Second {
		t.Fatalf("ErrorDuration = %v, want 5s", time.Duration(cfg.ErrorDuration))
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"particle_count": 12, "success_duration": "2s", "webhook_url": "http://localhost/hook"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ParticleCount != 12 {
		t.Fatalf("ParticleCount = %d, want 12", cfg.ParticleCount)
	}
	if time.Duration(cfg.SuccessDuration) != 2*time.Second {
		t.Fatalf("SuccessDuration = %v, want 2s", time.Duration(cfg.SuccessDuration))
	}
	if cfg.ConnectionDistance != ConnectionDistance {
		t.Fatalf("ConnectionDistance = %v, want default %v", cfg.ConnectionDistance, ConnectionDistance)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"particle_count": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"connection_distance": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for zero connection distance")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Sound = true
	cfg.Palette = []string{"#FFFFFF"}
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Sound || len(got.Palette) != 1 || got.Palette[0] != "#FFFFFF" {
		t.Fatalf("unexpected config after reload: %+v", got)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#EA4B71")
	if err != nil {
		t.Fatalf("ParseHex() error = %v", err)
	}
	want := color.RGBA{R: 0xEA, G: 0x4B, B: 0x71, A: 255}
	if got != want {
		t.Fatalf("ParseHex() = %v, want %v", got, want)
	}
	if _, err := ParseHex("#12"); err == nil {
		t.Fatal("expected error for short colour")
	}
	if _, err := ParseHex("#GGGGGG"); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
}
