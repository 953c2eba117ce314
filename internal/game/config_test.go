package game

import (
	"strings"
	"testing"
	"time"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, name := range []string{EnvSeed, EnvTickRate, EnvHoldTicks} {
		t.Setenv(name, "")
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	want := DefaultConfig()
	want.LogFile = cfg.LogFile // may be inherited from the environment
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "12345")
	t.Setenv(EnvTickRate, "60")
	t.Setenv(EnvHoldTicks, "4")
	t.Setenv(EnvLogFile, "-")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	want := Config{Seed: 12345, TickRate: 60, HoldTicks: 4, LogFile: "-"}
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval() = %v, want %v", cfg.TickInterval(), time.Second/60)
	}
}

func TestConfigFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{EnvSeed, "abc"},
		{EnvTickRate, "0"},
		{EnvTickRate, "fast"},
		{EnvHoldTicks, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			_, err := ConfigFromEnv()
			if err == nil || !strings.Contains(err.Error(), tt.name) {
				t.Errorf("ConfigFromEnv() error = %v, want error naming %s", err, tt.name)
			}
		})
	}
}

func TestConfigSeeding(t *testing.T) {
	cfg := Config{Seed: 99}
	if cfg.EffectiveSeed() != 99 {
		t.Errorf("EffectiveSeed() = %d, want 99", cfg.EffectiveSeed())
	}
	if (Config{}).EffectiveSeed() == 0 {
		t.Error("EffectiveSeed() with no seed should be time based")
	}

	r1 := cfg.RNG(99)
	r2 := cfg.RNG(99)
	for i := 0; i < 20; i++ {
		if a, b := r1.Intn(3), r2.Intn(3); a != b {
			t.Fatalf("RNG(99) diverged at draw %d: %d != %d", i, a, b)
		}
	}

	if (Config{}).TickInterval() != time.Second/30 {
		t.Errorf("TickInterval() with no rate = %v, want 1/30s", (Config{}).TickInterval())
	}
}
