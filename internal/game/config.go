package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed      = "CATLOUNGE_SEED"
	EnvTickRate  = "CATLOUNGE_TICK_RATE"
	EnvHoldTicks = "CATLOUNGE_HOLD_TICKS"
	EnvLogFile   = "CATLOUNGE_LOG_FILE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the opponent's move choice. 0 means a time-based seed.
	Seed int64
	// TickRate is the number of update/render passes per second.
	TickRate int
	// HoldTicks is how long a direction stays held after a key event.
	// Terminals report key repeats, not key releases.
	HoldTicks int
	// LogFile receives JSON log lines. "-" disables logging.
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Seed:      0,
		TickRate:  30,
		HoldTicks: 8,
		LogFile:   "catlounge.log",
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any CATLOUNGE_*
// environment variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := parsePositive(EnvTickRate, v)
		if err != nil {
			return cfg, err
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv(EnvHoldTicks); v != "" {
		hold, err := parsePositive(EnvHoldTicks, v)
		if err != nil {
			return cfg, err
		}
		cfg.HoldTicks = hold
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}

	return cfg, nil
}

func parsePositive(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", name, n)
	}
	return n, nil
}

// EffectiveSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// RNG returns a random source for seed.
func (c Config) RNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TickInterval returns the time between ticks.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / time.Duration(DefaultConfig().TickRate)
	}
	return time.Second / time.Duration(c.TickRate)
}
