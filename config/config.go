package config

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "gridsnake.yaml"

// Frontend names
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	Frontend      string  `yaml:"frontend"`
	Level         int     `yaml:"level"`
	Seed          uint64  `yaml:"seed"` // 0 picks a seed from the clock
	Pace          float64 `yaml:"pace"` // Slows the frame rate down by this factor
	EatenPerLevel int     `yaml:"eaten-per-level"`
	MaxFood       int     `yaml:"max-food"`
	DataDir       string  `yaml:"data-dir"`
	LogFile       string  `yaml:"log-file"` // Empty logs to stderr
	Mute          bool    `yaml:"mute"`
	Autopilot     bool    `yaml:"autopilot"`
}

func Default() Config {
	return Config{
		Frontend:      FrontendWindow,
		Level:         1,
		Seed:          0,
		Pace:          1,
		EatenPerLevel: 5,
		MaxFood:       3,
		DataDir:       "data",
	}
}

// Load reads a YAML config file over the defaults. A missing file is only an
// error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Level < 1 {
		return errors.Errorf("level must be at least 1, got %d", c.Level)
	}
	if c.Pace <= 0 {
		return errors.Errorf("pace must be positive, got %v", c.Pace)
	}
	if c.EatenPerLevel < 1 {
		return errors.Errorf("eaten-per-level must be at least 1, got %d", c.EatenPerLevel)
	}
	if c.MaxFood < 1 {
		return errors.Errorf("max-food must be at least 1, got %d", c.MaxFood)
	}
	return nil
}

// SeedOrNow returns the configured seed, or one derived from the clock
func (c Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Parse loads the config file named by -config and applies the flags that
// were set on the command line on top of it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	def := Default()
	path := fs.String("config", DefaultPath, "YAML config file path")
	frontend := fs.String("frontend", def.Frontend, "Frontend to play in: window or terminal")
	level := fs.Int("level", def.Level, "Starting difficulty level")
	seed := fs.Uint64("seed", def.Seed, "Food placement seed (0 = random)")
	pace := fs.Float64("pace", def.Pace, "Slow the game down by this factor")
	dataDir := fs.String("data", def.DataDir, "Directory for saved stats")
	logFile := fs.String("log", def.LogFile, "Write logs to this file instead of stderr")
	mute := fs.Bool("mute", def.Mute, "Disable sound")
	autopilot := fs.Bool("autopilot", def.Autopilot, "Let the computer steer")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := Load(*path, explicit)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "level":
			cfg.Level = *level
		case "seed":
			cfg.Seed = *seed
		case "pace":
			cfg.Pace = *pace
		case "data":
			cfg.DataDir = *dataDir
		case "log":
			cfg.LogFile = *logFile
		case "mute":
			cfg.Mute = *mute
		case "autopilot":
			cfg.Autopilot = *autopilot
		}
	})
	return cfg, cfg.Validate()
}
