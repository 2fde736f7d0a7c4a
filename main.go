package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"gridsnake/ai"
	"gridsnake/audio"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui"

	"github.com/pkg/errors"
)

// frontend hosts sessions and asks the player what to do after one ends
type frontend interface {
	game.Renderer
	game.InputSource
	game.Clock
	EndScreen(res game.Result, highScore int) ui.MenuChoice
	Close()
}

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	out, closeLog, err := openLog(cfg)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()
	log.SetOutput(out)

	stats, err := manager.NewStateManager(cfg.DataDir)
	if err != nil {
		log.Printf("stats unavailable, starting fresh: %v", err)
	}

	fe, err := openFrontend(cfg)
	if err != nil {
		log.Fatalf("frontend: %v", err)
	}
	defer fe.Close()

	var sound *audio.SoundManager
	if !cfg.Mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	play(cfg, fe, stats, sound, out)
}

// play runs sessions until the player quits
func play(cfg config.Config, fe frontend, stats *manager.StateManager, sound *audio.SoundManager, out io.Writer) {
	var input game.InputSource = fe
	var pilot *ai.Autopilot
	if cfg.Autopilot {
		pilot = ai.NewAutopilot(nil, fe)
		input = pilot
	}

	for {
		g := game.NewGame(fe, input, fe, game.Options{
			Level:         cfg.Level,
			Seed:          cfg.SeedOrNow(),
			EatenPerLevel: cfg.EatenPerLevel,
			MaxFood:       cfg.MaxFood,
			Log:           out,
		})
		if pilot != nil {
			pilot.Attach(g.Environment)
		}
		if sound != nil {
			g.Environment.AddListener(sound)
		}

		res := g.Run()

		highScore := res.Score
		if stats != nil {
			if err := stats.Record(res.Record()); err != nil {
				log.Printf("save stats: %v", err)
			}
			highScore = stats.GetHighScore()
			sum := stats.Summarize()
			log.Printf("%d games played: best %d, average %.1f, median %.1f",
				sum.GamesPlayed, sum.MaxScore, sum.AverageScore, sum.MedianScore)
		}

		if res.Cause == types.QuitSignal.String() {
			return
		}
		if fe.EndScreen(res, highScore) != ui.Restart {
			return
		}
	}
}

func openFrontend(cfg config.Config) (frontend, error) {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return ui.NewTerminal(cfg.Pace)
	case config.FrontendWindow:
		return ui.NewWindow("Snake", cfg.Pace), nil
	}
	return nil, errors.Errorf("unknown frontend %q", cfg.Frontend)
}

// openLog picks the log destination. The terminal frontend owns the screen,
// so without an explicit file it logs next to the saved stats.
func openLog(cfg config.Config) (io.Writer, func(), error) {
	path := cfg.LogFile
	if path == "" && cfg.Frontend == config.FrontendTerminal {
		path = filepath.Join(cfg.DataDir, "gridsnake.log")
	}
	if path == "" {
		return os.Stderr, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	return f, func() { f.Close() }, nil
}
