package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/game"
	"github.com/lixenwraith/hydra/input"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/render"
	"github.com/lixenwraith/hydra/terminal"
	"github.com/lixenwraith/hydra/window"
)

var (
	debugFlag     = flag.Bool("debug", false, "Log to logs/hydra.log and show diagnostics")
	windowFlag    = flag.Bool("window", false, "Run in a desktop window instead of the terminal")
	muteFlag      = flag.Bool("mute", false, "Disable audio")
	seedFlag      = flag.Uint64("seed", 0, "Simulation seed, 0 picks one at random")
	widthFlag     = flag.Float64("width", parameter.DefaultFieldWidth, "Field width")
	heightFlag    = flag.Float64("height", parameter.DefaultFieldHeight, "Field height")
	profileFlag   = flag.String("profile", "", "Write a profile to the working directory: cpu, mem")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHYDRA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hydra: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *widthFlag <= 0 || *heightFlag <= 0 {
		return errors.Errorf("field must be positive, got %gx%g", *widthFlag, *heightFlag)
	}
	cfg := engine.ConfigResource{
		FieldWidth:  *widthFlag,
		FieldHeight: *heightFlag,
		Seed:        *seedFlag,
	}

	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return errors.Errorf("unknown profile %q", *profileFlag)
	}

	player, closeAudio := openAudio(*muteFlag)
	defer closeAudio()

	if *windowFlag {
		res := engine.NewResource(cfg, player, window.KeyboardInput{})
		return window.Run(res, *debugFlag)
	}

	mode, err := terminal.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}
	return runTerminal(cfg, player, mode)
}

// runTerminal drives the game on a tcell screen until a quit key
func runTerminal(cfg engine.ConfigResource, player engine.AudioPlayer, mode terminal.ColorMode) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableFocus()

	keys := input.NewTerminalInput(input.DefaultKeyTable())
	res := engine.NewResource(cfg, player, keys)
	manager := game.NewManager(res, *debugFlag)
	renderer := render.NewTerminalRenderer(screen, mode, cfg.FieldWidth, cfg.FieldHeight)
	mute := &muteSwitch{res: res, live: player}
	log.Printf("terminal: color mode %v", mode)

	events := make(chan tcell.Event, parameter.EventQueueSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.HandleKey(ev, time.Now()) {
				case input.IntentQuit:
					log.Printf("terminal: quit")
					return nil
				case input.IntentToggleMute:
					mute.Toggle(manager.Current().MusicTrack())
				case input.IntentToggleDebug:
					manager.Debug = !manager.Debug
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					keys.Release()
				}
			}

		case now := <-frameTicker.C:
			dt := min(now.Sub(last).Seconds(), parameter.MaxFrameDelta)
			last = now

			keys.Frame(now)
			manager.Update(dt)

			renderer.Begin()
			manager.Draw(renderer)
			renderer.Present()
		}
	}
}
