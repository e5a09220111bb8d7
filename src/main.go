package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/xyproto/randomstring"

	"elevsim/src/config"
	"elevsim/src/logger"
	"elevsim/src/sim"
)

const runIDLength = 8

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "elevsim:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML configuration file")
	envFile := flag.String("env", ".env", "file with ELEVSIM_* variables")
	floors := flag.Int("floors", config.NumFloors, "number of floors")
	capacity := flag.Int("capacity", config.Capacity, "elevator capacity")
	start := flag.Int("start", config.StartFloor, "starting floor of the elevator")
	seed := flag.Uint64("seed", 0, "seed for the passenger generator")
	status := flag.Duration("status", 0, "print a status line at this interval, 0 disables it")
	duration := flag.Duration("duration", 0, "stop after this long, 0 runs until interrupted")
	interactive := flag.Bool("interactive", false, "read keys: p spawns a passenger, q quits")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	logFormat := flag.String("log-format", "", "text or console")
	logFile := flag.String("log-file", "", "also write the log to this file")
	runID := flag.String("id", "", "run identifier, random when empty")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		return err
	}
	// Flags given on the command line win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			cfg.NumFloors = *floors
		case "capacity":
			cfg.Capacity = *capacity
		case "start":
			cfg.StartFloor = *start
		case "seed":
			cfg.Seed = *seed
		case "status":
			cfg.StatusInterval = *status
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "log-file":
			cfg.Log.File = *logFile
		case "id":
			cfg.RunID = *runID
		}
	})
	if cfg.RunID == "" {
		cfg.RunID = randomstring.EnglishFrequencyString(runIDLength)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logger.Init(cfg.Log, cfg.RunID)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}
	if cfg.StatusInterval > 0 {
		s.SetStatusOutput(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keysDone := make(chan struct{})
	if *interactive {
		if err := readKeys(ctx, s, log, keysDone); err != nil {
			return err
		}
	} else {
		close(keysDone)
	}

	err = s.Run(ctx)
	cancel()
	<-keysDone
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// readKeys spawns passengers on 'p' and stops the simulation on 'q', Esc or
// Ctrl-C until ctx is done. done is closed once the terminal is restored.
func readKeys(ctx context.Context, s *sim.Simulation, log *slog.Logger, done chan<- struct{}) error {
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	log.Info("Interactive mode: press p to add a passenger, q to quit")
	go func() {
		defer close(done)
		defer keyboard.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-keys:
				if !ok {
					return
				}
				if ev.Err != nil {
					log.Error("Keyboard error", "err", ev.Err)
					return
				}
				switch {
				case ev.Rune == 'p' || ev.Rune == 'P':
					p := s.SpawnPassenger()
					log.Info("Passenger added from keyboard", "id", p.ID, "floor", p.Origin, "destination", p.Destination)
				case ev.Rune == 'q' || ev.Rune == 'Q' || ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC:
					s.Stop()
					return
				}
			}
		}
	}()
	return nil
}
