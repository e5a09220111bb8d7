// Package sim wires the building, the car, the dispatcher and the passenger
// generator together and supervises their workers.
package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"elevsim/src/building"
	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/elev"
	"elevsim/src/generator"
	"elevsim/src/logger"
	"elevsim/src/timer"
	"elevsim/src/utils"
)

type Simulation struct {
	cfg    config.Config
	logger *slog.Logger

	Building   *building.Building
	Elevator   *elev.Elevator
	Dispatcher *dispatcher.Dispatcher
	Generator  *generator.Generator

	status  io.Writer
	stopped atomic.Bool
}

// Status is a snapshot of the whole simulation.
type Status struct {
	Elevator  elev.State
	Waiting   int
	Generated int
}

func New(cfg config.Config, log *slog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	b, err := building.New(cfg.NumFloors)
	if err != nil {
		return nil, fmt.Errorf("create building: %w", err)
	}
	e, err := elev.New(b, cfg.Capacity, cfg.StartFloor, cfg.TravelDuration, logger.Component(log, "elevator"))
	if err != nil {
		return nil, fmt.Errorf("create elevator: %w", err)
	}
	return &Simulation{
		cfg:        cfg,
		logger:     logger.Component(log, "main"),
		Building:   b,
		Elevator:   e,
		Dispatcher: dispatcher.New(b, e, cfg.PollInterval, logger.Component(log, "dispatcher")),
		Generator:  generator.New(b, cfg.GenerationInterval, cfg.Seed, logger.Component(log, "passenger")),
	}, nil
}

// SetStatusOutput enables the status line, printed every status interval.
func (s *Simulation) SetStatusOutput(w io.Writer) {
	s.status = w
}

// Run starts every worker and blocks until all have returned. As soon as one
// worker exits, the others are asked to stop as well.
func (s *Simulation) Run(ctx context.Context) error {
	s.logger.Info("Simulation started",
		"floors", s.Building.FloorCount(), "capacity", s.Elevator.Capacity(), "start", s.Elevator.Floor())

	g, ctx := errgroup.WithContext(ctx)
	workers := map[string]func(context.Context) error{
		"elevator":   s.Elevator.Run,
		"dispatcher": s.Dispatcher.Run,
		"generator":  s.Generator.Run,
	}
	for name, run := range workers {
		g.Go(func() error {
			defer s.Stop()
			if err := run(ctx); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	if s.status != nil && s.cfg.StatusInterval > 0 {
		g.Go(func() error {
			timer.Ticker(ctx, s.cfg.StatusInterval, func() bool {
				if s.stopped.Load() {
					return false
				}
				st := s.Status()
				utils.PrintStatus(s.status, st.Elevator, st.Waiting)
				return true
			})
			return nil
		})
	}

	err := g.Wait()
	st := s.Status()
	s.logger.Info("Simulation stopped",
		"generated", st.Generated, "delivered", st.Elevator.Delivered,
		"onboard", len(st.Elevator.Passengers), "waiting", st.Waiting)
	return err
}

// Stop asks every worker to finish. Safe to call more than once.
func (s *Simulation) Stop() {
	if s.stopped.Swap(true) {
		return
	}
	s.logger.Info("Stopping workers")
	s.Generator.Stop()
	s.Dispatcher.Stop()
	s.Elevator.Stop()
}

// SpawnPassenger adds one residential passenger outside the generator's schedule.
func (s *Simulation) SpawnPassenger() building.Passenger {
	return s.Generator.ResidentialPassenger()
}

func (s *Simulation) Status() Status {
	return Status{
		Elevator:  s.Elevator.GetState(),
		Waiting:   s.Building.WaitingCount(),
		Generated: s.Generator.Generated(),
	}
}
