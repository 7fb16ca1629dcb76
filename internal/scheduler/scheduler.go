// Package scheduler wires up the cron job that periodically triggers a
// full scan.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// RunFunc is one scan cycle.
type RunFunc func(ctx context.Context)

// Scheduler wraps robfig/cron and manages the scan loop.
type Scheduler struct {
	cron *cron.Cron
	spec string //cron spec, e.g. "@every 6h"
	run  RunFunc
}

// New creates a Scheduler that fires every intervalHours hours. A scan
// still in progress causes the next tick to be skipped, so runs never
// overlap.
func New(intervalHours int, run RunFunc) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		spec: fmt.Sprintf("@every %dh", intervalHours),
		run:  run,
	}
}

// Start registers the job and starts the scheduler. Also runs one scan
// immediately so results exist without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	id, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	//Run immediately on startup (non-blocking). Going through the
	//chain-wrapped job keeps the skip-if-still-running guarantee: a long
	//startup scan makes the first tick skip instead of overlapping.
	go s.cron.Entry(id).WrappedJob.Run()

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}
