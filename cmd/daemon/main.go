package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go-jobscan-automation/internal/config"
	"go-jobscan-automation/internal/pipeline"
	"go-jobscan-automation/internal/scheduler"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Scan interval: %dh", cfg.ScanIntervalHours)

	p, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to build pipeline: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(cfg.ScanIntervalHours, func(ctx context.Context) {
		if err := p.Run(ctx, cfg.ScanIntervalHours); err != nil {
			log.Printf("❌ Scan failed: %v", err)
		}
	})
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("❌ Failed to start scheduler: %v", err)
	}

	<-ctx.Done()
	sched.Stop()
	log.Println("🏁 Daemon stopped.")
}
