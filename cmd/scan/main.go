package main

import (
	"context"
	"log"
	"time"

	"go-jobscan-automation/internal/config"
	"go-jobscan-automation/internal/pipeline"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Families: %d, max pages per source: %d", len(cfg.Families), cfg.MaxPagesPerSource)

	p, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to build pipeline: %v", err)
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting job scan...")
	if err := p.Run(ctx, 0); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	log.Println("🏁 Execution finished.")
}
