// Package pipeline wires the full scan cycle: collect from every job
// family, export the CSV, send the summary notification.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-jobscan-automation/internal/aggregate"
	"go-jobscan-automation/internal/config"
	"go-jobscan-automation/internal/export"
	"go-jobscan-automation/internal/family"
	"go-jobscan-automation/internal/notify"
	"go-jobscan-automation/internal/source"
	"go-jobscan-automation/internal/source/adzuna"
	"go-jobscan-automation/internal/source/jsearch"
	"go-jobscan-automation/internal/source/remoteok"
)

type Pipeline struct {
	cfg        *config.Config
	aggregator *aggregate.Aggregator
	exporter   *export.CSVExporter
	notifier   *notify.TelegramNotifier
}

// New builds the run pipeline from config. Each family owns its own
// adapter instances; nothing is shared across families.
func New(cfg *config.Config) (*Pipeline, error) {
	families := make([]aggregate.Collector, 0, len(cfg.Families))
	for _, fc := range cfg.Families {
		sources := []source.Source{
			jsearch.NewJSearchSource(cfg),
			adzuna.NewAdzunaSource(cfg),
			remoteok.NewRemoteOKSource(cfg),
		}
		families = append(families, family.New(family.Criteria{
			Label:           fc.Label,
			SearchTerms:     fc.SearchTerms,
			MinYears:        fc.MinYears,
			MaxYears:        fc.MaxYears,
			RequiredSkills:  fc.RequiredSkills,
			MinSkillMatches: fc.MinSkillMatches,
		}, sources, cfg.MaxPagesPerSource))
	}

	p := &Pipeline{
		cfg:        cfg,
		aggregator: aggregate.New(families...),
		exporter:   export.NewCSVExporter(cfg.OutputDir),
	}

	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		log.Println("[pipeline] Telegram not configured, notifications disabled")
		return p, nil
	}
	notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		return nil, err
	}
	p.notifier = notifier
	return p, nil
}

// Run executes one full scan. Zero jobs is a successful run reported with
// a count of zero, not an error.
func (p *Pipeline) Run(ctx context.Context, nextScanHours int) error {
	started := time.Now()
	log.Println("[pipeline] Scan started")

	jobs := p.aggregator.CollectAll(ctx)

	path, err := p.exporter.Export(jobs)
	if err != nil {
		err = fmt.Errorf("export: %w", err)
		if p.notifier != nil {
			if nerr := p.notifier.SendError(err); nerr != nil {
				log.Printf("[pipeline] Failed to send error notification: %v", nerr)
			}
		}
		return err
	}

	if p.notifier != nil {
		summary := notify.Summary{
			Total:         len(jobs),
			ByFamily:      aggregate.CountByFamily(jobs),
			CSVPath:       path,
			ScannedAt:     started,
			NextScanHours: nextScanHours,
		}
		if err := p.notifier.SendSummary(summary); err != nil {
			log.Printf("[pipeline] Failed to send notification: %v", err)
		}
	}

	log.Printf("[pipeline] Scan finished: %d jobs in %s", len(jobs), time.Since(started).Round(time.Second))
	return nil
}
