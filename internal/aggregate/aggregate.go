// Package aggregate merges every job family's results into one
// deduplicated run result.
package aggregate

import (
	"context"
	"log"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobscan-automation/internal/source"
)

// Collector is what the aggregator needs from a job family.
type Collector interface {
	Label() string
	Collect(ctx context.Context) []source.Job
}

// Aggregator invokes every family in a fixed order so identical runs
// produce identical output given identical upstream data.
type Aggregator struct {
	families []Collector
}

func New(families ...Collector) *Aggregator {
	return &Aggregator{families: families}
}

// CollectAll is the top-level entry point for one run. An empty result is
// a valid outcome, not an error.
func (a *Aggregator) CollectAll(ctx context.Context) []source.Job {
	var all []source.Job
	for _, f := range a.families {
		jobs := f.Collect(ctx)
		log.Printf("[aggregate] %s contributed %d jobs", f.Label(), len(jobs))
		all = append(all, jobs...)
	}

	deduped := Dedupe(all)
	log.Printf("[aggregate] Deduplication: %d total -> %d unique jobs", len(all), len(deduped))
	return deduped
}

// Dedupe drops listings sharing a composite (title, company, location)
// key, keeping the first occurrence in traversal order. A job found by an
// earlier family or source wins over a later duplicate.
func Dedupe(jobs []source.Job) []source.Job {
	seen := mapset.NewSet[string]()
	out := make([]source.Job, 0, len(jobs))
	for _, job := range jobs {
		if !seen.Add(dedupeKey(job)) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// CountByFamily groups a run's output into per-family counts for the
// notification summary.
func CountByFamily(jobs []source.Job) map[string]int {
	counts := make(map[string]int)
	for _, job := range jobs {
		counts[job.JobFamily]++
	}
	return counts
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// dedupeKey is the case-insensitive, whitespace-collapsed triple
// identifying "the same job" across sources.
func dedupeKey(job source.Job) string {
	return collapse(job.Title) + "|" + collapse(job.Company) + "|" + collapse(job.Location)
}

func collapse(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
