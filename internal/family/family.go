// Package family implements the per-role orchestration: every configured
// search term is run against every source for a bounded number of pages,
// and the raw listings are filtered and normalized into canonical jobs.
package family

import (
	"context"
	"fmt"
	"log"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobscan-automation/internal/filter"
	"go-jobscan-automation/internal/source"
)

// Criteria holds one job family's role label, search terms and filter
// thresholds. Immutable for the run.
type Criteria struct {
	Label       string
	SearchTerms []string
	MinYears    int
	MaxYears    int

	//RequiredSkills is the optional secondary skill vocabulary; listings
	//must mention at least MinSkillMatches distinct terms to survive
	RequiredSkills  []string
	MinSkillMatches int
}

// Family collects one role category across all sources.
type Family struct {
	criteria Criteria
	sources  []source.Source
	maxPages int
}

func New(criteria Criteria, sources []source.Source, maxPages int) *Family {
	if maxPages < 1 {
		maxPages = 1
	}
	return &Family{criteria: criteria, sources: sources, maxPages: maxPages}
}

func (f *Family) Label() string {
	return f.criteria.Label
}

// Collect fetches, filters and normalizes this family's listings.
// A failing source contributes nothing for that (term, source, page)
// combination; Collect itself never fails.
func (f *Family) Collect(ctx context.Context) []source.Job {
	var jobs []source.Job
	seen := mapset.NewSet[string]()

	log.Printf("[family] Collecting: %s (terms=%d sources=%d)",
		f.criteria.Label, len(f.criteria.SearchTerms), len(f.sources))

	for _, term := range f.criteria.SearchTerms {
		for _, src := range f.sources {
			before := len(jobs)
			for page := 1; page <= f.maxPages; page++ {
				listings := src.FetchJobs(ctx, term, page)
				if len(listings) == 0 {
					break
				}
				for _, raw := range listings {
					if job, ok := f.admit(src, raw, seen); ok {
						jobs = append(jobs, job)
					}
				}
			}
			log.Printf("[family]   [%s] %q: +%d jobs", src.SourceName(), term, len(jobs)-before)
		}
	}

	log.Printf("[family] Total %s jobs: %d", f.criteria.Label, len(jobs))
	return jobs
}

// admit applies the family's criteria to one raw listing and, when it
// survives, returns the stamped canonical record.
func (f *Family) admit(src source.Source, raw source.RawListing, seen mapset.Set[string]) (source.Job, bool) {
	job := src.Normalize(raw)

	//a listing without a title or apply link is unusable
	if job.Title == "" || job.ApplyLink == "" {
		return source.Job{}, false
	}

	//within-family dedup by job_id; cross-source dedup is the aggregator's
	if !seen.Add(job.JobID) {
		return source.Job{}, false
	}

	description := source.Str(raw, "description")
	if !filter.InExperienceRange(job.Title+" "+description, f.criteria.MinYears, f.criteria.MaxYears) {
		return source.Job{}, false
	}

	if len(f.criteria.RequiredSkills) > 0 &&
		!filter.HasSkills(description, f.criteria.RequiredSkills, f.criteria.MinSkillMatches) {
		return source.Job{}, false
	}

	job.JobFamily = f.criteria.Label
	job.ExperienceRequired = fmt.Sprintf("%d-%d years", f.criteria.MinYears, f.criteria.MaxYears)
	return job, true
}
