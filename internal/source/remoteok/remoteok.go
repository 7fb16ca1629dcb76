// RemoteOK adapter. No API key, no search endpoint and no pagination:
// one GET returns every active posting, so relevance filtering happens
// client side and any page past the first is empty.

package remoteok

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"go-jobscan-automation/internal/config"
	"go-jobscan-automation/internal/httpx"
	"go-jobscan-automation/internal/source"
)

// relevantKeywords narrows the full RemoteOK feed down to data roles.
var relevantKeywords = []string{
	"data engineer",
	"analytics engineer",
	"data scientist",
	"etl",
	"data pipeline",
}

type RemoteOKSource struct {
	//BaseURL is overridable for tests
	BaseURL string

	enabled bool
	client  *httpx.Client
}

func NewRemoteOKSource(cfg *config.Config) *RemoteOKSource {
	return &RemoteOKSource{
		BaseURL: "https://remoteok.com/api",
		enabled: cfg.RemoteOKEnabled,
		client:  httpx.NewClient(),
	}
}

func (s *RemoteOKSource) Label() string {
	return "remoteok"
}

func (s *RemoteOKSource) SourceName() string {
	return "RemoteOK (Remote Jobs)"
}

type remoteokJob struct {
	ID        json.Number `json:"id"`
	Position  string      `json:"position"`
	Company   string      `json:"company"`
	Location  string      `json:"location"`
	Tags      []string    `json:"tags"`
	Date      string      `json:"date"`
	URL       string      `json:"url"`
	Desc      string      `json:"description"`
	SalaryMin *float64    `json:"salary_min"`
	SalaryMax *float64    `json:"salary_max"`
}

func (s *RemoteOKSource) FetchJobs(ctx context.Context, jobTitle string, page int) []source.RawListing {
	if !s.enabled {
		return nil
	}
	//the feed is a single unpaged dump; report it once
	if page > 1 {
		return nil
	}

	header := http.Header{}
	header.Set("User-Agent", "JobScanner/1.0")

	//first array element is API metadata, not a job
	var entries []json.RawMessage
	if err := s.client.GetJSON(ctx, s.BaseURL, header, &entries); err != nil {
		log.Printf("[remoteok] Error fetching feed: %v", err)
		return nil
	}
	if len(entries) < 2 {
		return nil
	}

	var listings []source.RawListing
	for _, entry := range entries[1:] {
		var job remoteokJob
		if err := json.Unmarshal(entry, &job); err != nil {
			log.Printf("[remoteok] Skipping malformed entry: %v", err)
			continue
		}
		if !isRelevant(job) {
			continue
		}

		location := job.Location
		if location == "" {
			location = "Worldwide"
		}
		raw := source.RawListing{
			"job_id":      job.ID.String(),
			"title":       job.Position,
			"company":     job.Company,
			"location":    "Remote - " + location,
			"job_type":    "Full-time",
			"remote":      true,
			"posted_date": job.Date,
			"apply_link":  job.URL,
			"description": job.Desc,
		}
		if job.SalaryMin != nil {
			raw["salary_min"] = *job.SalaryMin
		}
		if job.SalaryMax != nil {
			raw["salary_max"] = *job.SalaryMax
		}
		listings = append(listings, raw)
	}
	return listings
}

func (s *RemoteOKSource) Normalize(raw source.RawListing) source.Job {
	return source.NormalizeRaw(raw, s.Label(), s.SourceName())
}

func isRelevant(job remoteokJob) bool {
	title := strings.ToLower(job.Position)
	tags := strings.ToLower(strings.Join(job.Tags, " "))
	for _, keyword := range relevantKeywords {
		if strings.Contains(title, keyword) || strings.Contains(tags, keyword) {
			return true
		}
	}
	return false
}
