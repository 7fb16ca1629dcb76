// Define an interface for all job board sources
// Ensure consistency

package source

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RawListing is a source-native record as returned by an adapter before
// normalization. Adapters fill the canonical keys below from their API
// response; Normalize substitutes defaults for anything missing.
//
// Canonical keys: job_id, title, company, location, job_type, remote,
// posted_date, apply_link, description, salary_min, salary_max,
// salary_currency.
type RawListing map[string]any

// Job is the canonical record every source normalizes into.
// Never mutated after the family filter constructs it.
type Job struct {
	JobID              string    `json:"job_id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Location           string    `json:"location"`
	Remote             bool      `json:"remote"`
	JobType            string    `json:"job_type"`
	PostedDate         string    `json:"posted_date"`
	ApplyLink          string    `json:"apply_link"`
	SalaryMin          *float64  `json:"salary_min"`
	SalaryMax          *float64  `json:"salary_max"`
	SalaryCurrency     string    `json:"salary_currency"`
	ExperienceRequired string    `json:"experience_required"`
	Source             string    `json:"source"`
	JobFamily          string    `json:"job_family"`
	ScrapedAt          time.Time `json:"scraped_at"`
	DescriptionSnippet string    `json:"description_snippet"`
}

//Source defines the interface that all job board adapters must implement
type Source interface {
	//FetchJobs issues one request for the given search term and 1-based page.
	//Failures are logged by the adapter and surface as an empty slice;
	//they are never returned to the caller.
	FetchJobs(ctx context.Context, jobTitle string, page int) []RawListing

	//Normalize maps a raw listing to the canonical Job shape
	Normalize(raw RawListing) Job

	//Label is the stable short identifier used as the job_id prefix
	//(e.g. "jsearch", "adzuna", "remoteok")
	Label() string

	//SourceName is the human-readable source description
	SourceName() string
}

const snippetLen = 500

// NormalizeRaw builds a Job from a raw listing, applying the documented
// defaults for missing fields. A listing is never dropped here for a
// missing optional field.
func NormalizeRaw(raw RawListing, label, sourceName string) Job {
	job := Job{
		JobID:              fmt.Sprintf("%s_%s", label, Str(raw, "job_id")),
		Title:              Str(raw, "title"),
		Company:            Str(raw, "company"),
		Location:           Str(raw, "location"),
		JobType:            Str(raw, "job_type"),
		PostedDate:         Str(raw, "posted_date"),
		ApplyLink:          Str(raw, "apply_link"),
		SalaryMin:          Money(raw, "salary_min"),
		SalaryMax:          Money(raw, "salary_max"),
		SalaryCurrency:     Str(raw, "salary_currency"),
		ExperienceRequired: "Not specified",
		Source:             sourceName,
		ScrapedAt:          time.Now(),
		DescriptionSnippet: snippet(Str(raw, "description")),
	}

	if job.Company == "" {
		job.Company = "Unknown"
	}
	if job.JobType == "" {
		job.JobType = "Not specified"
	}
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = "USD"
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		job.SalaryMin, job.SalaryMax = job.SalaryMax, job.SalaryMin
	}

	//remote comes from the source flag or from the location text
	job.Remote = Flag(raw, "remote") || strings.Contains(strings.ToLower(job.Location), "remote")

	return job
}

func snippet(description string) string {
	description = strings.TrimSpace(description)
	//truncate by rune, not byte, so multibyte text is never split mid-character
	r := []rune(description)
	if len(r) <= snippetLen {
		return description
	}
	return string(r[:snippetLen]) + "..."
}

// Str reads a string value; numeric values are rendered so that native
// IDs arriving as numbers still produce a usable job_id.
func Str(raw RawListing, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Flag reads a boolean value, treating anything non-boolean as false.
func Flag(raw RawListing, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

// Money reads an optional salary value. Missing, non-numeric or
// non-positive values come back nil.
func Money(raw RawListing, key string) *float64 {
	var f float64
	switch v := raw[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	if f <= 0 {
		return nil
	}
	return &f
}
