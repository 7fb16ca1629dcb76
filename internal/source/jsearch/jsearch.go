// JSearch (RapidAPI) adapter. Aggregates LinkedIn, Indeed, Glassdoor
// and ZipRecruiter postings behind one JSON API.

package jsearch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"go-jobscan-automation/internal/config"
	"go-jobscan-automation/internal/httpx"
	"go-jobscan-automation/internal/source"
)

const rapidAPIHost = "jsearch.p.rapidapi.com"

type JSearchSource struct {
	//BaseURL is overridable for tests
	BaseURL string

	apiKey   string
	location string
	client   *httpx.Client
}

func NewJSearchSource(cfg *config.Config) *JSearchSource {
	return &JSearchSource{
		BaseURL:  "https://" + rapidAPIHost,
		apiKey:   cfg.RapidAPIKey,
		location: cfg.JobLocation,
		client:   httpx.NewClient(),
	}
}

func (s *JSearchSource) Label() string {
	return "jsearch"
}

func (s *JSearchSource) SourceName() string {
	return "JSearch (LinkedIn/Indeed/Glassdoor)"
}

// jsearchResponse mirrors the top-level JSearch JSON response.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobDescription    string   `json:"job_description"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
}

func (s *JSearchSource) FetchJobs(ctx context.Context, jobTitle string, page int) []source.RawListing {
	if s.apiKey == "" {
		log.Println("[jsearch] RAPIDAPI_KEY not configured, skipping JSearch")
		return nil
	}

	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s in %s", jobTitle, s.location))
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")
	params.Set("date_posted", "week")

	header := http.Header{}
	header.Set("X-RapidAPI-Key", s.apiKey)
	header.Set("X-RapidAPI-Host", rapidAPIHost)

	var resp jsearchResponse
	if err := s.client.GetJSON(ctx, s.BaseURL+"/search?"+params.Encode(), header, &resp); err != nil {
		log.Printf("[jsearch] Error fetching %q page %d: %v", jobTitle, page, err)
		return nil
	}

	listings := make([]source.RawListing, 0, len(resp.Data))
	for _, job := range resp.Data {
		raw := source.RawListing{
			"job_id":      job.JobID,
			"title":       job.JobTitle,
			"company":     job.EmployerName,
			"location":    fmt.Sprintf("%s, %s", job.JobCity, job.JobState),
			"job_type":    job.JobEmploymentType,
			"remote":      job.JobIsRemote,
			"posted_date": job.JobPostedAt,
			"apply_link":  job.JobApplyLink,
			"description": job.JobDescription,
		}
		if job.JobMinSalary != nil {
			raw["salary_min"] = *job.JobMinSalary
		}
		if job.JobMaxSalary != nil {
			raw["salary_max"] = *job.JobMaxSalary
		}
		if job.JobSalaryCurrency != "" {
			raw["salary_currency"] = job.JobSalaryCurrency
		}
		listings = append(listings, raw)
	}
	return listings
}

func (s *JSearchSource) Normalize(raw source.RawListing) source.Job {
	return source.NormalizeRaw(raw, s.Label(), s.SourceName())
}
