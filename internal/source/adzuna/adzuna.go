// Adzuna adapter. Covers the Monster/CareerBuilder/SimplyHired family
// of boards through Adzuna's public search API.

package adzuna

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"go-jobscan-automation/internal/config"
	"go-jobscan-automation/internal/httpx"
	"go-jobscan-automation/internal/source"
)

const resultsPerPage = 20

type AdzunaSource struct {
	//BaseURL is overridable for tests
	BaseURL string

	appID    string
	appKey   string
	country  string
	location string
	client   *httpx.Client
}

func NewAdzunaSource(cfg *config.Config) *AdzunaSource {
	return &AdzunaSource{
		BaseURL:  "https://api.adzuna.com/v1/api/jobs",
		appID:    cfg.AdzunaAppID,
		appKey:   cfg.AdzunaAppKey,
		country:  cfg.AdzunaCountry,
		location: cfg.JobLocation,
		client:   httpx.NewClient(),
	}
}

func (s *AdzunaSource) Label() string {
	return "adzuna"
}

func (s *AdzunaSource) SourceName() string {
	return "Adzuna (Monster/CareerBuilder)"
}

// adzunaResponse mirrors the top-level Adzuna JSON response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	ID           any            `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Company      adzunaCompany  `json:"company"`
	Location     adzunaLocation `json:"location"`
	SalaryMin    *float64       `json:"salary_min"`
	SalaryMax    *float64       `json:"salary_max"`
	RedirectURL  string         `json:"redirect_url"`
	Created      string         `json:"created"`
	ContractType string         `json:"contract_type"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

func (s *AdzunaSource) FetchJobs(ctx context.Context, jobTitle string, page int) []source.RawListing {
	if s.appID == "" || s.appKey == "" {
		log.Println("[adzuna] ADZUNA_APP_ID / ADZUNA_APP_KEY not configured, skipping Adzuna")
		return nil
	}

	params := url.Values{}
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)
	params.Set("what", jobTitle)
	params.Set("where", s.location)
	params.Set("results_per_page", strconv.Itoa(resultsPerPage))
	params.Set("max_days_old", "7")
	params.Set("sort_by", "date")

	endpoint := fmt.Sprintf("%s/%s/search/%d?%s", s.BaseURL, s.country, page, params.Encode())

	var resp adzunaResponse
	if err := s.client.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		log.Printf("[adzuna] Error fetching %q page %d: %v", jobTitle, page, err)
		return nil
	}

	listings := make([]source.RawListing, 0, len(resp.Results))
	for _, job := range resp.Results {
		raw := source.RawListing{
			"job_id":      nativeID(job.ID),
			"title":       job.Title,
			"company":     job.Company.DisplayName,
			"location":    shortLocation(job.Location.DisplayName),
			"job_type":    job.ContractType,
			"remote":      mentionsRemote(job.Title, job.Description),
			"posted_date": job.Created,
			"apply_link":  job.RedirectURL,
			"description": job.Description,
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

func (s *AdzunaSource) Normalize(raw source.RawListing) source.Job {
	return source.NormalizeRaw(raw, s.Label(), s.SourceName())
}

// nativeID renders the listing id, which Adzuna serves as either a string
// or a number depending on endpoint version.
func nativeID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// shortLocation keeps the first two segments of the display name
// ("Austin, Travis County, Texas" -> "Austin, Travis County").
func shortLocation(displayName string) string {
	parts := strings.Split(displayName, ", ")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ", ")
}

// Adzuna exposes no remote flag, so it is derived from the listing text.
func mentionsRemote(title, description string) bool {
	return strings.Contains(strings.ToLower(title), "remote") ||
		strings.Contains(strings.ToLower(description), "remote")
}
