package source

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRawDefaults(t *testing.T) {
	raw := RawListing{
		"job_id": "123",
		"title":  "Data Engineer",
	}

	job := NormalizeRaw(raw, "jsearch", "JSearch (LinkedIn/Indeed/Glassdoor)")

	assert.Equal(t, "jsearch_123", job.JobID)
	assert.Equal(t, "Data Engineer", job.Title)
	assert.Equal(t, "Unknown", job.Company)
	assert.Equal(t, "Not specified", job.JobType)
	assert.Equal(t, "Not specified", job.ExperienceRequired)
	assert.Nil(t, job.SalaryMin)
	assert.Nil(t, job.SalaryMax)
	assert.Equal(t, "USD", job.SalaryCurrency)
	assert.Equal(t, "JSearch (LinkedIn/Indeed/Glassdoor)", job.Source)
	assert.False(t, job.Remote)
	assert.False(t, job.ScrapedAt.IsZero())
}

func TestNormalizeRawFullListing(t *testing.T) {
	raw := RawListing{
		"job_id":          "abc",
		"title":           "Analytics Engineer",
		"company":         "Data Inc",
		"location":        "New York, NY",
		"job_type":        "Full-time",
		"remote":          true,
		"posted_date":     "2026-08-20",
		"apply_link":      "https://example.com/apply",
		"description":     "Join our team",
		"salary_min":      130000.0,
		"salary_max":      170000.0,
		"salary_currency": "EUR",
	}

	job := NormalizeRaw(raw, "adzuna", "Adzuna (Monster/CareerBuilder)")

	assert.Equal(t, "adzuna_abc", job.JobID)
	assert.Equal(t, "Data Inc", job.Company)
	assert.True(t, job.Remote)
	assert.Equal(t, "Full-time", job.JobType)
	assert.Equal(t, "https://example.com/apply", job.ApplyLink)
	if assert.NotNil(t, job.SalaryMin) {
		assert.Equal(t, 130000.0, *job.SalaryMin)
	}
	if assert.NotNil(t, job.SalaryMax) {
		assert.Equal(t, 170000.0, *job.SalaryMax)
	}
	assert.Equal(t, "EUR", job.SalaryCurrency)
	assert.Equal(t, "Join our team", job.DescriptionSnippet)
}

func TestNormalizeRawRemoteFromLocation(t *testing.T) {
	raw := RawListing{
		"job_id":   "1",
		"title":    "Data Engineer",
		"location": "Remote - Worldwide",
	}

	job := NormalizeRaw(raw, "remoteok", "RemoteOK (Remote Jobs)")
	assert.True(t, job.Remote)
}

func TestNormalizeRawSnippetTruncation(t *testing.T) {
	long := strings.Repeat("a", 600)
	raw := RawListing{
		"job_id":      "1",
		"title":       "Data Engineer",
		"description": long,
	}

	job := NormalizeRaw(raw, "jsearch", "JSearch")

	assert.Len(t, job.DescriptionSnippet, 503)
	assert.True(t, strings.HasSuffix(job.DescriptionSnippet, "..."))
	assert.Equal(t, long[:500], job.DescriptionSnippet[:500])
}

func TestNormalizeRawSnippetTruncatesByRune(t *testing.T) {
	//place a multibyte rune straddling the 500-byte mark so a byte slice
	//would cut it in half
	long := strings.Repeat("a", 499) + "é" + strings.Repeat("ü", 200)
	raw := RawListing{
		"job_id":      "1",
		"title":       "Data Engineer",
		"description": long,
	}

	job := NormalizeRaw(raw, "jsearch", "JSearch")

	assert.True(t, utf8.ValidString(job.DescriptionSnippet))
	assert.Equal(t, 503, utf8.RuneCountInString(job.DescriptionSnippet))
	assert.True(t, strings.HasSuffix(job.DescriptionSnippet, "..."))
	assert.Equal(t, string([]rune(long)[:500]), strings.TrimSuffix(job.DescriptionSnippet, "..."))
}

func TestNormalizeRawSwapsInvertedSalary(t *testing.T) {
	raw := RawListing{
		"job_id":     "1",
		"title":      "Data Engineer",
		"salary_min": 170000.0,
		"salary_max": 130000.0,
	}

	job := NormalizeRaw(raw, "jsearch", "JSearch")

	assert.Equal(t, 130000.0, *job.SalaryMin)
	assert.Equal(t, 170000.0, *job.SalaryMax)
}

func TestMoneyIgnoresNonPositive(t *testing.T) {
	raw := RawListing{"salary_min": 0.0, "salary_max": "lots"}

	assert.Nil(t, Money(raw, "salary_min"))
	assert.Nil(t, Money(raw, "salary_max"))
	assert.Nil(t, Money(raw, "missing"))
}

func TestStrRendersNumericIDs(t *testing.T) {
	raw := RawListing{"job_id": 456789.0}
	assert.Equal(t, "456789", Str(raw, "job_id"))
}
