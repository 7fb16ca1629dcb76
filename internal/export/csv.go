// Package export writes a run's jobs to a timestamped CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-jobscan-automation/internal/source"
)

const filenamePrefix = "data_jobs"

// Column order matches the canonical record definition. Keep it EXACT:
// downstream consumers read by position.
var csvHeader = []string{
	"job_id",
	"title",
	"company",
	"location",
	"remote",
	"job_type",
	"posted_date",
	"apply_link",
	"salary_min",
	"salary_max",
	"salary_currency",
	"experience_required",
	"source",
	"job_family",
	"scraped_at",
	"description_snippet",
}

type CSVExporter struct {
	outputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{outputDir: outputDir}
}

// Export writes jobs to a timestamped file and returns its path.
// An empty run still produces a file with the header row.
func (e *CSVExporter) Export(jobs []source.Job) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.csv", filenamePrefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(e.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if err := Write(f, jobs); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}

	log.Printf("[export] Exported %d jobs to %s", len(jobs), path)
	return path, nil
}

// Write emits the header and one row per job.
func Write(w io.Writer, jobs []source.Job) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := cw.Write(toRow(job)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRow(job source.Job) []string {
	return []string{
		job.JobID,
		job.Title,
		job.Company,
		job.Location,
		strconv.FormatBool(job.Remote),
		job.JobType,
		job.PostedDate,
		job.ApplyLink,
		money(job.SalaryMin),
		money(job.SalaryMax),
		job.SalaryCurrency,
		job.ExperienceRequired,
		job.Source,
		job.JobFamily,
		job.ScrapedAt.Format(time.RFC3339),
		job.DescriptionSnippet,
	}
}

// money renders salaries as plain decimals, empty when the source
// provided none.
func money(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
