package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSummary(t *testing.T) {
	s := Summary{
		Total: 25,
		ByFamily: map[string]int{
			"Data Scientist (ETL)": 5,
			"Data Engineer":        12,
			"Analytics Engineer":   8,
		},
		CSVPath:       "output/data_jobs_20260830_120000.csv",
		ScannedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		NextScanHours: 6,
	}

	msg := FormatSummary(s)

	assert.Contains(t, msg, "Total Jobs Found: 25")
	assert.Contains(t, msg, "Scan Time: 2026-08-30 12:00:00")
	assert.Contains(t, msg, "Data Engineer: 12")
	assert.Contains(t, msg, "Analytics Engineer: 8")
	assert.Contains(t, msg, "Data Scientist (ETL): 5")
	assert.Contains(t, msg, "output/data_jobs_20260830_120000.csv")
	assert.Contains(t, msg, "Next scan scheduled in 6 hours.")

	//families sorted by name for deterministic messages
	assert.Less(t,
		strings.Index(msg, "Analytics Engineer"),
		strings.Index(msg, "Data Engineer"))
}

func TestFormatSummaryOneShot(t *testing.T) {
	s := Summary{
		Total:     0,
		ByFamily:  map[string]int{},
		CSVPath:   "output/data_jobs_20260830_120000.csv",
		ScannedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	msg := FormatSummary(s)

	//zero jobs is a successful run, not an error
	assert.Contains(t, msg, "Total Jobs Found: 0")
	assert.NotContains(t, msg, "Next scan")
}

func TestFormatError(t *testing.T) {
	msg := FormatError(errors.New("export: permission denied"))

	assert.Contains(t, msg, "Job Scan Error")
	assert.Contains(t, msg, "export: permission denied")
}
