package family

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobscan-automation/internal/source"
)

// fakeSource serves canned listings keyed by (term, page).
type fakeSource struct {
	label    string
	name     string
	listings map[string][]source.RawListing
	calls    int
}

func (f *fakeSource) FetchJobs(ctx context.Context, jobTitle string, page int) []source.RawListing {
	f.calls++
	return f.listings[fmt.Sprintf("%s/%d", jobTitle, page)]
}

func (f *fakeSource) Normalize(raw source.RawListing) source.Job {
	return source.NormalizeRaw(raw, f.label, f.name)
}

func (f *fakeSource) Label() string      { return f.label }
func (f *fakeSource) SourceName() string { return f.name }

func listing(id, title, description string) source.RawListing {
	return source.RawListing{
		"job_id":      id,
		"title":       title,
		"company":     "Acme Corp",
		"location":    "Remote",
		"apply_link":  "https://example.com/" + id,
		"description": description,
	}
}

func TestCollectPermissiveExperienceDefault(t *testing.T) {
	src := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Engineer/1": {listing("1", "Data Engineer", "no experience text here")},
		},
	}

	f := New(Criteria{
		Label:       "Data Engineer",
		SearchTerms: []string{"Data Engineer"},
		MinYears:    3,
		MaxYears:    7,
	}, []source.Source{src}, 2)

	jobs := f.Collect(context.Background())

	if assert.Len(t, jobs, 1) {
		assert.Equal(t, "Data Engineer", jobs[0].JobFamily)
		assert.Equal(t, "3-7 years", jobs[0].ExperienceRequired)
		assert.Equal(t, "fake_1", jobs[0].JobID)
	}
}

func TestCollectDropsOutOfRangeExperience(t *testing.T) {
	src := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Engineer/1": {
				listing("1", "Data Engineer", "8-10 years experience required"),
				listing("2", "Data Engineer", "2-4 years experience required"),
			},
		},
	}

	f := New(Criteria{
		Label:       "Data Engineer",
		SearchTerms: []string{"Data Engineer"},
		MinYears:    3,
		MaxYears:    7,
	}, []source.Source{src}, 1)

	jobs := f.Collect(context.Background())

	if assert.Len(t, jobs, 1) {
		assert.Equal(t, "fake_2", jobs[0].JobID)
	}
}

func TestCollectSkillFilter(t *testing.T) {
	src := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Scientist/1": {
				listing("1", "Data Scientist", "We use Spark and Airflow daily"),
				listing("2", "Data Scientist", "Pure research role, no tooling mentioned"),
			},
		},
	}

	f := New(Criteria{
		Label:           "Data Scientist (ETL)",
		SearchTerms:     []string{"Data Scientist"},
		MinYears:        3,
		MaxYears:        7,
		RequiredSkills:  []string{"spark", "airflow", "dbt", "sql"},
		MinSkillMatches: 2,
	}, []source.Source{src}, 1)

	jobs := f.Collect(context.Background())

	if assert.Len(t, jobs, 1) {
		assert.Equal(t, "fake_1", jobs[0].JobID)
	}
}

func TestCollectDedupsNativeIDsAcrossTerms(t *testing.T) {
	same := listing("1", "Data Engineer", "")
	src := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Engineer/1":        {same},
			"Senior Data Engineer/1": {same},
		},
	}

	f := New(Criteria{
		Label:       "Data Engineer",
		SearchTerms: []string{"Data Engineer", "Senior Data Engineer"},
		MinYears:    3,
		MaxYears:    7,
	}, []source.Source{src}, 1)

	jobs := f.Collect(context.Background())
	assert.Len(t, jobs, 1)
}

func TestCollectStopsPagingOnEmptyBatch(t *testing.T) {
	src := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Engineer/1": {listing("1", "Data Engineer", "")},
			//page 2 empty, page 3 should never be requested
			"Data Engineer/3": {listing("3", "Data Engineer", "")},
		},
	}

	f := New(Criteria{
		Label:       "Data Engineer",
		SearchTerms: []string{"Data Engineer"},
		MinYears:    3,
		MaxYears:    7,
	}, []source.Source{src}, 5)

	jobs := f.Collect(context.Background())

	assert.Len(t, jobs, 1)
	assert.Equal(t, 2, src.calls)
}

func TestCollectDropsUnusableListings(t *testing.T) {
	noLink := listing("1", "Data Engineer", "")
	delete(noLink, "apply_link")
	noTitle := listing("2", "", "")

	src := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Engineer/1": {noLink, noTitle, listing("3", "Data Engineer", "")},
		},
	}

	f := New(Criteria{
		Label:       "Data Engineer",
		SearchTerms: []string{"Data Engineer"},
		MinYears:    3,
		MaxYears:    7,
	}, []source.Source{src}, 1)

	jobs := f.Collect(context.Background())

	if assert.Len(t, jobs, 1) {
		assert.Equal(t, "fake_3", jobs[0].JobID)
	}
}

func TestCollectSurvivesFailingSource(t *testing.T) {
	//a source whose fetch always comes back empty (adapter already
	//swallowed the failure)
	broken := &fakeSource{label: "broken", name: "Broken Board"}
	working := &fakeSource{
		label: "fake",
		name:  "Fake Board",
		listings: map[string][]source.RawListing{
			"Data Engineer/1": {listing("1", "Data Engineer", "")},
		},
	}

	f := New(Criteria{
		Label:       "Data Engineer",
		SearchTerms: []string{"Data Engineer"},
		MinYears:    3,
		MaxYears:    7,
	}, []source.Source{broken, working}, 1)

	jobs := f.Collect(context.Background())
	assert.Len(t, jobs, 1)
}
