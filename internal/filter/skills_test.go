package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var vocabulary = []string{
	"etl", "sql", "python", "airflow", "spark", "kafka",
	"dbt", "snowflake", "redshift", "bigquery",
}

func TestCountSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "Three distinct tools",
			text: "We use Spark, Airflow, and dbt daily",
			want: 3,
		},
		{
			name: "Case insensitive",
			text: "SNOWFLAKE and BigQuery experience preferred",
			want: 2,
		},
		{
			name: "Repeated term counts once",
			text: "sql sql sql and more sql",
			want: 1,
		},
		{
			name: "Empty text",
			text: "",
			want: 0,
		},
		{
			name: "No matches",
			text: "Looking for a backend developer with Go and gRPC",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSkills(tt.text, vocabulary))
		})
	}
}

func TestHasSkills(t *testing.T) {
	text := "We use Spark, Airflow, and dbt daily"

	assert.True(t, HasSkills(text, vocabulary, 2))
	assert.True(t, HasSkills(text, vocabulary, 3))
	assert.False(t, HasSkills(text, vocabulary, 4))
	assert.False(t, HasSkills("", vocabulary, 1))
	assert.True(t, HasSkills("anything", vocabulary, 0))
}
