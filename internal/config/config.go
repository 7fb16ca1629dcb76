// Load envs from .env
// Load YAML config
// Apply env overrides for secrets
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FamilyConfig holds one job family's search terms and filter criteria.
type FamilyConfig struct {
	Label           string   `yaml:"label"`
	SearchTerms     []string `yaml:"search_terms"`
	MinYears        int      `yaml:"min_years"`
	MaxYears        int      `yaml:"max_years"`
	RequiredSkills  []string `yaml:"required_skills"`
	MinSkillMatches int      `yaml:"min_skill_matches"`
}

type Config struct {
	//API credentials
	RapidAPIKey   string `yaml:"rapidapi_key" env:"RAPIDAPI_KEY"`
	AdzunaAppID   string `yaml:"adzuna_app_id" env:"ADZUNA_APP_ID"`
	AdzunaAppKey  string `yaml:"adzuna_app_key" env:"ADZUNA_APP_KEY"`
	AdzunaCountry string `yaml:"adzuna_country" env:"ADZUNA_COUNTRY"`

	//Search criteria
	JobLocation       string         `yaml:"job_location"`
	MaxPagesPerSource int            `yaml:"max_pages_per_source"`
	RemoteOKEnabled   bool           `yaml:"remoteok_enabled"`
	Families          []FamilyConfig `yaml:"families"`

	//Output
	OutputDir string `yaml:"output_dir"`

	//Notification
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Scheduling
	ScanIntervalHours int `yaml:"scan_interval_hours" env:"SCAN_INTERVAL_HOURS"`
}

func Load() *Config {
	_ = godotenv.Load()

	//defaults that yaml may override
	cfg := &Config{RemoteOKEnabled: true}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if key := os.Getenv("RAPIDAPI_KEY"); key != "" {
		cfg.RapidAPIKey = key
	}
	if id := os.Getenv("ADZUNA_APP_ID"); id != "" {
		cfg.AdzunaAppID = id
	}
	if key := os.Getenv("ADZUNA_APP_KEY"); key != "" {
		cfg.AdzunaAppKey = key
	}
	if country := os.Getenv("ADZUNA_COUNTRY"); country != "" {
		cfg.AdzunaCountry = country
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}
	if interval := os.Getenv("SCAN_INTERVAL_HOURS"); interval != "" {
		v, err := strconv.Atoi(interval)
		if err != nil || v < 1 {
			log.Fatalf("SCAN_INTERVAL_HOURS must be a positive integer, got %q", interval)
		}
		cfg.ScanIntervalHours = v
	}
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	//Set default values if not set
	if cfg.AdzunaCountry == "" {
		cfg.AdzunaCountry = "us"
	}
	if cfg.JobLocation == "" {
		cfg.JobLocation = "United States"
	}
	if cfg.MaxPagesPerSource == 0 {
		cfg.MaxPagesPerSource = 2
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.ScanIntervalHours == 0 {
		cfg.ScanIntervalHours = 6
	}
	if len(cfg.Families) == 0 {
		cfg.Families = DefaultFamilies()
	}

	return cfg
}

// ETLSkills is the vocabulary used as the secondary qualification filter
// for the Data Scientist (ETL) family.
var ETLSkills = []string{
	"etl", "sql", "python", "airflow", "spark", "kafka",
	"dbt", "snowflake", "redshift", "bigquery", "databricks",
	"hadoop", "data pipeline", "data warehouse",
}

// DefaultFamilies returns the built-in job family criteria, used when the
// YAML config does not define any.
func DefaultFamilies() []FamilyConfig {
	return []FamilyConfig{
		{
			Label: "Data Engineer",
			SearchTerms: []string{
				"Data Engineer",
				"Senior Data Engineer",
				"Big Data Engineer",
				"Data Platform Engineer",
			},
			MinYears: 3,
			MaxYears: 7,
		},
		{
			Label: "Analytics Engineer",
			SearchTerms: []string{
				"Analytics Engineer",
				"Senior Analytics Engineer",
				"Lead Analytics Engineer",
				"BI Engineer",
			},
			MinYears: 3,
			MaxYears: 7,
		},
		{
			Label: "Data Scientist (ETL)",
			SearchTerms: []string{
				"Data Scientist",
				"Data Scientist ETL",
				"Data Scientist SQL",
				"Data Scientist Python",
				"Machine Learning Engineer",
			},
			MinYears:        3,
			MaxYears:        7,
			RequiredSkills:  ETLSkills,
			MinSkillMatches: 2,
		},
	}
}
