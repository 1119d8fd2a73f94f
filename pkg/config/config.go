package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/johnquangdev/meeting-notes/errors"
)

// Config holds application configuration
type Config struct {
	Notion     NotionConfig
	OpenAI     OpenAIConfig
	Assembly   AssemblyAIConfig
	Storage    StorageConfig
	Transcript TranscriptConfig
}

// NotionConfig holds the remote document store configuration
type NotionConfig struct {
	Token              string `envconfig:"NOTION_TOKEN" validate:"required"`
	DatabaseID         string `envconfig:"DATABASE_ID" validate:"required"`
	PeopleDatabaseID   string `envconfig:"PEOPLE_DATABASE_ID"`
	ProjectsDatabaseID string `envconfig:"PROJECTS_DATABASE_ID"`
	BaseURL            string `envconfig:"NOTION_API_URL" default:"https://api.notion.com/v1"`
	Version            string `envconfig:"NOTION_VERSION" default:"2022-06-28"`
}

// OpenAIConfig holds the language model configuration
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY" validate:"required"`
	BaseURL string `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// AssemblyAIConfig holds the optional audio transcription configuration
type AssemblyAIConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
}

// Enabled reports whether audio transcription is configured.
func (c AssemblyAIConfig) Enabled() bool {
	return c.APIKey != ""
}

// StorageConfig holds the optional transcript archive configuration
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-transcripts"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Enabled reports whether the transcript archive is configured.
func (c StorageConfig) Enabled() bool {
	return c.Endpoint != ""
}

// TranscriptConfig holds transcript lookup configuration
type TranscriptConfig struct {
	Dir    string `envconfig:"TRANSCRIPT_DIR" default:"./transcript"`
	Select string `envconfig:"TRANSCRIPT_SELECT" default:"interactive" validate:"oneof=interactive latest"`
}

// requiredEnvNames maps validated struct fields back to the environment
// variable an operator has to set.
var requiredEnvNames = map[string]string{
	"Config.Notion.Token":      "NOTION_TOKEN",
	"Config.Notion.DatabaseID": "DATABASE_ID",
	"Config.OpenAI.APIKey":     "OPENAI_API_KEY",
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			return fmt.Errorf("invalid configuration value for %s (%s)", fe.StructNamespace(), fe.Tag())
		}
		if name, ok := requiredEnvNames[fe.StructNamespace()]; ok {
			missing = append(missing, name)
		} else {
			missing = append(missing, fe.StructNamespace())
		}
	}
	return apperrors.ErrMissingEnv(strings.Join(missing, ", "))
}
