package config

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/johnquangdev/meeting-notes/errors"
)

func setRequired(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "secret-token")
	t.Setenv("DATABASE_ID", "db-123")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Notion.BaseURL != "https://api.notion.com/v1" {
		t.Fatalf("unexpected base url %s", cfg.Notion.BaseURL)
	}
	if cfg.Notion.Version != "2022-06-28" {
		t.Fatalf("unexpected version %s", cfg.Notion.Version)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model %s", cfg.OpenAI.Model)
	}
	if cfg.Transcript.Dir != "./transcript" {
		t.Fatalf("unexpected transcript dir %s", cfg.Transcript.Dir)
	}
	if cfg.Transcript.Select != "interactive" {
		t.Fatalf("unexpected select policy %s", cfg.Transcript.Select)
	}
	if cfg.Assembly.Enabled() {
		t.Fatal("transcription should be off without a key")
	}
	if cfg.Storage.Enabled() {
		t.Fatal("storage should be off without an endpoint")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("DATABASE_ID", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	msg := err.Error()
	for _, want := range []string{"NOTION_TOKEN", "DATABASE_ID"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error should name %s, got %q", want, msg)
		}
	}
	if strings.Contains(msg, "OPENAI_API_KEY") {
		t.Fatalf("set variable should not be reported missing: %q", msg)
	}

	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CONFIGURATION {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestLoad_InvalidSelectPolicy(t *testing.T) {
	setRequired(t)
	t.Setenv("TRANSCRIPT_SELECT", "newest")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown selection policy")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("NOTION_API_URL", "http://localhost:9999")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("TRANSCRIPT_SELECT", "latest")
	t.Setenv("ASSEMBLYAI_API_KEY", "aai-test")
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Notion.BaseURL != "http://localhost:9999" {
		t.Fatalf("unexpected base url %s", cfg.Notion.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected model %s", cfg.OpenAI.Model)
	}
	if cfg.Transcript.Select != "latest" {
		t.Fatalf("unexpected select policy %s", cfg.Transcript.Select)
	}
	if !cfg.Assembly.Enabled() {
		t.Fatal("transcription should be on with a key")
	}
	if !cfg.Storage.Enabled() {
		t.Fatal("storage should be on with an endpoint")
	}
	if cfg.Storage.BucketName != "meeting-transcripts" {
		t.Fatalf("unexpected bucket %s", cfg.Storage.BucketName)
	}
}
