package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{JWTSecret: strings.Repeat("s", 32)},
		BCF:  BCFConfig{MaxImportBytes: 1 << 20, MaxExportTopics: 100},
		Vocabulary: VocabularyConfig{
			TypesRaw:    "Clash,Inquiry",
			StatusesRaw: "Open,Closed",
			LabelsRaw:   "MEP",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Vocabulary.Types) != 2 {
		t.Errorf("types: got %v", cfg.Vocabulary.Types)
	}
	if len(cfg.Vocabulary.Statuses) != 2 {
		t.Errorf("statuses: got %v", cfg.Vocabulary.Statuses)
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short jwt secret")
	}
}

func TestValidate_EmptyStatuses(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Vocabulary.StatusesRaw = " , "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty status vocabulary")
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"a,b,c", 3},
		{" a , b ", 2},
		{"", 0},
		{",,", 0},
	}
	for _, tt := range tests {
		if got := ParseList(tt.raw); len(got) != tt.want {
			t.Errorf("ParseList(%q) = %v, want %d items", tt.raw, got, tt.want)
		}
	}
}
