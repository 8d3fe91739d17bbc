package config

import (
	"fmt"
	"strings"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.BCF.MaxImportBytes <= 0 {
		return fmt.Errorf("bcf.max_import_bytes must be > 0 (got %d)", c.BCF.MaxImportBytes)
	}
	if c.BCF.MaxExportTopics <= 0 {
		return fmt.Errorf("bcf.max_export_topics must be > 0 (got %d)", c.BCF.MaxExportTopics)
	}

	if err := c.Vocabulary.validate(); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}

	return nil
}

func (v *VocabularyConfig) validate() error {
	v.Types = ParseList(v.TypesRaw)
	v.Statuses = ParseList(v.StatusesRaw)
	v.Labels = ParseList(v.LabelsRaw)
	v.Assignees = ParseList(v.AssigneesRaw)

	if len(v.Types) == 0 {
		return fmt.Errorf("types must not be empty")
	}
	if len(v.Statuses) == 0 {
		return fmt.Errorf("statuses must not be empty")
	}

	return nil
}

// Domain converts the parsed vocabulary into its domain representation.
func (v VocabularyConfig) Domain() domain.Vocabulary {
	return domain.Vocabulary{
		Types:     v.Types,
		Statuses:  v.Statuses,
		Labels:    v.Labels,
		Assignees: v.Assignees,
	}
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}

	if len(items) == 0 {
		return nil
	}
	return items
}
