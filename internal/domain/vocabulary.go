package domain

import "slices"

// Vocabulary holds the configured value sets for topic type, status, label
// and assignee. It is built once from configuration and passed explicitly to
// the services that need it; values outside a set are tolerated as free
// text (soft constraint), so the Known checks are advisory, not a gate.
type Vocabulary struct {
	Types     []string
	Statuses  []string
	Labels    []string
	Assignees []string
}

// KnownType reports whether t belongs to the configured type set.
func (v Vocabulary) KnownType(t string) bool {
	return slices.Contains(v.Types, t)
}

// KnownStatus reports whether s belongs to the configured status set.
func (v Vocabulary) KnownStatus(s string) bool {
	return slices.Contains(v.Statuses, s)
}

// KnownLabel reports whether l belongs to the configured label set.
func (v Vocabulary) KnownLabel(l string) bool {
	return slices.Contains(v.Labels, l)
}
