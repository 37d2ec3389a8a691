// Package types provides type definitions for structured data used throughout the talent-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"
)

// RawProfile is the provider-shaped profile record returned by the
// profile-data API, before normalization. Field names mirror the wire format.
type RawProfile struct {
	Username  string         `json:"username"`
	Name      string         `json:"name,omitempty"`
	Headline  string         `json:"headline,omitempty"`
	Summary   string         `json:"summary,omitempty"`
	Location  string         `json:"location,omitempty"`
	Experience []RawExperience `json:"experience,omitempty"`
	Education  []RawEducation  `json:"education,omitempty"`
	Skills     []string        `json:"skills,omitempty"`
}

// RawExperience is a single position entry in a raw profile.
type RawExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	DateRange   string `json:"date_range,omitempty"`
	Description string `json:"description,omitempty"`
}

// RawEducation is a single education entry in a raw profile.
type RawEducation struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	DateRange string `json:"date_range,omitempty"`
}

// CandidateProfile is the canonical, normalized candidate record produced by
// profile acquisition and consumed by the document store.
type CandidateProfile struct {
	Identifier  string            `json:"identifier" validate:"required"`
	DisplayName string            `json:"display_name,omitempty"`
	Headline    string            `json:"headline,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Location    string            `json:"location,omitempty"`
	Experience  []ExperienceEntry `json:"experience,omitempty"`
	Education   []EducationEntry  `json:"education,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
	SourceURL   string            `json:"source_url,omitempty"`

	// CanonicalText is the deterministic textual serialization of the fields
	// above. It is the single artifact that gets embedded and stored, and is
	// regenerated by Normalize whenever the source fields change.
	CanonicalText string `json:"canonical_text,omitempty"`
}

// ExperienceEntry is a normalized position entry.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	DateRange   string `json:"date_range,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is a normalized education entry.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	DateRange string `json:"date_range,omitempty"`
}

// BuildCanonicalText serializes the profile into its canonical text form.
// The field order below is a compatibility contract: stored embeddings were
// computed from text in exactly this shape, so reordering fields is a
// breaking schema change for every existing collection.
func (p *CandidateProfile) BuildCanonicalText() string {
	var sb strings.Builder

	sb.WriteString(p.DisplayName)
	sb.WriteString("\n")
	sb.WriteString(p.Headline)
	sb.WriteString("\n")
	sb.WriteString(p.Summary)

	for _, exp := range p.Experience {
		sb.WriteString("\nRole: ")
		sb.WriteString(exp.Title)
		sb.WriteString("\nCompany: ")
		sb.WriteString(exp.Company)
		sb.WriteString("\n")
		if exp.DateRange != "" {
			sb.WriteString("Duration: ")
			sb.WriteString(exp.DateRange)
			sb.WriteString("\n")
		}
		if exp.Description != "" {
			sb.WriteString("Description: ")
			sb.WriteString(exp.Description)
			sb.WriteString("\n")
		}
	}

	for _, edu := range p.Education {
		sb.WriteString("\nEducation: ")
		sb.WriteString(edu.School)
		sb.WriteString(", ")
		sb.WriteString(edu.Degree)
		sb.WriteString(", ")
		sb.WriteString(edu.Field)
		sb.WriteString("\n")
	}

	if len(p.Skills) > 0 {
		sb.WriteString("\nSkills: ")
		sb.WriteString(strings.Join(CanonicalSkills(p.Skills), ", "))
	}

	return sb.String()
}

// CanonicalSkills returns skills deduplicated and sorted. Skills carry set
// semantics, so the serialized order must not depend on provider order.
func CanonicalSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
