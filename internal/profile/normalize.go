// Package profile turns raw provider records into canonical candidate
// profiles and drives the acquisition pipeline that feeds the document store.
package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/types"
)

var validate = validator.New()

// Normalize converts a raw provider record into a canonical profile.
// The result is deterministic: identical raw input always yields an
// identical CanonicalText, which is what keeps embeddings reproducible.
func Normalize(raw *types.RawProfile) (*types.CandidateProfile, error) {
	if raw == nil {
		return nil, fmt.Errorf("raw profile is nil")
	}

	profile := &types.CandidateProfile{
		Identifier:  raw.Username,
		DisplayName: raw.Name,
		Headline:    raw.Headline,
		Summary:     raw.Summary,
		Location:    raw.Location,
		Skills:      types.CanonicalSkills(raw.Skills),
		SourceURL:   fmt.Sprintf("https://www.%s/in/%s", search.ProfileHost, raw.Username),
	}

	for _, exp := range raw.Experience {
		profile.Experience = append(profile.Experience, types.ExperienceEntry{
			Title:       exp.Title,
			Company:     exp.Company,
			DateRange:   exp.DateRange,
			Description: exp.Description,
		})
	}

	for _, edu := range raw.Education {
		profile.Education = append(profile.Education, types.EducationEntry{
			School:    edu.School,
			Degree:    edu.Degree,
			Field:     edu.Field,
			DateRange: edu.DateRange,
		})
	}

	profile.CanonicalText = profile.BuildCanonicalText()

	if err := validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return profile, nil
}
