package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCanonicalText_FullProfile(t *testing.T) {
	profile := CandidateProfile{
		Identifier:  "jane-doe",
		DisplayName: "Jane Doe",
		Headline:    "Data Engineer",
		Summary:     "Builds pipelines.",
		Experience: []ExperienceEntry{
			{Title: "Data Engineer", Company: "Acme", DateRange: "2020-2024", Description: "ETL work"},
			{Title: "Analyst", Company: "Initech"},
		},
		Education: []EducationEntry{
			{School: "MIT", Degree: "BSc", Field: "CS"},
		},
		Skills: []string{"Python", "SQL"},
	}

	text := profile.BuildCanonicalText()

	assert.Equal(t, "Jane Doe\nData Engineer\nBuilds pipelines."+
		"\nRole: Data Engineer\nCompany: Acme\nDuration: 2020-2024\nDescription: ETL work\n"+
		"\nRole: Analyst\nCompany: Initech\n"+
		"\nEducation: MIT, BSc, CS\n"+
		"\nSkills: Python, SQL", text)
}

func TestBuildCanonicalText_MinimalProfile(t *testing.T) {
	profile := CandidateProfile{Identifier: "jane-doe"}
	assert.Equal(t, "\n\n", profile.BuildCanonicalText())
}

func TestCanonicalSkills(t *testing.T) {
	assert.Equal(t,
		[]string{"Go", "Python", "SQL"},
		CanonicalSkills([]string{"SQL", "Python", " Go ", "SQL", "", "Python"}))

	assert.Empty(t, CanonicalSkills(nil))
}
