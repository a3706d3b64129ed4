package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "hrms-backend/models/db"
)

func intPtr(v int) *int {
	return &v
}

func TestMatcher(t *testing.T) {
	t.Run("extract skills", func(t *testing.T) {
		skills := ExtractSkills(" Go, PostgreSQL,  ,docker,GO")
		require.Len(t, skills, 3)
		require.True(t, skills["go"])
		require.True(t, skills["postgresql"])
		require.True(t, skills["docker"])
	})

	t.Run("parse experience range", func(t *testing.T) {
		min, max, ok := ParseExperienceRange("3-5 лет")
		require.True(t, ok)
		require.Equal(t, 3, min)
		require.Equal(t, 5, max)

		_, _, ok = ParseExperienceRange("Senior")
		require.False(t, ok)

		min, max, ok = ParseExperienceRange("10-15")
		require.True(t, ok)
		require.Equal(t, 10, min)
		require.Equal(t, 15, max)

		// диапазон не в начале строки не считается ограничением
		_, _, ok = ParseExperienceRange("Senior 3-5")
		require.False(t, ok)
	})

	t.Run("match by skill overlap", func(t *testing.T) {
		job := dbmodels.Job{RequiredSkills: "Go, Kubernetes", ExperienceLevel: "Senior"}
		require.True(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go, sql"}))
		require.False(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "java, sql"}))
		require.False(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: ""}))
	})

	t.Run("experience constraint", func(t *testing.T) {
		job := dbmodels.Job{RequiredSkills: "go", ExperienceLevel: "3-5 лет"}
		require.True(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go", ExperienceYears: intPtr(4)}))
		require.False(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go", ExperienceYears: intPtr(6)}))
		require.False(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go", ExperienceYears: intPtr(2)}))
		// без указанного опыта при заданном диапазоне не проходит
		require.False(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go"}))
	})

	t.Run("no constraint when range absent", func(t *testing.T) {
		job := dbmodels.Job{RequiredSkills: "go", ExperienceLevel: "Middle"}
		require.True(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go"}))

		job = dbmodels.Job{RequiredSkills: "go", ExperienceLevel: "Senior 3-5"}
		require.True(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go", ExperienceYears: intPtr(10)}))
	})

	t.Run("empty required skills never match", func(t *testing.T) {
		job := dbmodels.Job{RequiredSkills: "  "}
		require.False(t, IsMatch(job, dbmodels.Candidate{ExperienceDetails: "go"}))
	})

	t.Run("pool limited by vacancies", func(t *testing.T) {
		job := dbmodels.Job{RequiredSkills: "go", NumberOfVacancies: 2}
		candidates := []dbmodels.Candidate{
			{ExperienceDetails: "go"},
			{ExperienceDetails: "java"},
			{ExperienceDetails: "go, sql"},
			{ExperienceDetails: "go"},
		}
		selected := SelectForPool(job, candidates)
		require.Len(t, selected, 2)
		require.Equal(t, "go", selected[0].ExperienceDetails)
		require.Equal(t, "go, sql", selected[1].ExperienceDetails)
	})

	t.Run("default single vacancy", func(t *testing.T) {
		job := dbmodels.Job{RequiredSkills: "go"}
		candidates := []dbmodels.Candidate{
			{ExperienceDetails: "go"},
			{ExperienceDetails: "go"},
		}
		selected := SelectForPool(job, candidates)
		require.Len(t, selected, 1)
	})
}
