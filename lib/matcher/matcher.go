package matcher

import (
	"regexp"
	"strings"

	dbmodels "hrms-backend/models/db"
)

// подбор кандидатов в пул вакансии по навыкам и опыту

// диапазон опыта распознаётся только в начале строки, "Senior 3-5" ограничением не считается
var expRangeRe = regexp.MustCompile(`^(\d+)-(\d+)`)

// ExtractSkills разбирает строку навыков через запятую в нормализованное множество
func ExtractSkills(raw string) map[string]bool {
	result := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill != "" {
			result[skill] = true
		}
	}
	return result
}

// ParseExperienceRange извлекает диапазон лет из требования вида "3-5 лет".
// Если диапазон не указан, ограничение по опыту не применяется
func ParseExperienceRange(level string) (min, max int, ok bool) {
	match := expRangeRe.FindStringSubmatch(level)
	if match == nil {
		return 0, 0, false
	}
	min = atoi(match[1])
	max = atoi(match[2])
	return min, max, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// IsMatch проверяет кандидата на соответствие требованиям вакансии
func IsMatch(job dbmodels.Job, candidate dbmodels.Candidate) bool {
	required := ExtractSkills(job.RequiredSkills)
	if len(required) == 0 {
		return false
	}
	if min, max, ok := ParseExperienceRange(job.ExperienceLevel); ok {
		// ограничение задано, кандидат без указанного опыта не проходит
		if candidate.ExperienceYears == nil {
			return false
		}
		years := *candidate.ExperienceYears
		if years < min || years > max {
			return false
		}
	}
	candidateSkills := ExtractSkills(candidate.ExperienceDetails)
	for skill := range candidateSkills {
		if required[skill] {
			return true
		}
	}
	return false
}

// SelectForPool отбирает первых подходящих кандидатов, не больше числа вакантных мест
func SelectForPool(job dbmodels.Job, candidates []dbmodels.Candidate) []dbmodels.Candidate {
	limit := job.NumberOfVacancies
	if limit <= 0 {
		limit = 1
	}
	result := make([]dbmodels.Candidate, 0, limit)
	for _, candidate := range candidates {
		if len(result) >= limit {
			break
		}
		if IsMatch(job, candidate) {
			result = append(result, candidate)
		}
	}
	return result
}
