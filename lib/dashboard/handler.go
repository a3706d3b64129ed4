package dashboardhandler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	dashboardstore "hrms-backend/lib/dashboard/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	dashboardapimodels "hrms-backend/models/api/dashboard"
)

// агрегатор главной страницы: при ошибках отдельных запросов
// возвращаются нулевые значения, ошибка пишется в лог

type Provider interface {
	Overview() dashboardapimodels.Overview
	Stats() []dashboardapimodels.StatCard
	Activity(limit int) []dashboardapimodels.Activity
	Funnel() dashboardapimodels.Funnel
	Pool() dashboardapimodels.PoolStats
	Departments() dashboardapimodels.DepartmentStats
	PendingApprovals() []dashboardapimodels.PendingJob
	UpcomingInterviews() []dashboardapimodels.UpcomingInterview
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: dashboardstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store dashboardstore.Provider
}

func (i impl) Overview() dashboardapimodels.Overview {
	result := dashboardapimodels.Overview{
		SourceBreakdown: []dashboardapimodels.SourceCount{},
	}

	jobCounts, err := i.store.JobCountByStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения статистики по вакансиям")
	}
	for _, item := range jobCounts {
		result.Jobs.Total += item.Count
		switch models.JobStatus(item.Status) {
		case models.JobStatusActive:
			result.Jobs.Active = item.Count
		case models.JobStatusPendingApproval:
			result.Jobs.PendingApproval = item.Count
		case models.JobStatusDraft:
			result.Jobs.Draft = item.Count
		}
	}

	candidateCounts, err := i.store.CandidateCountByStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения статистики по кандидатам")
	}
	for _, item := range candidateCounts {
		result.Candidates.Total += item.Count
		switch models.CandidateStatus(item.Status) {
		case models.CandidateStatusNew:
			result.Candidates.New = item.Count
		case models.CandidateStatusShortlisted:
			result.Candidates.Shortlisted = item.Count
		case models.CandidateStatusInterviewed:
			result.Candidates.Interviewed = item.Count
		}
	}
	poolCount, err := i.store.CandidatePoolCount()
	if err != nil {
		log.WithError(err).Error("ошибка получения размера пула кандидатов")
	}
	result.Candidates.InPool = poolCount

	applicationCounts, err := i.store.ApplicationCountByStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения статистики по откликам")
	}
	for _, item := range applicationCounts {
		result.Applications.Total += item.Count
		switch models.ApplicationStatus(item.Status) {
		case models.ApplicationStatusApplied:
			result.Applications.Applied = item.Count
		case models.ApplicationStatusShortlisted:
			result.Applications.Shortlisted = item.Count
		case models.ApplicationStatusInterviewed:
			result.Applications.Interviewed = item.Count
		case models.ApplicationStatusHired:
			result.Applications.Hired = item.Count
		}
	}

	sourceCounts, err := i.store.CandidateCountBySource()
	if err != nil {
		log.WithError(err).Error("ошибка получения статистики по источникам")
	}
	for _, item := range sourceCounts {
		if item.Source == "" {
			continue
		}
		result.SourceBreakdown = append(result.SourceBreakdown, dashboardapimodels.SourceCount{
			Source: item.Source,
			Count:  item.Count,
		})
	}
	return result
}

// Stats формирует карточки показателей для главной страницы
func (i impl) Stats() []dashboardapimodels.StatCard {
	overview := i.Overview()
	return []dashboardapimodels.StatCard{
		{
			Name:  "Активные вакансии",
			Value: fmt.Sprintf("%v", overview.Jobs.Active),
			Icon:  "briefcase",
		},
		{
			Name:  "Кандидаты",
			Value: fmt.Sprintf("%v", overview.Candidates.Total),
			Icon:  "users",
		},
		{
			Name:  "В шортлисте",
			Value: fmt.Sprintf("%v", overview.Candidates.Shortlisted),
			Icon:  "star",
		},
		{
			Name:  "Наняты",
			Value: fmt.Sprintf("%v", overview.Applications.Hired),
			Icon:  "check-circle",
		},
	}
}

// PendingApprovals - вакансии, ожидающие согласования
func (i impl) PendingApprovals() []dashboardapimodels.PendingJob {
	result := []dashboardapimodels.PendingJob{}
	jobs, err := i.store.PendingApprovalJobs()
	if err != nil {
		log.WithError(err).Error("ошибка получения вакансий на согласовании")
		return result
	}
	for _, rec := range jobs {
		item := dashboardapimodels.PendingJob{
			ID:            rec.ID,
			PositionTitle: rec.PositionTitle,
			PositionCode:  rec.PositionCode,
			CreatedAt:     rec.CreatedAt,
		}
		if rec.Department != nil {
			item.Department = rec.Department.Name
		}
		result = append(result, item)
	}
	return result
}

// UpcomingInterviews - собеседования на ближайшие 7 дней
func (i impl) UpcomingInterviews() []dashboardapimodels.UpcomingInterview {
	result := []dashboardapimodels.UpcomingInterview{}
	now := time.Now()
	interviews, err := i.store.UpcomingInterviews(now, now.AddDate(0, 0, 7))
	if err != nil {
		log.WithError(err).Error("ошибка получения предстоящих собеседований")
		return result
	}
	for _, rec := range interviews {
		item := dashboardapimodels.UpcomingInterview{
			ID:          rec.ID,
			JobID:       rec.JobID,
			ScheduledAt: rec.ScheduledAt,
		}
		if rec.Candidate != nil {
			item.CandidateFIO = rec.Candidate.GetFIO()
		}
		result = append(result, item)
	}
	return result
}

func (i impl) Activity(limit int) []dashboardapimodels.Activity {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	result := []dashboardapimodels.Activity{}

	applications, err := i.store.RecentApplications(limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения последних откликов")
	}
	for _, rec := range applications {
		item := dashboardapimodels.Activity{
			ID:        rec.ID,
			Type:      "application",
			Title:     "Новый отклик",
			Timestamp: rec.CreatedAt,
		}
		if rec.Candidate != nil && rec.Job != nil {
			item.Description = fmt.Sprintf("%v → %v", rec.Candidate.GetFIO(), rec.Job.PositionTitle)
		}
		result = append(result, item)
	}

	candidates, err := i.store.RecentCandidates(limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения последних кандидатов")
	}
	for _, rec := range candidates {
		result = append(result, dashboardapimodels.Activity{
			ID:          rec.ID,
			Type:        "candidate",
			Title:       "Новый кандидат",
			Description: rec.GetFIO(),
			Timestamp:   rec.CreatedAt,
		})
	}

	sort.Slice(result, func(a, b int) bool {
		return result[a].Timestamp.After(result[b].Timestamp)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (i impl) Funnel() dashboardapimodels.Funnel {
	result := dashboardapimodels.Funnel{
		Funnel:              []dashboardapimodels.FunnelStage{},
		SourceEffectiveness: []dashboardapimodels.SourceEffectiveness{},
	}

	applicationCounts, err := i.store.ApplicationCountByStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения воронки по откликам")
	}
	var total, shortlisted, interviewed, hired int64
	for _, item := range applicationCounts {
		total += item.Count
		switch models.ApplicationStatus(item.Status) {
		case models.ApplicationStatusShortlisted:
			shortlisted = item.Count
		case models.ApplicationStatusInterviewed:
			interviewed = item.Count
		case models.ApplicationStatusHired:
			hired = item.Count
		}
	}
	result.Funnel = []dashboardapimodels.FunnelStage{
		{Stage: "Отклики", Count: total},
		{Stage: "Шортлист", Count: shortlisted},
		{Stage: "Собеседования", Count: interviewed},
		{Stage: "Наняты", Count: hired},
	}

	sourceCounts, err := i.store.CandidateCountBySourceAndStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения эффективности источников")
	}
	bySource := map[string]*dashboardapimodels.SourceEffectiveness{}
	order := []string{}
	for _, item := range sourceCounts {
		if item.Source == "" {
			continue
		}
		entry, ok := bySource[item.Source]
		if !ok {
			entry = &dashboardapimodels.SourceEffectiveness{Source: item.Source}
			bySource[item.Source] = entry
			order = append(order, item.Source)
		}
		entry.Total += item.Count
		switch models.CandidateStatus(item.Status) {
		case models.CandidateStatusShortlisted:
			entry.Shortlisted += item.Count
		case models.CandidateStatusHired:
			entry.Hired += item.Count
		}
	}
	sort.Strings(order)
	for _, source := range order {
		entry := bySource[source]
		if entry.Total > 0 {
			entry.ShortlistRate = float64(entry.Shortlisted) / float64(entry.Total) * 100
			entry.HireRate = float64(entry.Hired) / float64(entry.Total) * 100
		}
		result.SourceEffectiveness = append(result.SourceEffectiveness, *entry)
	}
	return result
}

func (i impl) Pool() dashboardapimodels.PoolStats {
	result := dashboardapimodels.PoolStats{
		TopSkills:        []dashboardapimodels.SkillCount{},
		ExperienceLevels: map[string]int64{},
	}
	candidates, err := i.store.PoolCandidates()
	if err != nil {
		log.WithError(err).Error("ошибка получения пула кандидатов")
		return result
	}
	result.TotalInPool = int64(len(candidates))

	skillCounts := map[string]int64{}
	for _, rec := range candidates {
		for _, part := range strings.Split(rec.ExperienceDetails, ",") {
			skill := strings.ToLower(strings.TrimSpace(part))
			if skill == "" {
				continue
			}
			skillCounts[skill]++
		}
		result.ExperienceLevels[experienceBucket(rec.ExperienceYears)]++
	}
	for skill, count := range skillCounts {
		result.TopSkills = append(result.TopSkills, dashboardapimodels.SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(result.TopSkills, func(a, b int) bool {
		if result.TopSkills[a].Count != result.TopSkills[b].Count {
			return result.TopSkills[a].Count > result.TopSkills[b].Count
		}
		return result.TopSkills[a].Skill < result.TopSkills[b].Skill
	})
	if len(result.TopSkills) > 10 {
		result.TopSkills = result.TopSkills[:10]
	}
	return result
}

func experienceBucket(years *int) string {
	if years == nil {
		return "не указан"
	}
	switch {
	case *years <= 2:
		return "0-2"
	case *years <= 5:
		return "3-5"
	case *years <= 10:
		return "6-10"
	default:
		return "10+"
	}
}

func (i impl) Departments() dashboardapimodels.DepartmentStats {
	result := dashboardapimodels.DepartmentStats{
		JobsByDepartment:         []dashboardapimodels.DepartmentJobStats{},
		ApplicationsByDepartment: []dashboardapimodels.DepartmentApplicationStats{},
	}

	jobCounts, err := i.store.JobCountByDepartment()
	if err != nil {
		log.WithError(err).Error("ошибка получения статистики вакансий по отделам")
	}
	jobByDep := map[string]*dashboardapimodels.DepartmentJobStats{}
	jobOrder := []string{}
	for _, item := range jobCounts {
		entry, ok := jobByDep[item.DepartmentID]
		if !ok {
			entry = &dashboardapimodels.DepartmentJobStats{DepartmentID: item.DepartmentID}
			jobByDep[item.DepartmentID] = entry
			jobOrder = append(jobOrder, item.DepartmentID)
		}
		entry.TotalJobs += item.Count
		if models.JobStatus(item.Status) == models.JobStatusActive {
			entry.ActiveJobs += item.Count
		}
	}
	sort.Strings(jobOrder)
	for _, depID := range jobOrder {
		result.JobsByDepartment = append(result.JobsByDepartment, *jobByDep[depID])
	}

	applicationCounts, err := i.store.ApplicationCountByDepartment()
	if err != nil {
		log.WithError(err).Error("ошибка получения статистики откликов по отделам")
	}
	appByDep := map[string]*dashboardapimodels.DepartmentApplicationStats{}
	appOrder := []string{}
	for _, item := range applicationCounts {
		entry, ok := appByDep[item.DepartmentID]
		if !ok {
			entry = &dashboardapimodels.DepartmentApplicationStats{DepartmentID: item.DepartmentID}
			appByDep[item.DepartmentID] = entry
			appOrder = append(appOrder, item.DepartmentID)
		}
		entry.TotalApplications += item.Count
		switch models.ApplicationStatus(item.Status) {
		case models.ApplicationStatusShortlisted:
			entry.Shortlisted += item.Count
		case models.ApplicationStatusHired:
			entry.Hired += item.Count
		}
	}
	sort.Strings(appOrder)
	for _, depID := range appOrder {
		entry := appByDep[depID]
		if entry.TotalApplications > 0 {
			entry.ShortlistRate = float64(entry.Shortlisted) / float64(entry.TotalApplications) * 100
			entry.HireRate = float64(entry.Hired) / float64(entry.TotalApplications) * 100
		}
		result.ApplicationsByDepartment = append(result.ApplicationsByDepartment, *entry)
	}
	return result
}
