package dashboardhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hrms-backend/db"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func setupTestDB(t *testing.T) {
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	db.DB = conn
	require.Nil(t, db.AutoMigrateDB())
	NewHandler()
}

func createCandidate(t *testing.T, status models.CandidateStatus, source models.CandidateSource,
	inPool bool, skills string, years *int) dbmodels.Candidate {
	candidate := dbmodels.Candidate{
		FirstName:         "Тест",
		LastName:          fmt.Sprintf("Кандидат-%v", time.Now().UnixNano()),
		Email:             "test@example.com",
		Status:            status,
		Source:            source,
		IsInPool:          inPool,
		ExperienceDetails: skills,
		ExperienceYears:   years,
	}
	require.Nil(t, db.DB.Create(&candidate).Error)
	return candidate
}

func createJob(t *testing.T, status models.JobStatus, departmentID *string) dbmodels.Job {
	job := dbmodels.Job{
		PositionTitle:     "Инженер",
		PositionCode:      fmt.Sprintf("ENG-%v", time.Now().UnixNano()),
		EmploymentType:    models.JobTypeFullTime,
		NumberOfVacancies: 1,
		Status:            status,
		DepartmentID:      departmentID,
	}
	require.Nil(t, db.DB.Create(&job).Error)
	return job
}

func createApplication(t *testing.T, candidateID, jobID string, status models.ApplicationStatus) {
	application := dbmodels.Application{
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      status,
		AppliedAt:   time.Now(),
	}
	require.Nil(t, db.DB.Create(&application).Error)
}

func TestOverview(t *testing.T) {
	setupTestDB(t)
	job := createJob(t, models.JobStatusActive, nil)
	createJob(t, models.JobStatusDraft, nil)
	first := createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "", nil)
	second := createCandidate(t, models.CandidateStatusShortlisted, models.CandidateSourceReference, true, "", nil)
	createApplication(t, first.ID, job.ID, models.ApplicationStatusApplied)
	createApplication(t, second.ID, job.ID, models.ApplicationStatusShortlisted)

	result := Instance.Overview()
	require.EqualValues(t, 2, result.Jobs.Total)
	require.EqualValues(t, 1, result.Jobs.Active)
	require.EqualValues(t, 1, result.Jobs.Draft)
	require.EqualValues(t, 2, result.Candidates.Total)
	require.EqualValues(t, 1, result.Candidates.New)
	require.EqualValues(t, 1, result.Candidates.Shortlisted)
	require.EqualValues(t, 1, result.Candidates.InPool)
	require.EqualValues(t, 2, result.Applications.Total)
	require.EqualValues(t, 1, result.Applications.Applied)
	require.EqualValues(t, 1, result.Applications.Shortlisted)
	require.Len(t, result.SourceBreakdown, 2)
}

func TestFunnel(t *testing.T) {
	setupTestDB(t)
	job := createJob(t, models.JobStatusActive, nil)
	statuses := []models.ApplicationStatus{
		models.ApplicationStatusApplied,
		models.ApplicationStatusApplied,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusInterviewed,
		models.ApplicationStatusHired,
	}
	for _, status := range statuses {
		candidate := createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "", nil)
		createApplication(t, candidate.ID, job.ID, status)
	}

	result := Instance.Funnel()
	require.Len(t, result.Funnel, 4)
	require.Equal(t, "Отклики", result.Funnel[0].Stage)
	require.EqualValues(t, 5, result.Funnel[0].Count)
	require.Equal(t, "Шортлист", result.Funnel[1].Stage)
	require.EqualValues(t, 1, result.Funnel[1].Count)
	require.Equal(t, "Собеседования", result.Funnel[2].Stage)
	require.EqualValues(t, 1, result.Funnel[2].Count)
	require.Equal(t, "Наняты", result.Funnel[3].Stage)
	require.EqualValues(t, 1, result.Funnel[3].Count)
}

func TestSourceEffectiveness(t *testing.T) {
	setupTestDB(t)
	createCandidate(t, models.CandidateStatusShortlisted, models.CandidateSourceJobPortal, false, "", nil)
	createCandidate(t, models.CandidateStatusHired, models.CandidateSourceJobPortal, false, "", nil)
	createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "", nil)
	createCandidate(t, models.CandidateStatusNew, models.CandidateSourceReference, false, "", nil)

	result := Instance.Funnel()
	require.Len(t, result.SourceEffectiveness, 2)
	// источники отсортированы по алфавиту
	portal := result.SourceEffectiveness[0]
	require.Equal(t, string(models.CandidateSourceJobPortal), portal.Source)
	require.EqualValues(t, 3, portal.Total)
	require.EqualValues(t, 1, portal.Shortlisted)
	require.EqualValues(t, 1, portal.Hired)
	require.InDelta(t, 33.333, portal.ShortlistRate, 0.01)
	require.InDelta(t, 33.333, portal.HireRate, 0.01)
}

func TestPool(t *testing.T) {
	setupTestDB(t)
	junior := 1
	middle := 4
	senior := 12
	createCandidate(t, models.CandidateStatusPool, models.CandidateSourceJobPortal, true, "Go, SQL", &junior)
	createCandidate(t, models.CandidateStatusPool, models.CandidateSourceJobPortal, true, "go, Docker", &middle)
	createCandidate(t, models.CandidateStatusPool, models.CandidateSourceReference, true, "", &senior)
	// кандидат вне пула не учитывается
	createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "Go", nil)

	result := Instance.Pool()
	require.EqualValues(t, 3, result.TotalInPool)
	require.NotEmpty(t, result.TopSkills)
	// навыки считаются без учета регистра
	require.Equal(t, "go", result.TopSkills[0].Skill)
	require.EqualValues(t, 2, result.TopSkills[0].Count)
	require.EqualValues(t, 1, result.ExperienceLevels["0-2"])
	require.EqualValues(t, 1, result.ExperienceLevels["3-5"])
	require.EqualValues(t, 1, result.ExperienceLevels["10+"])
}

func TestDepartments(t *testing.T) {
	setupTestDB(t)
	department := dbmodels.Department{Name: "Разработка"}
	require.Nil(t, db.DB.Create(&department).Error)

	job := createJob(t, models.JobStatusActive, &department.ID)
	createJob(t, models.JobStatusDraft, &department.ID)
	candidate := createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "", nil)
	createApplication(t, candidate.ID, job.ID, models.ApplicationStatusHired)
	createApplication(t, candidate.ID, job.ID, models.ApplicationStatusApplied)

	result := Instance.Departments()
	require.Len(t, result.JobsByDepartment, 1)
	require.Equal(t, department.ID, result.JobsByDepartment[0].DepartmentID)
	require.EqualValues(t, 2, result.JobsByDepartment[0].TotalJobs)
	require.EqualValues(t, 1, result.JobsByDepartment[0].ActiveJobs)

	require.Len(t, result.ApplicationsByDepartment, 1)
	require.EqualValues(t, 2, result.ApplicationsByDepartment[0].TotalApplications)
	require.EqualValues(t, 1, result.ApplicationsByDepartment[0].Hired)
	require.InDelta(t, 50.0, result.ApplicationsByDepartment[0].HireRate, 0.001)
}

func TestStats(t *testing.T) {
	setupTestDB(t)
	createJob(t, models.JobStatusActive, nil)
	createCandidate(t, models.CandidateStatusShortlisted, models.CandidateSourceJobPortal, false, "", nil)

	cards := Instance.Stats()
	require.Len(t, cards, 4)
	require.Equal(t, "Активные вакансии", cards[0].Name)
	require.Equal(t, "1", cards[0].Value)
	require.Equal(t, "В шортлисте", cards[2].Name)
	require.Equal(t, "1", cards[2].Value)
}

func TestPendingApprovals(t *testing.T) {
	setupTestDB(t)
	department := dbmodels.Department{Name: "Продажи"}
	require.Nil(t, db.DB.Create(&department).Error)
	job := createJob(t, models.JobStatusPendingApproval, &department.ID)
	createJob(t, models.JobStatusActive, nil)

	list := Instance.PendingApprovals()
	require.Len(t, list, 1)
	require.Equal(t, job.ID, list[0].ID)
	require.Equal(t, "Продажи", list[0].Department)
}

func TestUpcomingInterviews(t *testing.T) {
	setupTestDB(t)
	job := createJob(t, models.JobStatusActive, nil)
	candidate := createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "", nil)
	application := dbmodels.Application{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      models.ApplicationStatusApplied,
		AppliedAt:   time.Now(),
	}
	require.Nil(t, db.DB.Create(&application).Error)

	soon := dbmodels.Interview{
		ApplicationID: application.ID,
		JobID:         job.ID,
		CandidateID:   candidate.ID,
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		Status:        models.InterviewStatusScheduled,
	}
	require.Nil(t, db.DB.Create(&soon).Error)
	// собеседование за пределами недели не попадает в список
	far := dbmodels.Interview{
		ApplicationID: application.ID,
		JobID:         job.ID,
		CandidateID:   candidate.ID,
		ScheduledAt:   time.Now().AddDate(0, 1, 0),
		Status:        models.InterviewStatusScheduled,
	}
	require.Nil(t, db.DB.Create(&far).Error)

	list := Instance.UpcomingInterviews()
	require.Len(t, list, 1)
	require.Equal(t, soon.ID, list[0].ID)
	require.Equal(t, candidate.GetFIO(), list[0].CandidateFIO)
}

func TestActivity(t *testing.T) {
	setupTestDB(t)
	job := createJob(t, models.JobStatusActive, nil)
	for idx := 0; idx < 3; idx++ {
		candidate := createCandidate(t, models.CandidateStatusNew, models.CandidateSourceJobPortal, false, "", nil)
		createApplication(t, candidate.ID, job.ID, models.ApplicationStatusApplied)
	}

	result := Instance.Activity(4)
	require.Len(t, result, 4)
	for idx := 1; idx < len(result); idx++ {
		require.False(t, result[idx].Timestamp.After(result[idx-1].Timestamp))
	}
}
