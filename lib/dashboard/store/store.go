package dashboardstore

import (
	"time"

	"gorm.io/gorm"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type StatusCount struct {
	Status string
	Count  int64
}

type SourceCount struct {
	Source string
	Count  int64
}

type SourceStatusCount struct {
	Source string
	Status string
	Count  int64
}

type DepartmentCount struct {
	DepartmentID string
	Status       string
	Count        int64
}

type Provider interface {
	JobCountByStatus() (list []StatusCount, err error)
	CandidateCountByStatus() (list []StatusCount, err error)
	CandidatePoolCount() (count int64, err error)
	ApplicationCountByStatus() (list []StatusCount, err error)
	CandidateCountBySource() (list []SourceCount, err error)
	CandidateCountBySourceAndStatus() (list []SourceStatusCount, err error)
	RecentApplications(limit int) (list []dbmodels.Application, err error)
	RecentCandidates(limit int) (list []dbmodels.Candidate, err error)
	PoolCandidates() (list []dbmodels.Candidate, err error)
	JobCountByDepartment() (list []DepartmentCount, err error)
	ApplicationCountByDepartment() (list []DepartmentCount, err error)
	PendingApprovalJobs() (list []dbmodels.Job, err error)
	UpcomingInterviews(from, to time.Time) (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) JobCountByStatus() (list []StatusCount, err error) {
	err = i.db.Model(dbmodels.Job{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&list).
		Error
	return list, err
}

func (i impl) CandidateCountByStatus() (list []StatusCount, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&list).
		Error
	return list, err
}

func (i impl) CandidatePoolCount() (count int64, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Where("is_in_pool = ?", true).
		Count(&count).
		Error
	return count, err
}

func (i impl) ApplicationCountByStatus() (list []StatusCount, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&list).
		Error
	return list, err
}

func (i impl) CandidateCountBySource() (list []SourceCount, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Select("source, count(*) as count").
		Group("source").
		Scan(&list).
		Error
	return list, err
}

func (i impl) CandidateCountBySourceAndStatus() (list []SourceStatusCount, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Select("source, status, count(*) as count").
		Group("source, status").
		Scan(&list).
		Error
	return list, err
}

func (i impl) RecentApplications(limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Preload("Candidate").
		Preload("Job").
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	return list, err
}

func (i impl) RecentCandidates(limit int) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	return list, err
}

func (i impl) PoolCandidates() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Where("is_in_pool = ?", true).
		Find(&list).
		Error
	return list, err
}

func (i impl) JobCountByDepartment() (list []DepartmentCount, err error) {
	err = i.db.Model(dbmodels.Job{}).
		Select("department_id, status, count(*) as count").
		Where("department_id IS NOT NULL").
		Group("department_id, status").
		Scan(&list).
		Error
	return list, err
}

func (i impl) PendingApprovalJobs() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Where("status = ?", models.JobStatusPendingApproval).
		Preload("Department").
		Order("created_at").
		Find(&list).
		Error
	return list, err
}

func (i impl) UpcomingInterviews(from, to time.Time) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Where("status = ?", models.InterviewStatusScheduled).
		Where("scheduled_at BETWEEN ? AND ?", from, to).
		Preload("Candidate").
		Order("scheduled_at").
		Find(&list).
		Error
	return list, err
}

func (i impl) ApplicationCountByDepartment() (list []DepartmentCount, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Select("jobs.department_id as department_id, applications.status as status, count(*) as count").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.department_id IS NOT NULL").
		Group("jobs.department_id, applications.status").
		Scan(&list).
		Error
	return list, err
}
