package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	apimodels "hrms-backend/models/api"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type JobData struct {
	PositionTitle      string              `json:"position_title"`
	PositionCode       string              `json:"position_code"`
	Level              string              `json:"level"`
	Grade              string              `json:"grade"`
	DepartmentID       string              `json:"department_id"`
	SubDepartment      string              `json:"sub_department"`
	ReportingToTitle   string              `json:"reporting_to_title"`
	LocationType       models.LocationType `json:"location_type"`
	LocationDetails    string              `json:"location_details"`
	RequiredSkills     string              `json:"required_skills"`
	ExperienceLevel    string              `json:"experience_level"`
	JobDescription     string              `json:"job_description"`
	JobSpecification   string              `json:"job_specification"`
	NumberOfVacancies  int                 `json:"number_of_vacancies"`
	CompensationMin    int                 `json:"compensation_min"`
	CompensationMax    int                 `json:"compensation_max"`
	EmploymentType     models.JobType      `json:"employment_type"`
	HiringDeadline     *time.Time          `json:"hiring_deadline"`
	RecruiterID        string              `json:"recruiter_id"`
	WorkflowTemplateID string              `json:"workflow_template_id"`
	AgencyID           string              `json:"agency_id"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.PositionTitle) == "" {
		return errors.New("не указано название позиции")
	}
	if strings.TrimSpace(r.PositionCode) == "" {
		return errors.New("не указан код позиции")
	}
	if r.EmploymentType == "" {
		return errors.New("не указан тип занятости")
	}
	if r.NumberOfVacancies < 0 {
		return errors.New("число вакантных мест не может быть отрицательным")
	}
	return nil
}

type JobView struct {
	ID                string           `json:"id"`
	PositionTitle     string           `json:"position_title"`
	PositionCode      string           `json:"position_code"`
	DepartmentID      string           `json:"department_id,omitempty"`
	DepartmentName    string           `json:"department_name,omitempty"`
	LocationType      models.LocationType `json:"location_type"`
	RequiredSkills    string           `json:"required_skills"`
	ExperienceLevel   string           `json:"experience_level"`
	NumberOfVacancies int              `json:"number_of_vacancies"`
	EmploymentType    models.JobType   `json:"employment_type"`
	Status            models.JobStatus `json:"status"`
	IsPublished       bool             `json:"is_published"`
	RecruiterFIO      string           `json:"recruiter_fio,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	ApprovedAt        *time.Time       `json:"approved_at,omitempty"`
}

func JobConvert(rec dbmodels.Job) JobView {
	view := JobView{
		ID:                rec.ID,
		PositionTitle:     rec.PositionTitle,
		PositionCode:      rec.PositionCode,
		LocationType:      rec.LocationType,
		RequiredSkills:    rec.RequiredSkills,
		ExperienceLevel:   rec.ExperienceLevel,
		NumberOfVacancies: rec.NumberOfVacancies,
		EmploymentType:    rec.EmploymentType,
		Status:            rec.Status,
		IsPublished:       rec.IsPublished,
		CreatedAt:         rec.CreatedAt,
		ApprovedAt:        rec.ApprovedAt,
	}
	if rec.DepartmentID != nil {
		view.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.Recruiter != nil {
		view.RecruiterFIO = rec.Recruiter.GetFullName()
	}
	return view
}

type JobFilter struct {
	apimodels.Pagination
	Status       models.JobStatus `json:"status"`
	DepartmentID string           `json:"department_id"`
	Search       string           `json:"search"`
}
