package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Job struct {
	BaseModel
	PositionTitle      string  `gorm:"type:varchar(255)"`
	PositionCode       string  `gorm:"type:varchar(100);uniqueIndex"`
	Level              string  `gorm:"type:varchar(100)"`
	Grade              string  `gorm:"type:varchar(100)"`
	DepartmentID       *string `gorm:"type:varchar(36)"`
	Department         *Department
	SubDepartment      string              `gorm:"type:varchar(255)"`
	ReportingToTitle   string              `gorm:"type:varchar(255)"`
	LocationType       models.LocationType `gorm:"type:varchar(50)"`
	LocationDetails    string              `gorm:"type:varchar(255)"`
	RequiredSkills     string              // требуемые навыки через запятую
	ExperienceLevel    string              `gorm:"type:varchar(255)"` // диапазон вида "3-5"
	JobDescription     string
	JobSpecification   string
	NumberOfVacancies  int `gorm:"default:1"`
	CompensationMin    int
	CompensationMax    int
	EmploymentType     models.JobType `gorm:"type:varchar(100)"`
	HiringDeadline     *time.Time
	RecruiterID        *string `gorm:"type:varchar(36)"`
	Recruiter          *User   `gorm:"foreignKey:RecruiterID"`
	WorkflowTemplateID *string `gorm:"type:varchar(36)"`
	WorkflowTemplate   *WorkflowTemplate
	AgencyID           *string `gorm:"type:varchar(36)"`
	Agency             *RecruitmentAgency `gorm:"foreignKey:AgencyID"`
	Status             models.JobStatus   `gorm:"type:varchar(50);index"`
	IsPublished        bool
	CreatedByID        string     `gorm:"type:varchar(36)"`
	CreatedBy          *User      `gorm:"foreignKey:CreatedByID"`
	ApprovedByID       *string    `gorm:"type:varchar(36)"`
	ApprovedBy         *User      `gorm:"foreignKey:ApprovedByID"`
	ApprovedAt         *time.Time
}
