package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Application struct {
	BaseModel
	CandidateID          string     `gorm:"type:varchar(36);index"`
	Candidate            *Candidate `gorm:"foreignKey:CandidateID"`
	JobID                string     `gorm:"type:varchar(36);index"`
	Job                  *Job       `gorm:"foreignKey:JobID"`
	Status               models.ApplicationStatus `gorm:"type:varchar(50);index"`
	CoverLetter          string
	ResumeURL            string `gorm:"type:varchar(500)"`
	Notes                string
	RecruiterNotes       string
	InterviewScheduledAt *time.Time
	InterviewConductedAt *time.Time
	AppliedAt            time.Time
}
