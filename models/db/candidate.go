package dbmodels

import (
	"fmt"
	"strings"

	"hrms-backend/models"
)

type Candidate struct {
	BaseModel
	FirstName             string `gorm:"type:varchar(255)"`
	LastName              string `gorm:"type:varchar(255)"`
	Email                 string `gorm:"type:varchar(255)"`
	Phone                 string `gorm:"type:varchar(20)"`
	LocationState         string `gorm:"type:varchar(255)"`
	LocationCity          string `gorm:"type:varchar(255)"`
	LocationArea          string `gorm:"type:varchar(255)"`
	LocationPincode       string `gorm:"type:varchar(20)"`
	EducationShort        string `gorm:"type:varchar(255)"`
	EducationDetailed     string
	ExperienceYears       *int
	ExperienceDetails     string // навыки кандидата через запятую, источник для подбора в пул
	NoticePeriod          int
	CurrentCompensation   int
	ExpectedCompensation  int
	ResumeURL             string `gorm:"type:varchar(500)"` // ключ объекта в S3
	CoverLetter           string
	Source                models.CandidateSource `gorm:"type:varchar(100);index"`
	SourceDetails         string                 `gorm:"type:varchar(255)"`
	Status                models.CandidateStatus `gorm:"type:varchar(50);index"`
	Notes                 string
	IsInPool              bool `gorm:"index"`
	CreatedByID           string `gorm:"type:varchar(36)"`
	CreatedBy             *User  `gorm:"foreignKey:CreatedByID"`
}

func (c Candidate) GetFIO() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", c.FirstName, c.LastName))
}
