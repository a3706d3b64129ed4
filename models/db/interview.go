package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Interview struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	JobID         string       `gorm:"type:varchar(36)"`
	CandidateID   string       `gorm:"type:varchar(36)"`
	Candidate     *Candidate   `gorm:"foreignKey:CandidateID"`
	ScheduledAt   time.Time
	Status        models.InterviewStatus `gorm:"type:varchar(50)"`
	FinalPct      float64
}

type InterviewRound struct {
	BaseModel
	InterviewID   string     `gorm:"type:varchar(36);index:idx_interview_round,unique"`
	Interview     *Interview `gorm:"foreignKey:InterviewID"`
	RoundType     models.RoundType `gorm:"type:varchar(50);index:idx_interview_round,unique"`
	InterviewerID string           `gorm:"type:varchar(36)"`
	StartedAt     time.Time
	CompletedAt   *time.Time
	ResultPct     float64
}

func (r InterviewRound) IsCompleted() bool {
	return r.CompletedAt != nil
}

type InterviewAnswer struct {
	BaseModel
	RoundID    string          `gorm:"type:varchar(36);index:idx_round_question,unique"`
	Round      *InterviewRound `gorm:"foreignKey:RoundID"`
	QuestionID string          `gorm:"type:varchar(36);index:idx_round_question,unique"`
	Score      float64
	Remarks    string
}

type Question struct {
	BaseModel
	JobID      string           `gorm:"type:varchar(36);index"`
	RoundType  models.RoundType `gorm:"type:varchar(50)"`
	Text       string
	Competency string `gorm:"type:varchar(255)"`
	// вес задан в схеме, но в подсчёте процента раунда не участвует
	Weight float64 `gorm:"default:1.0"`
}
