package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	dbmodels "hrms-backend/models/db"
)

type ApplicationData struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	Notes       string `json:"notes"`
}

func (r ApplicationData) Validate() error {
	if r.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	if r.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	return nil
}

type ApplicationUpdateData struct {
	Status               models.ApplicationStatus `json:"status"`
	Notes                *string                  `json:"notes"`
	RecruiterNotes       *string                  `json:"recruiter_notes"`
	InterviewScheduledAt *time.Time               `json:"interview_scheduled_at"`
}

type ApplicationView struct {
	ID            string                   `json:"id"`
	Status        models.ApplicationStatus `json:"status"`
	CandidateID   string                   `json:"candidate_id"`
	CandidateFIO  string                   `json:"candidate_fio,omitempty"`
	JobID         string                   `json:"job_id"`
	PositionTitle string                   `json:"position_title,omitempty"`
	PositionCode  string                   `json:"position_code,omitempty"`
	AppliedAt     time.Time                `json:"applied_at"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:          rec.ID,
		Status:      rec.Status,
		CandidateID: rec.CandidateID,
		JobID:       rec.JobID,
		AppliedAt:   rec.AppliedAt,
	}
	if rec.Candidate != nil {
		view.CandidateFIO = rec.Candidate.GetFIO()
	}
	if rec.Job != nil {
		view.PositionTitle = rec.Job.PositionTitle
		view.PositionCode = rec.Job.PositionCode
	}
	return view
}

type ApplicationFilter struct {
	apimodels.Pagination
	Status      models.ApplicationStatus `json:"status"`
	JobID       string                   `json:"job_id"`
	CandidateID string                   `json:"candidate_id"`
}
