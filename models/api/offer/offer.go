package offerapimodels

import (
	"time"

	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	dbmodels "hrms-backend/models/db"
)

type OfferFilter struct {
	apimodels.Pagination
	CandidateID string             `json:"candidate_id"`
	Status      models.OfferStatus `json:"status"`
}

type OfferView struct {
	ID           string             `json:"id"`
	CandidateID  string             `json:"candidate_id"`
	CandidateFIO string             `json:"candidate_fio,omitempty"`
	FilePath     string             `json:"file_path"`
	Status       models.OfferStatus `json:"status"`
	SentAt       *time.Time         `json:"sent_at,omitempty"`
	SignedAt     *time.Time         `json:"signed_at,omitempty"`
}

func OfferConvert(rec dbmodels.OfferLetter) OfferView {
	view := OfferView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		FilePath:    rec.FilePath,
		Status:      rec.Status,
		SentAt:      rec.SentAt,
		SignedAt:    rec.SignedAt,
	}
	if rec.Candidate != nil {
		view.CandidateFIO = rec.Candidate.GetFIO()
	}
	return view
}
