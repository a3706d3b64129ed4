package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	dbmodels "hrms-backend/models/db"
)

type InterviewData struct {
	ApplicationID string     `json:"application_id"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

func (r InterviewData) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("не указан идентификатор отклика")
	}
	if r.ScheduledAt == nil {
		return errors.New("не указана дата собеседования")
	}
	return nil
}

type InterviewFilter struct {
	apimodels.Pagination
	ApplicationID string                 `json:"application_id"`
	CandidateID   string                 `json:"candidate_id"`
	Status        models.InterviewStatus `json:"status"`
}

type RoundStartRequest struct {
	RoundType models.RoundType `json:"round_type"`
}

func (r RoundStartRequest) Validate() error {
	if !r.RoundType.IsValid() {
		return errors.New("неизвестный тип раунда")
	}
	return nil
}

type Answer struct {
	QuestionID string  `json:"question_id"`
	Score      float64 `json:"score"`
	Remarks    string  `json:"remarks"`
}

type RoundSubmitRequest struct {
	RoundType models.RoundType `json:"round_type"`
	Answers   []Answer         `json:"answers"`
}

func (r RoundSubmitRequest) Validate() error {
	if !r.RoundType.IsValid() {
		return errors.New("неизвестный тип раунда")
	}
	if len(r.Answers) == 0 {
		return errors.New("не переданы ответы")
	}
	for _, ans := range r.Answers {
		if ans.QuestionID == "" {
			return errors.New("не указан идентификатор вопроса")
		}
		if ans.Score < 0 || ans.Score > 100 {
			return errors.New("оценка должна быть в диапазоне от 0 до 100")
		}
	}
	return nil
}

type RoundSubmitResult struct {
	RoundID   string           `json:"round_id"`
	RoundType models.RoundType `json:"round_type"`
	ScorePct  float64          `json:"score_pct"`
	FinalPct  float64          `json:"final_pct"`
}

type RoundView struct {
	ID          string           `json:"id"`
	RoundType   models.RoundType `json:"round_type"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	ResultPct   float64          `json:"result_pct"`
}

func RoundConvert(rec dbmodels.InterviewRound) RoundView {
	return RoundView{
		ID:          rec.ID,
		RoundType:   rec.RoundType,
		StartedAt:   rec.StartedAt,
		CompletedAt: rec.CompletedAt,
		ResultPct:   rec.ResultPct,
	}
}

type InterviewView struct {
	ID            string                 `json:"id"`
	ApplicationID string                 `json:"application_id"`
	JobID         string                 `json:"job_id"`
	CandidateID   string                 `json:"candidate_id"`
	CandidateFIO  string                 `json:"candidate_fio,omitempty"`
	ScheduledAt   time.Time              `json:"scheduled_at"`
	Status        models.InterviewStatus `json:"status"`
	FinalPct      float64                `json:"final_pct"`
	Rounds        []RoundView            `json:"rounds"`
}

func InterviewConvert(rec dbmodels.Interview, rounds []dbmodels.InterviewRound) InterviewView {
	view := InterviewView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		JobID:         rec.JobID,
		CandidateID:   rec.CandidateID,
		ScheduledAt:   rec.ScheduledAt,
		Status:        rec.Status,
		FinalPct:      rec.FinalPct,
		Rounds:        make([]RoundView, 0, len(rounds)),
	}
	if rec.Candidate != nil {
		view.CandidateFIO = rec.Candidate.GetFIO()
	}
	for _, round := range rounds {
		view.Rounds = append(view.Rounds, RoundConvert(round))
	}
	return view
}

type QuestionData struct {
	JobID      string           `json:"job_id"`
	RoundType  models.RoundType `json:"round_type"`
	Text       string           `json:"text"`
	Competency string           `json:"competency"`
	Weight     float64          `json:"weight"`
}

func (r QuestionData) Validate() error {
	if r.JobID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if !r.RoundType.IsValid() {
		return errors.New("неизвестный тип раунда")
	}
	if r.Text == "" {
		return errors.New("не указан текст вопроса")
	}
	return nil
}

type QuestionFilter struct {
	JobID     string           `json:"job_id"`
	RoundType models.RoundType `json:"round_type"`
}

type QuestionView struct {
	ID         string           `json:"id"`
	JobID      string           `json:"job_id"`
	RoundType  models.RoundType `json:"round_type"`
	Text       string           `json:"text"`
	Competency string           `json:"competency"`
	Weight     float64          `json:"weight"`
}

func QuestionConvert(rec dbmodels.Question) QuestionView {
	return QuestionView{
		ID:         rec.ID,
		JobID:      rec.JobID,
		RoundType:  rec.RoundType,
		Text:       rec.Text,
		Competency: rec.Competency,
		Weight:     rec.Weight,
	}
}
