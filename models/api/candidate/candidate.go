package candidateapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	dbmodels "hrms-backend/models/db"
)

type CandidateData struct {
	FirstName            string                 `json:"first_name"`
	LastName             string                 `json:"last_name"`
	Email                string                 `json:"email"`
	Phone                string                 `json:"phone"`
	LocationState        string                 `json:"location_state"`
	LocationCity         string                 `json:"location_city"`
	LocationArea         string                 `json:"location_area"`
	LocationPincode      string                 `json:"location_pincode"`
	EducationShort       string                 `json:"education_qualification_short"`
	EducationDetailed    string                 `json:"education_qualification_detailed"`
	ExperienceYears      *int                   `json:"experience_years"`
	ExperienceDetails    string                 `json:"experience_details"`
	NoticePeriod         int                    `json:"notice_period"`
	CurrentCompensation  int                    `json:"current_compensation"`
	ExpectedCompensation int                    `json:"expected_compensation"`
	CoverLetter          string                 `json:"cover_letter"`
	Source               models.CandidateSource `json:"source"`
	SourceDetails        string                 `json:"source_details"`
	Notes                string                 `json:"notes"`
}

func (r CandidateData) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errors.New("не указана фамилия кандидата")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта кандидата")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return errors.New("не указан телефон кандидата")
	}
	return nil
}

type CandidateView struct {
	ID                string                 `json:"id"`
	FIO               string                 `json:"fio"`
	FirstName         string                 `json:"first_name"`
	LastName          string                 `json:"last_name"`
	Email             string                 `json:"email"`
	Phone             string                 `json:"phone"`
	ExperienceYears   *int                   `json:"experience_years"`
	ExperienceDetails string                 `json:"experience_details"`
	ResumeURL         string                 `json:"resume_url,omitempty"`
	Source            models.CandidateSource `json:"source"`
	Status            models.CandidateStatus `json:"status"`
	IsInPool          bool                   `json:"is_in_pool"`
	CreatedAt         time.Time              `json:"created_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:                rec.ID,
		FIO:               rec.GetFIO(),
		FirstName:         rec.FirstName,
		LastName:          rec.LastName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		ExperienceYears:   rec.ExperienceYears,
		ExperienceDetails: rec.ExperienceDetails,
		ResumeURL:         rec.ResumeURL,
		Source:            rec.Source,
		Status:            rec.Status,
		IsInPool:          rec.IsInPool,
		CreatedAt:         rec.CreatedAt,
	}
}

type CandidateFilter struct {
	apimodels.Pagination
	Status   models.CandidateStatus `json:"status"`
	Source   models.CandidateSource `json:"source"`
	IsInPool *bool                  `json:"is_in_pool"`
	Search   string                 `json:"search"`
}

type CandidateSearchFilter struct {
	apimodels.Pagination
	Query         string `json:"query"`
	Skills        string `json:"skills"` // навыки через запятую
	ExperienceMin *int   `json:"experience_min"`
	ExperienceMax *int   `json:"experience_max"`
	Location      string `json:"location"`
}
