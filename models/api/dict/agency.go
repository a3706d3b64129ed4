package dictapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "hrms-backend/models/db"
)

type AgencyData struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	IsActive      *bool  `json:"is_active"`
}

func (r AgencyData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название агентства")
	}
	return nil
}

type AgencyView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Website       string `json:"website,omitempty"`
	IsActive      bool   `json:"is_active"`
}

func AgencyConvert(rec dbmodels.RecruitmentAgency) AgencyView {
	return AgencyView{
		ID:            rec.ID,
		Name:          rec.Name,
		ContactPerson: rec.ContactPerson,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Website:       rec.Website,
		IsActive:      rec.IsActive,
	}
}
