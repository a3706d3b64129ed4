package workflowapimodels

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	dbmodels "hrms-backend/models/db"
)

type WorkflowData struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	IsActive    *bool    `json:"is_active"`
}

func (r WorkflowData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название шаблона")
	}
	if len(r.Steps) == 0 {
		return errors.New("не указаны этапы шаблона")
	}
	for _, step := range r.Steps {
		if strings.TrimSpace(step) == "" {
			return errors.New("название этапа не может быть пустым")
		}
	}
	return nil
}

// StepsJSON сериализует этапы для хранения в БД
func (r WorkflowData) StepsJSON() (string, error) {
	body, err := json.Marshal(r.Steps)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сериализации этапов шаблона")
	}
	return string(body), nil
}

type WorkflowView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Steps       []string `json:"steps"`
	IsActive    bool     `json:"is_active"`
}

func WorkflowConvert(rec dbmodels.WorkflowTemplate) (WorkflowView, error) {
	steps, err := rec.GetSteps()
	if err != nil {
		return WorkflowView{}, err
	}
	return WorkflowView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Steps:       steps,
		IsActive:    rec.IsActive,
	}, nil
}
