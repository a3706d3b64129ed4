package dbmodels

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type WorkflowTemplate struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
	Steps       string // JSON-массив названий этапов
	IsActive    bool   `gorm:"default:true"`
}

// GetSteps разбирает JSON с этапами шаблона
func (w WorkflowTemplate) GetSteps() ([]string, error) {
	if w.Steps == "" {
		return []string{}, nil
	}
	steps := []string{}
	if err := json.Unmarshal([]byte(w.Steps), &steps); err != nil {
		return nil, errors.New("некорректный JSON с этапами шаблона")
	}
	return steps, nil
}
