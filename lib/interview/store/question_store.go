package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type QuestionProvider interface {
	Create(rec dbmodels.Question) (id string, err error)
	GetByID(id string) (rec *dbmodels.Question, err error)
	List(jobID string, roundType models.RoundType) (list []dbmodels.Question, err error)
	Delete(id string) error
}

func NewQuestionInstance(DB *gorm.DB) QuestionProvider {
	return &questionImpl{
		db: DB,
	}
}

type questionImpl struct {
	db *gorm.DB
}

func (i questionImpl) Create(rec dbmodels.Question) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i questionImpl) GetByID(id string) (rec *dbmodels.Question, err error) {
	err = i.db.Model(dbmodels.Question{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i questionImpl) List(jobID string, roundType models.RoundType) (list []dbmodels.Question, err error) {
	list = []dbmodels.Question{}
	tx := i.db.Model(dbmodels.Question{})
	if jobID != "" {
		tx = tx.Where("job_id = ?", jobID)
	}
	if roundType != "" {
		tx = tx.Where("round_type = ?", roundType)
	}
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i questionImpl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Question{}).
		Error
}
