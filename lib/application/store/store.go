package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	applicationapimodels "hrms-backend/models/api/application"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	FindByCandidateAndJob(candidateID, jobID string) (rec *dbmodels.Application, err error)
	FindLatestByCandidate(candidateID string) (rec *dbmodels.Application, err error)
	Find(filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

// NewInstanceWithTx используется внутри транзакций
func NewInstanceWithTx(tx *gorm.DB) Provider {
	return &impl{
		db: tx,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Application, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Candidate").
		Preload("Job").
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

func (i impl) FindByCandidateAndJob(candidateID, jobID string) (rec *dbmodels.Application, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Where("job_id = ?", jobID).
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

// FindLatestByCandidate возвращает последний по дате подачи отклик кандидата
func (i impl) FindLatestByCandidate(candidateID string) (rec *dbmodels.Application, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Preload("Job").
		Order("applied_at desc").
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

func (i impl) Find(filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(dbmodels.Application{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.CandidateID != "" {
		tx = tx.Where("candidate_id = ?", filter.CandidateID)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.Offset((page - 1) * limit).
		Limit(limit).
		Preload("Candidate").
		Preload("Job").
		Order("applied_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Application{}).
		Error
}
