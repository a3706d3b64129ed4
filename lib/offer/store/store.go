package offerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hrms-backend/models"
	offerapimodels "hrms-backend/models/api/offer"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OfferLetter) (id string, err error)
	GetByID(id string) (rec *dbmodels.OfferLetter, err error)
	FindActiveByCandidate(candidateID string) (rec *dbmodels.OfferLetter, err error)
	Find(filter offerapimodels.OfferFilter) (list []dbmodels.OfferLetter, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.OfferLetter) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.OfferLetter, err error) {
	err = i.db.Model(dbmodels.OfferLetter{}).
		Where("id = ?", id).
		Preload("Candidate").
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

// FindActiveByCandidate возвращает непринятый и неотклонённый оффер кандидата
func (i impl) FindActiveByCandidate(candidateID string) (rec *dbmodels.OfferLetter, err error) {
	err = i.db.Model(dbmodels.OfferLetter{}).
		Where("candidate_id = ?", candidateID).
		Where("status IN ?", []models.OfferStatus{models.OfferStatusDraft, models.OfferStatusSent}).
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

func (i impl) Find(filter offerapimodels.OfferFilter) (list []dbmodels.OfferLetter, rowCount int64, err error) {
	list = []dbmodels.OfferLetter{}
	tx := i.db.Model(dbmodels.OfferLetter{})
	if filter.CandidateID != "" {
		tx = tx.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.Offset((page - 1) * limit).
		Limit(limit).
		Preload("Candidate").
		Order("created_at").
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
		Model(&dbmodels.OfferLetter{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
