package agencystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentAgency) (id string, err error)
	GetByID(id string) (rec *dbmodels.RecruitmentAgency, err error)
	List() (list []dbmodels.RecruitmentAgency, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RecruitmentAgency) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.RecruitmentAgency, err error) {
	err = i.db.Model(dbmodels.RecruitmentAgency{}).
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

func (i impl) List() (list []dbmodels.RecruitmentAgency, err error) {
	list = []dbmodels.RecruitmentAgency{}
	err = i.db.
		Order("name").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.RecruitmentAgency{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.RecruitmentAgency{}).
		Error
}
