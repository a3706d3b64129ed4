package jobstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	jobapimodels "hrms-backend/models/api/job"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	FindByCode(positionCode string) (rec *dbmodels.Job, err error)
	Find(filter jobapimodels.JobFilter) (list []dbmodels.Job, rowCount int64, err error)
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

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Job, err error) {
	err = i.db.Model(dbmodels.Job{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) FindByCode(positionCode string) (rec *dbmodels.Job, err error) {
	err = i.db.Model(dbmodels.Job{}).
		Where("position_code = ?", positionCode).
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

func (i impl) Find(filter jobapimodels.JobFilter) (list []dbmodels.Job, rowCount int64, err error) {
	list = []dbmodels.Job{}
	tx := i.db.Model(dbmodels.Job{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(position_title) LIKE ? OR LOWER(position_code) LIKE ?", search, search)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.Offset((page - 1) * limit).
		Limit(limit).
		Preload("Department").
		Preload("Recruiter").
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
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Job{}).
		Error
}
