package usersstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	userapimodels "hrms-backend/models/api/user"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	FindByLogin(login string) (rec *dbmodels.User, err error)
	Find(filter userapimodels.UserFilter) (list []dbmodels.User, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	SetLastLogin(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", strings.ToLower(email)).
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

func (i impl) FindByLogin(login string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ? OR username = ?", strings.ToLower(login), login).
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

func (i impl) Find(filter userapimodels.UserFilter) (list []dbmodels.User, rowCount int64, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(dbmodels.User{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", search, search)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	tx = tx.Offset((page - 1) * limit).Limit(limit).Order("created_at")
	err = tx.Find(&list).Error
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
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) SetLastLogin(id string) error {
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
