package candidatestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	candidateapimodels "hrms-backend/models/api/candidate"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	FindByEmail(email string) (rec *dbmodels.Candidate, err error)
	Find(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, rowCount int64, err error)
	Search(filter candidateapimodels.CandidateSearchFilter) (list []dbmodels.Candidate, rowCount int64, err error)
	ListPoolCandidates() (list []dbmodels.Candidate, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListAll() (list []dbmodels.Candidate, err error)
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

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
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

func (i impl) Find(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.Model(dbmodels.Candidate{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Source != "" {
		tx = tx.Where("source = ?", filter.Source)
	}
	if filter.IsInPool != nil {
		tx = tx.Where("is_in_pool = ?", *filter.IsInPool)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", search, search, search)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.Offset((page - 1) * limit).
		Limit(limit).
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

func (i impl) Search(filter candidateapimodels.CandidateSearchFilter) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.Model(dbmodels.Candidate{})
	if filter.Query != "" {
		search := "%" + strings.ToLower(filter.Query) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(experience_details) LIKE ?",
			search, search, search, search)
	}
	if filter.Skills != "" {
		for _, skill := range strings.Split(filter.Skills, ",") {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill == "" {
				continue
			}
			tx = tx.Where("LOWER(experience_details) LIKE ?", "%"+skill+"%")
		}
	}
	if filter.ExperienceMin != nil {
		tx = tx.Where("experience_years >= ?", *filter.ExperienceMin)
	}
	if filter.ExperienceMax != nil {
		tx = tx.Where("experience_years <= ?", *filter.ExperienceMax)
	}
	if filter.Location != "" {
		location := "%" + strings.ToLower(filter.Location) + "%"
		tx = tx.Where("LOWER(location_city) LIKE ? OR LOWER(location_state) LIKE ?", location, location)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.Offset((page - 1) * limit).
		Limit(limit).
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

func (i impl) ListPoolCandidates() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Where("is_in_pool = ?", true).
		Order("created_at").
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

func (i impl) ListAll() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Order("created_at").
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
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{}).
		Error
}
