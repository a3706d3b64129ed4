package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hrms-backend/models"
	interviewapimodels "hrms-backend/models/api/interview"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	FindByApplication(applicationID string) (rec *dbmodels.Interview, err error)
	Find(filter interviewapimodels.InterviewFilter) (list []dbmodels.Interview, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error

	CreateRound(rec dbmodels.InterviewRound) (id string, err error)
	GetRound(interviewID string, roundType models.RoundType) (rec *dbmodels.InterviewRound, err error)
	ListRounds(interviewID string) (list []dbmodels.InterviewRound, err error)
	UpdateRound(id string, updMap map[string]interface{}) error

	UpsertAnswer(rec dbmodels.InterviewAnswer) error
	DeleteStaleAnswers(roundID string, questionIDs []string) error
	ListAnswers(roundID string) (list []dbmodels.InterviewAnswer, err error)
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

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Interview, err error) {
	err = i.db.Model(dbmodels.Interview{}).
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

func (i impl) FindByApplication(applicationID string) (rec *dbmodels.Interview, err error) {
	err = i.db.Model(dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
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

func (i impl) Find(filter interviewapimodels.InterviewFilter) (list []dbmodels.Interview, rowCount int64, err error) {
	list = []dbmodels.Interview{}
	tx := i.db.Model(dbmodels.Interview{})
	if filter.ApplicationID != "" {
		tx = tx.Where("application_id = ?", filter.ApplicationID)
	}
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
		Order("scheduled_at").
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
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) CreateRound(rec dbmodels.InterviewRound) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetRound(interviewID string, roundType models.RoundType) (rec *dbmodels.InterviewRound, err error) {
	err = i.db.Model(dbmodels.InterviewRound{}).
		Where("interview_id = ?", interviewID).
		Where("round_type = ?", roundType).
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

func (i impl) ListRounds(interviewID string) (list []dbmodels.InterviewRound, err error) {
	list = []dbmodels.InterviewRound{}
	err = i.db.
		Where("interview_id = ?", interviewID).
		Order("started_at").
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

func (i impl) UpdateRound(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.InterviewRound{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

// UpsertAnswer - повторная отправка ответа на вопрос обновляет оценку
func (i impl) UpsertAnswer(rec dbmodels.InterviewAnswer) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "round_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "remarks", "updated_at"}),
		}).
		Create(&rec).
		Error
}

// DeleteStaleAnswers убирает ответы раунда на вопросы, которых нет в последней отправке
func (i impl) DeleteStaleAnswers(roundID string, questionIDs []string) error {
	return i.db.
		Where("round_id = ?", roundID).
		Where("question_id NOT IN ?", questionIDs).
		Delete(&dbmodels.InterviewAnswer{}).
		Error
}

func (i impl) ListAnswers(roundID string) (list []dbmodels.InterviewAnswer, err error) {
	list = []dbmodels.InterviewAnswer{}
	err = i.db.
		Where("round_id = ?", roundID).
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
