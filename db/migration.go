package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hrms-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentAgency{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentAgency")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkflowTemplate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkflowTemplate")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewRound{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewRound")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewAnswer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewAnswer")
	}
	if err := DB.AutoMigrate(&dbmodels.Question{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Question")
	}
	if err := DB.AutoMigrate(&dbmodels.OfferLetter{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OfferLetter")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
