package db

import (
	"hrms-backend/config"
	usersstore "hrms-backend/lib/users/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	passwordHash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.User{
		IsActive: true,
		Role:     models.UserRoleAdmin,
		Password: passwordHash,
		FullName: config.Conf.Admin.FullName,
		Email:    config.Conf.Admin.Email,
		Username: config.Conf.Admin.Email,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}
