package usershandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	usersstore "hrms-backend/lib/users/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	authapimodels "hrms-backend/models/api/auth"
	userapimodels "hrms-backend/models/api/user"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, hMsg string, err error)
	Login(request authapimodels.LoginRequest) (resp authapimodels.TokenResponse, hMsg string, err error)
	Refresh(userID string) (resp authapimodels.TokenResponse, hMsg string, err error)
	Create(request userapimodels.UserData) (id string, hMsg string, err error)
	Update(id string, request userapimodels.UserData) (hMsg string, err error)
	Get(id string) (item userapimodels.UserView, err error)
	List(filter userapimodels.UserFilter) (list []userapimodels.UserView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return authapimodels.TokenResponse{}, err.Error(), nil
	}
	existedRec, err := i.store.FindByLogin(request.Email)
	if err != nil {
		return authapimodels.TokenResponse{}, "", err
	}
	if existedRec != nil {
		return authapimodels.TokenResponse{}, "пользователь с такой почтой уже зарегистрирован", nil
	}
	role := request.Role
	if role == "" {
		role = models.UserRoleRecruiter
	}
	passwordHash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return authapimodels.TokenResponse{}, "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.User{
		Email:    strings.ToLower(request.Email),
		Username: request.Username,
		Password: passwordHash,
		FullName: request.FullName,
		Role:     role,
		IsActive: true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return authapimodels.TokenResponse{}, "", errors.Wrap(err, "ошибка создания пользователя")
	}
	log.
		WithField("user_id", id).
		WithField("email", rec.Email).
		Info("зарегистрирован пользователь")
	return i.issueTokens(id, rec.FullName, rec.Role)
}

func (i impl) Login(request authapimodels.LoginRequest) (resp authapimodels.TokenResponse, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return authapimodels.TokenResponse{}, err.Error(), nil
	}
	rec, err := i.store.FindByLogin(request.Email)
	if err != nil {
		return authapimodels.TokenResponse{}, "", err
	}
	if rec == nil || !authutils.CheckPassword(rec.Password, request.Password) {
		return authapimodels.TokenResponse{}, "неверная почта или пароль", nil
	}
	if !rec.IsActive {
		return authapimodels.TokenResponse{}, "учетная запись заблокирована", nil
	}
	err = i.store.SetLastLogin(rec.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", rec.ID).Error("не удалось обновить дату входа")
	}
	return i.issueTokens(rec.ID, rec.FullName, rec.Role)
}

func (i impl) Refresh(userID string) (resp authapimodels.TokenResponse, hMsg string, err error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.TokenResponse{}, "", err
	}
	if rec == nil || !rec.IsActive {
		return authapimodels.TokenResponse{}, "пользователь не найден", nil
	}
	return i.issueTokens(rec.ID, rec.FullName, rec.Role)
}

func (i impl) issueTokens(userID, name string, role models.UserRole) (resp authapimodels.TokenResponse, hMsg string, err error) {
	access, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return authapimodels.TokenResponse{}, "", errors.Wrap(err, "ошибка генерации токена")
	}
	refresh, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.TokenResponse{}, "", errors.Wrap(err, "ошибка генерации refresh токена")
	}
	return authapimodels.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, "", nil
}

func (i impl) Create(request userapimodels.UserData) (id string, hMsg string, err error) {
	err = request.Validate(false)
	if err != nil {
		return "", err.Error(), nil
	}
	existedRec, err := i.store.FindByLogin(request.Email)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "пользователь с такой почтой уже существует", nil
	}
	role := request.Role
	if role == "" {
		role = models.UserRoleRecruiter
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	passwordHash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.User{
		Email:    strings.ToLower(request.Email),
		Username: request.Username,
		Password: passwordHash,
		FullName: request.FullName,
		Role:     role,
		IsActive: isActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания пользователя")
	}
	log.
		WithField("user_id", id).
		WithField("email", rec.Email).
		Info("создан пользователь")
	return id, "", nil
}

func (i impl) Update(id string, request userapimodels.UserData) (hMsg string, err error) {
	err = request.Validate(true)
	if err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "пользователь не найден", nil
	}
	updMap := map[string]interface{}{}
	if request.FullName != "" {
		updMap["full_name"] = request.FullName
	}
	if request.Role != "" {
		updMap["role"] = request.Role
	}
	if request.Password != "" {
		if len(request.Password) < 6 {
			return "пароль должен быть не короче 6 символов", nil
		}
		passwordHash, err := authutils.HashPassword(request.Password)
		if err != nil {
			return "", errors.Wrap(err, "ошибка хеширования пароля")
		}
		updMap["password"] = passwordHash
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("user_id", id).Info("обновлен пользователь")
	return "", nil
}

func (i impl) Get(id string) (item userapimodels.UserView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, errors.New("пользователь не найден")
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List(filter userapimodels.UserFilter) (list []userapimodels.UserView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Find(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("user_id", id).Info("удален пользователь")
	return nil
}
