package userapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	dbmodels "hrms-backend/models/db"
)

type UserView struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	FullName  string          `json:"full_name"`
	Role      models.UserRole `json:"role"`
	RoleName  string          `json:"role_name"`
	IsActive  bool            `json:"is_active"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:       rec.ID,
		Email:    rec.Email,
		Username: rec.Username,
		FullName: rec.FullName,
		Role:     rec.Role,
		RoleName: rec.Role.ToHuman(),
		IsActive: rec.IsActive,
	}
}

type UserData struct {
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
	IsActive *bool           `json:"is_active"`
}

func (r UserData) Validate(isUpdate bool) error {
	if !isUpdate {
		if strings.TrimSpace(r.Email) == "" {
			return errors.New("не указана почта")
		}
		if strings.TrimSpace(r.Username) == "" {
			return errors.New("не указано имя пользователя")
		}
		if len(r.Password) < 6 {
			return errors.New("пароль должен быть не короче 6 символов")
		}
	}
	if r.Role != "" && !r.Role.IsValid() {
		return errors.New("неизвестная роль")
	}
	return nil
}

type UserFilter struct {
	apimodels.Pagination
	Role   models.UserRole `json:"role"`
	Search string          `json:"search"`
}
