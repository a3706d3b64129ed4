package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"hrms-backend/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RegisterRequest struct {
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("не указано имя пользователя")
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен быть не короче 6 символов")
	}
	if r.Role != "" && !r.Role.IsValid() {
		return errors.New("неизвестная роль")
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
