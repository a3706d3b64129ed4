package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type User struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Username  string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(128)"`
	FullName  string `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	IsActive  bool
	LastLogin time.Time
}

func (u User) GetFullName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
