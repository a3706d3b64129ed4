package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleHrSpoc    UserRole = "HR_SPOC"
	UserRoleEmployer  UserRole = "EMPLOYER"
	UserRoleManager   UserRole = "MANAGER"
	UserRoleRecruiter UserRole = "RECRUITER"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Администратор",
	UserRoleHrSpoc:    "HR-координатор",
	UserRoleEmployer:  "Наниматель",
	UserRoleManager:   "Менеджер",
	UserRoleRecruiter: "Рекрутер",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
