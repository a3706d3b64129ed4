package dbmodels

type RecruitmentAgency struct {
	BaseModel
	Name          string `gorm:"type:varchar(255)"`
	ContactPerson string `gorm:"type:varchar(255)"`
	Email         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(20)"`
	Website       string `gorm:"type:varchar(255)"`
	IsActive      bool   `gorm:"default:true"`
}
