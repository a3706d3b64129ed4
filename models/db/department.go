package dbmodels

type Department struct {
	BaseModel
	Name          string `gorm:"type:varchar(255)"`
	SubDepartment string `gorm:"type:varchar(255)"`
}
