package dictapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "hrms-backend/models/db"
)

type DepartmentData struct {
	Name          string `json:"name"`
	SubDepartment string `json:"sub_department"`
}

func (r DepartmentData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название отдела")
	}
	return nil
}

type DepartmentView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SubDepartment string `json:"sub_department,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:            rec.ID,
		Name:          rec.Name,
		SubDepartment: rec.SubDepartment,
	}
}
