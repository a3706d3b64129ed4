package departmentprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	departmentstore "hrms-backend/lib/dicts/department/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	dictapimodels "hrms-backend/models/api/dict"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: departmentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store departmentstore.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	rec := dbmodels.Department{
		Name:          request.Name,
		SubDepartment: request.SubDepartment,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("создан отдел")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":           request.Name,
		"sub_department": request.SubDepartment,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлен отдел")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, errors.New("отдел не найден")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален отдел")
	return nil
}
