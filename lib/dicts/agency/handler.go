package agencyprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	agencystore "hrms-backend/lib/dicts/agency/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	dictapimodels "hrms-backend/models/api/dict"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.AgencyData) (id string, err error)
	Update(id string, request dictapimodels.AgencyData) error
	Get(id string) (item dictapimodels.AgencyView, err error)
	List() (list []dictapimodels.AgencyView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: agencystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store agencystore.Provider
}

func (i impl) Create(request dictapimodels.AgencyData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	rec := dbmodels.RecruitmentAgency{
		Name:          request.Name,
		ContactPerson: request.ContactPerson,
		Email:         request.Email,
		Phone:         request.Phone,
		Website:       request.Website,
		IsActive:      isActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("agency_name", rec.Name).
		WithField("rec_id", id).
		Info("создано кадровое агентство")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.AgencyData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":           request.Name,
		"contact_person": request.ContactPerson,
		"email":          request.Email,
		"phone":          request.Phone,
		"website":        request.Website,
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлено кадровое агентство")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.AgencyView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.AgencyView{}, err
	}
	if rec == nil {
		return dictapimodels.AgencyView{}, errors.New("агентство не найдено")
	}
	return dictapimodels.AgencyConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.AgencyView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.AgencyView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.AgencyConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалено кадровое агентство")
	return nil
}
