package workflowhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	initchecker "hrms-backend/lib/utils/init-checker"
	workflowstore "hrms-backend/lib/workflow/store"
	workflowapimodels "hrms-backend/models/api/workflow"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(request workflowapimodels.WorkflowData) (id string, hMsg string, err error)
	Update(id string, request workflowapimodels.WorkflowData) (hMsg string, err error)
	Get(id string) (item workflowapimodels.WorkflowView, err error)
	List() (list []workflowapimodels.WorkflowView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: workflowstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store workflowstore.Provider
}

func (i impl) Create(request workflowapimodels.WorkflowData) (id string, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err.Error(), nil
	}
	existedRec, err := i.store.FindByName(request.Name)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "шаблон с таким названием уже существует", nil
	}
	steps, err := request.StepsJSON()
	if err != nil {
		return "", "", err
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	rec := dbmodels.WorkflowTemplate{
		Name:        request.Name,
		Description: request.Description,
		Steps:       steps,
		IsActive:    isActive,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	log.
		WithField("template_name", rec.Name).
		WithField("rec_id", id).
		Info("создан шаблон процесса найма")
	return id, "", nil
}

func (i impl) Update(id string, request workflowapimodels.WorkflowData) (hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "шаблон не найден", nil
	}
	steps, err := request.StepsJSON()
	if err != nil {
		return "", err
	}
	updMap := map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
		"steps":       steps,
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлен шаблон процесса найма")
	return "", nil
}

func (i impl) Get(id string) (item workflowapimodels.WorkflowView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return workflowapimodels.WorkflowView{}, err
	}
	if rec == nil {
		return workflowapimodels.WorkflowView{}, errors.New("шаблон не найден")
	}
	return workflowapimodels.WorkflowConvert(*rec)
}

func (i impl) List() (list []workflowapimodels.WorkflowView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]workflowapimodels.WorkflowView, 0, len(recList))
	for _, rec := range recList {
		item, err := workflowapimodels.WorkflowConvert(rec)
		if err != nil {
			log.WithError(err).WithField("rec_id", rec.ID).Error("пропущен шаблон с некорректными этапами")
			continue
		}
		list = append(list, item)
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален шаблон процесса найма")
	return nil
}
