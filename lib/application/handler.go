package applicationhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	applicationstore "hrms-backend/lib/application/store"
	candidatestore "hrms-backend/lib/candidate/store"
	jobstore "hrms-backend/lib/job/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	applicationapimodels "hrms-backend/models/api/application"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(request applicationapimodels.ApplicationData) (id string, hMsg string, err error)
	Update(id string, request applicationapimodels.ApplicationUpdateData) (hMsg string, err error)
	Get(id string) (item applicationapimodels.ApplicationView, err error)
	List(filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          applicationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
		"jobStore", instance.jobStore,
	)
	Instance = instance
}

type impl struct {
	store          applicationstore.Provider
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
}

func (i impl) Create(request applicationapimodels.ApplicationData) (id string, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err.Error(), nil
	}
	candidate, err := i.candidateStore.GetByID(request.CandidateID)
	if err != nil {
		return "", "", err
	}
	if candidate == nil {
		return "", "кандидат не найден", nil
	}
	job, err := i.jobStore.GetByID(request.JobID)
	if err != nil {
		return "", "", err
	}
	if job == nil {
		return "", "вакансия не найдена", nil
	}
	if job.Status != models.JobStatusActive && job.Status != models.JobStatusApproved {
		return "", "отклик возможен только на активную вакансию", nil
	}
	existedRec, err := i.store.FindByCandidateAndJob(request.CandidateID, request.JobID)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "отклик кандидата на эту вакансию уже существует", nil
	}
	rec := dbmodels.Application{
		CandidateID: request.CandidateID,
		JobID:       request.JobID,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: request.CoverLetter,
		Notes:       request.Notes,
		ResumeURL:   candidate.ResumeURL,
		AppliedAt:   time.Now(),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания отклика")
	}
	log.
		WithField("rec_id", id).
		WithField("candidate_id", request.CandidateID).
		WithField("job_id", request.JobID).
		Info("создан отклик")
	return id, "", nil
}

func (i impl) Update(id string, request applicationapimodels.ApplicationUpdateData) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "отклик не найден", nil
	}
	updMap := map[string]interface{}{}
	if request.Status != "" {
		updMap["status"] = request.Status
	}
	if request.Notes != nil {
		updMap["notes"] = *request.Notes
	}
	if request.RecruiterNotes != nil {
		updMap["recruiter_notes"] = *request.RecruiterNotes
	}
	if request.InterviewScheduledAt != nil {
		updMap["interview_scheduled_at"] = *request.InterviewScheduledAt
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлен отклик")
	return "", nil
}

func (i impl) Get(id string) (item applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.New("отклик не найден")
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Find(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.ApplicationConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален отклик")
	return nil
}
