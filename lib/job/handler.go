package jobhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	candidatestore "hrms-backend/lib/candidate/store"
	jobstore "hrms-backend/lib/job/store"
	"hrms-backend/lib/matcher"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	candidateapimodels "hrms-backend/models/api/candidate"
	jobapimodels "hrms-backend/models/api/job"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(request jobapimodels.JobData, createdByID string) (id string, hMsg string, err error)
	Update(id string, request jobapimodels.JobData) (hMsg string, err error)
	Get(id string) (item jobapimodels.JobView, err error)
	List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	Delete(id string) error
	SubmitForApproval(id string) (hMsg string, err error)
	Approve(id, approvedByID string) (hMsg string, err error)
	Reject(id string) (hMsg string, err error)
	Publish(id string) (hMsg string, err error)
	Close(id string) (hMsg string, err error)
	PoolCandidates(id string) (list []candidateapimodels.CandidateView, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          jobstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          jobstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Create(request jobapimodels.JobData, createdByID string) (id string, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err.Error(), nil
	}
	existedRec, err := i.store.FindByCode(request.PositionCode)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "вакансия с таким кодом позиции уже существует", nil
	}
	vacancies := request.NumberOfVacancies
	if vacancies == 0 {
		vacancies = 1
	}
	rec := dbmodels.Job{
		PositionTitle:     request.PositionTitle,
		PositionCode:      request.PositionCode,
		Level:             request.Level,
		Grade:             request.Grade,
		SubDepartment:     request.SubDepartment,
		ReportingToTitle:  request.ReportingToTitle,
		LocationType:      request.LocationType,
		LocationDetails:   request.LocationDetails,
		RequiredSkills:    request.RequiredSkills,
		ExperienceLevel:   request.ExperienceLevel,
		JobDescription:    request.JobDescription,
		JobSpecification:  request.JobSpecification,
		NumberOfVacancies: vacancies,
		CompensationMin:   request.CompensationMin,
		CompensationMax:   request.CompensationMax,
		EmploymentType:    request.EmploymentType,
		HiringDeadline:    request.HiringDeadline,
		Status:            models.JobStatusDraft,
		CreatedByID:       createdByID,
	}
	if request.DepartmentID != "" {
		rec.DepartmentID = &request.DepartmentID
	}
	if request.RecruiterID != "" {
		rec.RecruiterID = &request.RecruiterID
	}
	if request.WorkflowTemplateID != "" {
		rec.WorkflowTemplateID = &request.WorkflowTemplateID
	}
	if request.AgencyID != "" {
		rec.AgencyID = &request.AgencyID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания вакансии")
	}
	log.
		WithField("position_code", rec.PositionCode).
		WithField("rec_id", id).
		Info("создана вакансия")
	return id, "", nil
}

func (i impl) Update(id string, request jobapimodels.JobData) (hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	if rec.Status == models.JobStatusClosed || rec.Status == models.JobStatusArchived {
		return "закрытую вакансию нельзя изменять", nil
	}
	updMap := map[string]interface{}{
		"position_title":      request.PositionTitle,
		"level":               request.Level,
		"grade":               request.Grade,
		"sub_department":      request.SubDepartment,
		"reporting_to_title":  request.ReportingToTitle,
		"location_type":       request.LocationType,
		"location_details":    request.LocationDetails,
		"required_skills":     request.RequiredSkills,
		"experience_level":    request.ExperienceLevel,
		"job_description":     request.JobDescription,
		"job_specification":   request.JobSpecification,
		"compensation_min":    request.CompensationMin,
		"compensation_max":    request.CompensationMax,
		"employment_type":     request.EmploymentType,
		"hiring_deadline":     request.HiringDeadline,
	}
	if request.NumberOfVacancies > 0 {
		updMap["number_of_vacancies"] = request.NumberOfVacancies
	}
	if request.DepartmentID != "" {
		updMap["department_id"] = request.DepartmentID
	}
	if request.RecruiterID != "" {
		updMap["recruiter_id"] = request.RecruiterID
	}
	if request.WorkflowTemplateID != "" {
		updMap["workflow_template_id"] = request.WorkflowTemplateID
	}
	if request.AgencyID != "" {
		updMap["agency_id"] = request.AgencyID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлена вакансия")
	return "", nil
}

func (i impl) Get(id string) (item jobapimodels.JobView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, errors.New("вакансия не найдена")
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Find(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.JobConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалена вакансия")
	return nil
}

// SubmitForApproval переводит вакансию из черновика на согласование
func (i impl) SubmitForApproval(id string) (hMsg string, err error) {
	return i.changeStatus(id, models.JobStatusPendingApproval, "вакансия отправлена на согласование",
		models.JobStatusDraft)
}

func (i impl) Approve(id, approvedByID string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	if rec.Status != models.JobStatusPendingApproval {
		return "согласовать можно только вакансию, отправленную на согласование", nil
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":         models.JobStatusApproved,
		"approved_by_id": approvedByID,
		"approved_at":    now,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("approved_by", approvedByID).
		Info("вакансия согласована")
	return "", nil
}

func (i impl) Reject(id string) (hMsg string, err error) {
	return i.changeStatus(id, models.JobStatusDraft, "вакансия возвращена в черновик",
		models.JobStatusPendingApproval)
}

func (i impl) Publish(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	if rec.Status != models.JobStatusApproved {
		return "опубликовать можно только согласованную вакансию", nil
	}
	updMap := map[string]interface{}{
		"status":       models.JobStatusActive,
		"is_published": true,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("вакансия опубликована")
	return "", nil
}

func (i impl) Close(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	updMap := map[string]interface{}{
		"status":       models.JobStatusClosed,
		"is_published": false,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("вакансия закрыта")
	return "", nil
}

func (i impl) changeStatus(id string, newStatus models.JobStatus, logMsg string, allowedFrom ...models.JobStatus) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	allowed := false
	for _, status := range allowedFrom {
		if rec.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return "недопустимая смена статуса вакансии", nil
	}
	err = i.store.Update(id, map[string]interface{}{"status": newStatus})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info(logMsg)
	return "", nil
}

// PoolCandidates подбирает кандидатов из пула под требования вакансии
func (i impl) PoolCandidates(id string) (list []candidateapimodels.CandidateView, hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "вакансия не найдена", nil
	}
	poolList, err := i.candidateStore.ListPoolCandidates()
	if err != nil {
		return nil, "", err
	}
	selected := matcher.SelectForPool(*rec, poolList)
	list = make([]candidateapimodels.CandidateView, 0, len(selected))
	for _, candidate := range selected {
		list = append(list, candidateapimodels.CandidateConvert(candidate))
	}
	return list, "", nil
}
