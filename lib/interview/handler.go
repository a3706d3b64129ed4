package interviewhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hrms-backend/db"
	applicationstore "hrms-backend/lib/application/store"
	candidatestore "hrms-backend/lib/candidate/store"
	interviewstore "hrms-backend/lib/interview/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/lib/utils/lock"
	"hrms-backend/models"
	interviewapimodels "hrms-backend/models/api/interview"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Schedule(request interviewapimodels.InterviewData) (id string, hMsg string, err error)
	Get(id string) (item interviewapimodels.InterviewView, err error)
	List(filter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error)
	StartRound(interviewID, interviewerID string, request interviewapimodels.RoundStartRequest) (item interviewapimodels.RoundView, hMsg string, err error)
	SubmitRound(ctx context.Context, interviewID string, request interviewapimodels.RoundSubmitRequest) (result interviewapimodels.RoundSubmitResult, hMsg string, err error)
	CreateQuestion(request interviewapimodels.QuestionData) (id string, hMsg string, err error)
	ListQuestions(filter interviewapimodels.QuestionFilter) (list []interviewapimodels.QuestionView, err error)
	DeleteQuestion(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            interviewstore.NewInstance(db.DB),
		questionStore:    interviewstore.NewQuestionInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"questionStore", instance.questionStore,
		"applicationStore", instance.applicationStore,
	)
	Instance = instance
}

type impl struct {
	store            interviewstore.Provider
	questionStore    interviewstore.QuestionProvider
	applicationStore applicationstore.Provider
}

func (i impl) Schedule(request interviewapimodels.InterviewData) (id string, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err.Error(), nil
	}
	application, err := i.applicationStore.GetByID(request.ApplicationID)
	if err != nil {
		return "", "", err
	}
	if application == nil {
		return "", "отклик не найден", nil
	}
	existedRec, err := i.store.FindByApplication(request.ApplicationID)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "собеседование по этому отклику уже назначено", nil
	}
	rec := dbmodels.Interview{
		ApplicationID: application.ID,
		JobID:         application.JobID,
		CandidateID:   application.CandidateID,
		ScheduledAt:   *request.ScheduledAt,
		Status:        models.InterviewStatusScheduled,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания собеседования")
	}
	err = i.applicationStore.Update(application.ID, map[string]interface{}{
		"interview_scheduled_at": *request.ScheduledAt,
	})
	if err != nil {
		log.WithError(err).WithField("application_id", application.ID).Error("не удалось обновить дату собеседования в отклике")
	}
	log.
		WithField("rec_id", id).
		WithField("application_id", application.ID).
		Info("назначено собеседование")
	return id, "", nil
}

func (i impl) Get(id string) (item interviewapimodels.InterviewView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, errors.New("собеседование не найдено")
	}
	rounds, err := i.store.ListRounds(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	return interviewapimodels.InterviewConvert(*rec, rounds), nil
}

func (i impl) List(filter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Find(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]interviewapimodels.InterviewView, 0, len(recList))
	for _, rec := range recList {
		rounds, err := i.store.ListRounds(rec.ID)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, interviewapimodels.InterviewConvert(rec, rounds))
	}
	return list, rowCount, nil
}

func (i impl) StartRound(interviewID, interviewerID string, request interviewapimodels.RoundStartRequest) (item interviewapimodels.RoundView, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return interviewapimodels.RoundView{}, err.Error(), nil
	}
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return interviewapimodels.RoundView{}, "", err
	}
	if rec == nil {
		return interviewapimodels.RoundView{}, "собеседование не найдено", nil
	}
	if rec.Status == models.InterviewStatusCancelled {
		return interviewapimodels.RoundView{}, "собеседование отменено", nil
	}
	round, err := i.store.GetRound(interviewID, request.RoundType)
	if err != nil {
		return interviewapimodels.RoundView{}, "", err
	}
	if round != nil {
		if round.IsCompleted() {
			return interviewapimodels.RoundView{}, "раунд уже завершен", nil
		}
		// повторный старт возвращает уже начатый раунд
		return interviewapimodels.RoundConvert(*round), "", nil
	}
	newRound := dbmodels.InterviewRound{
		InterviewID:   interviewID,
		RoundType:     request.RoundType,
		InterviewerID: interviewerID,
		StartedAt:     time.Now(),
	}
	roundID, err := i.store.CreateRound(newRound)
	if err != nil {
		return interviewapimodels.RoundView{}, "", errors.Wrap(err, "ошибка создания раунда")
	}
	newRound.ID = roundID
	log.
		WithField("interview_id", interviewID).
		WithField("round_type", request.RoundType).
		Info("начат раунд собеседования")
	return interviewapimodels.RoundConvert(newRound), "", nil
}

// SubmitRound сохраняет оценки раунда и при завершении всех обязательных раундов
// подводит итог собеседования. Обработка сериализуется по собеседованию
func (i impl) SubmitRound(ctx context.Context, interviewID string, request interviewapimodels.RoundSubmitRequest) (result interviewapimodels.RoundSubmitResult, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return interviewapimodels.RoundSubmitResult{}, err.Error(), nil
	}
	lockKey := fmt.Sprintf("interview:%v", interviewID)
	success, err := lock.WithDelay(ctx, lockKey, 10*time.Second, func() error {
		result, hMsg, err = i.submitRound(interviewID, request)
		return err
	})
	if err != nil {
		return interviewapimodels.RoundSubmitResult{}, "", err
	}
	if !success {
		return interviewapimodels.RoundSubmitResult{}, "собеседование обрабатывается, повторите попытку", nil
	}
	return result, hMsg, nil
}

func (i impl) submitRound(interviewID string, request interviewapimodels.RoundSubmitRequest) (result interviewapimodels.RoundSubmitResult, hMsg string, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := interviewstore.NewInstanceWithTx(tx)
		rec, err := store.GetByID(interviewID)
		if err != nil {
			return err
		}
		if rec == nil {
			hMsg = "собеседование не найдено"
			return nil
		}
		if rec.Status == models.InterviewStatusCancelled {
			hMsg = "собеседование отменено"
			return nil
		}
		round, err := store.GetRound(interviewID, request.RoundType)
		if err != nil {
			return err
		}
		if round == nil {
			hMsg = "раунд не начат"
			return nil
		}

		// повторная отправка полностью заменяет набор ответов раунда
		questionIDs := make([]string, 0, len(request.Answers))
		for _, answer := range request.Answers {
			questionIDs = append(questionIDs, answer.QuestionID)
		}
		err = store.DeleteStaleAnswers(round.ID, questionIDs)
		if err != nil {
			return errors.Wrap(err, "ошибка очистки устаревших ответов")
		}
		sum := 0.0
		for _, answer := range request.Answers {
			err = store.UpsertAnswer(dbmodels.InterviewAnswer{
				RoundID:    round.ID,
				QuestionID: answer.QuestionID,
				Score:      answer.Score,
				Remarks:    answer.Remarks,
			})
			if err != nil {
				return errors.Wrap(err, "ошибка сохранения ответа")
			}
			sum += answer.Score
		}
		resultPct := sum / float64(len(request.Answers))
		now := time.Now()
		err = store.UpdateRound(round.ID, map[string]interface{}{
			"result_pct":   resultPct,
			"completed_at": now,
		})
		if err != nil {
			return err
		}

		result = interviewapimodels.RoundSubmitResult{
			RoundID:   round.ID,
			RoundType: round.RoundType,
			ScorePct:  resultPct,
		}

		rounds, err := store.ListRounds(interviewID)
		if err != nil {
			return err
		}
		completed := map[models.RoundType]bool{}
		for _, r := range rounds {
			if r.IsCompleted() {
				completed[r.RoundType] = true
			}
		}
		for _, required := range models.RequiredRoundTypes {
			if !completed[required] {
				// итог подводится после завершения всех обязательных раундов
				return nil
			}
		}

		// итоговый процент - среднее по всем раундам без учёта весов
		finalSum := 0.0
		for _, r := range rounds {
			finalSum += r.ResultPct
		}
		finalPct := finalSum / float64(len(rounds))
		result.FinalPct = finalPct

		err = store.Update(interviewID, map[string]interface{}{
			"final_pct": finalPct,
			"status":    models.InterviewStatusCompleted,
		})
		if err != nil {
			return err
		}

		candidateStatus := models.CandidateStatusInterviewed
		if finalPct >= models.ShortlistThreshold {
			candidateStatus = models.CandidateStatusShortlisted
		}
		cStore := candidatestore.NewInstanceWithTx(tx)
		err = cStore.Update(rec.CandidateID, map[string]interface{}{
			"status": candidateStatus,
		})
		if err != nil {
			return err
		}

		aStore := applicationstore.NewInstanceWithTx(tx)
		err = aStore.Update(rec.ApplicationID, map[string]interface{}{
			"status":                 models.ApplicationStatusInterviewed,
			"interview_conducted_at": now,
		})
		if err != nil {
			return err
		}

		log.
			WithField("interview_id", interviewID).
			WithField("final_pct", finalPct).
			WithField("candidate_status", candidateStatus).
			Info("собеседование завершено")
		return nil
	})
	if err != nil {
		return interviewapimodels.RoundSubmitResult{}, "", err
	}
	return result, hMsg, nil
}

func (i impl) CreateQuestion(request interviewapimodels.QuestionData) (id string, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err.Error(), nil
	}
	weight := request.Weight
	if weight == 0 {
		weight = 1.0
	}
	rec := dbmodels.Question{
		JobID:      request.JobID,
		RoundType:  request.RoundType,
		Text:       request.Text,
		Competency: request.Competency,
		Weight:     weight,
	}
	id, err = i.questionStore.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания вопроса")
	}
	log.
		WithField("rec_id", id).
		WithField("job_id", request.JobID).
		Info("создан вопрос для собеседования")
	return id, "", nil
}

func (i impl) ListQuestions(filter interviewapimodels.QuestionFilter) (list []interviewapimodels.QuestionView, err error) {
	recList, err := i.questionStore.List(filter.JobID, filter.RoundType)
	if err != nil {
		return nil, err
	}
	list = make([]interviewapimodels.QuestionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, interviewapimodels.QuestionConvert(rec))
	}
	return list, nil
}

func (i impl) DeleteQuestion(id string) error {
	err := i.questionStore.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален вопрос")
	return nil
}
