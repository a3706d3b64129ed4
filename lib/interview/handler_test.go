package interviewhandler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hrms-backend/db"
	interviewstore "hrms-backend/lib/interview/store"
	"hrms-backend/models"
	interviewapimodels "hrms-backend/models/api/interview"
	dbmodels "hrms-backend/models/db"
)

func setupTestDB(t *testing.T) {
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	db.DB = conn
	require.Nil(t, db.AutoMigrateDB())
	NewHandler()
}

func createFixtures(t *testing.T) (candidateID, jobID, applicationID string) {
	candidate := dbmodels.Candidate{
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan.petrov@example.com",
		Phone:     "+79990001122",
		Status:    models.CandidateStatusNew,
	}
	require.Nil(t, db.DB.Create(&candidate).Error)
	job := dbmodels.Job{
		PositionTitle:     "Go разработчик",
		PositionCode:      "DEV-001",
		EmploymentType:    models.JobTypeFullTime,
		NumberOfVacancies: 1,
		Status:            models.JobStatusActive,
	}
	require.Nil(t, db.DB.Create(&job).Error)
	application := dbmodels.Application{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      models.ApplicationStatusApplied,
		AppliedAt:   time.Now(),
	}
	require.Nil(t, db.DB.Create(&application).Error)
	return candidate.ID, job.ID, application.ID
}

func submitRequest(roundType models.RoundType, scores ...float64) interviewapimodels.RoundSubmitRequest {
	request := interviewapimodels.RoundSubmitRequest{RoundType: roundType}
	for idx, score := range scores {
		request.Answers = append(request.Answers, interviewapimodels.Answer{
			QuestionID: fmt.Sprintf("q-%v", idx+1),
			Score:      score,
		})
	}
	return request
}

func TestSchedule(t *testing.T) {
	setupTestDB(t)
	_, _, applicationID := createFixtures(t)
	scheduledAt := time.Now().Add(24 * time.Hour)

	t.Run("назначение собеседования", func(t *testing.T) {
		id, hMsg, err := Instance.Schedule(interviewapimodels.InterviewData{
			ApplicationID: applicationID,
			ScheduledAt:   &scheduledAt,
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.NotEmpty(t, id)

		item, err := Instance.Get(id)
		require.Nil(t, err)
		require.Equal(t, models.InterviewStatusScheduled, item.Status)
		require.Equal(t, applicationID, item.ApplicationID)
	})

	t.Run("повторное назначение по тому же отклику", func(t *testing.T) {
		_, hMsg, err := Instance.Schedule(interviewapimodels.InterviewData{
			ApplicationID: applicationID,
			ScheduledAt:   &scheduledAt,
		})
		require.Nil(t, err)
		require.Equal(t, "собеседование по этому отклику уже назначено", hMsg)
	})
}

func TestStartRound(t *testing.T) {
	setupTestDB(t)
	_, _, applicationID := createFixtures(t)
	scheduledAt := time.Now().Add(time.Hour)
	interviewID, hMsg, err := Instance.Schedule(interviewapimodels.InterviewData{
		ApplicationID: applicationID,
		ScheduledAt:   &scheduledAt,
	})
	require.Nil(t, err)
	require.Empty(t, hMsg)

	t.Run("старт раунда", func(t *testing.T) {
		item, hMsg, err := Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
			RoundType: models.RoundTypeHR,
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.NotEmpty(t, item.ID)
		require.Equal(t, models.RoundTypeHR, item.RoundType)
	})

	t.Run("повторный старт возвращает тот же раунд", func(t *testing.T) {
		first, _, err := Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
			RoundType: models.RoundTypeHR,
		})
		require.Nil(t, err)
		second, hMsg, err := Instance.StartRound(interviewID, "user-2", interviewapimodels.RoundStartRequest{
			RoundType: models.RoundTypeHR,
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, first.ID, second.ID)
	})

	t.Run("старт завершенного раунда", func(t *testing.T) {
		_, hMsg, err := Instance.SubmitRound(context.Background(), interviewID, submitRequest(models.RoundTypeHR, 70, 80))
		require.Nil(t, err)
		require.Empty(t, hMsg)
		_, hMsg, err = Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
			RoundType: models.RoundTypeHR,
		})
		require.Nil(t, err)
		require.Equal(t, "раунд уже завершен", hMsg)
	})

	t.Run("неизвестный тип раунда", func(t *testing.T) {
		_, hMsg, err := Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
			RoundType: models.RoundType("Unknown"),
		})
		require.Nil(t, err)
		require.Equal(t, "неизвестный тип раунда", hMsg)
	})
}

func TestSubmitRound(t *testing.T) {
	setupTestDB(t)
	candidateID, _, applicationID := createFixtures(t)
	scheduledAt := time.Now().Add(time.Hour)
	interviewID, hMsg, err := Instance.Schedule(interviewapimodels.InterviewData{
		ApplicationID: applicationID,
		ScheduledAt:   &scheduledAt,
	})
	require.Nil(t, err)
	require.Empty(t, hMsg)

	t.Run("раунд не начат", func(t *testing.T) {
		_, hMsg, err := Instance.SubmitRound(context.Background(), interviewID, submitRequest(models.RoundTypeHR, 50))
		require.Nil(t, err)
		require.Equal(t, "раунд не начат", hMsg)
	})

	t.Run("завершение раунда считает средний балл", func(t *testing.T) {
		_, hMsg, err := Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
			RoundType: models.RoundTypeHR,
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)

		result, hMsg, err := Instance.SubmitRound(context.Background(), interviewID, submitRequest(models.RoundTypeHR, 60, 80, 100))
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.RoundTypeHR, result.RoundType)
		require.InDelta(t, 80.0, result.ScorePct, 0.001)
		// итог не подводится, пока не завершены все обязательные раунды
		require.Zero(t, result.FinalPct)
	})

	t.Run("повторная отправка перезаписывает оценки", func(t *testing.T) {
		result, hMsg, err := Instance.SubmitRound(context.Background(), interviewID, submitRequest(models.RoundTypeHR, 40, 60))
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.InDelta(t, 50.0, result.ScorePct, 0.001)

		store := interviewstore.NewInstance(db.DB)
		answers, err := store.ListAnswers(result.RoundID)
		require.Nil(t, err)
		require.Len(t, answers, 2)
	})

	t.Run("итог после всех обязательных раундов", func(t *testing.T) {
		for _, roundType := range []models.RoundType{models.RoundTypeManager, models.RoundTypeExecutive} {
			_, hMsg, err := Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
				RoundType: roundType,
			})
			require.Nil(t, err)
			require.Empty(t, hMsg)
		}
		_, hMsg, err := Instance.SubmitRound(context.Background(), interviewID, submitRequest(models.RoundTypeManager, 70))
		require.Nil(t, err)
		require.Empty(t, hMsg)

		result, hMsg, err := Instance.SubmitRound(context.Background(), interviewID, submitRequest(models.RoundTypeExecutive, 90))
		require.Nil(t, err)
		require.Empty(t, hMsg)
		// (50 + 70 + 90) / 3
		require.InDelta(t, 70.0, result.FinalPct, 0.001)

		item, err := Instance.Get(interviewID)
		require.Nil(t, err)
		require.Equal(t, models.InterviewStatusCompleted, item.Status)
		require.InDelta(t, 70.0, item.FinalPct, 0.001)

		var candidate dbmodels.Candidate
		require.Nil(t, db.DB.First(&candidate, "id = ?", candidateID).Error)
		require.Equal(t, models.CandidateStatusShortlisted, candidate.Status)

		var application dbmodels.Application
		require.Nil(t, db.DB.First(&application, "id = ?", applicationID).Error)
		require.Equal(t, models.ApplicationStatusInterviewed, application.Status)
		require.NotNil(t, application.InterviewConductedAt)
	})
}

func TestSubmitRoundBelowThreshold(t *testing.T) {
	setupTestDB(t)
	candidateID, _, applicationID := createFixtures(t)
	scheduledAt := time.Now().Add(time.Hour)
	interviewID, hMsg, err := Instance.Schedule(interviewapimodels.InterviewData{
		ApplicationID: applicationID,
		ScheduledAt:   &scheduledAt,
	})
	require.Nil(t, err)
	require.Empty(t, hMsg)

	for _, roundType := range models.RequiredRoundTypes {
		_, hMsg, err := Instance.StartRound(interviewID, "user-1", interviewapimodels.RoundStartRequest{
			RoundType: roundType,
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		_, hMsg, err = Instance.SubmitRound(context.Background(), interviewID, submitRequest(roundType, 40, 50))
		require.Nil(t, err)
		require.Empty(t, hMsg)
	}

	var candidate dbmodels.Candidate
	require.Nil(t, db.DB.First(&candidate, "id = ?", candidateID).Error)
	require.Equal(t, models.CandidateStatusInterviewed, candidate.Status)
}

func TestQuestions(t *testing.T) {
	setupTestDB(t)
	_, jobID, _ := createFixtures(t)

	t.Run("создание и список", func(t *testing.T) {
		id, hMsg, err := Instance.CreateQuestion(interviewapimodels.QuestionData{
			JobID:     jobID,
			RoundType: models.RoundTypeHR,
			Text:      "Расскажите о себе",
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.NotEmpty(t, id)

		list, err := Instance.ListQuestions(interviewapimodels.QuestionFilter{JobID: jobID})
		require.Nil(t, err)
		require.Len(t, list, 1)
		// вес по умолчанию
		require.Equal(t, 1.0, list[0].Weight)
	})

	t.Run("удаление", func(t *testing.T) {
		list, err := Instance.ListQuestions(interviewapimodels.QuestionFilter{JobID: jobID})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Nil(t, Instance.DeleteQuestion(list[0].ID))
		list, err = Instance.ListQuestions(interviewapimodels.QuestionFilter{JobID: jobID})
		require.Nil(t, err)
		require.Empty(t, list)
	})
}
