package offerhandler

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
	applicationstore "hrms-backend/lib/application/store"
	candidatestore "hrms-backend/lib/candidate/store"
	offerstore "hrms-backend/lib/offer/store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func setupTestDB(t *testing.T) impl {
	dsn := fmt.Sprintf("file:%v?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	db.DB = conn
	require.Nil(t, db.AutoMigrateDB())
	return impl{
		store:            offerstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		candidateStore:   candidatestore.NewInstance(db.DB),
	}
}

func createCandidate(t *testing.T, status models.CandidateStatus) dbmodels.Candidate {
	candidate := dbmodels.Candidate{
		FirstName: "Анна",
		LastName:  "Смирнова",
		Email:     "anna.smirnova@example.com",
		Phone:     "+79990003344",
		Status:    status,
	}
	require.Nil(t, db.DB.Create(&candidate).Error)
	return candidate
}

func createApplication(t *testing.T, candidateID string) dbmodels.Application {
	job := dbmodels.Job{
		PositionTitle:     "Аналитик",
		PositionCode:      fmt.Sprintf("AN-%v", time.Now().UnixNano()),
		EmploymentType:    models.JobTypeFullTime,
		NumberOfVacancies: 1,
		Status:            models.JobStatusActive,
	}
	require.Nil(t, db.DB.Create(&job).Error)
	application := dbmodels.Application{
		CandidateID: candidateID,
		JobID:       job.ID,
		Status:      models.ApplicationStatusInterviewed,
		AppliedAt:   time.Now(),
	}
	require.Nil(t, db.DB.Create(&application).Error)
	return application
}

func TestIssueGuards(t *testing.T) {
	handler := setupTestDB(t)

	t.Run("кандидат не найден", func(t *testing.T) {
		_, hMsg, err := handler.Issue(context.Background(), "missing")
		require.Nil(t, err)
		require.Equal(t, "кандидат не найден", hMsg)
	})

	t.Run("кандидат не в шортлисте", func(t *testing.T) {
		candidate := createCandidate(t, models.CandidateStatusInterviewed)
		createApplication(t, candidate.ID)
		_, hMsg, err := handler.Issue(context.Background(), candidate.ID)
		require.Nil(t, err)
		require.Equal(t, "оффер доступен только для кандидата в шортлисте", hMsg)
	})

	t.Run("у кандидата уже есть действующий оффер", func(t *testing.T) {
		candidate := createCandidate(t, models.CandidateStatusShortlisted)
		createApplication(t, candidate.ID)
		now := time.Now()
		_, err := handler.store.Create(dbmodels.OfferLetter{
			CandidateID: candidate.ID,
			Status:      models.OfferStatusSent,
			SentAt:      &now,
		})
		require.Nil(t, err)
		_, hMsg, err := handler.Issue(context.Background(), candidate.ID)
		require.Nil(t, err)
		require.Equal(t, "у кандидата уже есть действующий оффер", hMsg)
	})

	t.Run("у кандидата нет отклика", func(t *testing.T) {
		candidate := createCandidate(t, models.CandidateStatusShortlisted)
		_, hMsg, err := handler.Issue(context.Background(), candidate.ID)
		require.Nil(t, err)
		require.Equal(t, "у кандидата нет отклика на вакансию", hMsg)
	})
}

func TestAccept(t *testing.T) {
	handler := setupTestDB(t)
	candidate := createCandidate(t, models.CandidateStatusShortlisted)
	now := time.Now()
	offerID, err := handler.store.Create(dbmodels.OfferLetter{
		CandidateID: candidate.ID,
		Status:      models.OfferStatusSent,
		SentAt:      &now,
	})
	require.Nil(t, err)

	t.Run("принятие оффера", func(t *testing.T) {
		hMsg, err := handler.Accept(offerID)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		rec, err := handler.store.GetByID(offerID)
		require.Nil(t, err)
		require.Equal(t, models.OfferStatusAccepted, rec.Status)
		require.NotNil(t, rec.SignedAt)

		var updated dbmodels.Candidate
		require.Nil(t, db.DB.First(&updated, "id = ?", candidate.ID).Error)
		require.Equal(t, models.CandidateStatusHired, updated.Status)
	})

	t.Run("повторное принятие", func(t *testing.T) {
		hMsg, err := handler.Accept(offerID)
		require.Nil(t, err)
		require.Equal(t, "оффер уже принят", hMsg)
	})

	t.Run("отклонение принятого оффера", func(t *testing.T) {
		hMsg, err := handler.Reject(offerID)
		require.Nil(t, err)
		require.Equal(t, "оффер уже принят", hMsg)
	})
}

func TestReject(t *testing.T) {
	handler := setupTestDB(t)
	candidate := createCandidate(t, models.CandidateStatusShortlisted)
	now := time.Now()
	offerID, err := handler.store.Create(dbmodels.OfferLetter{
		CandidateID: candidate.ID,
		Status:      models.OfferStatusSent,
		SentAt:      &now,
	})
	require.Nil(t, err)

	t.Run("отклонение оффера", func(t *testing.T) {
		hMsg, err := handler.Reject(offerID)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		rec, err := handler.store.GetByID(offerID)
		require.Nil(t, err)
		require.Equal(t, models.OfferStatusRejected, rec.Status)

		var updated dbmodels.Candidate
		require.Nil(t, db.DB.First(&updated, "id = ?", candidate.ID).Error)
		require.Equal(t, models.CandidateStatusRejected, updated.Status)
	})

	t.Run("повторное отклонение", func(t *testing.T) {
		hMsg, err := handler.Reject(offerID)
		require.Nil(t, err)
		require.Equal(t, "оффер уже отклонён", hMsg)
	})
}

func TestAcceptDraftOffer(t *testing.T) {
	handler := setupTestDB(t)
	candidate := createCandidate(t, models.CandidateStatusShortlisted)
	offerID, err := handler.store.Create(dbmodels.OfferLetter{
		CandidateID: candidate.ID,
		Status:      models.OfferStatusDraft,
	})
	require.Nil(t, err)

	hMsg, err := handler.Accept(offerID)
	require.Nil(t, err)
	require.Equal(t, "оффер ещё не отправлен", hMsg)
}
