package candidatehandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hrms-backend/db"
	candidatestore "hrms-backend/lib/candidate/store"
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
		store: candidatestore.NewInstance(db.DB),
	}
}

func TestSetPool(t *testing.T) {
	handler := setupTestDB(t)
	candidate := dbmodels.Candidate{
		FirstName: "Игорь",
		LastName:  "Кузнецов",
		Email:     "igor.kuznetsov@example.com",
		Phone:     "+79990005566",
		Status:    models.CandidateStatusNew,
	}
	require.Nil(t, db.DB.Create(&candidate).Error)

	t.Run("кандидат не найден", func(t *testing.T) {
		hMsg, err := handler.SetPool("missing", true)
		require.Nil(t, err)
		require.Equal(t, "кандидат не найден", hMsg)
	})

	t.Run("добавление в пул", func(t *testing.T) {
		hMsg, err := handler.SetPool(candidate.ID, true)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		var updated dbmodels.Candidate
		require.Nil(t, db.DB.First(&updated, "id = ?", candidate.ID).Error)
		require.True(t, updated.IsInPool)
		require.Equal(t, models.CandidateStatusPool, updated.Status)
	})

	t.Run("исключение из пула возвращает начальный статус", func(t *testing.T) {
		hMsg, err := handler.SetPool(candidate.ID, false)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		var updated dbmodels.Candidate
		require.Nil(t, db.DB.First(&updated, "id = ?", candidate.ID).Error)
		require.False(t, updated.IsInPool)
		require.Equal(t, models.CandidateStatusNew, updated.Status)
	})
}
