package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"hrms-backend/models"
)

type OfferLetter struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);index"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	FilePath    string     `gorm:"type:varchar(500)"` // ключ PDF в S3
	Status      models.OfferStatus `gorm:"type:varchar(50)"`
	SentAt      *time.Time
	SignedAt    *time.Time
}

// IsAllowStatusChange - статусы ACCEPTED/REJECTED терминальные,
// повторное принятие или отклонение оффера недоступно
func (o OfferLetter) IsAllowStatusChange(newStatus models.OfferStatus) (bool, error) {
	if newStatus != models.OfferStatusAccepted && newStatus != models.OfferStatusRejected {
		return false, errors.New("неизвестный статус оффера")
	}
	if o.Status == models.OfferStatusAccepted {
		return false, errors.New("оффер уже принят")
	}
	if o.Status == models.OfferStatusRejected {
		return false, errors.New("оффер уже отклонён")
	}
	if o.Status != models.OfferStatusSent {
		return false, errors.New("оффер ещё не отправлен")
	}
	return true, nil
}
