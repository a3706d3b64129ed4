package offerhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hrms-backend/config"
	"hrms-backend/db"
	applicationstore "hrms-backend/lib/application/store"
	candidatestore "hrms-backend/lib/candidate/store"
	pdfexport "hrms-backend/lib/export/pdf"
	filestorage "hrms-backend/lib/file-storage"
	offerstore "hrms-backend/lib/offer/store"
	"hrms-backend/lib/smtp"
	helpers "hrms-backend/lib/utils/helpers"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	offerapimodels "hrms-backend/models/api/offer"
	dbmodels "hrms-backend/models/db"
)

// шаблон тела оффера для pdf
const offerBodyTemplate = `Уважаемый(ая) {{.CandidateFIO}}!<br><br>` +
	`Компания {{.CompanyName}} рада предложить вам позицию «{{.PositionTitle}}».<br>` +
	`Для принятия предложения свяжитесь с отделом персонала.<br><br>` +
	`Дата формирования: {{.Date}}`

type Provider interface {
	Issue(ctx context.Context, candidateID string) (id string, hMsg string, err error)
	Accept(id string) (hMsg string, err error)
	Reject(id string) (hMsg string, err error)
	Get(id string) (item offerapimodels.OfferView, err error)
	List(filter offerapimodels.OfferFilter) (list []offerapimodels.OfferView, rowCount int64, err error)
	Download(ctx context.Context, id string) (fileName string, file []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            offerstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		candidateStore:   candidatestore.NewInstance(db.DB),
		fileStorage:      filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"applicationStore", instance.applicationStore,
		"candidateStore", instance.candidateStore,
		"fileStorage", instance.fileStorage,
	)
	Instance = instance
}

type impl struct {
	store            offerstore.Provider
	applicationStore applicationstore.Provider
	candidateStore   candidatestore.Provider
	fileStorage      filestorage.Provider
}

// Issue формирует pdf оффера, сохраняет его в хранилище и отправляет кандидату
func (i impl) Issue(ctx context.Context, candidateID string) (id string, hMsg string, err error) {
	rec, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return "", "", err
	}
	if rec == nil {
		return "", "кандидат не найден", nil
	}
	candidate := *rec
	if candidate.Status != models.CandidateStatusShortlisted {
		return "", "оффер доступен только для кандидата в шортлисте", nil
	}
	existedRec, err := i.store.FindActiveByCandidate(candidate.ID)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "у кандидата уже есть действующий оффер", nil
	}
	application, err := i.applicationStore.FindLatestByCandidate(candidate.ID)
	if err != nil {
		return "", "", err
	}
	if application == nil {
		return "", "у кандидата нет отклика на вакансию", nil
	}
	if application.Job == nil {
		return "", "", errors.New("отклик без вакансии")
	}

	tplData := models.OfferTemplateData{
		CandidateFIO:  candidate.GetFIO(),
		PositionTitle: application.Job.PositionTitle,
		CompanyName:   config.Conf.App.CompanyName,
		Date:          helpers.FormatDocDate(time.Now()),
	}
	pdfFile, err := pdfexport.GenerateOffer(offerBodyTemplate, tplData)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка генерации pdf оффера")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := offerstore.NewInstanceWithTx(tx)
		now := time.Now()
		rec := dbmodels.OfferLetter{
			CandidateID: candidate.ID,
			Status:      models.OfferStatusSent,
			SentAt:      &now,
		}
		id, err = store.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания оффера")
		}
		key, err := i.fileStorage.UploadOffer(ctx, id, pdfFile)
		if err != nil {
			return err
		}
		return store.Update(id, map[string]interface{}{"file_path": key})
	})
	if err != nil {
		return "", "", err
	}

	if smtp.Instance != nil {
		err = smtp.Instance.SendEMail(config.Conf.Admin.Email, candidate.Email,
			fmt.Sprintf("Компания %v подготовила для вас предложение о работе на позицию «%v»",
				config.Conf.App.CompanyName, application.Job.PositionTitle),
			"Предложение о работе")
		if err != nil {
			log.WithError(err).WithField("rec_id", id).Error("не удалось отправить письмо с оффером")
		}
	}

	log.
		WithField("rec_id", id).
		WithField("candidate_id", candidate.ID).
		Info("сформирован и отправлен оффер")
	return id, "", nil
}

func (i impl) Accept(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "оффер не найден", nil
	}
	allowed, err := rec.IsAllowStatusChange(models.OfferStatusAccepted)
	if !allowed {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		store := offerstore.NewInstanceWithTx(tx)
		err := store.Update(id, map[string]interface{}{
			"status":    models.OfferStatusAccepted,
			"signed_at": now,
		})
		if err != nil {
			return err
		}
		cStore := candidatestore.NewInstanceWithTx(tx)
		return cStore.Update(rec.CandidateID, map[string]interface{}{
			"status": models.CandidateStatusHired,
		})
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("candidate_id", rec.CandidateID).
		Info("оффер принят, кандидат нанят")
	return "", nil
}

func (i impl) Reject(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "оффер не найден", nil
	}
	allowed, err := rec.IsAllowStatusChange(models.OfferStatusRejected)
	if !allowed {
		return err.Error(), nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := offerstore.NewInstanceWithTx(tx)
		err := store.Update(id, map[string]interface{}{
			"status": models.OfferStatusRejected,
		})
		if err != nil {
			return err
		}
		cStore := candidatestore.NewInstanceWithTx(tx)
		return cStore.Update(rec.CandidateID, map[string]interface{}{
			"status": models.CandidateStatusRejected,
		})
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("candidate_id", rec.CandidateID).
		Info("оффер отклонён кандидатом")
	return "", nil
}

func (i impl) Get(id string) (item offerapimodels.OfferView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return offerapimodels.OfferView{}, err
	}
	if rec == nil {
		return offerapimodels.OfferView{}, errors.New("оффер не найден")
	}
	return offerapimodels.OfferConvert(*rec), nil
}

func (i impl) List(filter offerapimodels.OfferFilter) (list []offerapimodels.OfferView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Find(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]offerapimodels.OfferView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, offerapimodels.OfferConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Download(ctx context.Context, id string) (fileName string, file []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.New("оффер не найден")
	}
	if rec.FilePath == "" {
		return "", nil, errors.New("файл оффера не сформирован")
	}
	file, err = i.fileStorage.GetOffer(ctx, rec.FilePath)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("offer_%v.pdf", rec.ID), file, nil
}
