package candidatehandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	candidatestore "hrms-backend/lib/candidate/store"
	xlsexport "hrms-backend/lib/export/xls"
	filestorage "hrms-backend/lib/file-storage"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	candidateapimodels "hrms-backend/models/api/candidate"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(request candidateapimodels.CandidateData, createdByID string) (id string, hMsg string, err error)
	Update(id string, request candidateapimodels.CandidateData) (hMsg string, err error)
	Get(id string) (item candidateapimodels.CandidateView, err error)
	List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	Search(filter candidateapimodels.CandidateSearchFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	Delete(id string) error
	SetPool(id string, inPool bool) (hMsg string, err error)
	UploadResume(ctx context.Context, id, fileName string, file []byte) (hMsg string, err error)
	GetResume(ctx context.Context, id string) (fileName string, file []byte, err error)
	Export() (*bytes.Buffer, error)
	ImportTemplate() (*bytes.Buffer, error)
	Import(file []byte, createdByID string) (imported int, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       candidatestore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
		xls:         xlsexport.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"fileStorage", instance.fileStorage,
		"xls", instance.xls,
	)
	Instance = instance
}

type impl struct {
	store       candidatestore.Provider
	fileStorage filestorage.Provider
	xls         xlsexport.Provider
}

func (i impl) Create(request candidateapimodels.CandidateData, createdByID string) (id string, hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err.Error(), nil
	}
	existedRec, err := i.store.FindByEmail(request.Email)
	if err != nil {
		return "", "", err
	}
	if existedRec != nil {
		return "", "кандидат с такой почтой уже существует", nil
	}
	rec := i.toRec(request)
	rec.Status = models.CandidateStatusNew
	rec.CreatedByID = createdByID
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания кандидата")
	}
	log.
		WithField("rec_id", id).
		WithField("email", rec.Email).
		Info("создан кандидат")
	return id, "", nil
}

func (i impl) toRec(request candidateapimodels.CandidateData) dbmodels.Candidate {
	return dbmodels.Candidate{
		FirstName:            request.FirstName,
		LastName:             request.LastName,
		Email:                strings.ToLower(request.Email),
		Phone:                request.Phone,
		LocationState:        request.LocationState,
		LocationCity:         request.LocationCity,
		LocationArea:         request.LocationArea,
		LocationPincode:      request.LocationPincode,
		EducationShort:       request.EducationShort,
		EducationDetailed:    request.EducationDetailed,
		ExperienceYears:      request.ExperienceYears,
		ExperienceDetails:    request.ExperienceDetails,
		NoticePeriod:         request.NoticePeriod,
		CurrentCompensation:  request.CurrentCompensation,
		ExpectedCompensation: request.ExpectedCompensation,
		CoverLetter:          request.CoverLetter,
		Source:               request.Source,
		SourceDetails:        request.SourceDetails,
		Notes:                request.Notes,
	}
}

func (i impl) Update(id string, request candidateapimodels.CandidateData) (hMsg string, err error) {
	err = request.Validate()
	if err != nil {
		return err.Error(), nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "кандидат не найден", nil
	}
	updMap := map[string]interface{}{
		"first_name":            request.FirstName,
		"last_name":             request.LastName,
		"email":                 strings.ToLower(request.Email),
		"phone":                 request.Phone,
		"location_state":        request.LocationState,
		"location_city":         request.LocationCity,
		"location_area":         request.LocationArea,
		"location_pincode":      request.LocationPincode,
		"education_short":       request.EducationShort,
		"education_detailed":    request.EducationDetailed,
		"experience_years":      request.ExperienceYears,
		"experience_details":    request.ExperienceDetails,
		"notice_period":         request.NoticePeriod,
		"current_compensation":  request.CurrentCompensation,
		"expected_compensation": request.ExpectedCompensation,
		"cover_letter":          request.CoverLetter,
		"source":                request.Source,
		"source_details":        request.SourceDetails,
		"notes":                 request.Notes,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("обновлен кандидат")
	return "", nil
}

func (i impl) Get(id string) (item candidateapimodels.CandidateView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("кандидат не найден")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Find(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, candidateapimodels.CandidateConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Search(filter candidateapimodels.CandidateSearchFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	recList, rowCount, err := i.store.Search(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, candidateapimodels.CandidateConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален кандидат")
	return nil
}

func (i impl) SetPool(id string, inPool bool) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "кандидат не найден", nil
	}
	updMap := map[string]interface{}{
		"is_in_pool": inPool,
	}
	if inPool {
		updMap["status"] = models.CandidateStatusPool
	} else {
		// исключение из пула возвращает кандидата в начальный статус
		updMap["status"] = models.CandidateStatusNew
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("in_pool", inPool).
		Info("изменено членство кандидата в пуле")
	return "", nil
}

func (i impl) UploadResume(ctx context.Context, id, fileName string, file []byte) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "кандидат не найден", nil
	}
	if len(file) == 0 {
		return "пустой файл резюме", nil
	}
	key, err := i.fileStorage.UploadResume(ctx, id, fileName, file)
	if err != nil {
		return "", err
	}
	err = i.store.Update(id, map[string]interface{}{"resume_url": key})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("загружено резюме кандидата")
	return "", nil
}

func (i impl) GetResume(ctx context.Context, id string) (fileName string, file []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.New("кандидат не найден")
	}
	if rec.ResumeURL == "" {
		return "", nil, errors.New("резюме не загружено")
	}
	file, err = i.fileStorage.GetResume(ctx, rec.ResumeURL)
	if err != nil {
		return "", nil, err
	}
	pos := strings.LastIndex(rec.ResumeURL, "/")
	fileName = rec.ResumeURL[pos+1:]
	return fileName, file, nil
}

func (i impl) Export() (*bytes.Buffer, error) {
	recList, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	return i.xls.ExportCandidateList(recList)
}

func (i impl) ImportTemplate() (*bytes.Buffer, error) {
	return i.xls.GetImportTemplate()
}

func (i impl) Import(file []byte, createdByID string) (imported int, hMsg string, err error) {
	dataList, err := i.xls.ParseCandidateImport(file)
	if err != nil {
		return 0, err.Error(), nil
	}
	for idx, data := range dataList {
		err = data.Validate()
		if err != nil {
			return 0, errors.Wrapf(err, "строка %v", idx+2).Error(), nil
		}
	}
	for _, data := range dataList {
		existedRec, err := i.store.FindByEmail(data.Email)
		if err != nil {
			return imported, "", err
		}
		if existedRec != nil {
			// дубликаты по почте пропускаем
			continue
		}
		rec := i.toRec(data)
		rec.Status = models.CandidateStatusNew
		rec.CreatedByID = createdByID
		_, err = i.store.Create(rec)
		if err != nil {
			return imported, "", errors.Wrap(err, "ошибка импорта кандидата")
		}
		imported++
	}
	log.WithField("imported", imported).Info("импортированы кандидаты из xlsx")
	return imported, "", nil
}
