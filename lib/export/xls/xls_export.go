package xlsexport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hrms-backend/models"
	candidateapimodels "hrms-backend/models/api/candidate"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
	GetImportTemplate() (*bytes.Buffer, error)
	ParseCandidateImport(file []byte) ([]candidateapimodels.CandidateData, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"ФИО", "Контакты", "Город", "Опыт (лет)", "Навыки", "Источник", "Статус", "Дата добавления"}

var importHeaders = []string{"Имя", "Фамилия", "Почта", "Телефон", "Город", "Опыт (лет)", "Навыки", "Источник"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func (i impl) GetImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	_, err := writeHeader(f, sheet, 0, importHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования шаблона импорта")
	}
	f.SetSheetName(sheet, "Импорт")
	return f.WriteToBuffer()
}

func (i impl) ParseCandidateImport(file []byte) ([]candidateapimodels.CandidateData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, errors.Wrap(err, "не удалось открыть файл импорта")
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "не удалось прочитать строки файла импорта")
	}
	result := make([]candidateapimodels.CandidateData, 0, len(rows))
	for idx, row := range rows {
		// первая строка - заголовок
		if idx == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(getCell(row, 0)) == "" {
			continue
		}
		data := candidateapimodels.CandidateData{
			FirstName:         strings.TrimSpace(getCell(row, 0)),
			LastName:          strings.TrimSpace(getCell(row, 1)),
			Email:             strings.TrimSpace(getCell(row, 2)),
			Phone:             strings.TrimSpace(getCell(row, 3)),
			LocationCity:      strings.TrimSpace(getCell(row, 4)),
			ExperienceDetails: strings.TrimSpace(getCell(row, 6)),
			Source:            models.CandidateSource(strings.TrimSpace(getCell(row, 7))),
		}
		if yearsStr := strings.TrimSpace(getCell(row, 5)); yearsStr != "" {
			years, err := strconv.Atoi(yearsStr)
			if err != nil {
				return nil, errors.Errorf("строка %v: некорректное значение опыта (%v)", idx+1, yearsStr)
			}
			data.ExperienceYears = &years
		}
		result = append(result, data)
	}
	return result, nil
}

func getCell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFIO()); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Город"
		col++
		if err := writeColumn(f, sheet, col, row, item.LocationCity); err != nil {
			return row, err
		}

		// "Опыт (лет)"
		col++
		if item.ExperienceYears != nil {
			if err := writeColumn(f, sheet, col, row, *item.ExperienceYears); err != nil {
				return row, err
			}
		}

		// "Навыки"
		col++
		if err := writeColumn(f, sheet, col, row, item.ExperienceDetails); err != nil {
			return row, err
		}

		// "Источник"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Source)); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Дата добавления"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
