package pdfexport

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hrms-backend/models"
)

const fontDir = "static/font/"

// fpdf паникует на части ошибок разметки, поэтому recover обязателен
func newOfferPage() (pdf *fpdf.Fpdf, err error) {
	pdf = fpdf.New("P", "mm", "A4", fontDir)
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "", 14)
	return pdf, pdf.Error()
}

func renderBody(bodyTemplate string, tplData models.OfferTemplateData) (string, error) {
	tpl, err := template.New("offer_body").Parse(bodyTemplate)
	if err != nil {
		return "", errors.Wrap(err, "ошибка разбора шаблона оффера")
	}
	buf := new(bytes.Buffer)
	if err = tpl.Execute(buf, tplData); err != nil {
		return "", errors.Wrap(err, "ошибка заполнения шаблона оффера")
	}
	return buf.String(), nil
}

// GenerateOffer формирует pdf файл оффера: шапка с названием компании
// и датой, тело по html шаблону
func GenerateOffer(bodyTemplate string, tplData models.OfferTemplateData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOffer panic recover: %v", r)
		}
	}()
	pdf, err := newOfferPage()
	if err != nil {
		return nil, err
	}

	_, lineHt := pdf.GetFontSize()
	header := pdf.HTMLBasicNew()
	header.Write(lineHt, fmt.Sprintf("<b>%v</b><br>%v<br><br>", tplData.CompanyName, tplData.Date))
	if pdf.GetY() < 50 {
		pdf.SetY(50)
	}

	bodyText, err := renderBody(bodyTemplate, tplData)
	if err != nil {
		return nil, err
	}
	body := pdf.HTMLBasicNew()
	body.Write(lineHt, bodyText)

	out := new(bytes.Buffer)
	if err = pdf.Output(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
