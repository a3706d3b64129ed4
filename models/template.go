package models

// OfferTemplateData - данные для генерации оффера
type OfferTemplateData struct {
	CandidateFIO  string
	PositionTitle string
	CompanyName   string
	Date          string
}

type File struct {
	FileName    string
	ContentType string
	Body        []byte
}
