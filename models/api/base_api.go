package apimodels

// Response - единый конверт ответа api
type Response struct {
	Status  string      `json:"status"`            // fail или success
	Message string      `json:"message,omitempty"` // текст ошибки для пользователя
	Data    interface{} `json:"data,omitempty"`
}

// ScrollerResponse - ответ для списков с общим количеством записей по фильтру
type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"`
}

func NewError(message string) Response {
	return Response{Status: "fail", Message: message}
}

func NewResponse(data interface{}) Response {
	return Response{Status: "success", Data: data}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

type Pagination struct {
	Limit int `json:"limit"` // записей на странице
	Page  int `json:"page"`  // номер страницы, нумерация с 1
}

// GetPage нормализует параметры пагинации
func (r Pagination) GetPage() (page, limit int) {
	page = r.Page
	if page < 1 {
		page = 1
	}
	limit = r.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
