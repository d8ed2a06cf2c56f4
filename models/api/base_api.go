package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// PagedResponse ответ списочных методов
type PagedResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
	Meta   PageMeta    `json:"meta"`
}

type PageMeta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPagedResponse(data interface{}, total int64, page, limit int) PagedResponse {
	totalPages := int(total / int64(limit))
	if total%int64(limit) > 0 {
		totalPages++
	}
	return PagedResponse{
		Status: "success",
		Data:   data,
		Meta: PageMeta{
			Total:           total,
			Page:            page,
			Limit:           limit,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1 && total > 0,
		},
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // Записей на странице
	Page  int `json:"page" query:"page"`   // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// BulkResult итог пакетной операции, каждая позиция обрабатывается
// независимо, ошибки собираются в список
type BulkResult struct {
	Created int         `json:"created"`
	Failed  int         `json:"failed"`
	Errors  []BulkError `json:"errors"`
}

type BulkError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

func (r *BulkResult) AddError(index int, message string) {
	r.Failed++
	r.Errors = append(r.Errors, BulkError{Index: index, Message: message})
}
