package dtos

// Envelope is the body of every /api response:
// { success, data, code?, message?, errors?, pagination? }.
type Envelope[T any] struct {
	Success    bool      `json:"success"`
	Data       T         `json:"data"`
	Code       string    `json:"code,omitempty"`
	Message    string    `json:"message,omitempty"`
	Errors     []string  `json:"errors,omitempty"`
	Pagination *PageMeta `json:"pagination,omitempty"`
}

type PageMeta struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
	Total    int  `json:"total"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
