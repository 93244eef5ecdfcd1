package dto

import "github.com/amoylab/phongtro/internal/apiserver/database"

// PageQuery is the page/limit query string of list endpoints
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (q PageQuery) ToPage() database.Page {
	return database.Page{Page: q.Page, Limit: q.Limit}.Normalize()
}

// Pagination is the paging block of list responses
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

func NewPagination(total int64, page database.Page) Pagination {
	page = page.Normalize()
	limit := int64(page.Limit)
	return Pagination{
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: (total + limit - 1) / limit,
	}
}
