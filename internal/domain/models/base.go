package models

import "time"

// Audit 稽核欄位
type Audit struct {
	CreateBy string     `gorm:"column:CREATE_BY;type:varchar(20)" json:"CREATE_BY,omitempty"`
	CreateAt *time.Time `gorm:"column:CREATE_AT" json:"CREATE_AT,omitempty"`
	CreateIP string     `gorm:"column:CREATE_IP;type:varchar(50)" json:"CREATE_IP,omitempty"`
	UpdateBy string     `gorm:"column:UPDATE_BY;type:varchar(20)" json:"UPDATE_BY,omitempty"`
	UpdateAt *time.Time `gorm:"column:UPDATE_AT" json:"UPDATE_AT,omitempty"`
	UpdateIP string     `gorm:"column:UPDATE_IP;type:varchar(50)" json:"UPDATE_IP,omitempty"`
}

// Actor 異動者資訊，寫入稽核欄位
type Actor struct {
	UserID   string
	UserName string
	IP       string
}

// PaginationQuery 分頁查詢參數
type PaginationQuery struct {
	PageNum  int `form:"pageNum" json:"pageNum"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// Normalize 補上預設值並限制每頁筆數
func (p PaginationQuery) Normalize() PaginationQuery {
	if p.PageNum < 1 {
		p.PageNum = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 500 {
		p.PageSize = 500
	}
	return p
}

// PaginationResult 分頁結果
type PaginationResult struct {
	Total    int64 `json:"total"`
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
}

// PageResult 帶資料的分頁結果
type PageResult[T any] struct {
	PaginationResult
	Rows []T `json:"rows"`
}
