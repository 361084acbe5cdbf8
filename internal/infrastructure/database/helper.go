package database

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Params 具名參數，SQL 中以 @name 引用
type Params = map[string]interface{}

// Helper 執行參數化 SQL 並回傳結果，連線由連線池按次取用
type Helper struct {
	db *gorm.DB
}

// NewHelper 建立 Helper
func NewHelper(db *gorm.DB) *Helper {
	return &Helper{db: db}
}

// DB 取得底層 gorm 實例
func (h *Helper) DB() *gorm.DB {
	return h.db
}

func bindArgs(sql string, params Params) []interface{} {
	if len(params) == 0 || !strings.Contains(sql, "@") {
		return nil
	}
	return []interface{}{params}
}

// Query 查詢並掃描到 dest (struct slice 或 struct)
func (h *Helper) Query(ctx context.Context, dest interface{}, sql string, params Params) error {
	return h.db.WithContext(ctx).Raw(sql, bindArgs(sql, params)...).Scan(dest).Error
}

// QueryMaps 查詢並以欄位名稱為 key 回傳每一列
func (h *Helper) QueryMaps(ctx context.Context, sql string, params Params) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	if err := h.db.WithContext(ctx).Raw(sql, bindArgs(sql, params)...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count 執行 COUNT 查詢
func (h *Helper) Count(ctx context.Context, sql string, params Params) (int64, error) {
	var n int64
	if err := h.db.WithContext(ctx).Raw(sql, bindArgs(sql, params)...).Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Exec 執行異動語句並回傳影響筆數
func (h *Helper) Exec(ctx context.Context, sql string, params Params) (int64, error) {
	res := h.db.WithContext(ctx).Exec(sql, bindArgs(sql, params)...)
	return res.RowsAffected, res.Error
}

// Transaction 在同一個交易中執行 fn，fn 回傳錯誤即回滾
func (h *Helper) Transaction(ctx context.Context, fn func(tx *Helper) error) error {
	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Helper{db: tx})
	})
}
