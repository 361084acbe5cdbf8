package master

import (
	"context"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"
)

func warnMissingMarker(q *Query) {
	if len(q.clauses) > 0 {
		Logger.Warning("查詢範本缺少條件標記 %q，條件未套用: %s", q.marker, q.Suffix())
	}
}

// Find 執行查詢並回傳所有列
func Find[T any](ctx context.Context, h *database.Helper, q *Query) ([]T, error) {
	sql, params, ok := q.Build()
	if !ok {
		warnMissingMarker(q)
	}
	rows := make([]T, 0)
	if err := h.Query(ctx, &rows, sql, params); err != nil {
		return nil, err
	}
	return rows, nil
}

// Page 執行分頁查詢
func Page[T any](ctx context.Context, h *database.Helper, q *Query, p models.PaginationQuery) (models.PageResult[T], error) {
	p = p.Normalize()
	result := models.PageResult[T]{
		PaginationResult: models.PaginationResult{PageNum: p.PageNum, PageSize: p.PageSize},
		Rows:             make([]T, 0),
	}

	countSQL, params, ok := q.CountSQL()
	if !ok {
		warnMissingMarker(q)
	}
	total, err := h.Count(ctx, countSQL, params)
	if err != nil {
		return result, err
	}
	result.Total = total
	if total == 0 {
		return result, nil
	}

	pageSQL, params, _ := q.PageSQL(p.PageNum, p.PageSize)
	if err := h.Query(ctx, &result.Rows, pageSQL, params); err != nil {
		return result, err
	}
	return result, nil
}
