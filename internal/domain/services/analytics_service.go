package services

import (
	"context"
	"strings"
	"time"

	"factory-monitor-service/internal/domain/master"
	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/database"

	"github.com/shopspring/decimal"
)

// 日期補零的最大天數，超過時只回傳有資料的日期
const maxTimelineDays = 366

var dateLayouts = []string{"2006-01-02", "2006/01/02"}

// InterfaceAnalyticsService 定義統計分析服務介面
type InterfaceAnalyticsService interface {
	Init(ctx context.Context) (*AnalyticsInit, error)
	EventCount(ctx context.Context, filter AnalyticsFilter) ([]EventCountRow, error)
	LocationCount(ctx context.Context, filter AnalyticsFilter) ([]LocationCountRow, error)
	LocationEventCount(ctx context.Context, filter AnalyticsFilter) (*Pivot, error)
	Timeline(ctx context.Context, filter AnalyticsFilter) (*Pivot, error)
	TimelineList(ctx context.Context, filter AnalyticsFilter) (models.PageResult[AlertRow], error)
}

// AnalyticsFilter 統計查詢條件，日期區間含起訖兩日
type AnalyticsFilter struct {
	StartDate   string `form:"startdate" json:"startdate" example:"2024-05-01"`
	EndDate     string `form:"enddate" json:"enddate" example:"2024-05-31"`
	CamLocation string `form:"camlocation" json:"camlocation" master:"B.CAMLOCATION,camlocation"`
	AlertCode   string `form:"alertcode" json:"alertcode" master:"A.ALERTCODE,alertcode"`
	models.PaginationQuery
}

// AnalyticsInit 統計頁初始資料
type AnalyticsInit struct {
	Locations  []string       `json:"locations"`
	AlertTypes []Option       `json:"alertTypes"`
	Cameras    []CameraOption `json:"cameras"`
	StartDate  string         `json:"startdate"`
	EndDate    string         `json:"enddate"`
}

// EventCountRow 各異常類別數量與占比
type EventCountRow struct {
	AlertCode string  `json:"ALERTCODE" gorm:"column:ALERTCODE"`
	AlertName string  `json:"ALERTNAME" gorm:"column:ALERTNAME"`
	Color     string  `json:"COLOR" gorm:"column:COLOR"`
	Count     int64   `json:"CNT" gorm:"column:CNT"`
	Percent   float64 `json:"PERCENT" gorm:"-"`
}

// LocationCountRow 各區域數量
type LocationCountRow struct {
	CamLocation string `json:"CAMLOCATION" gorm:"column:CAMLOCATION"`
	Count       int64  `json:"CNT" gorm:"column:CNT"`
}

// Pivot 以異常類別為欄的交叉表
type Pivot struct {
	Columns []Option   `json:"columns"`
	Rows    []PivotRow `json:"rows"`
}

// PivotRow 交叉表的一列，Counts 以 ALERTCODE 為 key，沒有資料的類別為 0
type PivotRow struct {
	Key    string           `json:"KEY"`
	Total  int64            `json:"TOTAL"`
	Counts map[string]int64 `json:"COUNTS"`
}

type pivotCell struct {
	Key       string `gorm:"column:PIVOTKEY"`
	AlertCode string `gorm:"column:ALERTCODE"`
	Count     int64  `gorm:"column:CNT"`
}

// AnalyticsService 統計分析
type AnalyticsService struct {
	helper *database.Helper
	now    func() time.Time
}

// NewAnalyticsService 建立統計分析服務
func NewAnalyticsService(helper *database.Helper) InterfaceAnalyticsService {
	return &AnalyticsService{helper: helper, now: time.Now}
}

const analyticsFrom = ` FROM EVENTALERT A
INNER JOIN CAMERAINFO B ON A.CAMAREA = B.CAMAREA AND A.CAMID = B.CAMID
INNER JOIN ALERTTYPE C ON A.ALERTCODE = C.ALERTCODE
WHERE 1=1`

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, code.New(code.ErrValidation, "日期格式錯誤: "+s)
}

// dateRange 回傳 [起日, 迄日隔天)，空字串對應零值
func (f AnalyticsFilter) dateRange() (time.Time, time.Time, error) {
	start, err := parseDate(f.StartDate)
	if err != nil {
		return start, start, err
	}
	end, err := parseDate(f.EndDate)
	if err != nil {
		return start, end, err
	}
	if !end.IsZero() {
		end = end.AddDate(0, 0, 1)
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return start, end, code.New(code.ErrValidation, "起日不可晚於迄日")
	}
	return start, end, nil
}

func (s *AnalyticsService) query(template string, filter AnalyticsFilter) (*master.Query, time.Time, time.Time, error) {
	start, end, err := filter.dateRange()
	if err != nil {
		return nil, start, end, err
	}
	q := master.New(template).Apply(
		master.Gte("A.ALERTTIME", "startdate", start),
		master.Lt("A.ALERTTIME", "enddate", end),
		master.Filter(filter),
	)
	return q, start, end, nil
}

// 1 Init 區域、異常類別、攝影機與預設的本月區間
func (s *AnalyticsService) Init(ctx context.Context) (*AnalyticsInit, error) {
	locations, err := listLocations(ctx, s.helper)
	if err != nil {
		return nil, err
	}
	types, err := listAlertTypeOptions(ctx, s.helper)
	if err != nil {
		return nil, err
	}
	cameras, err := listCameras(ctx, s.helper)
	if err != nil {
		return nil, err
	}
	now := s.now()
	start, _ := monthWindow(now)
	return &AnalyticsInit{
		Locations:  locations,
		AlertTypes: types,
		Cameras:    cameras,
		StartDate:  start.Format(dateLayouts[0]),
		EndDate:    now.Format(dateLayouts[0]),
	}, nil
}

// 2 EventCount 各異常類別數量，PERCENT 為占總數百分比 (小數兩位)
func (s *AnalyticsService) EventCount(ctx context.Context, filter AnalyticsFilter) ([]EventCountRow, error) {
	q, _, _, err := s.query("SELECT C.ALERTCODE, C.ALERTNAME, C.COLOR, COUNT(1) AS CNT"+analyticsFrom+
		" GROUP BY C.ALERTCODE, C.ALERTNAME, C.COLOR, C.SORTNO ORDER BY C.SORTNO, C.ALERTCODE", filter)
	if err != nil {
		return nil, err
	}
	rows, err := master.Find[EventCountRow](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}
	if total == 0 {
		return rows, nil
	}
	hundred := decimal.NewFromInt(100)
	sum := decimal.NewFromInt(total)
	for i := range rows {
		rows[i].Percent = decimal.NewFromInt(rows[i].Count).Mul(hundred).Div(sum).Round(2).InexactFloat64()
	}
	return rows, nil
}

// 3 LocationCount 各區域數量
func (s *AnalyticsService) LocationCount(ctx context.Context, filter AnalyticsFilter) ([]LocationCountRow, error) {
	q, _, _, err := s.query("SELECT B.CAMLOCATION, COUNT(1) AS CNT"+analyticsFrom+
		" GROUP BY B.CAMLOCATION ORDER BY B.CAMLOCATION", filter)
	if err != nil {
		return nil, err
	}
	return master.Find[LocationCountRow](ctx, s.helper, q)
}

// 4 LocationEventCount 區域 x 異常類別
func (s *AnalyticsService) LocationEventCount(ctx context.Context, filter AnalyticsFilter) (*Pivot, error) {
	q, _, _, err := s.query("SELECT B.CAMLOCATION AS PIVOTKEY, C.ALERTCODE, COUNT(1) AS CNT"+analyticsFrom+
		" GROUP BY B.CAMLOCATION, C.ALERTCODE ORDER BY B.CAMLOCATION", filter)
	if err != nil {
		return nil, err
	}
	cells, err := master.Find[pivotCell](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}
	columns, err := listAlertTypeOptions(ctx, s.helper)
	if err != nil {
		return nil, err
	}
	return buildPivot(columns, nil, cells), nil
}

// 5 Timeline 每日 x 異常類別，區間完整時補上沒有事件的日期
func (s *AnalyticsService) Timeline(ctx context.Context, filter AnalyticsFilter) (*Pivot, error) {
	q, start, end, err := s.query("SELECT DATE_FORMAT(A.ALERTTIME, '%Y-%m-%d') AS PIVOTKEY, C.ALERTCODE, COUNT(1) AS CNT"+analyticsFrom+
		" GROUP BY DATE_FORMAT(A.ALERTTIME, '%Y-%m-%d'), C.ALERTCODE ORDER BY PIVOTKEY", filter)
	if err != nil {
		return nil, err
	}
	cells, err := master.Find[pivotCell](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}
	columns, err := listAlertTypeOptions(ctx, s.helper)
	if err != nil {
		return nil, err
	}
	return buildPivot(columns, dayKeys(start, end), cells), nil
}

// 6 TimelineList 區間事件明細 (分頁)
func (s *AnalyticsService) TimelineList(ctx context.Context, filter AnalyticsFilter) (models.PageResult[AlertRow], error) {
	q, _, _, err := s.query(`SELECT A.ALERTNO, A.CAMAREA, A.CAMID, B.CAMNAME, B.CAMLOCATION, A.ALERTCODE, C.ALERTNAME, C.COLOR,
A.ALERTTIME, A.ALERTSTATUS, A.ALERTSTATUS AS BUCKET, A.PASS_NA, A.MEMO, A.IMGURL`+analyticsFrom+
		" ORDER BY A.ALERTTIME DESC, A.ALERTNO DESC", filter)
	if err != nil {
		return models.PageResult[AlertRow]{Rows: make([]AlertRow, 0)}, err
	}
	result, err := master.Page[AlertRow](ctx, s.helper, q, filter.PaginationQuery)
	for i := range result.Rows {
		result.Rows[i].StatusName = models.StatusName(result.Rows[i].AlertStatus)
	}
	return result, err
}

func dayKeys(start, end time.Time) []string {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	if end.Sub(start) > maxTimelineDays*24*time.Hour {
		return nil
	}
	keys := make([]string, 0)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dateLayouts[0]))
	}
	return keys
}

// buildPivot keys 不為空時依 keys 排列並補零，否則依資料出現順序
func buildPivot(columns []Option, keys []string, cells []pivotCell) *Pivot {
	pivot := &Pivot{Columns: columns, Rows: make([]PivotRow, 0, len(keys))}
	index := make(map[string]int, len(keys))

	add := func(key string) int {
		if i, ok := index[key]; ok {
			return i
		}
		counts := make(map[string]int64, len(columns))
		for _, c := range columns {
			counts[c.Code] = 0
		}
		pivot.Rows = append(pivot.Rows, PivotRow{Key: key, Counts: counts})
		index[key] = len(pivot.Rows) - 1
		return index[key]
	}

	for _, k := range keys {
		add(k)
	}
	for _, c := range cells {
		i := add(c.Key)
		pivot.Rows[i].Counts[c.AlertCode] += c.Count
		pivot.Rows[i].Total += c.Count
	}
	return pivot
}
