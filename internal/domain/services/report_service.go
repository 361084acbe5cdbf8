package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"factory-monitor-service/internal/domain/master"
	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheet  = "異常事件"
	summarySheet = "統計"
)

var reportHeaders = []string{"事件編號", "發生時間", "區域", "攝影機", "異常類別", "狀態", "處理人員", "備註"}

// InterfaceReportService 月報表
type InterfaceReportService interface {
	Generate(ctx context.Context, req ReportRequest) (*ReportResult, error)
}

// ReportRequest 報表參數，MONTH 格式 2006-01，空白為本月
type ReportRequest struct {
	Month       string `json:"MONTH" form:"MONTH" example:"2024-05"`
	CamLocation string `json:"CAMLOCATION" form:"CAMLOCATION" master:"B.CAMLOCATION,camlocation"`
	AlertCode   string `json:"ALERTCODE" form:"ALERTCODE" master:"A.ALERTCODE,alertcode"`
}

// ReportResult 產生的報表檔名
type ReportResult struct {
	FileName string `json:"fileName"`
	Rows     int    `json:"rows"`
}

// ReportService 以 excelize 產生 xlsx
type ReportService struct {
	helper *database.Helper
	dir    string
	now    func() time.Time
}

// NewReportService 建立報表服務
func NewReportService(helper *database.Helper, cfg *config.Config) InterfaceReportService {
	return &ReportService{helper: helper, dir: cfg.ReportDir, now: time.Now}
}

func (s *ReportService) month(m string) (time.Time, error) {
	m = strings.TrimSpace(m)
	if m == "" {
		start, _ := monthWindow(s.now())
		return start, nil
	}
	t, err := time.ParseInLocation("2006-01", m, time.Local)
	if err != nil {
		return t, code.New(code.ErrValidation, "MONTH 格式錯誤")
	}
	return t, nil
}

// 1 Generate 產生該月份的事件明細與統計
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*ReportResult, error) {
	start, err := s.month(req.Month)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 1, 0)

	q := master.New(`SELECT A.ALERTNO, A.CAMAREA, A.CAMID, B.CAMNAME, B.CAMLOCATION, A.ALERTCODE, C.ALERTNAME, C.COLOR,
A.ALERTTIME, A.ALERTSTATUS, A.ALERTSTATUS AS BUCKET, A.PASS_NA, A.MEMO, A.IMGURL
FROM EVENTALERT A
INNER JOIN CAMERAINFO B ON A.CAMAREA = B.CAMAREA AND A.CAMID = B.CAMID
INNER JOIN ALERTTYPE C ON A.ALERTCODE = C.ALERTCODE
WHERE 1=1 ORDER BY A.ALERTTIME, A.ALERTNO`).Apply(
		master.Gte("A.ALERTTIME", "monthstart", start),
		master.Lt("A.ALERTTIME", "nextmonth", end),
		master.Filter(req),
	)
	rows, err := master.Find[AlertRow](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("alert-report-%s-%s.xlsx", start.Format("200601"), uuid.NewString()[:8])
	if err := writeReport(filepath.Join(s.dir, name), rows); err != nil {
		return nil, code.Wrap(code.ErrReportGenerate, err)
	}
	return &ReportResult{FileName: name, Rows: len(rows)}, nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		if err := setCell(f, sheet, i+1, 1, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeReport(path string, rows []AlertRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := writeHeader(f, reportSheet, reportHeaders, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "A", "H", 18); err != nil {
		return err
	}

	statusCount := make(map[string]int, len(models.StatusOrder))
	typeCount := make(map[string]int)
	typeOrder := make([]string, 0)
	for i, r := range rows {
		row := i + 2
		values := []interface{}{
			r.AlertNo,
			r.AlertTime.Format("2006-01-02 15:04:05"),
			r.CamLocation,
			r.CamName,
			r.AlertName,
			models.StatusName(r.AlertStatus),
			r.PassNa,
			r.Memo,
		}
		for col, v := range values {
			if err := setCell(f, reportSheet, col+1, row, v); err != nil {
				return err
			}
		}
		statusCount[r.AlertStatus]++
		if _, ok := typeCount[r.AlertName]; !ok {
			typeOrder = append(typeOrder, r.AlertName)
		}
		typeCount[r.AlertName]++
	}

	if err := f.SetPanes(reportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := writeHeader(f, summarySheet, []string{"項目", "數量"}, headerStyle); err != nil {
		return err
	}
	row := 2
	put := func(label string, n int) error {
		if err := setCell(f, summarySheet, 1, row, label); err != nil {
			return err
		}
		if err := setCell(f, summarySheet, 2, row, n); err != nil {
			return err
		}
		row++
		return nil
	}
	if err := put(models.StatusName(models.BucketTotal), len(rows)); err != nil {
		return err
	}
	for _, st := range []models.AlertStatus{models.StatusOpen, models.StatusInProgress, models.StatusClosed} {
		if err := put(models.StatusName(string(st)), statusCount[string(st)]); err != nil {
			return err
		}
	}
	for _, name := range typeOrder {
		if err := put(name, typeCount[name]); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 16); err != nil {
		return err
	}

	return f.SaveAs(path)
}
