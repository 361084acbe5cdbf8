package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"factory-monitor-service/internal/domain/master"
	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"
)

// 攝影機牆顯示文字，同時也是前端篩選用的值
const (
	NoAnomalyText = "無異常"
	AbnormalText  = "異常"
)

// 燈號
const (
	LightGreen = "green"
	LightRed   = "red"
)

// WallState 攝影機目前狀態
type WallState int

const (
	WallAny WallState = iota
	WallNormal
	WallAbnormal
)

// ParseAlertFilter 解析攝影機牆的 alert 篩選值：
// 無異常 只留正常、異常 只留有未結案事件、其他值視為異常類別名稱。
func ParseAlertFilter(alert string) (WallState, string) {
	switch strings.TrimSpace(alert) {
	case "":
		return WallAny, ""
	case NoAnomalyText:
		return WallNormal, ""
	case AbnormalText:
		return WallAbnormal, ""
	}
	return WallAbnormal, strings.TrimSpace(alert)
}

// InterfaceAlertService 定義異常事件服務介面
type InterfaceAlertService interface {
	Init(ctx context.Context) (*DashboardInit, error)
	CameraWall(ctx context.Context, filter CameraWallFilter) ([]CameraWallItem, error)
	CameraCounts(ctx context.Context, filter CameraWallFilter) (*CameraCounts, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	AlertTypeCounts(ctx context.Context) ([]AlertTypeCount, error)
	AlertList(ctx context.Context, filter AlertListFilter) ([]AlertRow, error)
	EditStatus(ctx context.Context, req AlertStatusEditRequest, actor models.Actor) error
	Acknowledge(ctx context.Context, req AcknowledgeRequest, actor models.Actor) (bool, error)
}

// DashboardInit 儀表板初始資料
type DashboardInit struct {
	Locations    []string `json:"locations"`
	AlertTypes   []Option `json:"alertTypes"`
	Statuses     []Option `json:"statuses"`
	AlertFilters []string `json:"alertFilters"`
}

// CameraWallFilter 攝影機牆篩選
type CameraWallFilter struct {
	CamLocation string `json:"camlocation" form:"camlocation"`
	Alert       string `json:"alert" form:"alert"`
}

type cameraWallRow struct {
	CamArea     string     `gorm:"column:CAMAREA"`
	CamID       string     `gorm:"column:CAMID"`
	CamName     string     `gorm:"column:CAMNAME"`
	CamLocation string     `gorm:"column:CAMLOCATION"`
	ImgURL      string     `gorm:"column:IMGURL"`
	VideoURL    string     `gorm:"column:VIDEOURL"`
	RtspURL     string     `gorm:"column:RTSPURL"`
	CamColor    string     `gorm:"column:CAMCOLOR"`
	AlertNo     *int64     `gorm:"column:ALERTNO"`
	AlertCode   *string    `gorm:"column:ALERTCODE"`
	AlertName   *string    `gorm:"column:ALERTNAME"`
	AlertColor  *string    `gorm:"column:ALERTCOLOR"`
	AlertTime   *time.Time `gorm:"column:ALERTTIME"`
	AlertStatus *string    `gorm:"column:ALERTSTATUS"`
}

// CameraWallItem 攝影機牆單格
type CameraWallItem struct {
	CamArea     string     `json:"CAMAREA"`
	CamID       string     `json:"CAMID"`
	CamName     string     `json:"CAMNAME"`
	CamLocation string     `json:"CAMLOCATION"`
	ImgURL      string     `json:"IMGURL"`
	VideoURL    string     `json:"VIDEOURL"`
	RtspURL     string     `json:"RTSPURL"`
	AlertNo     *int64     `json:"ALERTNO"`
	AlertCode   string     `json:"ALERTCODE"`
	Alert       string     `json:"ALERT"`
	Color       string     `json:"COLOR"`
	Light       string     `json:"LIGHT"`
	AlertTime   *time.Time `json:"ALERTTIME"`
	AlertStatus string     `json:"ALERTSTATUS"`
	State       WallState  `json:"-"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r cameraWallRow) toItem() CameraWallItem {
	item := CameraWallItem{
		CamArea:     r.CamArea,
		CamID:       r.CamID,
		CamName:     r.CamName,
		CamLocation: r.CamLocation,
		ImgURL:      r.ImgURL,
		VideoURL:    r.VideoURL,
		RtspURL:     r.RtspURL,
		AlertNo:     r.AlertNo,
		AlertTime:   r.AlertTime,
	}
	if r.AlertNo == nil {
		item.State = WallNormal
		item.Alert = NoAnomalyText
		item.Color = r.CamColor
		item.Light = LightGreen
		return item
	}
	item.State = WallAbnormal
	item.AlertCode = deref(r.AlertCode)
	item.Alert = deref(r.AlertName)
	item.Color = deref(r.AlertColor)
	item.AlertStatus = deref(r.AlertStatus)
	item.Light = LightRed
	return item
}

// CameraCounts 攝影機牆統計
type CameraCounts struct {
	Total    int64 `json:"TOTAL" gorm:"column:TOTAL"`
	Normal   int64 `json:"NORMAL" gorm:"column:NORMAL"`
	Abnormal int64 `json:"ABNORMAL" gorm:"-"`
}

// StatusCount 狀態統計列
type StatusCount struct {
	Code  string `json:"ALERTSTATUS"`
	Name  string `json:"STATUSNAME"`
	Count int64  `json:"CNT"`
}

// AlertTypeCount 異常類別統計列
type AlertTypeCount struct {
	AlertCode string `json:"ALERTCODE" gorm:"column:ALERTCODE"`
	AlertName string `json:"ALERTNAME" gorm:"column:ALERTNAME"`
	Color     string `json:"COLOR" gorm:"column:COLOR"`
	Count     int64  `json:"CNT" gorm:"column:CNT"`
}

// AlertListFilter 本月事件清單篩選，ALERTSTATUS 可為 01/02/03/overdue/total
type AlertListFilter struct {
	Status      string `form:"ALERTSTATUS" json:"ALERTSTATUS"`
	AlertCode   string `form:"ALERTCODE" json:"ALERTCODE" master:"T.ALERTCODE,alertcode"`
	CamLocation string `form:"CAMLOCATION" json:"CAMLOCATION" master:"T.CAMLOCATION,camlocation"`
}

// AlertRow 事件清單列
type AlertRow struct {
	AlertNo     int64     `json:"ALERTNO" gorm:"column:ALERTNO"`
	CamArea     string    `json:"CAMAREA" gorm:"column:CAMAREA"`
	CamID       string    `json:"CAMID" gorm:"column:CAMID"`
	CamName     string    `json:"CAMNAME" gorm:"column:CAMNAME"`
	CamLocation string    `json:"CAMLOCATION" gorm:"column:CAMLOCATION"`
	AlertCode   string    `json:"ALERTCODE" gorm:"column:ALERTCODE"`
	AlertName   string    `json:"ALERTNAME" gorm:"column:ALERTNAME"`
	Color       string    `json:"COLOR" gorm:"column:COLOR"`
	AlertTime   time.Time `json:"ALERTTIME" gorm:"column:ALERTTIME"`
	AlertStatus string    `json:"ALERTSTATUS" gorm:"column:ALERTSTATUS"`
	Bucket      string    `json:"BUCKET" gorm:"column:BUCKET"`
	StatusName  string    `json:"STATUSNAME" gorm:"-"`
	PassNa      string    `json:"PASS_NA" gorm:"column:PASS_NA"`
	Memo        string    `json:"MEMO" gorm:"column:MEMO"`
	ImgURL      string    `json:"IMGURL" gorm:"column:IMGURL"`
}

// AlertStatusEditRequest 事件維護
type AlertStatusEditRequest struct {
	AlertNo     string `json:"ALERTNO" binding:"required" example:"123"`
	AlertStatus string `json:"ALERTSTATUS" binding:"required" example:"02"`
	PassNa      string `json:"PASS_NA" example:"Alice"`
	Memo        string `json:"MEMO" example:"checking"`
}

// AcknowledgeRequest 攝影機牆點擊
type AcknowledgeRequest struct {
	AlertNo string `json:"ALERTNO" binding:"required"`
	PassNa  string `json:"PASS_NA"`
}

// AlertService 攝影機牆與異常事件
type AlertService struct {
	helper   *database.Helper
	notifier InterfaceNotifyService
	now      func() time.Time
}

// NewAlertService 建立異常事件服務
func NewAlertService(helper *database.Helper, notifier InterfaceNotifyService) InterfaceAlertService {
	return &AlertService{helper: helper, notifier: notifier, now: time.Now}
}

// monthWindow 本月 [月初, 下月初)
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

const cameraWallTemplate = `SELECT * FROM (
SELECT B.CAMAREA, B.CAMID, B.CAMNAME, B.CAMLOCATION, B.IMGURL, B.VIDEOURL, B.RTSPURL, B.COLOR AS CAMCOLOR, B.SORTNO,
A.ALERTNO, A.ALERTCODE, C.ALERTNAME, C.COLOR AS ALERTCOLOR, A.ALERTTIME, A.ALERTSTATUS
FROM CAMERAINFO B
LEFT JOIN EVENTALERT A ON A.ALERTNO = (
SELECT E.ALERTNO FROM EVENTALERT E
WHERE E.CAMAREA = B.CAMAREA AND E.CAMID = B.CAMID AND E.ALERTSTATUS <> '03'
ORDER BY E.ALERTTIME DESC, E.ALERTNO DESC LIMIT 1)
LEFT JOIN ALERTTYPE C ON A.ALERTCODE = C.ALERTCODE
WHERE B.DISPLAYYN = 'Y'
) T WHERE 1=1`

func cameraWallPredicates(filter CameraWallFilter) []master.Predicate {
	state, alertName := ParseAlertFilter(filter.Alert)
	return []master.Predicate{
		master.Eq("T.CAMLOCATION", "camlocation", strings.TrimSpace(filter.CamLocation)),
		master.When(state == WallNormal, master.Raw("T.ALERTNO IS NULL", nil)),
		master.When(state == WallAbnormal, master.Raw("T.ALERTNO IS NOT NULL", nil)),
		master.Eq("T.ALERTNAME", "alertname", alertName),
	}
}

// 1 Init 儀表板下拉選單
func (s *AlertService) Init(ctx context.Context) (*DashboardInit, error) {
	locations, err := listLocations(ctx, s.helper)
	if err != nil {
		return nil, err
	}
	types, err := listAlertTypeOptions(ctx, s.helper)
	if err != nil {
		return nil, err
	}

	statuses := make([]Option, 0, len(models.StatusOrder))
	for _, c := range models.StatusOrder {
		statuses = append(statuses, Option{Code: c, Name: models.StatusName(c)})
	}

	return &DashboardInit{
		Locations:    locations,
		AlertTypes:   types,
		Statuses:     statuses,
		AlertFilters: []string{NoAnomalyText, AbnormalText},
	}, nil
}

// 2 CameraWall 每支攝影機與其最新一筆未結案事件
func (s *AlertService) CameraWall(ctx context.Context, filter CameraWallFilter) ([]CameraWallItem, error) {
	q := master.New(cameraWallTemplate + " ORDER BY T.SORTNO, T.CAMAREA, T.CAMID").
		Apply(cameraWallPredicates(filter)...)

	rows, err := master.Find[cameraWallRow](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}
	items := make([]CameraWallItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toItem())
	}
	return items, nil
}

// 3 CameraCounts 攝影機總數、正常數與異常數
func (s *AlertService) CameraCounts(ctx context.Context, filter CameraWallFilter) (*CameraCounts, error) {
	q := master.New("SELECT COUNT(1) AS TOTAL, COALESCE(SUM(CASE WHEN W.ALERTNO IS NULL THEN 1 ELSE 0 END), 0) AS NORMAL FROM (" +
		cameraWallTemplate + ") W").
		Apply(cameraWallPredicates(filter)...)

	rows, err := master.Find[CameraCounts](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}
	counts := &CameraCounts{}
	if len(rows) > 0 {
		*counts = rows[0]
	}
	counts.Abnormal = counts.Total - counts.Normal
	return counts, nil
}

// 4 StatusCounts 本月各狀態數量、逾期未結案與總數，依固定順序輸出
func (s *AlertService) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	start, end := monthWindow(s.now())

	var rows []struct {
		Code string `gorm:"column:CODE"`
		Cnt  int64  `gorm:"column:CNT"`
	}
	err := s.helper.Query(ctx, &rows, `SELECT T.CODE, COUNT(1) AS CNT FROM (
SELECT CASE WHEN A.ALERTTIME < @monthstart THEN 'overdue' ELSE A.ALERTSTATUS END AS CODE
FROM EVENTALERT A
INNER JOIN CAMERAINFO B ON A.CAMAREA = B.CAMAREA AND A.CAMID = B.CAMID
INNER JOIN ALERTTYPE C ON A.ALERTCODE = C.ALERTCODE
WHERE A.ALERTTIME < @nextmonth AND (A.ALERTTIME >= @monthstart OR A.ALERTSTATUS <> '03')
) T GROUP BY T.CODE`, database.Params{"monthstart": start, "nextmonth": end})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.StatusOrder))
	var total int64
	for _, r := range rows {
		if r.Code != models.BucketOverdue && !models.AlertStatus(r.Code).Valid() {
			Logger.Warning("忽略不合法的異常狀態碼 %q (%d 筆)", r.Code, r.Cnt)
			continue
		}
		counts[r.Code] += r.Cnt
		total += r.Cnt
	}
	counts[models.BucketTotal] = total

	out := make([]StatusCount, 0, len(models.StatusOrder))
	for _, c := range models.StatusOrder {
		out = append(out, StatusCount{Code: c, Name: models.StatusName(c), Count: counts[c]})
	}
	return out, nil
}

// 5 AlertTypeCounts 本月各異常類別數量，沒有事件的類別為 0
func (s *AlertService) AlertTypeCounts(ctx context.Context) ([]AlertTypeCount, error) {
	start, end := monthWindow(s.now())
	rows := make([]AlertTypeCount, 0)
	err := s.helper.Query(ctx, &rows, `SELECT C.ALERTCODE, C.ALERTNAME, C.COLOR, COUNT(A.ALERTNO) AS CNT
FROM ALERTTYPE C
LEFT JOIN EVENTALERT A ON A.ALERTCODE = C.ALERTCODE AND A.ALERTTIME >= @monthstart AND A.ALERTTIME < @nextmonth
WHERE C.DISPLAYYN = 'Y'
GROUP BY C.ALERTCODE, C.ALERTNAME, C.COLOR, C.SORTNO
ORDER BY C.SORTNO, C.ALERTCODE`, database.Params{"monthstart": start, "nextmonth": end})
	return rows, err
}

// 6 AlertList 本月事件與逾期未結案事件
func (s *AlertService) AlertList(ctx context.Context, filter AlertListFilter) ([]AlertRow, error) {
	start, end := monthWindow(s.now())

	bucket := strings.TrimSpace(filter.Status)
	if bucket == models.BucketTotal {
		bucket = ""
	}
	if bucket != "" && bucket != models.BucketOverdue && !models.AlertStatus(bucket).Valid() {
		return nil, code.New(code.ErrAlertStatusInvalid, "")
	}

	q := master.New(`SELECT * FROM (
SELECT A.ALERTNO, A.CAMAREA, A.CAMID, B.CAMNAME, B.CAMLOCATION, A.ALERTCODE, C.ALERTNAME, C.COLOR,
A.ALERTTIME, A.ALERTSTATUS, CASE WHEN A.ALERTTIME < @monthstart THEN 'overdue' ELSE A.ALERTSTATUS END AS BUCKET,
A.PASS_NA, A.MEMO, A.IMGURL
FROM EVENTALERT A
INNER JOIN CAMERAINFO B ON A.CAMAREA = B.CAMAREA AND A.CAMID = B.CAMID
INNER JOIN ALERTTYPE C ON A.ALERTCODE = C.ALERTCODE
WHERE A.ALERTTIME < @nextmonth AND (A.ALERTTIME >= @monthstart OR A.ALERTSTATUS <> '03')
) T WHERE 1=1 ORDER BY T.ALERTTIME DESC, T.ALERTNO DESC`).
		Bind(database.Params{"monthstart": start, "nextmonth": end}).
		Apply(
			master.Eq("T.BUCKET", "bucket", bucket),
			master.Filter(filter),
		)

	rows, err := master.Find[AlertRow](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].StatusName = models.StatusName(rows[i].Bucket)
	}
	return rows, nil
}

func parseAlertNo(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, code.New(code.ErrValidation, "ALERTNO 格式錯誤")
	}
	return n, nil
}

// 7 EditStatus 維護事件狀態、處理人員與備註，不限制狀態轉換方向
func (s *AlertService) EditStatus(ctx context.Context, req AlertStatusEditRequest, actor models.Actor) error {
	alertNo, err := parseAlertNo(req.AlertNo)
	if err != nil {
		return err
	}
	status := models.AlertStatus(strings.TrimSpace(req.AlertStatus))
	if !status.Valid() {
		return code.New(code.ErrAlertStatusInvalid, "")
	}

	params := database.Params{
		"alertno":     alertNo,
		"alertstatus": string(status),
		"passna":      req.PassNa,
		"memo":        req.Memo,
		"updateby":    actor.UserID,
		"updateat":    s.now(),
		"updateip":    actor.IP,
	}
	n, err := s.helper.Exec(ctx, `UPDATE EVENTALERT SET ALERTSTATUS = @alertstatus, PASS_NA = @passna, MEMO = @memo,
UPDATE_BY = @updateby, UPDATE_AT = @updateat, UPDATE_IP = @updateip WHERE ALERTNO = @alertno`, params)
	if err != nil {
		return err
	}
	if n == 0 {
		exists, err := s.helper.Count(ctx, "SELECT COUNT(1) FROM EVENTALERT WHERE ALERTNO = @alertno", database.Params{"alertno": alertNo})
		if err != nil {
			return err
		}
		if exists == 0 {
			return code.New(code.ErrAlertNotFound, "")
		}
	}

	s.publish(ctx, "alertstatusedit")
	return nil
}

// 8 Acknowledge 攝影機牆點擊事件，只會把未處理改為處理中
func (s *AlertService) Acknowledge(ctx context.Context, req AcknowledgeRequest, actor models.Actor) (bool, error) {
	alertNo, err := parseAlertNo(req.AlertNo)
	if err != nil {
		return false, err
	}
	passNa := req.PassNa
	if passNa == "" {
		passNa = actor.UserName
	}

	n, err := s.helper.Exec(ctx, `UPDATE EVENTALERT SET ALERTSTATUS = @inprogress, PASS_NA = @passna,
UPDATE_BY = @updateby, UPDATE_AT = @updateat, UPDATE_IP = @updateip WHERE ALERTNO = @alertno AND ALERTSTATUS = @open`,
		database.Params{
			"alertno":    alertNo,
			"inprogress": string(models.StatusInProgress),
			"open":       string(models.StatusOpen),
			"passna":     passNa,
			"updateby":   actor.UserID,
			"updateat":   s.now(),
			"updateip":   actor.IP,
		})
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.publish(ctx, "updatealert")
	}
	return n > 0, nil
}

func (s *AlertService) publish(ctx context.Context, reason string) {
	if err := s.notifier.PublishRefresh(ctx, reason); err != nil {
		Logger.Warning("發布刷新通知失敗: %v", err)
	}
}
