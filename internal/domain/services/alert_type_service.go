package services

import (
	"context"
	"strings"
	"time"

	"factory-monitor-service/internal/domain/master"
	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"
)

// InterfaceAlertTypeService 定義異常類別維護介面
type InterfaceAlertTypeService interface {
	Init(ctx context.Context) ([]AlertTypeDetail, error)
	GetAvailablePersons(ctx context.Context, alertCode string) ([]models.Person, error)
	Insert(ctx context.Context, req AlertTypeRequest, actor models.Actor) (*SaveResult, error)
	Edit(ctx context.Context, req AlertTypeRequest, actor models.Actor) (*SaveResult, error)
}

// RecipientItem 通知對象
type RecipientItem struct {
	NotifyType string `json:"NOTIFYTYPE" example:"1"`
	NotifyID   string `json:"NOTIFYID" example:"admin"`
}

// AlertTypeRequest 新增或修改異常類別，NOTIFYLIST 為完整的通知對象清單
type AlertTypeRequest struct {
	AlertCode  string          `json:"ALERTCODE" binding:"required" example:"FIRE"`
	AlertName  string          `json:"ALERTNAME" binding:"required" example:"火災"`
	Color      string          `json:"COLOR" example:"#ff0000"`
	SortNo     int             `json:"SORTNO"`
	DisplayYN  string          `json:"DISPLAYYN" example:"Y"`
	NotifyList []RecipientItem `json:"NOTIFYLIST"`
}

// SaveResult 儲存結果，Skipped 為缺少必要欄位或重複而略過的通知對象筆數
type SaveResult struct {
	AlertCode string `json:"ALERTCODE"`
	Inserted  int    `json:"inserted"`
	Skipped   int    `json:"skipped"`
}

// AlertTypeDetail 異常類別與其通知對象
type AlertTypeDetail struct {
	models.AlertType
	NotifyList  []Recipient `json:"NOTIFYLIST"`
	NotifyNames string      `json:"NOTIFYNAMES"`
}

type notifyRow struct {
	AlertCode string `gorm:"column:ALERTCODE"`
	Recipient
}

// AlertTypeService 異常類別與通知對象維護
type AlertTypeService struct {
	helper  *database.Helper
	refresh InterfaceRefreshFlagService
	now     func() time.Time
}

// NewAlertTypeService 建立異常類別維護服務
func NewAlertTypeService(helper *database.Helper, refresh InterfaceRefreshFlagService) InterfaceAlertTypeService {
	return &AlertTypeService{helper: helper, refresh: refresh, now: time.Now}
}

// 1 Init 所有異常類別與其通知對象
func (s *AlertTypeService) Init(ctx context.Context) ([]AlertTypeDetail, error) {
	var types []models.AlertType
	if err := s.helper.Query(ctx, &types,
		"SELECT ALERTCODE, ALERTNAME, COLOR, SORTNO, DISPLAYYN FROM ALERTTYPE ORDER BY SORTNO, ALERTCODE", nil); err != nil {
		return nil, err
	}

	var notifies []notifyRow
	if err := s.helper.Query(ctx, &notifies, `SELECT N.ALERTCODE, N.NOTIFYTYPE, N.NOTIFYID,
COALESCE(P.PASS_NA, D.DEPT_NA, N.NOTIFYID) AS NOTIFYNAME, COALESCE(P.DEPT_NO, D.DEPT_NO, '') AS DEPT_NO, COALESCE(P.EMAIL, '') AS EMAIL
FROM ALERTNOTIFYSET N
LEFT JOIN SYSPASMI P ON N.NOTIFYTYPE = '1' AND P.PASS_ID = N.NOTIFYID
LEFT JOIN (SELECT DEPT_NO, MAX(DEPT_NA) AS DEPT_NA FROM SYSPASMI GROUP BY DEPT_NO) D ON N.NOTIFYTYPE = '2' AND D.DEPT_NO = N.NOTIFYID
ORDER BY N.ALERTCODE, N.NOTIFYTYPE, N.NOTIFYID`, nil); err != nil {
		return nil, err
	}

	grouped := make(map[string][]Recipient, len(types))
	for _, n := range notifies {
		r := n.Recipient
		r.NotifyTypeName = models.NotifyTypeName(r.NotifyType)
		grouped[n.AlertCode] = append(grouped[n.AlertCode], r)
	}

	out := make([]AlertTypeDetail, 0, len(types))
	for _, t := range types {
		list := grouped[t.AlertCode]
		if list == nil {
			list = make([]Recipient, 0)
		}
		names := make([]string, 0, len(list))
		for _, r := range list {
			names = append(names, r.NotifyName)
		}
		out = append(out, AlertTypeDetail{AlertType: t, NotifyList: list, NotifyNames: strings.Join(names, "、")})
	}
	return out, nil
}

// 2 GetAvailablePersons 在職且尚未設定為該類別通知對象的人員，alertCode 為空時列出所有在職人員
func (s *AlertTypeService) GetAvailablePersons(ctx context.Context, alertCode string) ([]models.Person, error) {
	alertCode = strings.TrimSpace(alertCode)
	q := master.New("SELECT P.PASS_ID, P.PASS_NA, P.DEPT_NO, P.DEPT_NA, P.EMAIL FROM SYSPASMI P WHERE P.STATUS = 'Y' AND 1=1 ORDER BY P.PASS_ID").
		Apply(master.When(alertCode != "", master.Raw(
			"NOT EXISTS (SELECT 1 FROM ALERTNOTIFYSET N WHERE N.ALERTCODE = @alertcode AND N.NOTIFYTYPE = '1' AND N.NOTIFYID = P.PASS_ID)",
			database.Params{"alertcode": alertCode})))
	return master.Find[models.Person](ctx, s.helper, q)
}

func validateAlertType(req *AlertTypeRequest) error {
	req.AlertCode = strings.TrimSpace(req.AlertCode)
	req.AlertName = strings.TrimSpace(req.AlertName)
	if req.AlertCode == "" || req.AlertName == "" {
		return code.New(code.ErrValidation, "ALERTCODE 與 ALERTNAME 為必填")
	}
	switch req.DisplayYN {
	case "":
		req.DisplayYN = "Y"
	case "Y", "N":
	default:
		return code.New(code.ErrValidation, "DISPLAYYN 只能是 Y 或 N")
	}
	return nil
}

// normalizeRecipients 略過缺少類型或代號、類型不明與重複的列
func normalizeRecipients(alertCode string, items []RecipientItem) ([]RecipientItem, int) {
	seen := make(map[RecipientItem]bool, len(items))
	out := make([]RecipientItem, 0, len(items))
	skipped := 0
	for _, it := range items {
		it.NotifyType = strings.TrimSpace(it.NotifyType)
		it.NotifyID = strings.TrimSpace(it.NotifyID)
		if it.NotifyType == "" || it.NotifyID == "" || models.NotifyTypeName(it.NotifyType) == "" || seen[it] {
			skipped++
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	if skipped > 0 {
		Logger.Warning("異常類別 %s 有 %d 筆通知對象資料不完整或重複，已略過", alertCode, skipped)
	}
	return out, skipped
}

func (s *AlertTypeService) insertRecipients(ctx context.Context, tx *database.Helper, alertCode string, items []RecipientItem, actor models.Actor, at time.Time) error {
	for _, it := range items {
		_, err := tx.Exec(ctx, `INSERT INTO ALERTNOTIFYSET (ALERTCODE, NOTIFYTYPE, NOTIFYID, CREATE_BY, CREATE_AT, CREATE_IP)
VALUES (@alertcode, @notifytype, @notifyid, @createby, @createat, @createip)`, database.Params{
			"alertcode":  alertCode,
			"notifytype": it.NotifyType,
			"notifyid":   it.NotifyID,
			"createby":   actor.UserID,
			"createat":   at,
			"createip":   actor.IP,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// 3 Insert 新增異常類別與通知對象 (同一交易)
func (s *AlertTypeService) Insert(ctx context.Context, req AlertTypeRequest, actor models.Actor) (*SaveResult, error) {
	if err := validateAlertType(&req); err != nil {
		return nil, err
	}
	items, skipped := normalizeRecipients(req.AlertCode, req.NotifyList)
	at := s.now()

	err := s.helper.Transaction(ctx, func(tx *database.Helper) error {
		n, err := tx.Count(ctx, "SELECT COUNT(1) FROM ALERTTYPE WHERE ALERTCODE = @alertcode", database.Params{"alertcode": req.AlertCode})
		if err != nil {
			return err
		}
		if n > 0 {
			return code.New(code.ErrAlertTypeExists, "")
		}

		if _, err := tx.Exec(ctx, `INSERT INTO ALERTTYPE (ALERTCODE, ALERTNAME, COLOR, SORTNO, DISPLAYYN, CREATE_BY, CREATE_AT, CREATE_IP)
VALUES (@alertcode, @alertname, @color, @sortno, @displayyn, @createby, @createat, @createip)`, database.Params{
			"alertcode": req.AlertCode,
			"alertname": req.AlertName,
			"color":     req.Color,
			"sortno":    req.SortNo,
			"displayyn": req.DisplayYN,
			"createby":  actor.UserID,
			"createat":  at,
			"createip":  actor.IP,
		}); err != nil {
			return err
		}
		return s.insertRecipients(ctx, tx, req.AlertCode, items, actor, at)
	})
	if err != nil {
		return nil, err
	}

	s.raiseRefresh(ctx)
	return &SaveResult{AlertCode: req.AlertCode, Inserted: len(items), Skipped: skipped}, nil
}

// 4 Edit 修改異常類別並以新清單整批取代通知對象，任何一步失敗都會回滾
func (s *AlertTypeService) Edit(ctx context.Context, req AlertTypeRequest, actor models.Actor) (*SaveResult, error) {
	if err := validateAlertType(&req); err != nil {
		return nil, err
	}
	items, skipped := normalizeRecipients(req.AlertCode, req.NotifyList)
	at := s.now()

	err := s.helper.Transaction(ctx, func(tx *database.Helper) error {
		n, err := tx.Exec(ctx, `UPDATE ALERTTYPE SET ALERTNAME = @alertname, COLOR = @color, SORTNO = @sortno, DISPLAYYN = @displayyn,
UPDATE_BY = @updateby, UPDATE_AT = @updateat, UPDATE_IP = @updateip WHERE ALERTCODE = @alertcode`, database.Params{
			"alertcode": req.AlertCode,
			"alertname": req.AlertName,
			"color":     req.Color,
			"sortno":    req.SortNo,
			"displayyn": req.DisplayYN,
			"updateby":  actor.UserID,
			"updateat":  at,
			"updateip":  actor.IP,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			exists, err := tx.Count(ctx, "SELECT COUNT(1) FROM ALERTTYPE WHERE ALERTCODE = @alertcode", database.Params{"alertcode": req.AlertCode})
			if err != nil {
				return err
			}
			if exists == 0 {
				return code.New(code.ErrAlertTypeNotFound, "")
			}
		}

		if _, err := tx.Exec(ctx, "DELETE FROM ALERTNOTIFYSET WHERE ALERTCODE = @alertcode", database.Params{"alertcode": req.AlertCode}); err != nil {
			return err
		}
		return s.insertRecipients(ctx, tx, req.AlertCode, items, actor, at)
	})
	if err != nil {
		return nil, err
	}

	s.raiseRefresh(ctx)
	return &SaveResult{AlertCode: req.AlertCode, Inserted: len(items), Skipped: skipped}, nil
}

func (s *AlertTypeService) raiseRefresh(ctx context.Context) {
	if s.refresh == nil {
		return
	}
	if err := s.refresh.Set(ctx, FlagYes); err != nil {
		Logger.Warning("設定刷新旗標失敗: %v", err)
	}
}
