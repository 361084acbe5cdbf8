package services

import (
	"context"
	"strings"

	"factory-monitor-service/internal/domain/master"
	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/database"
)

// InterfaceRecipientService 通知對象參考清單 (人員與部門)
type InterfaceRecipientService interface {
	Init(ctx context.Context) ([]Option, error)
	Search(ctx context.Context, filter RecipientFilter) ([]Recipient, error)
}

// RecipientFilter 通知對象查詢條件
type RecipientFilter struct {
	NotifyType string `json:"NOTIFYTYPE" form:"NOTIFYTYPE" master:"T.NOTIFYTYPE,notifytype"`
	Keyword    string `json:"KEYWORD" form:"KEYWORD"`
}

// Recipient 通知對象
type Recipient struct {
	NotifyType     string `json:"NOTIFYTYPE" gorm:"column:NOTIFYTYPE"`
	NotifyTypeName string `json:"NOTIFYTYPENAME" gorm:"-"`
	NotifyID       string `json:"NOTIFYID" gorm:"column:NOTIFYID"`
	NotifyName     string `json:"NOTIFYNAME" gorm:"column:NOTIFYNAME"`
	DeptNo         string `json:"DEPT_NO" gorm:"column:DEPT_NO"`
	Email          string `json:"EMAIL" gorm:"column:EMAIL"`
}

// RecipientService 以 SYSPASMI 的人員與部門作為通知對象
type RecipientService struct {
	helper *database.Helper
}

// NewRecipientService 建立通知對象服務
func NewRecipientService(helper *database.Helper) InterfaceRecipientService {
	return &RecipientService{helper: helper}
}

// 人員與部門合併成同一張清單，部門取在職人員的 DEPT_NO
const recipientTemplate = `SELECT * FROM (
SELECT '1' AS NOTIFYTYPE, P.PASS_ID AS NOTIFYID, P.PASS_NA AS NOTIFYNAME, P.DEPT_NO, P.EMAIL FROM SYSPASMI P WHERE P.STATUS = 'Y'
UNION ALL
SELECT '2' AS NOTIFYTYPE, D.DEPT_NO AS NOTIFYID, MAX(D.DEPT_NA) AS NOTIFYNAME, D.DEPT_NO, '' AS EMAIL FROM SYSPASMI D
WHERE D.STATUS = 'Y' AND D.DEPT_NO <> '' GROUP BY D.DEPT_NO
) T WHERE 1=1 ORDER BY T.NOTIFYTYPE, T.NOTIFYID`

// 1 Init 通知對象類型
func (s *RecipientService) Init(ctx context.Context) ([]Option, error) {
	return []Option{
		{Code: models.NotifyTypePerson, Name: models.NotifyTypeName(models.NotifyTypePerson)},
		{Code: models.NotifyTypeDept, Name: models.NotifyTypeName(models.NotifyTypeDept)},
	}, nil
}

// 2 Search 依類型與關鍵字 (代號或名稱) 查詢通知對象
func (s *RecipientService) Search(ctx context.Context, filter RecipientFilter) ([]Recipient, error) {
	q := master.New(recipientTemplate).Apply(master.Filter(filter))
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		q.Where("(T.NOTIFYID LIKE @keyword OR T.NOTIFYNAME LIKE @keyword)", database.Params{"keyword": "%" + kw + "%"})
	}

	rows, err := master.Find[Recipient](ctx, s.helper, q)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].NotifyTypeName = models.NotifyTypeName(rows[i].NotifyType)
	}
	return rows, nil
}
