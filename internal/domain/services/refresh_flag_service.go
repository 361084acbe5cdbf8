package services

import (
	"context"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"
)

// 刷新旗標值
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// InterfaceRefreshFlagService 儀表板刷新旗標。
// 旗標跨程序共用，屬盡力而為的訊號：同時多次設定會合併，不保證順序。
type InterfaceRefreshFlagService interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	Consume(ctx context.Context) (bool, error)
}

// RefreshFlagService 以 REFRESHPAGECHECK 單列資料表實作
type RefreshFlagService struct {
	helper   *database.Helper
	notifier InterfaceNotifyService
	now      func() time.Time
}

// NewRefreshFlagService 建立刷新旗標服務
func NewRefreshFlagService(helper *database.Helper, notifier InterfaceNotifyService) InterfaceRefreshFlagService {
	return &RefreshFlagService{helper: helper, notifier: notifier, now: time.Now}
}

// 1 Get 讀取旗標，資料列不存在時視為 N
func (s *RefreshFlagService) Get(ctx context.Context) (string, error) {
	var rows []models.RefreshPageCheck
	if err := s.helper.Query(ctx, &rows,
		"SELECT ID, REFRESHYN, UPDATE_AT FROM REFRESHPAGECHECK WHERE ID = @id",
		database.Params{"id": models.RefreshPageCheckID}); err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0].RefreshYN != FlagYes {
		return FlagNo, nil
	}
	return FlagYes, nil
}

// 2 Set 設定旗標，設為 Y 時同步發布刷新通知
func (s *RefreshFlagService) Set(ctx context.Context, value string) error {
	if value != FlagYes && value != FlagNo {
		return code.New(code.ErrRefreshFlagInvalid, "")
	}

	_, err := s.helper.Exec(ctx,
		"INSERT INTO REFRESHPAGECHECK (ID, REFRESHYN, UPDATE_AT) VALUES (@id, @yn, @updateat) "+
			"ON DUPLICATE KEY UPDATE REFRESHYN = @yn, UPDATE_AT = @updateat",
		database.Params{"id": models.RefreshPageCheckID, "yn": value, "updateat": s.now()})
	if err != nil {
		return err
	}

	if value == FlagYes {
		if err := s.notifier.PublishRefresh(ctx, "flagchange"); err != nil {
			Logger.Warning("發布刷新通知失敗: %v", err)
		}
	}
	return nil
}

// 3 Consume 旗標為 Y 時改為 N 並回傳 true，同時只有一個呼叫者會拿到 true
func (s *RefreshFlagService) Consume(ctx context.Context) (bool, error) {
	n, err := s.helper.Exec(ctx,
		"UPDATE REFRESHPAGECHECK SET REFRESHYN = 'N', UPDATE_AT = @updateat WHERE ID = @id AND REFRESHYN = 'Y'",
		database.Params{"id": models.RefreshPageCheckID, "updateat": s.now()})
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
