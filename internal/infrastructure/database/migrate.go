package database

import (
	"context"
	"errors"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/config"
	Logger "factory-monitor-service/pkg/logger"
	"factory-monitor-service/pkg/utils"

	"gorm.io/gorm"
)

// ErrUserExists 帳號已存在
var ErrUserExists = errors.New("user already exists")

// AutoMigrate 依 DB_MIGRATION_MODE 建立或補齊資料表，只新增欄位不刪除
func AutoMigrate(db *gorm.DB, mode string) error {
	if mode == "none" {
		Logger.Info("DB_MIGRATION_MODE=none，略過資料表遷移")
		return nil
	}
	if err := db.AutoMigrate(
		&models.CameraInfo{},
		&models.AlertType{},
		&models.AlertNotifySet{},
		&models.EventAlert{},
		&models.Person{},
		&models.RefreshPageCheck{},
		&models.CaptchaSession{},
	); err != nil {
		return err
	}
	Logger.Info("資料表遷移完成")
	return nil
}

// EnsureDefaults 建立刷新旗標資料列，沒有任何帳號時建立預設管理員
func EnsureDefaults(ctx context.Context, h *Helper, cfg *config.Config) error {
	if _, err := h.Exec(ctx,
		"INSERT IGNORE INTO REFRESHPAGECHECK (ID, REFRESHYN, UPDATE_AT) VALUES (@id, 'N', @updateat)",
		Params{"id": models.RefreshPageCheckID, "updateat": time.Now()}); err != nil {
		return err
	}

	n, err := h.Count(ctx, "SELECT COUNT(1) FROM SYSPASMI", nil)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if cfg.DefaultAdminPassword == "" {
		Logger.Warning("SYSPASMI 沒有任何帳號且未設定 DEFAULT_ADMIN_PASSWORD，略過建立預設管理員")
		return nil
	}

	err = CreateUser(ctx, h, models.Person{
		PassID: cfg.DefaultAdminID,
		PassNa: cfg.DefaultAdminID,
	}, cfg.DefaultAdminPassword, "system")
	if err != nil {
		return err
	}
	Logger.Info("已建立預設管理員 %s", cfg.DefaultAdminID)
	return nil
}

// CreateUser 新增帳號，密碼以 bcrypt 雜湊後儲存
func CreateUser(ctx context.Context, h *Helper, p models.Person, password, createdBy string) error {
	exists, err := h.Count(ctx, "SELECT COUNT(1) FROM SYSPASMI WHERE PASS_ID = @passid", Params{"passid": p.PassID})
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrUserExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = h.Exec(ctx, `INSERT INTO SYSPASMI (PASS_ID, PASS_NA, PASS_PWD, DEPT_NO, DEPT_NA, EMAIL, STATUS, CREATE_BY, CREATE_AT)
VALUES (@passid, @passna, @passpwd, @deptno, @deptna, @email, 'Y', @createby, @createat)`, Params{
		"passid":   p.PassID,
		"passna":   p.PassNa,
		"passpwd":  hash,
		"deptno":   p.DeptNo,
		"deptna":   p.DeptNa,
		"email":    p.Email,
		"createby": createdBy,
		"createat": time.Now(),
	})
	return err
}

// SetPassword 重設密碼並清除已簽發的令牌
func SetPassword(ctx context.Context, h *Helper, passID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	n, err := h.Exec(ctx,
		"UPDATE SYSPASMI SET PASS_PWD = @passpwd, ACCESS_TOKEN = '', REFRESH_TOKEN = '', REFRESH_EXPIRE = NULL WHERE PASS_ID = @passid",
		Params{"passpwd": hash, "passid": passID})
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
