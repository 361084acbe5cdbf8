package container

import (
	"context"
	"fmt"
	"sync"
	"time"

	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/infrastructure/database"
	Logger "factory-monitor-service/pkg/logger"

	"gorm.io/gorm"
)

// 服務名稱
const (
	ServiceConfig      = "config"
	ServiceDB          = "db"
	ServiceJWT         = "jwt"
	ServiceRedis       = "redis"
	ServiceNotify      = "notify"
	ServiceCaptcha     = "captcha"
	ServiceAuth        = "auth"
	ServiceRefreshFlag = "refresh_flag"
	ServiceAlert       = "alert"
	ServiceAnalytics   = "analytics"
	ServiceRecipient   = "recipient"
	ServiceAlertType   = "alert_type"
	ServiceFile        = "file"
	ServiceReport      = "report"
)

// ServiceContainer 管理所有服務的依賴注入
type ServiceContainer struct {
	db     *gorm.DB
	helper *database.Helper
	config *config.Config

	// 基礎服務
	jwtService    services.InterfaceJWTService
	redisService  services.InterfaceRedisService
	notifyService services.InterfaceNotifyService

	// 認證
	captchaService services.InterfaceCaptchaService
	authService    services.InterfaceAuthService

	// 業務服務
	refreshFlagService services.InterfaceRefreshFlagService
	alertService       services.InterfaceAlertService
	analyticsService   services.InterfaceAnalyticsService
	recipientService   services.InterfaceRecipientService
	alertTypeService   services.InterfaceAlertTypeService
	fileService        services.InterfaceFileService
	reportService      services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer 建立服務容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("資料庫連線為空")
	}
	if cfg == nil {
		panic("設定為空")
	}

	container := &ServiceContainer{
		db:     db,
		helper: database.NewHelper(db),
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服務
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.notifyService = services.NewNotifyService(c.config)

	var store services.CaptchaStore = services.NewDBCaptchaStore(c.helper)
	if c.config.CaptchaStore == "redis" {
		c.redisService = services.NewRedisService(c.config)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.redisService.Ping(ctx); err != nil {
			Logger.Warning("Redis 連線測試失敗: %v，驗證碼改存資料庫", err)
		} else {
			store = services.NewRedisCaptchaStore(c.redisService, c.config.CaptchaTTL)
		}
	}
	c.captchaService = services.NewCaptchaService(store, c.config)
	c.authService = services.NewAuthService(c.helper, c.config, c.jwtService, c.captchaService)

	c.refreshFlagService = services.NewRefreshFlagService(c.helper, c.notifyService)
	c.alertService = services.NewAlertService(c.helper, c.notifyService)
	c.analyticsService = services.NewAnalyticsService(c.helper)
	c.recipientService = services.NewRecipientService(c.helper)
	c.alertTypeService = services.NewAlertTypeService(c.helper, c.refreshFlagService)
	c.fileService = services.NewFileService(c.config)
	c.reportService = services.NewReportService(c.helper, c.config)
}

// GetService 取得指定名稱的服務
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case ServiceConfig:
		return c.config
	case ServiceDB:
		return c.db
	case ServiceJWT:
		return c.jwtService
	case ServiceRedis:
		return c.redisService
	case ServiceNotify:
		return c.notifyService
	case ServiceCaptcha:
		return c.captchaService
	case ServiceAuth:
		return c.authService
	case ServiceRefreshFlag:
		return c.refreshFlagService
	case ServiceAlert:
		return c.alertService
	case ServiceAnalytics:
		return c.analyticsService
	case ServiceRecipient:
		return c.recipientService
	case ServiceAlertType:
		return c.alertTypeService
	case ServiceFile:
		return c.fileService
	case ServiceReport:
		return c.reportService
	default:
		return nil
	}
}

// Replace 替換指定服務，型別不符時回傳錯誤
func (c *ServiceContainer) Replace(name string, svc interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ok bool
	switch name {
	case ServiceJWT:
		ok = assign(&c.jwtService, svc)
	case ServiceNotify:
		ok = assign(&c.notifyService, svc)
	case ServiceCaptcha:
		ok = assign(&c.captchaService, svc)
	case ServiceAuth:
		ok = assign(&c.authService, svc)
	case ServiceRefreshFlag:
		ok = assign(&c.refreshFlagService, svc)
	case ServiceAlert:
		ok = assign(&c.alertService, svc)
	case ServiceAnalytics:
		ok = assign(&c.analyticsService, svc)
	case ServiceRecipient:
		ok = assign(&c.recipientService, svc)
	case ServiceAlertType:
		ok = assign(&c.alertTypeService, svc)
	case ServiceFile:
		ok = assign(&c.fileService, svc)
	case ServiceReport:
		ok = assign(&c.reportService, svc)
	default:
		return fmt.Errorf("unknown service %q", name)
	}
	if !ok {
		return fmt.Errorf("service %q has wrong type %T", name, svc)
	}
	return nil
}

// GetDB 取得資料庫連線
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetHelper 取得 SQL 執行輔助
func (c *ServiceContainer) GetHelper() *database.Helper {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.helper
}

// GetConfig 取得設定
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// Close 釋放外部連線
func (c *ServiceContainer) Close() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.notifyService != nil {
		c.notifyService.Close()
	}
}

// assign 型別相符才覆寫
func assign[T any](dst *T, svc interface{}) bool {
	v, ok := svc.(T)
	if ok {
		*dst = v
	}
	return ok
}
