// @title           Factory Monitor Service API
// @version         1.0
// @description     Camera wall, alert tracking, analytics and alert type maintenance for factory monitoring

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"factory-monitor-service/internal/app/routes"
	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/infrastructure/database"
	"factory-monitor-service/internal/infrastructure/scheduler"
	Logger "factory-monitor-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 先載入 .env，logger 與設定都從環境變數讀取
	envErr := godotenv.Load()

	cfg := config.GetConfig()
	if err := Logger.SetupLogger(Logger.Options{Level: cfg.LogLevel, Dir: cfg.LogDir, Service: cfg.AppName}); err != nil {
		fmt.Printf("初始化日誌設定失敗: %v\n", err)
		os.Exit(1)
	}
	defer Logger.Sync()

	if envErr != nil {
		Logger.Warning("無法載入 .env 檔案: %v", envErr)
	}
	if cfg.EnvType != "LOCAL" {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("無法建立資料庫連線池: %v", err)
		os.Exit(1)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := database.AutoMigrate(db, cfg.DBMigrationMode); err != nil {
		Logger.Error("資料表遷移失敗: %v", err)
		os.Exit(1)
	}

	serviceContainer := container.NewServiceContainer(db, cfg)
	defer serviceContainer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := scheduler.New(ctx, time.Minute)
	if err := registerJobs(jobs, serviceContainer); err != nil {
		Logger.Error("註冊排程失敗: %v", err)
		os.Exit(1)
	}
	if err := database.EnsureDefaults(ctx, serviceContainer.GetHelper(), cfg); err != nil {
		Logger.Error("初始化預設資料失敗: %v", err)
		os.Exit(1)
	}
	jobs.Start()
	defer jobs.Stop()

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           routes.SetupRouter(serviceContainer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		Logger.Info("伺服器啟動於: http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Error("啟動伺服器失敗: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	Logger.Info("收到停止訊號，關閉伺服器")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Error("關閉伺服器失敗: %v", err)
	}
}

// registerJobs 定期清除過期驗證碼
func registerJobs(jobs *scheduler.Scheduler, c *container.ServiceContainer) error {
	cfg := c.GetConfig()
	captcha := c.GetService(container.ServiceCaptcha).(services.InterfaceCaptchaService)
	return jobs.Add("captcha-purge", cfg.CaptchaPurgeCron, func(ctx context.Context) error {
		n, err := captcha.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			Logger.Info("已清除 %d 筆過期驗證碼", n)
		}
		return nil
	})
}

// printSystemInfo 輸出連線池與執行環境資訊
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("資料庫連線池狀態: %+v", stats)
	}
	Logger.Info("CPU 核心數: %d, goroutine: %d", runtime.NumCPU(), runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("記憶體使用: Alloc=%v MiB, Sys=%v MiB", m.Alloc/1024/1024, m.Sys/1024/1024)
}
