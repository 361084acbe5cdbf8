// Package scheduler 背景排程，以 robfig/cron 執行週期性工作
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	Logger "factory-monitor-service/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job 排程工作，錯誤只記錄不重試
type Job func(ctx context.Context) error

// cronLogger 把 cron 的內部日誌導到 zap
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Scheduler 具名工作的排程器
type Scheduler struct {
	cron    *cron.Cron
	baseCtx context.Context
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]Job
}

// New 建立排程器，每次執行的 context 以 baseCtx 衍生並套用 timeout
func New(baseCtx context.Context, timeout time.Duration) *Scheduler {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	logger := cronLogger{l: Logger.L().Sugar()}
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		), cron.WithLogger(logger)),
		baseCtx: baseCtx,
		timeout: timeout,
		jobs:    make(map[string]Job),
	}
}

// Add 註冊工作，spec 支援標準五欄位與 @every 等描述字
func (s *Scheduler) Add(name, spec string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("job %q: %w", name, err)
	}
	s.jobs[name] = job
	return nil
}

// RunNow 立即同步執行已註冊的工作
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("job %q not registered", name)
	}
	return s.run(name, job)
}

func (s *Scheduler) run(name string, job Job) error {
	ctx := s.baseCtx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := job(ctx)
	if err != nil {
		Logger.L().Error("scheduled job failed", zap.String("job", name), zap.Error(err))
		return err
	}
	Logger.L().Debug("scheduled job done", zap.String("job", name), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Start 開始排程
func (s *Scheduler) Start() {
	Logger.Info("排程啟動，共 %d 個工作", len(s.jobs))
	s.cron.Start()
}

// Stop 停止排程並等待執行中的工作結束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	Logger.Info("排程已停止")
}
