package container

import (
	"testing"
	"time"

	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/test/mockdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *ServiceContainer {
	db, _ := mockdb.New(t)
	return NewServiceContainer(db, &config.Config{
		JWTSecretKey:   "test-secret",
		AccessTokenTTL: time.Hour,
		CaptchaStore:   "db",
		CaptchaTTL:     time.Minute,
		UploadDir:      t.TempDir(),
		ReportDir:      t.TempDir(),
	})
}

func TestGetService(t *testing.T) {
	c := newTestContainer(t)

	_, ok := c.GetService(ServiceAlert).(services.InterfaceAlertService)
	assert.True(t, ok)
	_, ok = c.GetService(ServiceAlertType).(services.InterfaceAlertTypeService)
	assert.True(t, ok)
	_, ok = c.GetService(ServiceReport).(services.InterfaceReportService)
	assert.True(t, ok)
	assert.Same(t, c.GetConfig(), c.GetService(ServiceConfig))
}

func TestReplace(t *testing.T) {
	c := newTestContainer(t)
	original := c.GetService(ServiceAlert)

	err := c.Replace(ServiceAlert, "not a service")
	require.Error(t, err)
	assert.Same(t, original, c.GetService(ServiceAlert))

	assert.Error(t, c.Replace("unknown", original))

	flag := services.NewRefreshFlagService(c.GetHelper(), services.NewNotifyService(c.GetConfig()))
	require.NoError(t, c.Replace(ServiceRefreshFlag, flag))
	assert.Same(t, flag, c.GetService(ServiceRefreshFlag))
}
