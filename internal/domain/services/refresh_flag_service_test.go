package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefreshFlag(t *testing.T) (*RefreshFlagService, sqlmock.Sqlmock, *recordingNotifier) {
	t.Helper()
	h, mock := newHelper(t)
	notifier := &recordingNotifier{}
	svc := NewRefreshFlagService(h, notifier).(*RefreshFlagService)
	svc.now = func() time.Time { return fixedNow }
	return svc, mock, notifier
}

func TestRefreshFlagGet(t *testing.T) {
	svc, mock, _ := newRefreshFlag(t)

	mock.ExpectQuery("FROM REFRESHPAGECHECK").
		WithArgs(models.RefreshPageCheckID).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "REFRESHYN", "UPDATE_AT"}).AddRow(models.RefreshPageCheckID, "Y", fixedNow))
	mock.ExpectQuery("FROM REFRESHPAGECHECK").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "REFRESHYN", "UPDATE_AT"}))

	flag, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FlagYes, flag)

	flag, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FlagNo, flag)
}

func TestRefreshFlagSet(t *testing.T) {
	svc, mock, notifier := newRefreshFlag(t)

	mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE REFRESHYN = ?")).
		WithArgs(models.RefreshPageCheckID, "Y", fixedNow, "Y", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO REFRESHPAGECHECK").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.Set(context.Background(), FlagYes))
	require.NoError(t, svc.Set(context.Background(), FlagNo))
	assert.Equal(t, []string{"flagchange"}, notifier.Reasons())

	assert.ErrorIs(t, svc.Set(context.Background(), "X"), code.New(code.ErrRefreshFlagInvalid, ""))
}

func TestRefreshFlagConsume(t *testing.T) {
	svc, mock, _ := newRefreshFlag(t)

	mock.ExpectExec(regexp.QuoteMeta("WHERE ID = ? AND REFRESHYN = 'Y'")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("WHERE ID = ? AND REFRESHYN = 'Y'")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := svc.Consume(context.Background())
	require.NoError(t, err)
	second, err := svc.Consume(context.Background())
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)
}
