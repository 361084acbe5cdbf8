package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/error/code"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallColumns = []string{"CAMAREA", "CAMID", "CAMNAME", "CAMLOCATION", "IMGURL", "VIDEOURL", "RTSPURL", "CAMCOLOR", "SORTNO",
	"ALERTNO", "ALERTCODE", "ALERTNAME", "ALERTCOLOR", "ALERTTIME", "ALERTSTATUS"}

func newAlertService(t *testing.T) (*AlertService, sqlmock.Sqlmock, *recordingNotifier) {
	t.Helper()
	h, mock := newHelper(t)
	notifier := &recordingNotifier{}
	svc := NewAlertService(h, notifier).(*AlertService)
	svc.now = func() time.Time { return fixedNow }
	return svc, mock, notifier
}

func TestParseAlertFilter(t *testing.T) {
	cases := []struct {
		in    string
		state WallState
		name  string
	}{
		{"", WallAny, ""},
		{"  ", WallAny, ""},
		{NoAnomalyText, WallNormal, ""},
		{AbnormalText, WallAbnormal, ""},
		{" 火災 ", WallAbnormal, "火災"},
	}
	for _, c := range cases {
		state, name := ParseAlertFilter(c.in)
		assert.Equal(t, c.state, state, c.in)
		assert.Equal(t, c.name, name, c.in)
	}
}

func TestCameraWallLocationAndNormalFilter(t *testing.T) {
	svc, mock, _ := newAlertService(t)

	mock.ExpectQuery(regexp.QuoteMeta(") T WHERE 1=1 AND T.CAMLOCATION = ? AND T.ALERTNO IS NULL ORDER BY T.SORTNO")).
		WithArgs("A").
		WillReturnRows(sqlmock.NewRows(wallColumns).
			AddRow("F1", "C01", "Gate", "A", "/img/1.jpg", "", "rtsp://c01", "#00ff00", 1, nil, nil, nil, nil, nil, nil))

	items, err := svc.CameraWall(context.Background(), CameraWallFilter{CamLocation: "A", Alert: NoAnomalyText})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, NoAnomalyText, items[0].Alert)
	assert.Equal(t, LightGreen, items[0].Light)
	assert.Equal(t, "#00ff00", items[0].Color)
	assert.Nil(t, items[0].AlertNo)
	assert.Equal(t, WallNormal, items[0].State)
}

func TestCameraWallNormalOnlyHasNoArgs(t *testing.T) {
	svc, mock, _ := newAlertService(t)

	mock.ExpectQuery(regexp.QuoteMeta(") T WHERE 1=1 AND T.ALERTNO IS NULL ORDER BY")).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(wallColumns))

	items, err := svc.CameraWall(context.Background(), CameraWallFilter{Alert: NoAnomalyText})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCameraWallAlertNameFilter(t *testing.T) {
	svc, mock, _ := newAlertService(t)
	at := fixedNow.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(") T WHERE 1=1 AND T.ALERTNO IS NOT NULL AND T.ALERTNAME = ? ORDER BY")).
		WithArgs("火災").
		WillReturnRows(sqlmock.NewRows(wallColumns).
			AddRow("F1", "C02", "Line", "B", "", "", "", "#00ff00", 2, int64(55), "FIRE", "火災", "#ff0000", at, "01"))

	items, err := svc.CameraWall(context.Background(), CameraWallFilter{Alert: "火災"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "火災", items[0].Alert)
	assert.Equal(t, "#ff0000", items[0].Color)
	assert.Equal(t, LightRed, items[0].Light)
	assert.Equal(t, "FIRE", items[0].AlertCode)
	require.NotNil(t, items[0].AlertNo)
	assert.EqualValues(t, 55, *items[0].AlertNo)
}

func TestCameraCounts(t *testing.T) {
	svc, mock, _ := newAlertService(t)

	mock.ExpectQuery(regexp.QuoteMeta(") T WHERE 1=1 AND T.CAMLOCATION = ?) W")).
		WithArgs("A").
		WillReturnRows(sqlmock.NewRows([]string{"TOTAL", "NORMAL"}).AddRow(12, 9))

	counts, err := svc.CameraCounts(context.Background(), CameraWallFilter{CamLocation: "A"})
	require.NoError(t, err)
	assert.EqualValues(t, 12, counts.Total)
	assert.EqualValues(t, 9, counts.Normal)
	assert.EqualValues(t, 3, counts.Abnormal)
}

func TestStatusCounts(t *testing.T) {
	svc, mock, _ := newAlertService(t)
	start, end := monthWindow(fixedNow)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT T.CODE, COUNT(1) AS CNT FROM (")).
		WithArgs(start, end, start).
		WillReturnRows(sqlmock.NewRows([]string{"CODE", "CNT"}).
			AddRow("01", 3).
			AddRow("02", 1).
			AddRow("03", 2).
			AddRow("overdue", 4).
			AddRow("99", 5))

	rows, err := svc.StatusCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, len(models.StatusOrder))

	byCode := map[string]int64{}
	for i, r := range rows {
		assert.Equal(t, models.StatusOrder[i], r.Code)
		assert.NotEmpty(t, r.Name)
		byCode[r.Code] = r.Count
	}
	assert.EqualValues(t, 10, byCode[models.BucketTotal])
	assert.Equal(t, byCode["01"]+byCode["02"]+byCode["03"]+byCode[models.BucketOverdue], byCode[models.BucketTotal])
	assert.EqualValues(t, 4, byCode[models.BucketOverdue])
}

func TestStatusCountsEmptyMonth(t *testing.T) {
	svc, mock, _ := newAlertService(t)

	mock.ExpectQuery("SELECT T.CODE").WillReturnRows(sqlmock.NewRows([]string{"CODE", "CNT"}))

	rows, err := svc.StatusCounts(context.Background())
	require.NoError(t, err)
	for _, r := range rows {
		assert.Zero(t, r.Count, r.Code)
	}
}

func TestAlertListBucketAndFilter(t *testing.T) {
	svc, mock, _ := newAlertService(t)
	start, end := monthWindow(fixedNow)

	mock.ExpectQuery(regexp.QuoteMeta(") T WHERE 1=1 AND T.BUCKET = ? AND T.CAMLOCATION = ? ORDER BY T.ALERTTIME DESC")).
		WithArgs(start, end, start, "overdue", "A").
		WillReturnRows(sqlmock.NewRows([]string{"ALERTNO", "CAMAREA", "CAMID", "CAMNAME", "CAMLOCATION", "ALERTCODE", "ALERTNAME",
			"COLOR", "ALERTTIME", "ALERTSTATUS", "BUCKET", "PASS_NA", "MEMO", "IMGURL"}).
			AddRow(7, "F1", "C01", "Gate", "A", "FIRE", "火災", "#f00", start.AddDate(0, -1, 3), "01", "overdue", "", "", ""))

	rows, err := svc.AlertList(context.Background(), AlertListFilter{Status: "overdue", CamLocation: "A"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "逾期未結案", rows[0].StatusName)
}

func TestAlertListTotalMeansNoBucket(t *testing.T) {
	svc, mock, _ := newAlertService(t)

	mock.ExpectQuery(regexp.QuoteMeta(") T WHERE 1=1 ORDER BY T.ALERTTIME DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"ALERTNO"}))

	rows, err := svc.AlertList(context.Background(), AlertListFilter{Status: models.BucketTotal})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAlertListRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newAlertService(t)

	_, err := svc.AlertList(context.Background(), AlertListFilter{Status: "07"})
	assert.ErrorIs(t, err, code.New(code.ErrAlertStatusInvalid, ""))
}

func TestEditStatus(t *testing.T) {
	svc, mock, notifier := newAlertService(t)
	actor := models.Actor{UserID: "u1", UserName: "User One", IP: "10.0.0.1"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE EVENTALERT SET ALERTSTATUS = ?, PASS_NA = ?, MEMO = ?")).
		WithArgs("02", "Alice", "checking", "u1", fixedNow, "10.0.0.1", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.EditStatus(context.Background(), AlertStatusEditRequest{
		AlertNo: "123", AlertStatus: "02", PassNa: "Alice", Memo: "checking",
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, []string{"alertstatusedit"}, notifier.Reasons())
}

func TestEditStatusUnchangedRowStillSucceeds(t *testing.T) {
	svc, mock, _ := newAlertService(t)

	mock.ExpectExec("UPDATE EVENTALERT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM EVENTALERT WHERE ALERTNO = ?")).
		WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	err := svc.EditStatus(context.Background(), AlertStatusEditRequest{AlertNo: "123", AlertStatus: "03"}, models.Actor{})
	assert.NoError(t, err)
}

func TestEditStatusNotFound(t *testing.T) {
	svc, mock, notifier := newAlertService(t)

	mock.ExpectExec("UPDATE EVENTALERT").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(1\\) FROM EVENTALERT").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	err := svc.EditStatus(context.Background(), AlertStatusEditRequest{AlertNo: "999", AlertStatus: "02"}, models.Actor{})
	assert.ErrorIs(t, err, code.New(code.ErrAlertNotFound, ""))
	assert.Empty(t, notifier.Reasons())
}

func TestEditStatusValidation(t *testing.T) {
	svc, _, _ := newAlertService(t)
	ctx := context.Background()

	err := svc.EditStatus(ctx, AlertStatusEditRequest{AlertNo: "abc", AlertStatus: "02"}, models.Actor{})
	assert.ErrorIs(t, err, code.New(code.ErrValidation, ""))

	err = svc.EditStatus(ctx, AlertStatusEditRequest{AlertNo: "1", AlertStatus: "09"}, models.Actor{})
	assert.ErrorIs(t, err, code.New(code.ErrAlertStatusInvalid, ""))
}

func TestEditStatusPublishFailureIsIgnored(t *testing.T) {
	svc, mock, notifier := newAlertService(t)
	notifier.err = errors.New("broker down")

	mock.ExpectExec("UPDATE EVENTALERT").WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.EditStatus(context.Background(), AlertStatusEditRequest{AlertNo: "5", AlertStatus: "03"}, models.Actor{})
	assert.NoError(t, err)
}

func TestAcknowledge(t *testing.T) {
	svc, mock, notifier := newAlertService(t)
	actor := models.Actor{UserID: "u1", UserName: "User One", IP: "10.0.0.1"}

	mock.ExpectExec(regexp.QuoteMeta("WHERE ALERTNO = ? AND ALERTSTATUS = ?")).
		WithArgs("02", "User One", "u1", fixedNow, "10.0.0.1", int64(8), "01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := svc.Acknowledge(context.Background(), AcknowledgeRequest{AlertNo: "8"}, actor)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"updatealert"}, notifier.Reasons())
}

func TestAcknowledgeAlreadyHandled(t *testing.T) {
	svc, mock, notifier := newAlertService(t)

	mock.ExpectExec("UPDATE EVENTALERT").WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := svc.Acknowledge(context.Background(), AcknowledgeRequest{AlertNo: "8", PassNa: "Bob"}, models.Actor{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, notifier.Reasons())
}

func TestMonthWindow(t *testing.T) {
	start, end := monthWindow(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
