package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"factory-monitor-service/internal/error/code"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, sqlmock.Sqlmock) {
	t.Helper()
	h, mock := newHelper(t)
	svc := NewAnalyticsService(h).(*AnalyticsService)
	svc.now = func() time.Time { return fixedNow }
	return svc, mock
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func expectAlertTypeOptions(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT ALERTCODE AS CODE, ALERTNAME AS NAME, COLOR FROM ALERTTYPE")).
		WillReturnRows(sqlmock.NewRows([]string{"CODE", "NAME", "COLOR"}).
			AddRow("FIRE", "火災", "#f00").
			AddRow("SMOKE", "煙霧", "#999"))
}

func TestDateRange(t *testing.T) {
	start, end, err := AnalyticsFilter{StartDate: "2026/05/01", EndDate: "2026-05-03"}.dateRange()
	require.NoError(t, err)
	assert.Equal(t, day("2026-05-01"), start)
	assert.Equal(t, day("2026-05-04"), end)

	start, end, err = AnalyticsFilter{}.dateRange()
	require.NoError(t, err)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())

	_, _, err = AnalyticsFilter{StartDate: "2026-05-10", EndDate: "2026-05-01"}.dateRange()
	assert.ErrorIs(t, err, code.New(code.ErrValidation, ""))

	_, _, err = AnalyticsFilter{StartDate: "05/01/2026"}.dateRange()
	assert.ErrorIs(t, err, code.New(code.ErrValidation, ""))
}

func TestEventCountPercent(t *testing.T) {
	svc, mock := newAnalyticsService(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND A.ALERTTIME >= ? AND A.ALERTTIME < ? AND B.CAMLOCATION = ? GROUP BY C.ALERTCODE")).
		WithArgs(day("2026-05-01"), day("2026-06-01"), "A").
		WillReturnRows(sqlmock.NewRows([]string{"ALERTCODE", "ALERTNAME", "COLOR", "CNT"}).
			AddRow("FIRE", "火災", "#f00", 1).
			AddRow("SMOKE", "煙霧", "#999", 2))

	rows, err := svc.EventCount(context.Background(), AnalyticsFilter{StartDate: "2026-05-01", EndDate: "2026-05-31", CamLocation: "A"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 33.33, rows[0].Percent)
	assert.Equal(t, 66.67, rows[1].Percent)
}

func TestEventCountNoEvents(t *testing.T) {
	svc, mock := newAnalyticsService(t)

	mock.ExpectQuery("GROUP BY C.ALERTCODE").
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows([]string{"ALERTCODE", "ALERTNAME", "COLOR", "CNT"}))

	rows, err := svc.EventCount(context.Background(), AnalyticsFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTimelineFillsMissingDays(t *testing.T) {
	svc, mock := newAnalyticsService(t)

	mock.ExpectQuery(regexp.QuoteMeta("AS PIVOTKEY, C.ALERTCODE, COUNT(1) AS CNT")).
		WithArgs(day("2026-05-01"), day("2026-05-04"), "FIRE").
		WillReturnRows(sqlmock.NewRows([]string{"PIVOTKEY", "ALERTCODE", "CNT"}).
			AddRow("2026-05-02", "FIRE", 4))
	expectAlertTypeOptions(mock)

	pivot, err := svc.Timeline(context.Background(), AnalyticsFilter{StartDate: "2026-05-01", EndDate: "2026-05-03", AlertCode: "FIRE"})
	require.NoError(t, err)
	require.Len(t, pivot.Columns, 2)
	require.Len(t, pivot.Rows, 3)

	keys := make([]string, 0, 3)
	for _, r := range pivot.Rows {
		keys = append(keys, r.Key)
		assert.Contains(t, r.Counts, "SMOKE")
	}
	assert.Equal(t, []string{"2026-05-01", "2026-05-02", "2026-05-03"}, keys)
	assert.EqualValues(t, 4, pivot.Rows[1].Total)
	assert.EqualValues(t, 4, pivot.Rows[1].Counts["FIRE"])
	assert.Zero(t, pivot.Rows[0].Total)
}

func TestLocationEventCount(t *testing.T) {
	svc, mock := newAnalyticsService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT B.CAMLOCATION AS PIVOTKEY")).
		WillReturnRows(sqlmock.NewRows([]string{"PIVOTKEY", "ALERTCODE", "CNT"}).
			AddRow("A", "FIRE", 2).
			AddRow("A", "SMOKE", 1).
			AddRow("B", "SMOKE", 5))
	expectAlertTypeOptions(mock)

	pivot, err := svc.LocationEventCount(context.Background(), AnalyticsFilter{})
	require.NoError(t, err)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, "A", pivot.Rows[0].Key)
	assert.EqualValues(t, 3, pivot.Rows[0].Total)
	assert.EqualValues(t, 0, pivot.Rows[1].Counts["FIRE"])
	assert.EqualValues(t, 5, pivot.Rows[1].Counts["SMOKE"])
}

func TestTimelineListPaging(t *testing.T) {
	svc, mock := newAnalyticsService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM (")).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(21))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ? OFFSET ?")).
		WithArgs(20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"ALERTNO", "ALERTSTATUS"}).AddRow(1, "03"))

	f := AnalyticsFilter{}
	f.PageNum = 2
	res, err := svc.TimelineList(context.Background(), f)
	require.NoError(t, err)
	assert.EqualValues(t, 21, res.Total)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "已結案", res.Rows[0].StatusName)
}

func TestDayKeysLimit(t *testing.T) {
	assert.Nil(t, dayKeys(time.Time{}, day("2026-05-01")))
	assert.Nil(t, dayKeys(day("2024-01-01"), day("2026-01-01")))
	assert.Len(t, dayKeys(day("2026-02-01"), day("2026-03-01")), 28)
}
