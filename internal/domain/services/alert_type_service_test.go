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

func newAlertTypeService(t *testing.T) (*AlertTypeService, sqlmock.Sqlmock, *fakeRefreshFlag) {
	t.Helper()
	h, mock := newHelper(t)
	refresh := &fakeRefreshFlag{}
	svc := NewAlertTypeService(h, refresh).(*AlertTypeService)
	svc.now = func() time.Time { return fixedNow }
	return svc, mock, refresh
}

var editor = models.Actor{UserID: "admin", IP: "127.0.0.1"}

func fireRequest(list ...RecipientItem) AlertTypeRequest {
	return AlertTypeRequest{AlertCode: "FIRE", AlertName: "火災", Color: "#ff0000", SortNo: 1, NotifyList: list}
}

func TestNormalizeRecipients(t *testing.T) {
	items, skipped := normalizeRecipients("FIRE", []RecipientItem{
		{NotifyType: "1", NotifyID: "alice"},
		{NotifyType: "1", NotifyID: " alice "},
		{NotifyType: "", NotifyID: "bob"},
		{NotifyType: "2", NotifyID: ""},
		{NotifyType: "9", NotifyID: "x"},
		{NotifyType: "2", NotifyID: "D01"},
	})
	assert.Equal(t, []RecipientItem{{NotifyType: "1", NotifyID: "alice"}, {NotifyType: "2", NotifyID: "D01"}}, items)
	assert.Equal(t, 4, skipped)
}

func TestEditReplacesRecipients(t *testing.T) {
	svc, mock, refresh := newAlertTypeService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ALERTTYPE SET ALERTNAME = ?")).
		WithArgs("火災", "#ff0000", 1, "Y", "admin", fixedNow, "127.0.0.1", "FIRE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ALERTNOTIFYSET WHERE ALERTCODE = ?")).
		WithArgs("FIRE").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ALERTNOTIFYSET")).
		WithArgs("FIRE", "1", "alice", "admin", fixedNow, "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ALERTNOTIFYSET")).
		WithArgs("FIRE", "2", "D01", "admin", fixedNow, "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := svc.Edit(context.Background(), fireRequest(
		RecipientItem{NotifyType: "1", NotifyID: "alice"},
		RecipientItem{NotifyType: "2", NotifyID: "D01"},
		RecipientItem{NotifyType: "1"},
	), editor)
	require.NoError(t, err)
	assert.Equal(t, &SaveResult{AlertCode: "FIRE", Inserted: 2, Skipped: 1}, res)
	assert.Equal(t, []string{FlagYes}, refresh.sets)
}

func TestEditRollsBackWhenInsertFails(t *testing.T) {
	svc, mock, refresh := newAlertTypeService(t)
	boom := errors.New("duplicate entry")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ALERTTYPE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM ALERTNOTIFYSET").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO ALERTNOTIFYSET").WillReturnError(boom)
	mock.ExpectRollback()

	_, err := svc.Edit(context.Background(), fireRequest(RecipientItem{NotifyType: "1", NotifyID: "alice"}), editor)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, refresh.sets)
}

func TestEditUnknownAlertType(t *testing.T) {
	svc, mock, _ := newAlertTypeService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ALERTTYPE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM ALERTTYPE WHERE ALERTCODE = ?")).
		WithArgs("FIRE").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectRollback()

	_, err := svc.Edit(context.Background(), fireRequest(), editor)
	assert.ErrorIs(t, err, code.New(code.ErrAlertTypeNotFound, ""))
}

func TestInsertAlertType(t *testing.T) {
	svc, mock, refresh := newAlertTypeService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(1\\) FROM ALERTTYPE").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ALERTTYPE")).
		WithArgs("FIRE", "火災", "#ff0000", 1, "Y", "admin", fixedNow, "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ALERTNOTIFYSET").
		WithArgs("FIRE", "1", "alice", "admin", fixedNow, "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := svc.Insert(context.Background(), fireRequest(RecipientItem{NotifyType: "1", NotifyID: "alice"}), editor)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, []string{FlagYes}, refresh.sets)
}

func TestInsertExistingAlertType(t *testing.T) {
	svc, mock, refresh := newAlertTypeService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(1\\) FROM ALERTTYPE").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Insert(context.Background(), fireRequest(), editor)
	assert.ErrorIs(t, err, code.New(code.ErrAlertTypeExists, ""))
	assert.Empty(t, refresh.sets)
}

func TestAlertTypeValidation(t *testing.T) {
	svc, _, _ := newAlertTypeService(t)

	_, err := svc.Insert(context.Background(), AlertTypeRequest{AlertCode: " ", AlertName: "x"}, editor)
	assert.ErrorIs(t, err, code.New(code.ErrValidation, ""))

	req := fireRequest()
	req.DisplayYN = "maybe"
	_, err = svc.Edit(context.Background(), req, editor)
	assert.ErrorIs(t, err, code.New(code.ErrValidation, ""))
}

func TestAlertTypeInitGroupsRecipients(t *testing.T) {
	svc, mock, _ := newAlertTypeService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ALERTCODE, ALERTNAME, COLOR, SORTNO, DISPLAYYN FROM ALERTTYPE")).
		WillReturnRows(sqlmock.NewRows([]string{"ALERTCODE", "ALERTNAME", "COLOR", "SORTNO", "DISPLAYYN"}).
			AddRow("FIRE", "火災", "#f00", 1, "Y").
			AddRow("SMOKE", "煙霧", "#999", 2, "Y"))
	mock.ExpectQuery("FROM ALERTNOTIFYSET N").
		WillReturnRows(sqlmock.NewRows([]string{"ALERTCODE", "NOTIFYTYPE", "NOTIFYID", "NOTIFYNAME", "DEPT_NO", "EMAIL"}).
			AddRow("FIRE", "1", "alice", "Alice", "D01", "alice@example.com").
			AddRow("FIRE", "2", "D01", "製造部", "D01", ""))

	rows, err := svc.Init(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].NotifyList, 2)
	assert.Equal(t, "Alice、製造部", rows[0].NotifyNames)
	assert.Equal(t, "人員", rows[0].NotifyList[0].NotifyTypeName)
	assert.NotNil(t, rows[1].NotifyList)
	assert.Empty(t, rows[1].NotifyList)
}

func TestGetAvailablePersons(t *testing.T) {
	svc, mock, _ := newAlertTypeService(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE P.STATUS = 'Y' AND 1=1 AND NOT EXISTS")).
		WithArgs("FIRE").
		WillReturnRows(sqlmock.NewRows([]string{"PASS_ID", "PASS_NA"}).AddRow("bob", "Bob"))

	rows, err := svc.GetAvailablePersons(context.Background(), " FIRE ")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob", rows[0].PassID)
}
