package database

import (
	"context"
	"testing"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/internal/test/mockdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func expectFlagRow(mock sqlmock.Sqlmock) {
	mock.ExpectExec("INSERT IGNORE INTO REFRESHPAGECHECK").
		WithArgs(models.RefreshPageCheckID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestEnsureDefaultsCreatesAdmin(t *testing.T) {
	db, mock := mockdb.New(t)
	h := NewHelper(db)

	expectFlagRow(mock)
	mock.ExpectQuery(`SELECT COUNT\(1\) FROM SYSPASMI$`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery(`SELECT COUNT\(1\) FROM SYSPASMI WHERE PASS_ID = \?`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO SYSPASMI").
		WithArgs("admin", "admin", sqlmock.AnyArg(), "", "", "", "system", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := EnsureDefaults(context.Background(), h, &config.Config{DefaultAdminID: "admin", DefaultAdminPassword: "secret"})
	require.NoError(t, err)
}

func TestEnsureDefaultsSkipsWhenAccountsExist(t *testing.T) {
	db, mock := mockdb.New(t)
	h := NewHelper(db)

	expectFlagRow(mock)
	mock.ExpectQuery(`SELECT COUNT\(1\) FROM SYSPASMI$`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(3))

	require.NoError(t, EnsureDefaults(context.Background(), h, &config.Config{DefaultAdminID: "admin", DefaultAdminPassword: "secret"}))
}

func TestEnsureDefaultsWithoutPassword(t *testing.T) {
	db, mock := mockdb.New(t)
	h := NewHelper(db)

	expectFlagRow(mock)
	mock.ExpectQuery(`SELECT COUNT\(1\) FROM SYSPASMI$`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	require.NoError(t, EnsureDefaults(context.Background(), h, &config.Config{DefaultAdminID: "admin"}))
}

func TestCreateUserExists(t *testing.T) {
	db, mock := mockdb.New(t)
	h := NewHelper(db)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM SYSPASMI WHERE PASS_ID = \?`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	err := CreateUser(context.Background(), h, models.Person{PassID: "u1"}, "pw", "snbadmin")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestSetPassword(t *testing.T) {
	db, mock := mockdb.New(t)
	h := NewHelper(db)

	mock.ExpectExec("UPDATE SYSPASMI SET PASS_PWD = \\?, ACCESS_TOKEN = ''").
		WithArgs(sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, SetPassword(context.Background(), h, "u1", "new-password"))

	mock.ExpectExec("UPDATE SYSPASMI SET PASS_PWD").
		WithArgs(sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, SetPassword(context.Background(), h, "ghost", "pw"), gorm.ErrRecordNotFound)
}
