package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/config"
	"factory-monitor-service/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaptcha struct {
	ok    bool
	calls int
}

func (f *fakeCaptcha) Generate(context.Context) (*Captcha, error) {
	return &Captcha{CaptchaID: "cid", Image: "data:image/png;base64,"}, nil
}

func (f *fakeCaptcha) Verify(context.Context, string, string) bool {
	f.calls++
	return f.ok
}

func (f *fakeCaptcha) PurgeExpired(context.Context) (int64, error) { return 0, nil }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:    "test-secret",
		JWTIssuer:       "factory-monitor-service",
		JWTAudience:     "factory-monitor-web",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 2 * time.Hour,
		BasicAuthKey:    "c2VjcmV0",
		CaptchaTTL:      5 * time.Minute,
	}
}

var personColumnList = []string{"PASS_ID", "PASS_NA", "PASS_PWD", "DEPT_NO", "DEPT_NA", "EMAIL", "STATUS",
	"ACCESS_TOKEN", "REFRESH_TOKEN", "REFRESH_EXPIRE"}

func newAuthService(t *testing.T, captchaOK bool) (*AuthService, sqlmock.Sqlmock, *fakeCaptcha, *JWTService) {
	t.Helper()
	h, mock := newHelper(t)
	cfg := testConfig()
	jwtSvc := NewJWTService(cfg).(*JWTService)
	jwtSvc.now = func() time.Time { return fixedNow }
	captcha := &fakeCaptcha{ok: captchaOK}
	svc := NewAuthService(h, cfg, jwtSvc, captcha).(*AuthService)
	svc.now = func() time.Time { return fixedNow }
	return svc, mock, captcha, jwtSvc
}

func TestCheckBasicKey(t *testing.T) {
	svc, _, _, _ := newAuthService(t, true)
	assert.True(t, svc.CheckBasicKey("Basic c2VjcmV0"))
	assert.False(t, svc.CheckBasicKey("Basic other"))
	assert.False(t, svc.CheckBasicKey(""))

	svc.basicKey = ""
	assert.False(t, svc.CheckBasicKey("Basic "))
}

func TestLoginSuccess(t *testing.T) {
	svc, mock, _, jwtSvc := newAuthService(t, true)
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM SYSPASMI WHERE PASS_ID = ? AND STATUS = 'Y'")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(personColumnList).
			AddRow("admin", "Admin", hash, "D01", "IT", "", "Y", "", "", nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE SYSPASMI SET ACCESS_TOKEN = ?, REFRESH_TOKEN = ?, REFRESH_EXPIRE = ? WHERE PASS_ID = ?")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), fixedNow.Add(2*time.Hour), "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	pair, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123", CaptchaID: "cid", CaptchaCode: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "admin", pair.UserID)
	assert.Equal(t, "Admin", pair.UserName)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, fixedNow.Add(30*time.Minute), pair.ExpiresAt)

	claims, err := jwtSvc.ParseIgnoringExpiry(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
}

func TestLoginCaptchaFailureSkipsLookup(t *testing.T) {
	svc, _, captcha, _ := newAuthService(t, false)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123", CaptchaID: "cid", CaptchaCode: "0000"})
	assert.ErrorIs(t, err, ErrAuthRejected)
	assert.Equal(t, 1, captcha.calls)
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc, mock, _, _ := newAuthService(t, true)
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	mock.ExpectQuery("FROM SYSPASMI").
		WillReturnRows(sqlmock.NewRows(personColumnList).AddRow("admin", "Admin", hash, "", "", "", "Y", "", "", nil))
	mock.ExpectQuery("FROM SYSPASMI").
		WillReturnRows(sqlmock.NewRows(personColumnList))

	_, wrongPwd := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "nope", CaptchaID: "c", CaptchaCode: "1"})
	_, unknown := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "nope", CaptchaID: "c", CaptchaCode: "1"})
	assert.ErrorIs(t, wrongPwd, ErrAuthRejected)
	assert.Equal(t, wrongPwd.Error(), unknown.Error())
}

func issueAccess(t *testing.T, jwtSvc *JWTService) string {
	t.Helper()
	token, _, err := jwtSvc.GenerateToken(&models.Person{PassID: "admin", PassNa: "Admin"})
	require.NoError(t, err)
	return token
}

func TestRefresh(t *testing.T) {
	svc, mock, _, jwtSvc := newAuthService(t, true)
	access := issueAccess(t, jwtSvc)
	expire := fixedNow.Add(time.Hour)

	mock.ExpectQuery("FROM SYSPASMI").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(personColumnList).AddRow("admin", "Admin", "", "", "", "", "Y", access, "r1", expire))
	mock.ExpectExec("UPDATE SYSPASMI SET ACCESS_TOKEN").WillReturnResult(sqlmock.NewResult(0, 1))

	pair, err := svc.Refresh(context.Background(), RefreshRequest{AccessToken: access, RefreshToken: "r1"})
	require.NoError(t, err)
	assert.NotEqual(t, "r1", pair.RefreshToken)
}

func TestRefreshRejects(t *testing.T) {
	cases := []struct {
		name    string
		stored  string
		expire  time.Time
		request string
	}{
		{"mismatch", "r1", fixedNow.Add(time.Hour), "r2"},
		{"expired", "r1", fixedNow.Add(-time.Second), "r1"},
		{"cleared", "", fixedNow.Add(time.Hour), ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, mock, _, jwtSvc := newAuthService(t, true)
			access := issueAccess(t, jwtSvc)

			mock.ExpectQuery("FROM SYSPASMI").
				WillReturnRows(sqlmock.NewRows(personColumnList).AddRow("admin", "Admin", "", "", "", "", "Y", access, c.stored, c.expire))

			_, err := svc.Refresh(context.Background(), RefreshRequest{AccessToken: access, RefreshToken: c.request})
			assert.ErrorIs(t, err, ErrAuthRejected)
		})
	}
}

func TestRefreshRejectsForgedAccessToken(t *testing.T) {
	svc, _, _, _ := newAuthService(t, true)

	other := NewJWTService(&config.Config{JWTSecretKey: "other", JWTIssuer: "factory-monitor-service", JWTAudience: "factory-monitor-web", AccessTokenTTL: time.Minute})
	forged, _, err := other.GenerateToken(&models.Person{PassID: "admin"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), RefreshRequest{AccessToken: forged, RefreshToken: "r1"})
	assert.ErrorIs(t, err, ErrAuthRejected)
}

func TestValidateStoredToken(t *testing.T) {
	svc, mock, _, _ := newAuthService(t, true)

	mock.ExpectQuery("FROM SYSPASMI").
		WillReturnRows(sqlmock.NewRows(personColumnList).AddRow("admin", "Admin", "", "", "", "", "Y", "tok-2", "", nil))
	mock.ExpectQuery("FROM SYSPASMI").
		WillReturnRows(sqlmock.NewRows(personColumnList).AddRow("admin", "Admin", "", "", "", "", "Y", "tok-2", "", nil))

	assert.True(t, svc.ValidateStoredToken(context.Background(), "admin", "tok-2"))
	assert.False(t, svc.ValidateStoredToken(context.Background(), "admin", "tok-1"))
}
