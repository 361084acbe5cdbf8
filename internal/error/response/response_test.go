package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"factory-monitor-service/internal/error/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, style Style, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", UseStyle(style), handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestResCodeEnvelope(t *testing.T) {
	w, body := perform(t, StyleResCode, func(c *gin.Context) {
		Success(c, []string{"A"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 200, body["res_code"])
	assert.Equal(t, "成功", body["res_msg"])
	assert.Equal(t, []interface{}{"A"}, body["data"])
}

func TestResCodeValidationFailure(t *testing.T) {
	w, body := perform(t, StyleResCode, func(c *gin.Context) {
		ParamError(c, "ALERTNO 必填")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 500, body["res_code"])
	assert.Equal(t, "ALERTNO 必填", body["res_msg"])
}

func TestIsSuccessEnvelope(t *testing.T) {
	w, body := perform(t, StyleIsSuccess, func(c *gin.Context) {
		Error(c, code.New(code.ErrAuthRejected, ""))
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["isSuccess"])
	assert.Equal(t, "驗證失敗，請重新登入", body["message"])
	assert.Contains(t, body, "Result")
}

func TestServerErrorDetailGate(t *testing.T) {
	defer SetExposeDetail(false)

	SetExposeDetail(false)
	w, body := perform(t, StyleIsSuccess, func(c *gin.Context) {
		Error(c, errors.New("dial tcp: refused"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, body, "detail")

	SetExposeDetail(true)
	_, body = perform(t, StyleIsSuccess, func(c *gin.Context) {
		Error(c, errors.New("dial tcp: refused"))
	})
	detail, ok := body["detail"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dial tcp: refused", detail["error"])
	assert.NotEmpty(t, detail["stack"])
}

func TestDefaultStyle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Fail(c, code.ErrAlertNotFound, nil) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrAlertNotFound, body.Code)
}
