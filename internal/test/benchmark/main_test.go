package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig 壓測設定，未設定 SNB_BENCH_URL 時對實際服務的壓測略過
type TestConfig struct {
	BaseURL     string `json:"base_url"`
	Token       string `json:"token"`
	Concurrency int    `json:"concurrency"`
	Requests    int    `json:"requests"`
}

var config TestConfig

func TestMain(m *testing.M) {
	config = TestConfig{
		BaseURL:     os.Getenv("SNB_BENCH_URL"),
		Token:       os.Getenv("SNB_BENCH_TOKEN"),
		Concurrency: 10,
		Requests:    100,
	}
	if data, err := os.ReadFile("test_config.json"); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			fmt.Printf("解析設定檔失敗: %v\n", err)
			os.Exit(1)
		}
	}
	if n, err := strconv.Atoi(os.Getenv("SNB_BENCH_REQUESTS")); err == nil && n > 0 {
		config.Requests = n
	}
	os.Exit(m.Run())
}

var dashboardTargets = []Target{
	{Name: "ping", Method: http.MethodGet, Path: "/ping"},
	{Name: "camera wall", Method: http.MethodPost, Path: "/snb001Q/caminfo", Body: map[string]string{}},
	{Name: "status counts", Method: http.MethodGet, Path: "/snb001Q/alertcount"},
	{Name: "refresh flag", Method: http.MethodGet, Path: "/snb001Q/refreshpageYN"},
	{Name: "timeline", Method: http.MethodPost, Path: "/snb002Q/timeline", Body: map[string]string{}},
}

func TestDashboardLoad(t *testing.T) {
	if config.BaseURL == "" {
		t.Skip("SNB_BENCH_URL 未設定")
	}
	runner := NewRunner(config.BaseURL, config.Token, config.Concurrency, config.Requests)

	for _, target := range dashboardTargets {
		t.Run(target.Name, func(t *testing.T) {
			s := runner.Run(context.Background(), target)
			var out strings.Builder
			s.Report(&out)
			t.Log(out.String())
			assert.Equalf(t, s.Requests, s.OK, "成功率 %.2f%%", s.SuccessRate())
		})
	}
}

func TestRunnerCountsEnvelopeFailures(t *testing.T) {
	var n atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		if n.Add(1)%2 == 0 {
			_, _ = w.Write([]byte(`{"res_code":500,"res_msg":"x","data":null}`))
			return
		}
		_, _ = w.Write([]byte(`{"res_code":200,"res_msg":"ok","data":[]}`))
	}))
	defer srv.Close()

	runner := NewRunner(srv.URL, "tok", 1, 4)
	s := runner.Run(context.Background(), Target{Name: "wall", Method: http.MethodPost, Path: "/snb001Q/caminfo", Body: map[string]string{}})

	assert.Equal(t, 2, s.OK)
	assert.Equal(t, 2, s.Rejected)
	assert.Zero(t, s.Failed)
	assert.Equal(t, 4, s.StatusCodes[http.StatusOK])
	assert.InDelta(t, 50.0, s.SuccessRate(), 0.001)
}

func TestRunnerHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"isSuccess":false}`))
	}))
	defer srv.Close()

	s := NewRunner(srv.URL, "", 3, 6).Run(context.Background(), Target{Name: "login", Method: http.MethodGet, Path: "/Auth/Logout"})
	assert.Equal(t, 6, s.Failed)
	assert.Equal(t, 6, s.StatusCodes[http.StatusUnauthorized])
}

func TestPercentile(t *testing.T) {
	var sorted []time.Duration
	for i := 1; i <= 20; i++ {
		sorted = append(sorted, time.Duration(i)*time.Millisecond)
	}
	require.Equal(t, 10*time.Millisecond, percentile(sorted, 50))
	assert.Equal(t, 19*time.Millisecond, percentile(sorted, 95))
	assert.Zero(t, percentile(nil, 95))
}
