package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Target 一個壓測目標，Body 為 nil 時不送 body
type Target struct {
	Name   string
	Method string
	Path   string
	Body   interface{}
}

// Runner 以固定並行數對目標發送請求
type Runner struct {
	BaseURL     string
	Token       string
	Concurrency int
	Requests    int
	Client      *http.Client
}

// Summary 單一目標的統計
type Summary struct {
	Target      Target
	Requests    int
	OK          int
	Rejected    int // HTTP 200 但 envelope 表示失敗
	Failed      int
	Elapsed     time.Duration
	P50         time.Duration
	P95         time.Duration
	Max         time.Duration
	StatusCodes map[int]int
	Errors      []string
}

// envelope 同時解析 {res_code} 與 {isSuccess} 兩種回應
type envelope struct {
	ResCode   *int  `json:"res_code"`
	IsSuccess *bool `json:"isSuccess"`
}

func (e envelope) ok() bool {
	switch {
	case e.ResCode != nil:
		return *e.ResCode == 200
	case e.IsSuccess != nil:
		return *e.IsSuccess
	default:
		return true
	}
}

type sample struct {
	latency time.Duration
	status  int
	bodyOK  bool
	err     error
}

// NewRunner 建立壓測執行器
func NewRunner(baseURL, token string, concurrency, requests int) *Runner {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Runner{
		BaseURL:     baseURL,
		Token:       token,
		Concurrency: concurrency,
		Requests:    requests,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Run 對目標發送 Requests 次請求
func (r *Runner) Run(ctx context.Context, target Target) *Summary {
	var payload []byte
	if target.Body != nil {
		b, err := json.Marshal(target.Body)
		if err != nil {
			return &Summary{Target: target, Errors: []string{fmt.Sprintf("JSON 編碼錯誤: %v", err)}}
		}
		payload = b
	}

	jobs := make(chan struct{})
	samples := make(chan sample, r.Requests)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < r.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				samples <- r.once(ctx, target, payload)
			}
		}()
	}
	for i := 0; i < r.Requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	close(samples)

	return summarize(target, r.Requests, time.Since(start), samples)
}

func (r *Runner) once(ctx context.Context, target Target, payload []byte) sample {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, target.Method, r.BaseURL+target.Path, body)
	if err != nil {
		return sample{err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	began := time.Now()
	resp, err := r.Client.Do(req)
	if err != nil {
		return sample{err: err}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	_, _ = io.Copy(io.Discard, resp.Body)

	return sample{
		latency: time.Since(began),
		status:  resp.StatusCode,
		bodyOK:  decodeErr == nil && env.ok(),
	}
}

func summarize(target Target, requests int, elapsed time.Duration, samples <-chan sample) *Summary {
	s := &Summary{Target: target, Requests: requests, Elapsed: elapsed, StatusCodes: make(map[int]int)}
	latencies := make([]time.Duration, 0, requests)

	for smp := range samples {
		if smp.err != nil {
			s.Failed++
			s.Errors = append(s.Errors, smp.err.Error())
			continue
		}
		latencies = append(latencies, smp.latency)
		s.StatusCodes[smp.status]++
		switch {
		case smp.status < 200 || smp.status >= 300:
			s.Failed++
		case !smp.bodyOK:
			s.Rejected++
		default:
			s.OK++
		}
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	s.P50 = percentile(latencies, 50)
	s.P95 = percentile(latencies, 95)
	if n := len(latencies); n > 0 {
		s.Max = latencies[n-1]
	}
	return s
}

// percentile sorted 需已排序
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := (len(sorted)*p + 99) / 100
	if idx < 1 {
		idx = 1
	}
	return sorted[idx-1]
}

// Throughput 每秒完成的請求數
func (s *Summary) Throughput() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Requests) / s.Elapsed.Seconds()
}

// SuccessRate 成功請求百分比
func (s *Summary) SuccessRate() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.OK) / float64(s.Requests) * 100
}

// Report 輸出統計
func (s *Summary) Report(w io.Writer) {
	fmt.Fprintf(w, "[%s] %s %s\n", s.Target.Name, s.Target.Method, s.Target.Path)
	fmt.Fprintf(w, "  請求 %d，成功 %d，業務失敗 %d，錯誤 %d\n", s.Requests, s.OK, s.Rejected, s.Failed)
	fmt.Fprintf(w, "  耗時 %s，%.2f req/s，p50 %s，p95 %s，max %s\n", s.Elapsed, s.Throughput(), s.P50, s.P95, s.Max)

	codes := make([]int, 0, len(s.StatusCodes))
	for c := range s.StatusCodes {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	for _, c := range codes {
		fmt.Fprintf(w, "  HTTP %d: %d\n", c, s.StatusCodes[c])
	}
	for i, e := range s.Errors {
		if i == 5 {
			fmt.Fprintf(w, "  ... 另有 %d 筆錯誤\n", len(s.Errors)-5)
			break
		}
		fmt.Fprintf(w, "  %s\n", e)
	}
}
