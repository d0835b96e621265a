// README: Smoke-check cases covering the station, quote, and assist endpoints.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "HTTP: health",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				status, _, err := r.get(ctx, base+"/health")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", status)}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name: "HTTP: stations list non-empty",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				status, body, err := r.get(ctx, base+"/api/stations")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", status)}
				}
				var resp struct {
					Count int `json:"count"`
				}
				if err := json.Unmarshal(body, &resp); err != nil {
					return Result{Status: "FAIL", Note: "bad json"}
				}
				if resp.Count == 0 {
					return Result{Status: "FAIL", Note: "catalog is empty"}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name: "HTTP: stations price filter",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, err := r.get(ctx, base+"/api/stations?price_min=10&price_max=15")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", status)}
				}
				var resp struct {
					Stations []struct {
						Price float64 `json:"price"`
					} `json:"stations"`
				}
				if err := json.Unmarshal(body, &resp); err != nil {
					return Result{Status: "FAIL", Note: "bad json"}
				}
				for _, st := range resp.Stations {
					if st.Price < 10 || st.Price > 15 {
						return Result{Status: "FAIL", Note: fmt.Sprintf("price %v outside range", st.Price)}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "HTTP: booking options",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, err := r.get(ctx, base+"/api/bookings/options")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", status)}
				}
				var resp struct {
					Durations []int `json:"duration_minutes"`
				}
				if err := json.Unmarshal(body, &resp); err != nil || len(resp.Durations) == 0 {
					return Result{Status: "FAIL", Note: "no durations"}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "HTTP: quote for unknown station is data, not error",
			Run: func(ctx context.Context, r *Runner) Result {
				payload := map[string]any{
					"station_id":       "bench-unknown",
					"date":             time.Now().Format("2006-01-02"),
					"duration_minutes": 60,
				}
				status, body, err := r.post(ctx, base+"/api/quotes", payload)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", status)}
				}
				var resp struct {
					Valid  bool   `json:"valid"`
					Reason string `json:"reason"`
				}
				if err := json.Unmarshal(body, &resp); err != nil {
					return Result{Status: "FAIL", Note: "bad json"}
				}
				if resp.Valid || resp.Reason != "UnknownStation" {
					return Result{Status: "FAIL", Note: fmt.Sprintf("valid=%v reason=%s", resp.Valid, resp.Reason)}
				}
				return Result{Status: "PASS"}
			},
		},
	}
}

func (r *Runner) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func (r *Runner) post(ctx context.Context, url string, payload any) (int, []byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}
