// README: Feed client tests against a stub upstream.
package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"evconnect/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.FeedConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Limit:          100,
		TimeoutSeconds: 2,
	})
}

func TestFetchParsesRecords(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"records": [
				{"id": "st-1", "station_name": "Alpha", "latitude": "28.6", "longitude": "77.2"},
				{"name": "Beta", "charger_type": "DC Fast"}
			]
		}`))
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "st-1" || records[0].StationName != "Alpha" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].ChargerType != "DC Fast" {
		t.Errorf("records[1] = %+v", records[1])
	}

	if got := gotQuery["api-key"]; len(got) != 1 || got[0] != "test-key" {
		t.Errorf("api-key param = %v", got)
	}
	if got := gotQuery["format"]; len(got) != 1 || got[0] != "json" {
		t.Errorf("format param = %v", got)
	}
}

func TestFetchUpstreamFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http 500", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"garbled body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := testClient(srv.URL).Fetch(context.Background())
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("err = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestFetchNoURLConfigured(t *testing.T) {
	_, err := testClient("").Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately closed: connection refused

	_, err := testClient(srv.URL).Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
