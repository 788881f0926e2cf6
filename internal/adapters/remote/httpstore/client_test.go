package httpstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		UserAgent:  "pillctl/test",
	}
}

func TestListPillsDecodesSparseSchedules(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/pills", r.URL.Path)
		assert.Equal(t, "pillctl/test", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"boxNumber":1,"name":"Aspirin","schedule":[{"timeRange":"morning","count":2}]},{"boxNumber":"3","name":"Zinc","schedule":[]}]`))
	})

	pills, err := client.ListPills(context.Background())
	require.NoError(t, err)
	require.Len(t, pills, 2)
	assert.Equal(t, domain.BoxNumber(1), pills[0].BoxNumber)
	assert.Equal(t, "Aspirin", pills[0].Name)
	assert.Equal(t, []domain.SparseEntry{{TimeRange: "morning", Count: 2}}, pills[0].Schedule)
	assert.Equal(t, domain.BoxNumber(3), pills[1].BoxNumber)
	assert.Empty(t, pills[1].Schedule)
}

func TestListPillsTreatsNullAsEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	pills, err := client.ListPills(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pills)
	assert.Empty(t, pills)
}

func TestAddPillPostsNameAndBox(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/addPill", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"Aspirin","boxNumber":1}`, string(body))
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, client.AddPill(context.Background(), "Aspirin", 1))
}

func TestAddPillPropagatesStoreMessageVerbatim(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Box number 1 is already occupied"}`))
	})

	err := client.AddPill(context.Background(), "Aspirin", 1)
	require.Error(t, err)
	assert.Equal(t, "Box number 1 is already occupied", err.Error())
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
}

func TestDeletePillUsesBoxInPathAndMapsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/deletePill/4", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Pill not found"}`))
	})

	err := client.DeletePill(context.Background(), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Pill not found", err.Error())
}

func TestUpdateScheduleSendsEmptyArrayNotNull(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var received map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/updateSchedule", r.URL.Path)
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateSchedule(context.Background(), 2, nil))
	mu.Lock()
	defer mu.Unlock()
	assert.JSONEq(t, `2`, string(received["boxNumber"]))
	assert.JSONEq(t, `[]`, string(received["schedule"]))
}

func TestNonSuccessWithoutErrorFieldFallsBackToTransportMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	err := client.MarkServed(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "mark served failed: status 502", err.Error())
}

func TestConnectionFailureIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := Client{BaseURL: baseURL}
	_, err := client.ListPills(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "list pills failed")
}

func TestServerInfoDecodesOpaqueObject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getServerInfo", r.URL.Path)
		_, _ = w.Write([]byte(`{"currentTimeRange":"morning","served":false,"uptime":42}`))
	})

	info, err := client.ServerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "morning", info["currentTimeRange"])
	assert.Equal(t, false, info["served"])
	assert.InDelta(t, 42, info["uptime"], 0)
}

func TestDueNowShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantItems int
		wantErr   string
		wantKind  error
	}{
		{name: "array", status: http.StatusOK, body: `[{"boxNumber":1,"count":2},{"boxNumber":2,"count":1}]`, wantItems: 2},
		{name: "empty body", status: http.StatusOK, body: ``, wantItems: 0},
		{name: "error object on success", status: http.StatusOK, body: `{"error":"Already served"}`, wantErr: "Already served", wantKind: domain.ErrValidation},
		{name: "error object on failure", status: http.StatusBadRequest, body: `{"error":"No time range active"}`, wantErr: "No time range active", wantKind: domain.ErrValidation},
		{name: "failure without error field", status: http.StatusInternalServerError, body: `{}`, wantErr: "fetch pills by time range failed: status 500", wantKind: domain.ErrTransport},
		{name: "unexpected object", status: http.StatusOK, body: `{"pills":[]}`, wantErr: "unexpected response shape", wantKind: domain.ErrTransport},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/pillsByTimeRange", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			items, err := client.DueNow(context.Background())
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, items, tc.wantItems)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.ErrorIs(t, err, tc.wantKind)
		})
	}
}

func TestServedToggles(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	require.NoError(t, client.MarkServed(context.Background()))
	require.NoError(t, client.UnmarkServed(context.Background()))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/markServed", "/unMarkServed"}, paths)
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
		wantErr string
	}{
		{name: "root", baseURL: "http://localhost:4000", path: "/pills", want: "http://localhost:4000/pills"},
		{name: "trailing slash", baseURL: "https://pills.example.com/", path: "/pills", want: "https://pills.example.com/pills"},
		{name: "base path kept", baseURL: "https://example.com/api", path: "/deletePill/3", want: "https://example.com/api/deletePill/3"},
		{name: "empty", baseURL: "", path: "/pills", wantErr: "server url is required"},
		{name: "bad scheme", baseURL: "ftp://example.com", path: "/pills", wantErr: "must use http or https"},
		{name: "missing host", baseURL: "http://", path: "/pills", wantErr: "host is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildAPIURL(tc.baseURL, tc.path)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
