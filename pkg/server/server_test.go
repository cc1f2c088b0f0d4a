package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/testutil"
)

type sessionView struct {
	ID         string              `json:"id"`
	State      map[string]string   `json:"state"`
	Selectable map[string][]string `json:"selectable"`
	Visible    []struct {
		ID string `json:"id"`
	} `json:"visible"`
	Summary struct {
		Visible int `json:"visible"`
		Total   int `json:"total"`
	} `json:"summary"`
	Cleared   []string `json:"cleared"`
	UndoDepth int      `json:"undo_depth"`
}

func (v sessionView) visibleIDs() []string {
	ids := make([]string, 0, len(v.Visible))
	for _, it := range v.Visible {
		ids = append(ids, it.ID)
	}
	return ids
}

func newTestServer(t *testing.T, rules filtering.Rules) (*Server, *httptest.Server) {
	t.Helper()
	cfg, err := config.LoadConfig("", t.TempDir())
	require.NoError(t, err)
	cfg.Dimensions.Dim1.Label = "Region"
	cfg.Dimensions.Dim2.Label = "Type"
	cfg.Dimensions.Dim3.Label = "Tag"

	srv, err := New(cfg, filtering.NewEngine(testutil.SampleCatalog(), rules))
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func do(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func decodeView(t *testing.T, data []byte) sessionView {
	t.Helper()
	var v sessionView
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func createSession(t *testing.T, ts *httptest.Server) sessionView {
	t.Helper()
	resp, body := do(t, http.MethodPost, ts.URL+"/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeView(t, body)
}

// TestSessionLifecycle tests a session from creation to deletion.
//
// It verifies:
//   - A new session has every dimension unset and all items visible
//   - Changes accept labels, clear stale selections and report them
//   - Undo restores the prior state and reset clears everything
//   - Deleted sessions return 404
func TestSessionLifecycle(t *testing.T) {
	srv, ts := newTestServer(t, filtering.Rules{})

	created := createSession(t, ts)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.State)
	assert.Equal(t, []string{"A", "B", "C", "D"}, created.visibleIDs())
	assert.Equal(t, []string{"Tag1", "Tag2", "Tag3"}, created.Selectable["Tag"])
	base := ts.URL + "/sessions/" + created.ID

	resp, body := do(t, http.MethodPost, base+"/changes", ChangeRequest{Dimension: "Tag", Value: "Tag3"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decodeView(t, body)
	assert.Equal(t, map[string]string{"Tag": "Tag3"}, v.State)
	assert.Equal(t, []string{"C"}, v.visibleIDs())

	resp, body = do(t, http.MethodPost, base+"/changes", ChangeRequest{Dimension: "dim1", Value: " Region-East "})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeView(t, body)
	assert.Equal(t, map[string]string{"Region": "Region-East"}, v.State)
	assert.Equal(t, []string{"Tag"}, v.Cleared)
	assert.Equal(t, []string{"A", "B"}, v.visibleIDs())
	assert.Equal(t, 2, v.UndoDepth)
	assert.Equal(t, 4, v.Summary.Total)

	resp, body = do(t, http.MethodPost, base+"/undo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"Tag": "Tag3"}, decodeView(t, body).State)

	resp, body = do(t, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeView(t, body).State)

	resp, body = do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decodeView(t, body).ID)

	resp, _ = do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, srv.Store().Len())

	resp, body = do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "not found")
}

// TestNonCascadingRules tests that configured rules reach the sessions.
func TestNonCascadingRules(t *testing.T) {
	_, ts := newTestServer(t, filtering.Rules{NonCascading: []filtering.Dimension{filtering.Dim3}})
	base := ts.URL + "/sessions/" + createSession(t, ts).ID

	do(t, http.MethodPost, base+"/changes", ChangeRequest{Dimension: "dim1", Value: "Region-East"})
	resp, body := do(t, http.MethodPost, base+"/changes", ChangeRequest{Dimension: "dim3", Value: "Tag3"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decodeView(t, body)
	assert.Equal(t, map[string]string{"Region": "Region-East", "Tag": "Tag3"}, v.State)
	assert.Empty(t, v.Cleared)
	assert.Empty(t, v.Visible)
}

// TestChangeErrors tests rejected requests.
//
// It verifies:
//   - Unknown dimensions and values return 400 with an error body
//   - Malformed bodies and unknown fields return 400
//   - Unknown sessions return 404
//   - Undo with no history returns 409
//   - Rejections are counted by reason
func TestChangeErrors(t *testing.T) {
	srv, ts := newTestServer(t, filtering.Rules{})
	base := ts.URL + "/sessions/" + createSession(t, ts).ID

	tests := []struct {
		name   string
		url    string
		body   any
		status int
		errMsg string
	}{
		{name: "invalid dimension", url: base + "/changes", body: ChangeRequest{Dimension: "dim4", Value: "x"}, status: 400, errMsg: "invalid dimension"},
		{name: "unknown value", url: base + "/changes", body: ChangeRequest{Dimension: "Region", Value: "Region-North"}, status: 400, errMsg: "unknown value"},
		{name: "malformed body", url: base + "/changes", body: "{", status: 400, errMsg: "invalid request body"},
		{name: "unknown field", url: base + "/changes", body: `{"dim":"dim1"}`, status: 400, errMsg: "invalid request body"},
		{name: "unknown session", url: ts.URL + "/sessions/nope/changes", body: ChangeRequest{Dimension: "dim1", Value: "Region-East"}, status: 404, errMsg: `session "nope" not found`},
		{name: "nothing to undo", url: base + "/undo", status: 409, errMsg: "nothing to undo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, tt.url, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			var e map[string]string
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Contains(t, e["error"], tt.errMsg)
		})
	}

	assert.Equal(t, 1.0, promtest.ToFloat64(srv.metrics.rejected.WithLabelValues("invalid_dimension")))
	assert.Equal(t, 1.0, promtest.ToFloat64(srv.metrics.rejected.WithLabelValues("unknown_value")))
	assert.Equal(t, 2.0, promtest.ToFloat64(srv.metrics.rejected.WithLabelValues("bad_request")))
}

// TestMetricsEndpoint tests the Prometheus exposition.
func TestMetricsEndpoint(t *testing.T) {
	srv, ts := newTestServer(t, filtering.Rules{})
	base := ts.URL + "/sessions/" + createSession(t, ts).ID
	do(t, http.MethodPost, base+"/changes", ChangeRequest{Dimension: "dim3", Value: "Tag3"})
	do(t, http.MethodPost, base+"/changes", ChangeRequest{Dimension: "dim1", Value: "Region-East"})

	assert.Equal(t, 1.0, promtest.ToFloat64(srv.metrics.cleared.WithLabelValues("dim3")))
	assert.Equal(t, 1.0, promtest.ToFloat64(srv.metrics.sessionsActive))

	resp, body := do(t, http.MethodGet, ts.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(body)
	assert.Contains(t, text, `cascade_changes_total{dimension="dim1"} 1`)
	assert.Contains(t, text, `cascade_changes_total{dimension="dim3"} 1`)
	assert.Contains(t, text, `cascade_cleared_selections_total{dimension="dim3"} 1`)
	assert.Contains(t, text, "cascade_sessions_created_total 1")
}

// TestHealthz tests the health endpoint.
func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, filtering.Rules{})
	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))
}

// TestConcurrentChanges tests that one session serializes parallel changes.
func TestConcurrentChanges(t *testing.T) {
	srv, ts := newTestServer(t, filtering.Rules{})
	id := createSession(t, ts).ID
	base := ts.URL + "/sessions/" + id

	values := []string{"Region-East", "Region-West", ""}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			body, _ := json.Marshal(ChangeRequest{Dimension: "dim1", Value: v})
			resp, err := http.Post(base+"/changes", "application/json", bytes.NewReader(body))
			if err == nil {
				resp.Body.Close()
			}
		}(values[i%len(values)])
	}
	wg.Wait()

	var depth int
	require.True(t, srv.Store().With(id, func(s *filtering.Session) { depth = s.Depth() }))
	assert.Equal(t, 30, depth)
}

// TestListenAndServe tests startup and graceful shutdown.
func TestListenAndServe(t *testing.T) {
	srv, _ := newTestServer(t, filtering.Rules{})

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not stop")
	}
}

// TestListenAndServe_AddressInUse tests that bind failures are returned.
func TestListenAndServe_AddressInUse(t *testing.T) {
	srv, _ := newTestServer(t, filtering.Rules{})
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	err = srv.ListenAndServe(context.Background(), l.Addr().String())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "address already in use") || strings.Contains(err.Error(), "HTTP server failed"))
}
