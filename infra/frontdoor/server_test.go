package frontdoor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrontDoor(t *testing.T, api http.HandlerFunc) *httptest.Server {
	t.Helper()
	backend := httptest.NewServer(api)
	t.Cleanup(backend.Close)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>alice</h1>"), 0o600))

	h, err := Handler(Options{APIOrigin: strings.TrimPrefix(backend.URL, "http://"), StaticDir: static}, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealthcheck(t *testing.T) {
	srv := newFrontDoor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("healthcheck must not reach the api: %s", r.URL.Path)
	})
	code, body := get(t, srv.URL+"/healthcheck")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)
}

func TestAPIProxyStripsPrefix(t *testing.T) {
	srv := newFrontDoor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/thread", r.URL.Path)
		assert.Equal(t, "no=12", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"status":"SUCCESS"}`))
	})
	code, body := get(t, srv.URL+"/api/thread?no=12")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"SUCCESS"}`, body)
}

func TestStaticFallback(t *testing.T) {
	srv := newFrontDoor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("static paths must not reach the api: %s", r.URL.Path)
	})
	code, body := get(t, srv.URL+"/index.html")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "alice")

	code, _ = get(t, srv.URL+"/missing.css")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestParseOrigin(t *testing.T) {
	u, err := parseOrigin("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", u.String())

	u, err = parseOrigin("https://api.example")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)

	_, err = parseOrigin("  ")
	assert.Error(t, err)
}
