package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wotd/internal/testutil"
)

// setupTestConfigFile writes a config file pointing the OED client at the
// given base URL and returns its path.
func setupTestConfigFile(t *testing.T, baseURL string) string {
	t.Helper()

	tmpDir := t.TempDir()
	configContent := fmt.Sprintf(`oed:
  base_url: %s
  timeout_seconds: 5
  retry_attempts: 0
archive:
  enabled: false
`, baseURL)
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("oed: [broken"), 0644))
	return cfgPath
}

// newFixtureServer serves a homepage, word page, and etymology page for a
// fixed word.
func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testutil.HomepageHTML("/word-of-the-day/ephemeral")))
	})
	mux.HandleFunc("/word-of-the-day/ephemeral", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tab") == "etymology" {
			_, _ = w.Write([]byte(testutil.EtymologyPageHTML("A borrowing from Greek.", "From Greek ephemeros.")))
			return
		}
		_, _ = w.Write([]byte(testutil.WordPageHTML("ephemeral", "lasting a very short time")))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
