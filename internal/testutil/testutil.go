// Package testutil provides shared test helpers: config files and OED page
// fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and the directories it points
// at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	archiveDir := filepath.Join(tmpDir, "files")
	require.NoError(t, os.MkdirAll(archiveDir, 0755))

	configContent := fmt.Sprintf(`oed:
  timeout_seconds: 5
  retry_attempts: 0
archive:
  directory: %s
`, archiveDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// HomepageHTML returns homepage markup whose word-of-the-day link points at
// the given path.
func HomepageHTML(path string) string {
	return fmt.Sprintf(`<html>
  <body>
    <div class="wotd">
      <a href="%s">Word of the Day</a>
    </div>
  </body>
</html>`, path)
}

// WordPageHTML returns word page markup with a single sense.
func WordPageHTML(word, definition string) string {
	return fmt.Sprintf(`<html>
  <body>
    <h1 class="headword-group">
      <span class="headword">%s</span>
      <span class="pronunciation">/ɪˈfɛm(ə)rəl/</span>
      <span class="part-of-speech">adjective</span>
    </h1>
    <section id="meaning_and_use">
      <ol>
        <li class="item sense">
          <div class="item-enumerator">1.</div>
          <div class="definition">%s</div>
          <div class="daterange-container">1806–</div>
          <div class="tags">
            <a class="tag">general</a>
          </div>
          <ol>
            <li class="quotation">
              <div class="quotation-date">1806</div>
              <blockquote class="quotation-text">An example quotation.</blockquote>
              <cite class="citation-text">Example Journal</cite>
            </li>
          </ol>
        </li>
      </ol>
    </section>
  </body>
</html>`, word, definition)
}

// EtymologyPageHTML returns etymology tab markup with the given summary and
// full etymology text.
func EtymologyPageHTML(summary, full string) string {
	return fmt.Sprintf(`<html>
  <body>
    <section id="etymology">
      <div class="etymology-summary">
        <div>%s</div>
        <p>Etymons: <span class="language-name">Latin</span> <span class="foreign-form">ephemerus</span></p>
      </div>
      <div id="main_etymology_complete">%s</div>
    </section>
  </body>
</html>`, summary, full)
}
