package browse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroart/internal/config"
	"metroart/internal/tui"
)

func startCollectionServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/departments" {
			_, _ = w.Write([]byte(`{"departments":[{"departmentId":11,"displayName":"Paintings"}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func useTestConfig(t *testing.T, baseURL string) {
	t.Helper()
	origURL, origCSV, origRetries := config.APIBaseURL, config.NationalitiesCSV, config.APIMaxRetries
	t.Cleanup(func() {
		config.APIBaseURL, config.NationalitiesCSV, config.APIMaxRetries = origURL, origCSV, origRetries
	})
	config.APIBaseURL = baseURL
	config.NationalitiesCSV = filepath.Join(t.TempDir(), "missing.csv")
	config.APIMaxRetries = 1
}

func scriptSelections(t *testing.T, script func(title string, choices []tui.Choice) tui.ChoiceResult) *int {
	t.Helper()
	orig := selectChoice
	t.Cleanup(func() { selectChoice = orig })

	calls := 0
	selectChoice = func(title string, choices []tui.Choice) (tui.ChoiceResult, error) {
		calls++
		return script(title, choices), nil
	}
	return &calls
}

func TestInteractiveQuitEntryEndsSession(t *testing.T) {
	server := startCollectionServer(t)
	useTestConfig(t, server.URL)

	// Pick the entry labeled Quit wherever it sits in the menu.
	calls := scriptSelections(t, func(title string, choices []tui.Choice) tui.ChoiceResult {
		for i, c := range choices {
			if c.Label == "Quit" {
				return tui.ChoiceResult{Action: tui.ActionSelected, Index: i}
			}
		}
		t.Fatalf("no Quit entry in menu %q", title)
		return tui.ChoiceResult{}
	})

	require.NoError(t, RunInteractive(context.Background()))
	assert.Equal(t, 1, *calls)
}

func TestInteractiveQuitKeyEndsSession(t *testing.T) {
	server := startCollectionServer(t)
	useTestConfig(t, server.URL)

	calls := scriptSelections(t, func(string, []tui.Choice) tui.ChoiceResult {
		return tui.ChoiceResult{Action: tui.ActionQuit, Index: -1}
	})

	require.NoError(t, RunInteractive(context.Background()))
	assert.Equal(t, 1, *calls)
}
