// Package browse implements the catalog commands: the interactive browsing
// session and the one-shot search/show/image operations.
package browse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"metroart/internal/catalog"
	"metroart/internal/config"
	"metroart/internal/datastore"
	"metroart/internal/metapi"
)

// Session bundles the per-run catalog state. It is constructed at startup and
// torn down at process exit; nothing survives between runs.
type Session struct {
	Catalog *catalog.Catalog
}

// NewSession builds the API client from configuration and loads the startup
// reference data (departments from the API, nationalities from the CSV).
// A missing nationality list only disables the nationality menu; the rest of
// the session still works.
func NewSession(ctx context.Context) (*Session, error) {
	client := metapi.NewClient(
		metapi.WithBaseURL(config.APIBaseURL),
		metapi.WithRetryPolicy(metapi.RetryPolicy{
			MaxAttempts: config.APIMaxRetries,
			Backoff:     config.APIBackoff,
		}),
	)

	cat := catalog.New(client)

	if err := cat.LoadDepartments(ctx); err != nil {
		return nil, err
	}

	if err := cat.LoadNationalities(config.NationalitiesCSV); err != nil {
		slog.Warn("Nationality list unavailable, nationality search disabled",
			"path", config.NationalitiesCSV, "error", err)
	}

	return &Session{Catalog: cat}, nil
}

// Export writes every artwork fetched during this session to the SQLite
// export database, when the export is enabled.
func (s *Session) Export() error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	records := s.Catalog.Records()
	if len(records) == 0 {
		return nil
	}

	store := datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to open export database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveArtworks(records); err != nil {
		return fmt.Errorf("failed to export artworks: %w", err)
	}

	slog.Info("Exported artworks", "count", len(records), "dbfile", viper.GetString("datasette.dbfile"))
	return nil
}
