// Package catalog implements the session-scoped museum catalog: three search
// caches (department, nationality, artist query), a deduplicated record
// store, and the facade that orchestrates remote searches through them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"metroart/internal/artwork"
	"metroart/internal/csvutil"
	"metroart/internal/metapi"
)

// Fetcher is the remote collection API surface the catalog depends on.
// *metapi.Client implements it; tests substitute counting fakes.
type Fetcher interface {
	Departments(ctx context.Context) ([]metapi.Department, error)
	SearchByDepartment(ctx context.Context, departmentID int) ([]int, error)
	SearchObjects(ctx context.Context, query string) ([]int, error)
	Object(ctx context.Context, id int) (*metapi.ObjectRecord, error)
}

// Catalog holds all session state: reference data loaded at startup plus the
// caches populated while browsing. One Catalog per process run; nothing is
// persisted across runs.
type Catalog struct {
	fetcher Fetcher

	departments   []metapi.Department
	nationalities []string

	byDepartment  *searchCache
	byNationality *searchCache
	byArtist      *searchCache
	records       *recordStore
}

// New creates an empty catalog backed by the given fetcher.
func New(fetcher Fetcher) *Catalog {
	return &Catalog{
		fetcher:       fetcher,
		byDepartment:  newSearchCache(),
		byNationality: newSearchCache(),
		byArtist:      newSearchCache(),
		records:       newRecordStore(),
	}
}

// LoadDepartments fetches the department list once at startup.
func (c *Catalog) LoadDepartments(ctx context.Context) error {
	departments, err := c.fetcher.Departments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}
	c.departments = departments
	slog.Info("Loaded departments", "count", len(departments))
	return nil
}

// Departments returns the loaded department list.
func (c *Catalog) Departments() []metapi.Department {
	return c.departments
}

// DepartmentName resolves a department id to its display name.
func (c *Catalog) DepartmentName(id int) (string, bool) {
	for _, d := range c.departments {
		if d.ID == id {
			return d.Name, true
		}
	}
	return "", false
}

// LoadNationalities reads the nationality reference list from a CSV file with
// a header row, one nationality per data row in the first column.
func (c *Catalog) LoadNationalities(path string) error {
	nationalities, err := csvutil.ProcessCSV(path, func(record []string) (string, error) {
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			return "", fmt.Errorf("empty nationality row")
		}
		return strings.TrimSpace(record[0]), nil
	}, csvutil.ProcessorOptions{SkipInvalid: true})
	if err != nil {
		return fmt.Errorf("failed to load nationalities: %w", err)
	}
	c.nationalities = nationalities
	slog.Info("Loaded nationalities", "count", len(nationalities))
	return nil
}

// Nationalities returns the loaded nationality list.
func (c *Catalog) Nationalities() []string {
	return c.nationalities
}

// NationalityAt returns the nationality at a 1-based menu position.
func (c *Catalog) NationalityAt(position int) (string, bool) {
	if position < 1 || position > len(c.nationalities) {
		return "", false
	}
	return c.nationalities[position-1], true
}

// SearchByDepartment returns the artworks of one department, in the order the
// remote search returned them. Repeated searches for the same department are
// answered from cache without any network traffic.
func (c *Catalog) SearchByDepartment(ctx context.Context, departmentID int) ([]artwork.Artwork, error) {
	name, ok := c.DepartmentName(departmentID)
	if !ok {
		return nil, fmt.Errorf("unknown department id %d", departmentID)
	}
	return c.search(ctx, c.byDepartment, name, func(ctx context.Context) ([]int, error) {
		return c.fetcher.SearchByDepartment(ctx, departmentID)
	}, nil)
}

// SearchByNationality returns artworks whose artist has exactly the given
// nationality. The remote free-text search matches broadly across many
// fields, so results are filtered client-side by case-insensitive equality on
// the normalized nationality; rejected ids are dropped from the cached list.
func (c *Catalog) SearchByNationality(ctx context.Context, nationality string) ([]artwork.Artwork, error) {
	return c.search(ctx, c.byNationality, nationality, func(ctx context.Context) ([]int, error) {
		return c.fetcher.SearchObjects(ctx, nationality)
	}, func(a artwork.Artwork) bool {
		return strings.EqualFold(a.Nationality, nationality)
	})
}

// SearchByArtist returns artworks whose artist name contains the query as a
// case-insensitive substring. Like the nationality path this is a client-side
// filter over the remote's broad search.
func (c *Catalog) SearchByArtist(ctx context.Context, query string) ([]artwork.Artwork, error) {
	lowered := strings.ToLower(query)
	return c.search(ctx, c.byArtist, query, func(ctx context.Context) ([]int, error) {
		return c.fetcher.SearchObjects(ctx, query)
	}, func(a artwork.Artwork) bool {
		return strings.Contains(strings.ToLower(a.Artist), lowered)
	})
}

// Record returns the stored record for an object id, if any.
func (c *Catalog) Record(id int) (artwork.Artwork, bool) {
	return c.records.Get(id)
}

// Records returns every artwork fetched this session, in insertion order.
func (c *Catalog) Records() []artwork.Artwork {
	return c.records.All()
}

// FetchRecord returns the record for an id, fetching and storing it if the
// session does not have it yet.
func (c *Catalog) FetchRecord(ctx context.Context, id int) (artwork.Artwork, error) {
	if a, ok := c.records.Get(id); ok {
		return a, nil
	}
	raw, err := c.fetcher.Object(ctx, id)
	if err != nil {
		return artwork.Artwork{}, err
	}
	normalized, err := artwork.Normalize(raw)
	if err != nil {
		return artwork.Artwork{}, err
	}
	c.records.PutIfAbsent(normalized)
	a, _ := c.records.Get(normalized.ID)
	return a, nil
}

// search runs the uniform lookup algorithm shared by all three search kinds.
func (c *Catalog) search(ctx context.Context, cache *searchCache, key string, lookup func(context.Context) ([]int, error), keep func(artwork.Artwork) bool) ([]artwork.Artwork, error) {
	// Fast path: the whole point of the cache. A key that was searched
	// before is answered entirely from memory.
	if ids, ok := cache.Get(key); ok {
		slog.Debug("Search cache hit", "key", key, "ids", len(ids))
		return c.resolve(ids), nil
	}

	ids, err := lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", key, err)
	}
	if len(ids) == 0 {
		// Empty results are deliberately not memoized: a query that finds
		// nothing today may succeed later in the session.
		slog.Info("Search returned no results", "key", key)
		return nil, nil
	}

	// The id list is cached before per-record fetching starts.
	cache.Put(key, ids)
	slog.Info("Search returned results", "key", key, "ids", len(ids))

	return c.fill(ctx, cache, key, ids, keep)
}

// fill fetches and normalizes each id in order, populating the record store.
// A not-found or malformed record is skipped: no record is stored, but the id
// stays in the cached list as a dangling id that later lookups tolerate.
// When a keep filter is given, rejected ids are removed from the cached list,
// and so are failed ids: an unverified candidate must not linger in a
// filtered list, or a later search under another key could fetch its record
// and make the cache hit resolve an artwork the filter never approved.
func (c *Catalog) fill(ctx context.Context, cache *searchCache, key string, ids []int, keep func(artwork.Artwork) bool) ([]artwork.Artwork, error) {
	kept := make([]int, 0, len(ids))
	results := make([]artwork.Artwork, 0, len(ids))

	for _, id := range ids {
		record, ok := c.records.Get(id)
		if !ok {
			raw, err := c.fetcher.Object(ctx, id)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				if errors.Is(err, metapi.ErrNotFound) {
					slog.Warn("Object not found, skipping", "id", id)
				} else {
					slog.Warn("Could not fetch object, skipping", "id", id, "error", err)
				}
				if keep == nil {
					kept = append(kept, id)
				}
				continue
			}
			normalized, err := artwork.Normalize(raw)
			if err != nil {
				slog.Warn("Malformed object record, skipping", "id", id, "error", err)
				if keep == nil {
					kept = append(kept, id)
				}
				continue
			}
			c.records.PutIfAbsent(normalized)
			record, _ = c.records.Get(normalized.ID)
		}

		if keep != nil && !keep(record) {
			continue
		}
		kept = append(kept, id)
		results = append(results, record)
	}

	cache.replace(key, kept)
	return results, nil
}

// resolve maps a cached id list through the record store, silently skipping
// dangling ids left behind by earlier per-record failures.
func (c *Catalog) resolve(ids []int) []artwork.Artwork {
	out := make([]artwork.Artwork, 0, len(ids))
	for _, id := range ids {
		if record, ok := c.records.Get(id); ok {
			out = append(out, record)
		}
	}
	return out
}
