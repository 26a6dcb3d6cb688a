// Package datastore exports fetched artwork records to local SQLite for
// offline inspection. The export is an artifact of a run, never read back:
// the session cache itself lives only in memory.
package datastore

import "metroart/internal/artwork"

// Store defines the interface for the artwork export sink.
type Store interface {
	// Connect establishes a connection to the data store.
	Connect() error

	// SaveArtworks upserts the given records.
	SaveArtworks(artworks []artwork.Artwork) error

	// Close closes the connection to the data store.
	Close() error
}
