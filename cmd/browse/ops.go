package browse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"metroart/internal/artwork"
	"metroart/internal/config"
	"metroart/internal/fileutil"
	"metroart/internal/metapi"
)

// ListDepartments prints the department list with ids.
func ListDepartments(ctx context.Context) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	for _, d := range session.Catalog.Departments() {
		fmt.Printf("%3d  %s\n", d.ID, d.Name)
	}
	return nil
}

// SearchDepartment runs a one-shot department search and prints the listing.
func SearchDepartment(ctx context.Context, departmentID int) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	results, err := session.Catalog.SearchByDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	printListing(results)
	return session.Export()
}

// SearchNationality runs a one-shot nationality search and prints the listing.
func SearchNationality(ctx context.Context, nationality string) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	results, err := session.Catalog.SearchByNationality(ctx, nationality)
	if err != nil {
		return err
	}
	printListing(results)
	return session.Export()
}

// SearchArtist runs a one-shot artist name search and prints the listing.
func SearchArtist(ctx context.Context, query string) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	results, err := session.Catalog.SearchByArtist(ctx, query)
	if err != nil {
		return err
	}
	printListing(results)
	return session.Export()
}

// ShowObject prints the full detail view for one object id.
func ShowObject(ctx context.Context, id int) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	record, err := session.Catalog.FetchRecord(ctx, id)
	if err != nil {
		if errors.Is(err, metapi.ErrNotFound) {
			return fmt.Errorf("object %d does not exist in the collection", id)
		}
		return err
	}

	fmt.Println(record.Details())
	return session.Export()
}

// FetchImage downloads the image for one object id into the images directory.
func FetchImage(ctx context.Context, id int, outputDir string, overwrite bool) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	record, err := session.Catalog.FetchRecord(ctx, id)
	if err != nil {
		if errors.Is(err, metapi.ErrNotFound) {
			return fmt.Errorf("object %d does not exist in the collection", id)
		}
		return err
	}

	return downloadRecordImage(record, outputDir, overwrite)
}

func downloadRecordImage(record artwork.Artwork, outputDir string, overwrite bool) error {
	if !record.HasImage() {
		fmt.Printf("Artwork #%d has no image to download.\n", record.ID)
		return nil
	}

	if outputDir == "" {
		outputDir = config.ImagesDir
	}

	result, err := fileutil.DownloadImage(fileutil.ImageDownloadOptions{
		URL:          record.ImageURL,
		OutputDir:    outputDir,
		BaseName:     fmt.Sprintf("artwork-%d", record.ID),
		Overwrite:    overwrite,
		PreviewWidth: config.PreviewWidth,
	})
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	if result.Downloaded {
		fmt.Printf("Image saved as %s\n", result.LocalPath)
	} else {
		fmt.Printf("Image already present at %s\n", result.LocalPath)
	}
	return nil
}

func printListing(results []artwork.Artwork) {
	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	for _, a := range results {
		fmt.Println(a.ListLine())
	}
	slog.Info("Search finished", "results", len(results))
}
