package fileutil

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// ImageDownloadOptions holds options for downloading an artwork image.
type ImageDownloadOptions struct {
	// URL is the source URL of the image. Empty means the record has no image.
	URL string
	// OutputDir is the directory where the image will be saved.
	OutputDir string
	// BaseName is the filename without extension (e.g. "artwork-436535").
	// The extension is inferred from the response Content-Type.
	BaseName string
	// Overwrite forces re-downloading even if the file exists.
	Overwrite bool
	// PreviewWidth, when > 0, also writes a resized preview next to the
	// original ("<BaseName>-preview<ext>"). SVG images are never resized.
	PreviewWidth int
}

// ImageDownloadResult holds the result of an image download.
type ImageDownloadResult struct {
	// Downloaded indicates whether a new file was written.
	Downloaded bool
	// LocalPath is the full path to the saved image.
	LocalPath string
	// PreviewPath is the full path to the preview, when one was generated.
	PreviewPath string
}

// extensionForContentType maps the response Content-Type to a file extension.
// Unknown types fall back to .png.
func extensionForContentType(contentType string) string {
	switch {
	case strings.Contains(contentType, "image/jpeg"):
		return ".jpg"
	case strings.Contains(contentType, "image/svg+xml"):
		return ".svg"
	default:
		return ".png"
	}
}

// DownloadImage downloads an artwork image to the output directory.
// A nil result with a nil error means there was nothing to download.
func DownloadImage(opts ImageDownloadOptions) (*ImageDownloadResult, error) {
	if opts.URL == "" {
		return nil, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading image from %s", resp.StatusCode, opts.URL)
	}

	ext := extensionForContentType(resp.Header.Get("Content-Type"))
	localPath := filepath.Join(opts.OutputDir, SanitizeFilename(opts.BaseName)+ext)

	result := &ImageDownloadResult{LocalPath: localPath}

	if FileExists(localPath) && !opts.Overwrite {
		slog.Debug("Image already exists, skipping download", "path", localPath)
		return result, nil
	}

	file, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create image file: %w", err)
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close image file: %w", err)
	}

	slog.Info("Downloaded image", "path", localPath)
	result.Downloaded = true

	if opts.PreviewWidth > 0 && ext != ".svg" {
		previewPath, err := writePreview(localPath, ext, opts.PreviewWidth)
		if err != nil {
			// A failed preview is not worth failing the download over.
			slog.Warn("Could not generate preview", "path", localPath, "error", err)
		} else {
			result.PreviewPath = previewPath
		}
	}

	return result, nil
}

// writePreview writes a width-bounded copy of the image next to the original.
func writePreview(localPath, ext string, width int) (string, error) {
	img, err := imaging.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}

	preview := imaging.Fit(img, width, width*2, imaging.Lanczos)
	previewPath := strings.TrimSuffix(localPath, ext) + "-preview" + ext
	if err := imaging.Save(preview, previewPath); err != nil {
		return "", fmt.Errorf("failed to save preview: %w", err)
	}

	slog.Debug("Wrote preview image", "path", previewPath, "width", width)
	return previewPath, nil
}
