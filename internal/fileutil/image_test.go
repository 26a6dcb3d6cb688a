package fileutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionForContentType(t *testing.T) {
	testCases := []struct {
		contentType string
		expected    string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/jpeg; charset=utf-8", ".jpg"},
		{"image/svg+xml", ".svg"},
		{"application/octet-stream", ".png"},
		{"", ".png"},
	}

	for _, tc := range testCases {
		t.Run(tc.contentType, func(t *testing.T) {
			assert.Equal(t, tc.expected, extensionForContentType(tc.contentType))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a -b-c-d", SanitizeFilename("a:b/c\\d"))
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownloadImageEmptyURL(t *testing.T) {
	result, err := DownloadImage(ImageDownloadOptions{URL: ""})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDownloadImageWritesFileWithInferredExtension(t *testing.T) {
	data := pngBytes(t, 8, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	result, err := DownloadImage(ImageDownloadOptions{
		URL:       server.URL,
		OutputDir: dir,
		BaseName:  "artwork-101",
	})
	require.NoError(t, err)

	assert.True(t, result.Downloaded)
	assert.Equal(t, filepath.Join(dir, "artwork-101.png"), result.LocalPath)

	written, err := os.ReadFile(result.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

func TestDownloadImageSkipsExistingFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-data"))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	existing := filepath.Join(dir, "artwork-5.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	result, err := DownloadImage(ImageDownloadOptions{
		URL:       server.URL,
		OutputDir: dir,
		BaseName:  "artwork-5",
	})
	require.NoError(t, err)

	assert.False(t, result.Downloaded)
	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), content, "existing file must not be overwritten")
}

func TestDownloadImageGeneratesPreview(t *testing.T) {
	data := pngBytes(t, 64, 32)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	result, err := DownloadImage(ImageDownloadOptions{
		URL:          server.URL,
		OutputDir:    dir,
		BaseName:     "artwork-7",
		PreviewWidth: 16,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.PreviewPath)
	assert.Equal(t, filepath.Join(dir, "artwork-7-preview.png"), result.PreviewPath)
	assert.True(t, FileExists(result.PreviewPath))
}

func TestDownloadImageBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	_, err := DownloadImage(ImageDownloadOptions{
		URL:       server.URL,
		OutputDir: t.TempDir(),
		BaseName:  "artwork-9",
	})
	assert.Error(t, err)
}
