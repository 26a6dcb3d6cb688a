// Package fileutil handles local file output: downloaded artwork images and
// their resized previews.
package fileutil

import (
	"os"
	"strings"
)

// SanitizeFilename cleans a filename by replacing problematic characters.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

// FileExists checks if a file exists at the given path.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
