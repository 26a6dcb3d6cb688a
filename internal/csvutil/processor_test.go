package csvutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

func TestProcessCSVSkipsHeader(t *testing.T) {
	path := writeTempCSV(t, "nationality\nAmerican\nDutch\nFrench\n")

	items, err := ProcessCSV(path, func(record []string) (string, error) {
		return record[0], nil
	}, ProcessorOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"American", "Dutch", "French"}
	if len(items) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("Expected item %d to be %q, got %q", i, w, items[i])
		}
	}
}

func TestProcessCSVSkipInvalid(t *testing.T) {
	path := writeTempCSV(t, "nationality\nAmerican\n\"\"\nDutch\n")

	items, err := ProcessCSV(path, func(record []string) (string, error) {
		if strings.TrimSpace(record[0]) == "" {
			return "", fmt.Errorf("blank row")
		}
		return record[0], nil
	}, ProcessorOptions{SkipInvalid: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d: %v", len(items), items)
	}
}

func TestProcessCSVInvalidRecordFailsWithoutSkip(t *testing.T) {
	path := writeTempCSV(t, "nationality\nAmerican\n")

	_, err := ProcessCSV(path, func(record []string) (string, error) {
		return "", fmt.Errorf("always invalid")
	}, ProcessorOptions{})
	if err == nil {
		t.Fatal("Expected error for invalid record")
	}
}

func TestProcessCSVEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := ProcessCSV(path, func(record []string) (string, error) {
		return record[0], nil
	}, ProcessorOptions{})
	if err == nil {
		t.Fatal("Expected error for empty file")
	}
}

func TestProcessCSVMissingFile(t *testing.T) {
	_, err := ProcessCSV(filepath.Join(t.TempDir(), "missing.csv"), func(record []string) (string, error) {
		return record[0], nil
	}, ProcessorOptions{})
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
