package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CAREKG_TEST_STRING", "  data/raw  ")
	t.Setenv("CAREKG_TEST_INT", "8")
	t.Setenv("CAREKG_TEST_BAD_INT", "eight")
	t.Setenv("CAREKG_TEST_BOOL", "1")
	t.Setenv("CAREKG_TEST_DURATION", "1500ms")

	if got := GetEnvString("CAREKG_TEST_STRING", "x"); got != "data/raw" {
		t.Fatalf("GetEnvString = %q", got)
	}
	if got := GetEnvString("CAREKG_TEST_MISSING", "x"); got != "x" {
		t.Fatalf("GetEnvString default = %q", got)
	}
	if got := GetEnvInt("CAREKG_TEST_INT", 3); got != 8 {
		t.Fatalf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("CAREKG_TEST_BAD_INT", 3); got != 3 {
		t.Fatalf("GetEnvInt invalid = %d", got)
	}
	if got := GetEnvBool("CAREKG_TEST_BOOL", false); !got {
		t.Fatal("GetEnvBool = false")
	}
	if got := GetEnvDuration("CAREKG_TEST_DURATION", time.Second); got != 1500*time.Millisecond {
		t.Fatalf("GetEnvDuration = %v", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CAREKG_TEST_FROM_FILE=badger\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CAREKG_TEST_FROM_FILE", "")
	os.Unsetenv("CAREKG_TEST_FROM_FILE")

	LoadEnv(path)

	if got := GetEnv("CAREKG_TEST_FROM_FILE"); got != "badger" {
		t.Fatalf("GetEnv after LoadEnv = %q", got)
	}
}
