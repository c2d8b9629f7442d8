package buildinfo

import (
	"strings"
	"testing"
)

func TestCurrentUsesLinkerOverrides(t *testing.T) {
	origVersion, origCommit, origDate := Version, CommitHash, BuildDate
	t.Cleanup(func() {
		Version, CommitHash, BuildDate = origVersion, origCommit, origDate
	})

	Version = "1.2.3"
	CommitHash = "abc123def456"
	BuildDate = "2026-01-02T03:04:05Z"

	info := Current()
	if info.Version != "1.2.3" {
		t.Fatalf("Version = %q, want %q", info.Version, "1.2.3")
	}
	if info.CommitHash != "abc123def456" {
		t.Fatalf("CommitHash = %q, want %q", info.CommitHash, "abc123def456")
	}
	if info.BuildDate != "2026-01-02T03:04:05Z" {
		t.Fatalf("BuildDate = %q, want %q", info.BuildDate, "2026-01-02T03:04:05Z")
	}
}

func TestShort(t *testing.T) {
	info := Info{Version: "1.2.3"}
	if got := info.Short(); got != "1.2.3" {
		t.Fatalf("Short() = %q, want %q", got, "1.2.3")
	}

	info.CommitHash = "abc123def4567890"
	got := info.Short()
	if !strings.HasPrefix(got, "1.2.3 (abc123de") {
		t.Fatalf("Short() = %q, want truncated commit", got)
	}
}
