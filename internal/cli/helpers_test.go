package cli

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
		{"héllo wörld àgain", 10, "héllo w..."},
		{"ünïcödé", 3, "ünï"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestStripAnsi(t *testing.T) {
	in := colorBold + "hello" + colorReset + " " + styleBoldCyan + "world" + colorReset
	if got := stripAnsi(in); got != "hello world" {
		t.Fatalf("stripAnsi() = %q, want %q", got, "hello world")
	}
}

func TestProjectName(t *testing.T) {
	if got := projectName("/tmp/some/my-app"); got != "my-app" {
		t.Fatalf("projectName() = %q, want %q", got, "my-app")
	}
	if got := projectName("/tmp/some/my-app/"); got != "my-app" {
		t.Fatalf("projectName() with trailing slash = %q, want %q", got, "my-app")
	}
}

func TestOpenStoreUsesGivenDir(t *testing.T) {
	dir := t.TempDir()
	s, err := openStore(dir)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if got := projectRoot(s); got != dir {
		t.Fatalf("projectRoot() = %q, want %q", got, dir)
	}
}
