package buildinfo

import "testing"

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version || info.Commit != Commit || info.Date != Date {
		t.Errorf("Get() = %+v, want the package variables", info)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-08-31T00:00:00Z"}
	want := "v1.2.3 (commit abc123, built 2026-08-31T00:00:00Z)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
