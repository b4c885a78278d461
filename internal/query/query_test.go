package query

import (
	"strings"
	"testing"

	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/testutil"
)

func strPtr(s string) *string { return &s }

func seedVault(t *testing.T) (*storage.FS, []string) {
	t.Helper()
	v, store := testutil.TestVault(t)
	testutil.WriteNote(t, v, "alpha.md", "---\nstatus: done\ntags:\n  - work\n  - go\n---\nAlpha.\n")
	testutil.WriteNote(t, v, "beta.md", "---\nstatus: open\n---\nBeta.\n")
	testutil.WriteNote(t, v, "gamma.md", "No frontmatter here.\n")
	testutil.WriteNote(t, v, "broken.md", "---\n: bad: yaml: {{{\n---\nBroken.\n")
	testutil.WriteNote(t, v, "Assets/hidden.md", "---\nstatus: done\n---\nHidden.\n")
	return store, v.Blacklist
}

func paths(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Path)
	}
	return out
}

func TestRun_Exists(t *testing.T) {
	store, blist := seedVault(t)
	results, err := Run(store, blist, Options{Key: "status", Exists: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := strings.Join(paths(results), ",")
	if len(results) != 2 || !strings.Contains(got, "alpha.md") || !strings.Contains(got, "beta.md") {
		t.Errorf("results = %v, want alpha.md and beta.md", got)
	}
}

func TestRun_Missing(t *testing.T) {
	store, blist := seedVault(t)
	results, err := Run(store, blist, Options{Key: "status", Missing: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The unparseable header degrades to "no keys", so broken.md counts
	// as missing too.
	got := strings.Join(paths(results), ",")
	if len(results) != 2 || !strings.Contains(got, "gamma.md") || !strings.Contains(got, "broken.md") {
		t.Errorf("results = %v, want gamma.md and broken.md", got)
	}
}

func TestRun_ValueMatch(t *testing.T) {
	store, blist := seedVault(t)
	results, err := Run(store, blist, Options{Key: "status", Value: strPtr("done")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Path != "alpha.md" {
		t.Errorf("results = %v, want [alpha.md]", paths(results))
	}
	if !results[0].HasValue || results[0].Value != "done" {
		t.Errorf("value = %v", results[0].Value)
	}
}

func TestRun_ContainsRecursesArrays(t *testing.T) {
	store, blist := seedVault(t)
	results, err := Run(store, blist, Options{Key: "tags", Contains: strPtr("work")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Path != "alpha.md" {
		t.Errorf("results = %v, want [alpha.md]", paths(results))
	}
}

func TestRun_BlacklistSkipped(t *testing.T) {
	store, blist := seedVault(t)
	results, err := Run(store, blist, Options{Key: "status", Value: strPtr("done")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range results {
		if strings.HasPrefix(r.Path, "Assets/") {
			t.Errorf("blacklisted note leaked into results: %s", r.Path)
		}
	}
}

func TestValidate_MutuallyExclusivePredicates(t *testing.T) {
	opts := Options{Key: "status", Value: strPtr("x"), Contains: strPtr("y")}
	if err := opts.Validate(); err == nil {
		t.Fatal("expected validation error for value+contains")
	}
	// Run must fail before touching the vault.
	store, blist := seedVault(t)
	if _, err := Run(store, blist, opts); err == nil {
		t.Fatal("expected Run to reject the malformed query")
	}
}

func TestValidate_KeyRequired(t *testing.T) {
	if err := (Options{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty key")
	}
}
