package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/soonpage/internal/domain"
)

func writeWorkspace(t *testing.T, root string) {
	t.Helper()
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "soonpage.yaml"), []byte("soonpage:\n  analytics_id: G-1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	writeWorkspace(t, root)
	nested := filepath.Join(root, "output", "example.com")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_FromFilePath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	writeWorkspace(t, root)
	file := filepath.Join(root, "domains.txt")
	if err := os.WriteFile(file, []byte("a.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	_, err := NewFinder().FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStartDir(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestLocate(t *testing.T) {
	tmp := t.TempDir()

	_, found, err := NewFinder().Locate(tmp)
	if err != nil || found {
		t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
	}

	writeWorkspace(t, tmp)
	root, found, err := NewFinder().Locate(tmp)
	if err != nil || !found || root != tmp {
		t.Fatalf("expected workspace at %s, got root=%s found=%v err=%v", tmp, root, found, err)
	}
}
