package usecase

import (
	"errors"
	"testing"
)

func TestInitWorkspace_PassesRootAndForce(t *testing.T) {
	f := &fakeInitializer{}

	if err := NewInitWorkspace(f).Execute("/tmp/site", true); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if f.spec.Root != "/tmp/site" || !f.force {
		t.Fatalf("unexpected call: root=%q force=%v", f.spec.Root, f.force)
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	want := errors.New("read-only fs")
	err := NewInitWorkspace(&fakeInitializer{err: want}).Execute(".", false)
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
