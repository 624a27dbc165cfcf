package async

import (
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
)

func TestScopeLock(t *testing.T) {
	l := newScopeLock()
	a := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "purchase", DocumentCategory: "regular"}
	b := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "purchase", DocumentCategory: "retur"}

	if !l.TryAcquire(a) {
		t.Fatal("first acquire should succeed")
	}
	if l.TryAcquire(a) {
		t.Error("second acquire of the same scope should fail")
	}
	if !l.TryAcquire(b) {
		t.Error("a different scope must not be blocked")
	}

	l.Release(a)
	if !l.TryAcquire(a) {
		t.Error("acquire after release should succeed")
	}
}

func TestScopeLockReleaseUnheld(t *testing.T) {
	l := newScopeLock()
	// releasing a scope that is not held is a no-op
	l.Release(entity.UploadScope{Filename: "x"})
	if !l.TryAcquire(entity.UploadScope{Filename: "x"}) {
		t.Error("scope should be free")
	}
}
