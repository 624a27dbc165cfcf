package async

import (
	"sync"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
)

// scopeLock serializes pipeline executions per upload triple, so two
// validations of the same (filename, type, category) never interleave their
// staging writes. In-process only: one service instance owns the queue.
type scopeLock struct {
	mu    sync.Mutex
	inUse map[entity.UploadScope]struct{}
}

func newScopeLock() *scopeLock {
	return &scopeLock{inUse: make(map[entity.UploadScope]struct{})}
}

// TryAcquire reports whether the scope was free and claims it if so.
func (l *scopeLock) TryAcquire(scope entity.UploadScope) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.inUse[scope]; busy {
		return false
	}
	l.inUse[scope] = struct{}{}
	return true
}

func (l *scopeLock) Release(scope entity.UploadScope) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inUse, scope)
}
