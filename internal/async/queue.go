package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/pipeline"
)

// Job is one queued validation. RunID references the pre-created run row in
// processing status that the worker drives to a terminal state.
type Job struct {
	RunID       uuid.UUID
	Request     pipeline.Request
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
