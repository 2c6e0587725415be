package pipeline

import (
	"context"

	"github.com/google/uuid"
)

// Session is the per-request mutable state: a cancellable lifetime and
// a monotonic progress counter. Owned exclusively by the orchestrator
// for the duration of one request.
type Session struct {
	ID       string
	ctx      context.Context
	emitter  Emitter
	progress int
}

func NewSession(ctx context.Context, emitter Emitter) *Session {
	return &Session{
		ID:      uuid.NewString(),
		ctx:     ctx,
		emitter: emitter,
	}
}

// Cancelled reports whether the client has gone away. Checked
// cooperatively at page-loop boundaries; once true, no further events
// are emitted.
func (s *Session) Cancelled() bool {
	return s.ctx.Err() != nil
}

// Log emits a human-readable progress line unless the session is
// cancelled.
func (s *Session) Log(text, color string) {
	if s.Cancelled() {
		return
	}
	s.emitter.Emit(LogEvent(text, color))
}

// Progress emits percent only when it advances, keeping the reported
// value monotonically non-decreasing.
func (s *Session) Progress(percent int) {
	if s.Cancelled() || percent <= s.progress {
		return
	}
	if percent > 100 {
		percent = 100
	}
	s.progress = percent
	s.emitter.Emit(ProgressEvent(percent))
}
