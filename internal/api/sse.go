package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/docsift/docsift/internal/pipeline"
)

// sseStream writes pipeline events as server-sent events. It
// implements pipeline.Emitter; the mutex keeps frames whole if the
// emitter is ever shared.
type sseStream struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

func newSSEStream(w http.ResponseWriter) (*sseStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	s := &sseStream{w: w, flusher: flusher}
	// Comment line forces proxies and clients to flush headers before
	// the first real event.
	s.comment("connected")
	return s, nil
}

func (s *sseStream) comment(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, ": %s\n\n", text)
	s.flusher.Flush()
}

// Emit writes one event frame. Marshal errors are swallowed: there is
// no way to report them to a client we are mid-stream with.
func (s *sseStream) Emit(e pipeline.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "data: %s\n\n", payload)
	s.flusher.Flush()
}
