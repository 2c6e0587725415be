package pipeline

import "time"

// Event types on the wire. The stream is strictly ordered and ends
// with exactly one complete or error event.
const (
	EventLog      = "log"
	EventProgress = "progress"
	EventComplete = "complete"
	EventError    = "error"
)

// Event is one JSON object on the outbound stream.
type Event struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	Color     string          `json:"color,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Percent   int             `json:"percent,omitempty"`
	Result    *DocumentResult `json:"result,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// Emitter receives pipeline events. The transport behind it (SSE
// stream, in-process channel) is the caller's concern.
type Emitter interface {
	Emit(Event)
}

func LogEvent(text, color string) Event {
	return Event{
		Type:      EventLog,
		Text:      text,
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func ProgressEvent(percent int) Event {
	return Event{Type: EventProgress, Percent: percent}
}

func CompleteEvent(result *DocumentResult) Event {
	return Event{Type: EventComplete, Result: result}
}

func ErrorEvent(message string) Event {
	return Event{Type: EventError, Message: message}
}

// ChanEmitter delivers events over a channel, for in-process consumers
// and tests.
type ChanEmitter chan Event

func (c ChanEmitter) Emit(e Event) { c <- e }
