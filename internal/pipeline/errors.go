package pipeline

import (
	"errors"
	"fmt"

	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/guard"
)

// PageError marks the failure of a single page's analysis. It is
// recovered locally and never aborts the document.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d analysis failed: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// SummaryError marks the failure of the final summary call, which is
// critical and terminates the request.
type SummaryError struct {
	Err error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("summary generation failed: %v", e.Err)
}

func (e *SummaryError) Unwrap() error { return e.Err }

// clientMessage maps an internal error to the sanitized message that
// crosses the stream boundary. Paths and upstream API bodies never
// leave the server.
func clientMessage(err error) string {
	var vErr *guard.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Msg
	}
	var tErr *guard.TimeoutError
	if errors.As(err, &tErr) {
		return "el procesamiento tardó demasiado; inténtalo de nuevo con un archivo más simple"
	}
	var xErr *extract.ExtractionError
	if errors.As(err, &xErr) {
		return "no se pudo extraer el texto del documento"
	}
	var sErr *SummaryError
	if errors.As(err, &sErr) {
		return "no se pudo generar el resumen del documento"
	}
	return "error interno al procesar el documento"
}
