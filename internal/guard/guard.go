// Package guard enforces the safety boundary around document
// processing: upload authenticity, structural sanity, deadlines, and
// prompt sanitization.
package guard

import (
	"bytes"
	"context"
	"fmt"
	"time"
)

// ValidationError rejects bad input before any parsing is attempted.
// Its message is safe to show to clients.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// TimeoutError marks an operation that exceeded its deadline,
// distinguishable from a parse failure.
type TimeoutError struct {
	Op    string
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s exceeded deadline of %s", e.Op, e.After)
}

// pdfMagic is the exact 5-byte signature every PDF starts with.
var pdfMagic = []byte("%PDF-")

// ValidateMagic requires an exact signature match in the first bytes
// of an upload.
func ValidateMagic(data []byte) error {
	if len(data) < len(pdfMagic) || !bytes.Equal(data[:len(pdfMagic)], pdfMagic) {
		return &ValidationError{Msg: "el archivo no es un PDF válido"}
	}
	return nil
}

// ValidatePageCount enforces the page ceiling. Zero or negative counts
// mean corrupt input.
func ValidatePageCount(count, maxPages int) error {
	if count <= 0 {
		return &ValidationError{Msg: "el PDF no contiene páginas legibles"}
	}
	if count > maxPages {
		return &ValidationError{
			Msg: fmt.Sprintf("el documento tiene %d páginas; el máximo permitido es %d", count, maxPages),
		}
	}
	return nil
}

// RunWithTimeout races op against a timer. On deadline the losing
// goroutine keeps running and its result is discarded; the operation
// itself is not cancelled mid-call.
func RunWithTimeout[T any](ctx context.Context, op string, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case out := <-done:
		return out.value, out.err
	case <-timer.C:
		return zero, &TimeoutError{Op: op, After: d}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
