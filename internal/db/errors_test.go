package db

import (
	"errors"
	"testing"
)

func TestError_WrapsOp(t *testing.T) {
	inner := errors.New("connection refused")
	err := error(&Error{Op: OpGet, Err: inner})

	if err.Error() != "GET: connection refused" {
		t.Errorf("unexpected message: %s", err)
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to reach the wrapped error")
	}
	var dbErr *Error
	if !errors.As(err, &dbErr) || dbErr.Op != OpGet {
		t.Errorf("expected *Error with op GET, got %v", dbErr)
	}
}
