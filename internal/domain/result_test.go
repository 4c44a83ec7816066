package domain

import (
	"errors"
	"testing"
)

func TestResultOk(t *testing.T) {
	r := Ok([]int{1, 2})

	if !r.IsOK() {
		t.Fatalf("expected ok result")
	}
	if r.Err != nil {
		t.Fatalf("expected no error branch, got %v", r.Err)
	}
	if r.ErrorType() != "" {
		t.Fatalf("expected empty error type, got %q", r.ErrorType())
	}
	v, err := r.Unwrap()
	if err != nil || len(v) != 2 {
		t.Fatalf("unexpected unwrap: %v %v", v, err)
	}
}

func TestResultFail(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	r := Fail[[]int](RequestError, MsgRequestFailed, cause)

	if r.IsOK() {
		t.Fatalf("expected failed result")
	}
	if r.Data != nil {
		t.Fatalf("expected data branch unset, got %v", r.Data)
	}
	if r.ErrorType() != RequestError {
		t.Fatalf("expected RequestError, got %s", r.ErrorType())
	}

	_, err := r.Unwrap()
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if !errors.Is(err, ErrRequest) {
		t.Fatalf("expected errors.Is(err, ErrRequest)")
	}
	if errors.Is(err, ErrServer) {
		t.Fatalf("did not expect errors.Is(err, ErrServer)")
	}
}

func TestErrorIsByType(t *testing.T) {
	cases := []struct {
		typ    ErrorType
		target error
	}{
		{ServerError, ErrServer},
		{ClientError, ErrClient},
		{RequestError, ErrRequest},
		{TypeError, ErrType},
	}
	for _, c := range cases {
		err := &Error{Type: c.typ, Message: "m"}
		if !errors.Is(err, c.target) {
			t.Errorf("expected %s to match %v", c.typ, c.target)
		}
	}
}

func TestFailWithKeepsError(t *testing.T) {
	src := Fail[int](ClientError, MsgClientError, nil)
	dst := FailWith[string](src.Err)

	if dst.Err != src.Err {
		t.Fatalf("expected the same *Error to be carried over")
	}
	if dst.Data != "" {
		t.Fatalf("expected zero data")
	}
}
