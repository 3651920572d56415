package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
	}{
		{CodeValidation, http.StatusBadRequest, "validation failed", false},
		{CodeUnauthorized, http.StatusUnauthorized, "authentication required", false},
		{CodeForbidden, http.StatusForbidden, "access denied", false},
		{CodeNotFound, http.StatusNotFound, "resource not found", false},
		{CodeConflict, http.StatusConflict, "conflict detected", false},
		{CodeInternal, http.StatusInternalServerError, "internal server error", true},
		{CodeDependency, http.StatusServiceUnavailable, "dependency unavailable", true},
	}

	for _, tc := range tests {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.status {
			t.Fatalf("%s: expected status %d got %d", tc.code, tc.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tc.publicMsg {
			t.Fatalf("%s: expected message %q got %q", tc.code, tc.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tc.retryable {
			t.Fatalf("%s: expected retryable=%v", tc.code, tc.retryable)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "store call")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be discoverable via errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("expected dependency code, got %s", err.Code())
	}
	if err.Error() != "DEPENDENCY_ERROR: store call" {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeNotFound, nil, "missing")
	if err.Unwrap() != nil {
		t.Fatal("expected nil cause")
	}
	if err.Code() != CodeNotFound {
		t.Fatalf("expected not found code, got %s", err.Code())
	}
}

func TestAsExtractsTypedError(t *testing.T) {
	inner := New(CodeForbidden, "nope")
	wrapped := Wrap(CodeInternal, inner, "outer")

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	// errors.As finds the outermost *Error first.
	if typed.Code() != CodeInternal {
		t.Fatalf("expected outer code, got %s", typed.Code())
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("socket closed")
	err := Wrap(CodeDependency, cause, "query wishlists")

	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", dump.Code)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected chain of 2, got %d", len(dump.Chain))
	}
	if dump.TopMessage == "" {
		t.Fatal("expected top message")
	}
}

func TestDumpNil(t *testing.T) {
	if dump := Dump(nil); dump.TopMessage != "" || len(dump.Chain) != 0 {
		t.Fatalf("expected zero dump, got %+v", dump)
	}
}
