package usecase_test

import (
	"strings"
	"testing"

	"shop/internal/usecase"
)

// HTTPErrorのメッセージを部分一致で確認する
func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}

	if !strings.Contains(he.Message, want) {
		t.Fatalf("expected error containing %q, got %q", want, he.Message)
	}
}

func assertErrStatus(t *testing.T, err error, status int) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected HTTPError with status %d, got nil", status)
	}

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}

	if he.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, he.Status, he.Message)
	}
}
