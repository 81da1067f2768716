package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format: %s", "gif")
	want := "INVALID_FORMAT: unknown format: gif"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "compile pipeline")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not found with errors.Is")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: compile pipeline: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeFigureNotFound, "no such figure")

	if !Is(err, ErrCodeFigureNotFound) {
		t.Error("Is() did not match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() matched a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() matched a non-structured error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidDOT, "bad graph")
	outer := fmt.Errorf("convert: %w", inner)

	if !Is(outer, ErrCodeInvalidDOT) {
		t.Error("Is() did not unwrap to find the code")
	}
	if GetCode(outer) != ErrCodeInvalidDOT {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeInvalidDOT)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "empty source")
	if got := UserMessage(err); got != "empty source" {
		t.Errorf("UserMessage() = %q, want %q", got, "empty source")
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}
