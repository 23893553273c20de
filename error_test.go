package pdf

import (
	"errors"
	"testing"
)

func TestErrIsMatchesSameKind(t *testing.T) {
	a := Err(ErrColorOutOfRange)
	b := Errf(ErrColorOutOfRange, "channel %d", 3)
	if !errors.Is(a, b) {
		t.Error("errors of the same kind should match via errors.Is")
	}
}

func TestErrIsRejectsDifferentKind(t *testing.T) {
	a := Err(ErrColorOutOfRange)
	b := Err(ErrNestedBMC)
	if errors.Is(a, b) {
		t.Error("errors of different kinds should not match via errors.Is")
	}
}

func TestErrorStringIncludesDetail(t *testing.T) {
	err := Errf(ErrIndexOutOfBounds, "font id %d", 7)
	got := err.Error()
	want := "IndexOutOfBounds: font id 7"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorStringWithoutDetail(t *testing.T) {
	err := Err(ErrUnreachable)
	if got := err.Error(); got != "Unreachable" {
		t.Errorf("Error() = %q, want %q", got, "Unreachable")
	}
}
