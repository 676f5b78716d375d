package logger

import "testing"

func TestNew(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger instance")
	}
	if !l.Enabled(nil, 0) {
		t.Fatal("info level must be enabled")
	}
}
