package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	exec := New()

	out, err := exec.Execute(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Execute() = %q, want %q", out, "hello")
	}
}

func TestExecuteFailureCarriesStderr(t *testing.T) {
	exec := New()

	_, err := exec.Execute(context.Background(), "sh", "-c", "echo broken input >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should return error for non-zero exit")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if cmdErr.Stderr != "broken input" {
		t.Errorf("Stderr = %q, want %q", cmdErr.Stderr, "broken input")
	}
	if !strings.Contains(err.Error(), "broken input") {
		t.Errorf("Error() = %q, should contain stderr", err.Error())
	}
}

func TestTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "abc", 5, "abc"},
		{"exact limit", "abcde", 5, "abcde"},
		{"longer than limit", "abcdefgh", 3, "fgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tail(tt.in, tt.n); got != tt.want {
				t.Errorf("tail() = %q, want %q", got, tt.want)
			}
		})
	}
}
