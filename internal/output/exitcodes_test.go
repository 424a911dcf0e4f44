package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error is success", err: nil, want: ExitSuccess},
		{name: "user error", err: NewUserError("bad flag"), want: ExitUserError},
		{name: "system error", err: NewSystemError("exec failed"), want: ExitSystemError},
		{name: "untyped error defaults to user error", err: errors.New("boom"), want: ExitUserError},
		{
			name: "wrapped exit error keeps its code",
			err:  fmt.Errorf("running generate: %w", NewSystemError("cannot write README")),
			want: ExitSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewSystemErrorWithCause("cannot write README", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Error() != "cannot write README" {
		t.Errorf("Error() = %q, want %q", err.Error(), "cannot write README")
	}
}
